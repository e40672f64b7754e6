package service

import "github.com/saadjs/dietcheck-cli/internal/model"

const SkeletonAssessmentURL = "https://www.vivi.tv/shindan-skeletalframe-rm22syx6gb6f/"

const (
	bmiMessageUnderweight = "あなたのBMIは %.1f で「やせ型」です。健康的な体重を目指して、栄養バランスの良い食事を心がけましょう。"
	bmiMessageNormal      = "あなたのBMIは %.1f で「標準体型」です。この体型を維持するために、今後も運動や食生活に気を配りましょう。"
	bmiMessageObese1      = "あなたのBMIは %.1f で「肥満（1度）」です。体重を減らすことで健康リスクを下げられます。運動と食事改善を心がけましょう。"
	bmiMessageObese2Plus  = "あなたのBMIは %.1f で「肥満（2度以上）」です。医師や栄養士に相談し、無理のない範囲で生活改善を始めましょう。"

	exerciseAdviceRarely   = "運動の習慣を少しずつ取り入れると、基礎代謝が上がり脂肪燃焼につながります。"
	exerciseAdviceFivePlus = "週に5回以上運動していて素晴らしいですね！継続することが大切です。"

	dietAdviceUnbalanced = "食事のバランスに注意が必要です。野菜、タンパク質、炭水化物をバランスよく摂るようにしましょう。"

	sleepAdviceShort = "睡眠時間が短めです。睡眠不足は食欲の乱れや代謝低下を引き起こすため、もう少し睡眠を確保しましょう。"
	sleepAdviceLong  = "睡眠時間がやや長めです。適度な睡眠（6〜8時間）が理想的です。"

	ExemplaryMessage = "とても健康的な生活を送っていますね！この調子で続けましょう！"
)

// ReferralMessage is returned by both guide tables when the skeleton type is
// not known.
const ReferralMessage = "以下のURLから骨格診断を行ってみましょう！\n" + SkeletonAssessmentURL

type bodyTypeAdvice struct {
	skeleton string
	exercise string
	diet     string
}

var bodyTypeTable = map[model.BodyType]bodyTypeAdvice{
	model.BodyTypeWave: {
		skeleton: "脂肪を抑えてたんぱく質を多めに摂取しましょう。また、有酸素運動をメインに行うとよいです。",
		exercise: `〇向いている運動
・リズム系有酸素運動：ダンス、エアロビクス
・軽めの筋トレ（特にインナーマッスル）
・ストレッチやヨガ
→ 血流を促進して代謝を上げることがカギ

✖向いていない運動
・過度な筋トレ（特に下半身）
→ 太ももやふくらはぎがたくましく見えやすい
・長時間のハード有酸素運動
→ 疲れやすく、筋肉が分解されやすい傾向`,
		diet: `〇太りにくい食べ物
・体を温める食材（生姜、根菜、味噌汁）
・低GIの炭水化物（玄米、全粒粉パン、オートミール）
・煮物・蒸し物など温かい和食
・魚や大豆製品、白身肉（脂肪少なめで消化にやさしい）

✖太りやすい食べ物
・冷たいもの（アイス、冷たいドリンク、生野菜中心のサラダ）
・甘いお菓子やパン、ケーキなど糖質が高いもの
・カフェインやアルコール（代謝を乱しやすい）
・脂質の多い洋菓子（バタークッキー、クロワッサンなど）`,
	},
	model.BodyTypeNatural: {
		skeleton: "腸内環境を整えることが大切です。また、全身を使った運動や姿勢改善を行うとよいです。",
		exercise: `〇向いている運動
・スポーツ全般：バスケ、テニスなど動きのあるもの
・サーキットトレーニング：筋トレ×有酸素の組み合わせ
・中〜高負荷の筋トレ
→ 骨格がしっかりしているので、筋肉をつけてもバランスがとれる

✖向いていない運動
・単調な軽めの運動のみ（ウォーキングだけ、など）
→ 筋肉や骨格が強いので、軽すぎる運動は効果が出にくい
・過度なストレッチのみ
→ 体が元々しなやかではない場合、ストレッチだけでは整わない`,
		diet: `〇太りにくい食べ物
・ナッツや全粒粉など自然な食材（適量ならOK）
・良質なタンパク源（卵、納豆、鮭など）
・シンプルでナチュラルな食事（和食中心）
・野菜や海藻を多く取り入れたバランス食事

✖太りやすい食べ物
・ジャンクフード、加工食品（ポテチ、ファストフードなど）
・味が濃いものや塩分多めの食品（ラーメン、漬物など）
・食べ過ぎ（腹八分を超える食事）`,
	},
	model.BodyTypeStraight: {
		skeleton: "水分をしっかりととり、脂質と糖質の取りすぎに注意しましょう。また、短時間・高強度のトレーニングを行うとよいです。",
		exercise: `〇向いている運動
・有酸素運動（軽め）：ウォーキング、スイミング
・ストレッチ系：ヨガ、ピラティス
・体幹トレーニング：プランク、バランスボール
→ 筋肉がつきやすいので、激しい筋トレより「整える」系が◎

✖向いていない運動
・ハードな筋トレ（スクワット・ダンベルなど高負荷）
・ハイインパクト系の運動（HIIT、ジャンプを多用するもの）
→ 筋肉太りしやすく、ゴツく見えがちになる可能性`,
		diet: `〇太りにくい食べ物
・高たんぱく・低脂質な食材（鶏胸肉、豆腐、卵白）
・食物繊維の多い野菜（キャベツ、ブロッコリー、きのこ類）
・良質な炭水化物（玄米、雑穀米、さつまいも）
・スープや蒸し料理など脂を使わない調理法が◎

✖太りやすい食べ物
・脂質の多いもの（とんかつ、唐揚げ、揚げ物全般）
・油を多く使った料理（中華、カルボナーラなど）
・生クリームやチーズなどの乳脂肪分
・高GI値の白ご飯・パンを大量に食べる`,
	},
}

// referralAdvice is the default arm for unknown or unrecognized skeleton types.
var referralAdvice = bodyTypeAdvice{
	exercise: ReferralMessage,
	diet:     ReferralMessage,
}

func lookupBodyType(bt model.BodyType) bodyTypeAdvice {
	if a, ok := bodyTypeTable[bt]; ok {
		return a
	}
	return referralAdvice
}
