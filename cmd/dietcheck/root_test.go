package dietcheck

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag in the tree, since cobra keeps parsed values
// between Execute calls.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execute runs the root command with an isolated config file and returns
// stdout and stderr.
func execute(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(dir, "config.yaml")}, args...))
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootHelp(t *testing.T) {
	out, _, err := execute(t, t.TempDir(), "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "diagnose")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "dietcheck dev"))
}

func TestInitCommandIdempotent(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "data", "user_data.csv")
	for i := 0; i < 2; i++ {
		out, _, err := execute(t, dir, "--log", logFile, "init")
		require.NoError(t, err, "init run %d", i+1)
		assert.Contains(t, out, "Initialized submission log")
	}
	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Equal(t, "性別,年齢,身長,体重,骨格タイプ,運動頻度,食生活,睡眠時間\n", string(data))
}

func TestInitSQLite(t *testing.T) {
	dir := t.TempDir()
	dbFile := filepath.Join(dir, "dietcheck.db")
	for i := 0; i < 2; i++ {
		out, _, err := execute(t, dir, "--backend", "sqlite", "--db", dbFile, "init")
		require.NoError(t, err)
		assert.Contains(t, out, "Initialized submission database")
	}
	_, err := os.Stat(dbFile)
	require.NoError(t, err)
}

func TestRejectsUnknownBackend(t *testing.T) {
	_, _, err := execute(t, t.TempDir(), "--backend", "postgres", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid recorder backend")
}

func TestDoctorReportsBrokenRows(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "user_data.csv")
	content := "性別,年齢,身長,体重,骨格タイプ,運動頻度,食生活,睡眠時間\n" +
		"女性,30,160,55,ストレート,ほとんどしない,偏りがち,5.0\n" +
		"女性,30,160\n"
	require.NoError(t, os.WriteFile(logFile, []byte(content), 0o644))

	out, _, err := execute(t, dir, "--log", logFile, "doctor")
	require.Error(t, err)
	assert.Contains(t, out, "Rows: 2")
	assert.Contains(t, out, "line 3:")
}

func TestDoctorHealthyLog(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "user_data.csv")
	_, _, err := execute(t, dir, "--log", logFile, "diagnose", "--format", "text",
		"--gender", "male", "--age", "40", "--height", "200", "--weight", "88",
		"--body-type", "natural", "--exercise", "3-4/week", "--diet", "balanced", "--sleep", "7")
	require.NoError(t, err)

	out, _, err := execute(t, dir, "--log", logFile, "doctor")
	require.NoError(t, err)
	assert.Contains(t, out, "Rows: 1")
	assert.Contains(t, out, "Invalid rows: 0")
}

func TestBackupCreateAndList(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "user_data.csv")
	_, _, err := execute(t, dir, "--log", logFile, "init")
	require.NoError(t, err)

	backupFile := filepath.Join(dir, "backups", "copy.csv")
	out, _, err := execute(t, dir, "--log", logFile, "backup", "create", "--out", backupFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Created backup: "+backupFile)

	out, _, err = execute(t, dir, "--log", logFile, "backup", "list")
	require.NoError(t, err)
	assert.Contains(t, out, backupFile)

	_, _, err = execute(t, dir, "--backend", "sqlite", "--db", filepath.Join(dir, "x.db"), "backup", "create")
	assert.Error(t, err)
}

func TestConfigSetShowAndPath(t *testing.T) {
	dir := t.TempDir()
	out, _, err := execute(t, dir, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yaml")+"\n", out)

	_, _, err = execute(t, dir, "config", "set")
	assert.Error(t, err)

	out, _, err = execute(t, dir, "config", "set", "--format", "json", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated 2 config value(s)")

	out, _, err = execute(t, dir, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "format: json")
	assert.Contains(t, out, "level: error")

	_, _, err = execute(t, dir, "config", "set", "--format", "xml")
	assert.Error(t, err)
}

func TestConfigSetDoesNotPersistEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DIETCHECK_LOG", "/tmp/from-env.csv")
	t.Setenv("DIETCHECK_BACKEND", "sqlite")

	_, _, err := execute(t, dir, "config", "set", "--format", "text")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	saved := string(data)
	assert.Contains(t, saved, "format: text")
	assert.Contains(t, saved, "backend: csv")
	assert.NotContains(t, saved, "from-env")
	assert.NotContains(t, saved, "sqlite")
}
