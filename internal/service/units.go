package service

import (
	"fmt"
	"strings"
)

type unitKind string

const (
	unitKindMass   unitKind = "mass"
	unitKindLength unitKind = "length"
)

type unitDef struct {
	kind       unitKind
	toBaseUnit float64
}

var unitTable = map[string]unitDef{
	// mass (base = kg)
	"kg":  {kind: unitKindMass, toBaseUnit: 1},
	"lb":  {kind: unitKindMass, toBaseUnit: 0.45359237},
	"lbs": {kind: unitKindMass, toBaseUnit: 0.45359237},

	// length (base = cm)
	"cm": {kind: unitKindLength, toBaseUnit: 1},
	"m":  {kind: unitKindLength, toBaseUnit: 100},
	"in": {kind: unitKindLength, toBaseUnit: 2.54},
}

// ToKg converts a weight in kg or lb to kilograms. An empty unit means kg.
func ToKg(value float64, unit string) (float64, error) {
	return toBase(value, unit, "kg", unitKindMass, "use kg or lb")
}

// ToCm converts a height in cm, m or in to centimeters. An empty unit means cm.
func ToCm(value float64, unit string) (float64, error) {
	return toBase(value, unit, "cm", unitKindLength, "use cm, m or in")
}

func toBase(value float64, unit, fallback string, kind unitKind, hint string) (float64, error) {
	u := normalizeUnit(unit)
	if u == "" {
		u = fallback
	}
	def, ok := unitTable[u]
	if !ok || def.kind != kind {
		return 0, fmt.Errorf("invalid %s unit %q (%s)", kind, unit, hint)
	}
	return value * def.toBaseUnit, nil
}

func normalizeUnit(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}
