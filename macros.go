package main

import (
	"fmt"
	"math"
)

// macroRatios holds the protein/carb/fat calorie split for each diet
// archetype. Every triple must sum to 1.0 (±0.01) — asserted in tests.
type macroRatios struct {
	Protein float64
	Carb    float64
	Fat     float64
}

var dietArchetypes = map[string]macroRatios{
	"standard":     {Protein: 0.25, Carb: 0.45, Fat: 0.30},
	"keto":         {Protein: 0.25, Carb: 0.05, Fat: 0.70},
	"low_carb":     {Protein: 0.30, Carb: 0.20, Fat: 0.50},
	"high_protein": {Protein: 0.35, Carb: 0.35, Fat: 0.30},
}

// Calories per gram. These are load-bearing nutrition constants (Atwater
// factors) and must not change.
const (
	kcalPerGramProtein = 4
	kcalPerGramCarb    = 4
	kcalPerGramFat     = 9
)

// macroTargets is a daily calorie budget with its derived gram targets.
type macroTargets struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbG    float64 `json:"carb_g"`
	FatG     float64 `json:"fat_g"`
}

// allocateMacros converts a calorie target and a diet archetype into gram
// targets. Each gram value is rounded to the nearest integer independently;
// the rounded grams are not re-balanced to sum exactly back to calories
// (the small residual drift is accepted, and validateMacroConsistency's
// tolerance band absorbs it).
func allocateMacros(calories float64, archetype string) (macroTargets, error) {
	if calories <= 0 {
		return macroTargets{}, fmt.Errorf("%w: calories must be positive, got %g", errInvalidInput, calories)
	}
	ratios, ok := dietArchetypes[archetype]
	if !ok {
		// No safe default ratio split exists, so an unknown archetype is
		// rejected at the allocation boundary.
		return macroTargets{}, fmt.Errorf("%w: unknown diet archetype %q", errInvalidInput, archetype)
	}

	return macroTargets{
		Calories: calories,
		ProteinG: math.Round(calories * ratios.Protein / kcalPerGramProtein),
		CarbG:    math.Round(calories * ratios.Carb / kcalPerGramCarb),
		FatG:     math.Round(calories * ratios.Fat / kcalPerGramFat),
	}, nil
}

// defaultMacroToleranceKcal is the allowed drift between a stated calorie
// target and the calories implied by its gram values.
const defaultMacroToleranceKcal = 100

// Absolute plausibility bounds for caller-edited macro targets.
const (
	minCalories = 1000
	maxCalories = 5000
	maxProteinG = 500
	maxCarbG    = 1000
	maxFatG     = 300
)

// validateMacroConsistency checks a set of (possibly hand-edited) macro
// targets for internal drift and out-of-range fields. It returns one
// human-readable string per violation instead of an error so a form
// submission can surface every problem at once. toleranceKcal <= 0 selects
// the default tolerance.
func validateMacroConsistency(t macroTargets, toleranceKcal float64) []string {
	if toleranceKcal <= 0 {
		toleranceKcal = defaultMacroToleranceKcal
	}

	var violations []string

	implied := t.ProteinG*kcalPerGramProtein + t.CarbG*kcalPerGramCarb + t.FatG*kcalPerGramFat
	if math.Abs(implied-t.Calories) > toleranceKcal {
		violations = append(violations, fmt.Sprintf(
			"macro grams imply %.0f kcal, which differs from the %.0f kcal target by more than %.0f kcal",
			implied, t.Calories, toleranceKcal))
	}

	if t.Calories < minCalories || t.Calories > maxCalories {
		violations = append(violations, fmt.Sprintf(
			"calories must be between %d and %d, got %.0f", minCalories, maxCalories, t.Calories))
	}
	if t.ProteinG < 0 || t.ProteinG > maxProteinG {
		violations = append(violations, fmt.Sprintf(
			"protein_g must be between 0 and %d, got %.0f", maxProteinG, t.ProteinG))
	}
	if t.CarbG < 0 || t.CarbG > maxCarbG {
		violations = append(violations, fmt.Sprintf(
			"carb_g must be between 0 and %d, got %.0f", maxCarbG, t.CarbG))
	}
	if t.FatG < 0 || t.FatG > maxFatG {
		violations = append(violations, fmt.Sprintf(
			"fat_g must be between 0 and %d, got %.0f", maxFatG, t.FatG))
	}

	return violations
}
