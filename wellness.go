package main

import (
	"fmt"
	"math"
)

// activityScores maps activity level strings to a fixed wellness score.
// Note: this enum ("active"/"very_active") intentionally differs from the
// TDEE multiplier enum ("very_active"/"extra_active") — the dashboard and
// the energy calculator grew separate vocabularies and unifying them would
// silently change stored scores. Unknown levels score 50 (neutral).
var activityScores = map[string]float64{
	"sedentary":   20,
	"light":       40,
	"moderate":    70,
	"active":      90,
	"very_active": 100,
}

const defaultActivityScore = 50

// wellnessWeights is the canonical 5-component weighting for the composite
// wellness score. Must sum to 1.0.
var wellnessWeights = map[string]float64{
	"bmi":       0.25,
	"activity":  0.25,
	"progress":  0.15,
	"habits":    0.15,
	"nutrition": 0.20,
}

// componentScore is one independently-scored wellness dimension.
type componentScore struct {
	Name     string  `json:"name"`
	RawScore float64 `json:"raw_score"`
	Weight   float64 `json:"weight"`
}

// clampScore restricts a score to the [0, 100] display range.
func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// scoreBMI maps a BMI value onto [0, 100]: full marks inside the healthy
// band [18.5, 25], minus 10 points per unit below it and 5 points per unit
// above it, clamped.
func scoreBMI(bmi float64) float64 {
	switch {
	case bmi >= 18.5 && bmi <= 25:
		return 100
	case bmi < 18.5:
		return clampScore(100 - (18.5-bmi)*10)
	default:
		return clampScore(100 - (bmi-25)*5)
	}
}

// scoreActivity returns the fixed wellness score for an activity level,
// or the neutral default for anything unrecognised.
func scoreActivity(level string) float64 {
	if s, ok := activityScores[level]; ok {
		return s
	}
	return defaultActivityScore
}

// compositeScore combines weighted component scores into one rounded value
// clamped to [0, 100]. Weights must sum to 1.0 (±0.01); a bad weight set is
// rejected rather than silently normalized, since normalizing would mask a
// misconfigured weight table. Order of components does not matter.
func compositeScore(components []componentScore) (float64, error) {
	var weightSum, total float64
	for _, comp := range components {
		weightSum += comp.Weight
		total += comp.RawScore * comp.Weight
	}
	if math.Abs(weightSum-1.0) > 0.01 {
		return 0, fmt.Errorf("%w: component weights sum to %g, want 1.0", errInvalidInput, weightSum)
	}
	return clampScore(math.Round(total)), nil
}

// Nutrient-adequacy band: actual intake within ±10% of target (inclusive)
// counts as adequate. The dashboard colors cells off these exact thresholds.
const (
	adequacyLowPct  = 90
	adequacyHighPct = 110
)

// classifyAdequacy labels an actual-vs-target nutrient ratio.
func classifyAdequacy(actual, target float64) (string, error) {
	if target <= 0 {
		return "", fmt.Errorf("%w: target must be positive, got %g", errInvalidInput, target)
	}
	pct := actual / target * 100
	switch {
	case pct < adequacyLowPct:
		return "insufficient", nil
	case pct > adequacyHighPct:
		return "excessive", nil
	default:
		return "adequate", nil
	}
}
