package main

import (
	"errors"
	"fmt"
)

// errInvalidInput is the single error kind the calculation engine produces.
// It is raised only for numerically impossible inputs (non-positive body
// metrics, calories, or targets) — enum-domain issues degrade to documented
// defaults instead so a bad dropdown value never blocks a form.
var errInvalidInput = errors.New("invalid input")

// tdeeMultipliers maps activity level strings to their TDEE multiplier.
// This is the single source of truth for valid activity levels — also used
// for input validation in patchWellnessSettings.
var tdeeMultipliers = map[string]float64{
	"sedentary":    1.2,
	"light":        1.375,
	"moderate":     1.55,
	"very_active":  1.725,
	"extra_active": 1.9,
}

// goalDeltas maps goal strings to the daily calorie adjustment applied on
// top of TDEE. Goals not listed here (including unknown strings) adjust by
// zero — maintenance is the safe default.
var goalDeltas = map[string]float64{
	"weight_loss": -500,
	"muscle_gain": 300,
	"maintenance": 0,
	"performance": 0,
}

// estimateBMR computes Basal Metabolic Rate via Mifflin-St Jeor:
// 10*kg + 6.25*cm - 5*age, +5 for male and -161 for female.
// Sex "other" deliberately uses the female constant — the formula has no
// third branch, so this is an explicit documented fallback rather than an
// accidental one.
func estimateBMR(age int, sex string, heightCM, weightKG float64) (float64, error) {
	if age <= 0 {
		return 0, fmt.Errorf("%w: age must be positive, got %d", errInvalidInput, age)
	}
	if heightCM <= 0 {
		return 0, fmt.Errorf("%w: height_cm must be positive, got %g", errInvalidInput, heightCM)
	}
	if weightKG <= 0 {
		return 0, fmt.Errorf("%w: weight_kg must be positive, got %g", errInvalidInput, weightKG)
	}

	bmr := 10*weightKG + 6.25*heightCM - 5*float64(age)
	if sex == "male" {
		bmr += 5
	} else {
		// female and other
		bmr -= 161
	}
	return bmr, nil
}

// estimateTDEE computes Total Daily Energy Expenditure from a BMR:
// bmr * activity multiplier + goal delta. No clamping — callers are
// responsible for rejecting implausible results (e.g. < 800 kcal).
// An unknown activity level has no safe default multiplier, so it is the
// one enum value that errors rather than degrading.
func estimateTDEE(bmr float64, activityLevel, goal string) (float64, error) {
	if bmr <= 0 {
		return 0, fmt.Errorf("%w: bmr must be positive, got %g", errInvalidInput, bmr)
	}
	mult, ok := tdeeMultipliers[activityLevel]
	if !ok {
		return 0, fmt.Errorf("%w: unknown activity level %q", errInvalidInput, activityLevel)
	}
	return bmr*mult + goalDeltas[goal], nil
}
