package main

import (
	"errors"
	"math"
	"testing"
)

/* ─── estimateBMR ────────────────────────────────────────────────────── */

// TestEstimateBMR_KnownValues verifies the Mifflin-St Jeor formula against
// hand-computed values for each sex branch.
//
// Inputs: age 30, 175cm, 80kg → base 10*80 + 6.25*175 - 5*30 = 1743.75.
func TestEstimateBMR_KnownValues(t *testing.T) {
	cases := []struct {
		sex  string
		want float64
	}{
		{"male", 1748.75},   // base + 5
		{"female", 1582.75}, // base - 161
		{"other", 1582.75},  // documented fallback to the female constant
	}

	for _, tc := range cases {
		t.Run(tc.sex, func(t *testing.T) {
			got, err := estimateBMR(30, tc.sex, 175, 80)
			if err != nil {
				t.Fatalf("estimateBMR returned error: %v", err)
			}
			if got != tc.want {
				t.Errorf("estimateBMR(30, %q, 175, 80) = %g, want %g", tc.sex, got, tc.want)
			}
		})
	}
}

// TestEstimateBMR_SexOffset verifies the exact 161-calorie formula offset
// between male and female for otherwise identical profiles.
func TestEstimateBMR_SexOffset(t *testing.T) {
	male, err := estimateBMR(42, "male", 168.5, 71.3)
	if err != nil {
		t.Fatalf("male: %v", err)
	}
	female, err := estimateBMR(42, "female", 168.5, 71.3)
	if err != nil {
		t.Fatalf("female: %v", err)
	}
	if diff := male - female; diff != 166 {
		// +5 vs -161: the branches differ by exactly 166
		t.Errorf("male-female BMR difference = %g, want 166", diff)
	}
}

// TestEstimateBMR_InvalidInputs verifies that zero or negative body metrics
// are rejected with errInvalidInput.
func TestEstimateBMR_InvalidInputs(t *testing.T) {
	cases := []struct {
		name     string
		age      int
		heightCM float64
		weightKG float64
	}{
		{"zero age", 0, 175, 80},
		{"negative age", -5, 175, 80},
		{"zero height", 30, 0, 80},
		{"negative height", 30, -175, 80},
		{"zero weight", 30, 175, 0},
		{"negative weight", 30, 175, -80},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := estimateBMR(tc.age, "male", tc.heightCM, tc.weightKG)
			if !errors.Is(err, errInvalidInput) {
				t.Errorf("expected errInvalidInput, got %v", err)
			}
		})
	}
}

/* ─── estimateTDEE ───────────────────────────────────────────────────── */

// TestEstimateTDEE_MultipliersAndGoals verifies tdee = bmr * multiplier +
// goal delta across the activity and goal tables.
func TestEstimateTDEE_MultipliersAndGoals(t *testing.T) {
	cases := []struct {
		name     string
		bmr      float64
		activity string
		goal     string
		want     float64
	}{
		{"sedentary maintenance", 1600, "sedentary", "maintenance", 1920},
		{"light performance", 1600, "light", "performance", 2200},
		{"moderate muscle gain", 1600, "moderate", "muscle_gain", 2780},
		{"very_active weight loss", 2000, "very_active", "weight_loss", 2950},
		{"extra_active maintenance", 2000, "extra_active", "maintenance", 3800},
		// Unknown goals adjust by zero — maintenance is the safe default.
		{"unknown goal", 1600, "sedentary", "bulking", 1920},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := estimateTDEE(tc.bmr, tc.activity, tc.goal)
			if err != nil {
				t.Fatalf("estimateTDEE returned error: %v", err)
			}
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("estimateTDEE(%g, %q, %q) = %g, want %g",
					tc.bmr, tc.activity, tc.goal, got, tc.want)
			}
		})
	}
}

// TestEstimateTDEE_NoClamping verifies that implausibly low results pass
// through unclamped — rejecting them is the caller's job.
func TestEstimateTDEE_NoClamping(t *testing.T) {
	got, err := estimateTDEE(900, "sedentary", "weight_loss")
	if err != nil {
		t.Fatalf("estimateTDEE returned error: %v", err)
	}
	if got != 580 {
		t.Errorf("estimateTDEE(900, sedentary, weight_loss) = %g, want 580 (no clamping)", got)
	}
}

// TestEstimateTDEE_InvalidInputs verifies the two error paths: a
// non-positive BMR and an activity level with no multiplier entry (there is
// no safe default multiplier, so this is the one enum value that errors).
func TestEstimateTDEE_InvalidInputs(t *testing.T) {
	if _, err := estimateTDEE(0, "sedentary", "maintenance"); !errors.Is(err, errInvalidInput) {
		t.Errorf("zero bmr: expected errInvalidInput, got %v", err)
	}
	if _, err := estimateTDEE(1600, "couch_potato", "maintenance"); !errors.Is(err, errInvalidInput) {
		t.Errorf("unknown activity: expected errInvalidInput, got %v", err)
	}
}
