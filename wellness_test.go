package main

import (
	"errors"
	"math"
	"testing"
)

/* ─── scoreBMI ───────────────────────────────────────────────────────── */

// TestScoreBMI verifies the healthy band, the two penalty slopes, and the
// clamp at zero.
func TestScoreBMI(t *testing.T) {
	cases := []struct {
		name string
		bmi  float64
		want float64
	}{
		{"mid band", 22, 100},
		{"lower band edge", 18.5, 100},
		{"upper band edge", 25, 100},
		{"underweight", 16, 75},   // 100 - (18.5-16)*10
		{"overweight", 30, 75},    // 100 - (30-25)*5
		{"severely under", 0, 0},  // 100 - 185 clamps to 0, not negative
		{"severely over", 60, 0},  // 100 - 175 clamps to 0
		{"mild under", 17.5, 90},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := scoreBMI(tc.bmi); got != tc.want {
				t.Errorf("scoreBMI(%g) = %g, want %g", tc.bmi, got, tc.want)
			}
		})
	}
}

/* ─── scoreActivity ──────────────────────────────────────────────────── */

// TestScoreActivity verifies the fixed lookup plus the neutral default for
// unknown levels. Note the deliberate enum mismatch with tdeeMultipliers:
// "extra_active" is valid for TDEE but unknown here, so it scores 50.
func TestScoreActivity(t *testing.T) {
	cases := []struct {
		level string
		want  float64
	}{
		{"sedentary", 20},
		{"light", 40},
		{"moderate", 70},
		{"active", 90},
		{"very_active", 100},
		{"extra_active", 50},
		{"", 50},
		{"couch_potato", 50},
	}

	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			if got := scoreActivity(tc.level); got != tc.want {
				t.Errorf("scoreActivity(%q) = %g, want %g", tc.level, got, tc.want)
			}
		})
	}
}

/* ─── compositeScore ─────────────────────────────────────────────────── */

// canonicalComponents builds the five dashboard components with the fixed
// weight table and the given raw scores, keyed in weight-table order.
func canonicalComponents(bmi, activity, progress, habits, nutrition float64) []componentScore {
	return []componentScore{
		{Name: "bmi", RawScore: bmi, Weight: wellnessWeights["bmi"]},
		{Name: "activity", RawScore: activity, Weight: wellnessWeights["activity"]},
		{Name: "progress", RawScore: progress, Weight: wellnessWeights["progress"]},
		{Name: "habits", RawScore: habits, Weight: wellnessWeights["habits"]},
		{Name: "nutrition", RawScore: nutrition, Weight: wellnessWeights["nutrition"]},
	}
}

// TestWellnessWeights_SumToOne guards the canonical weight table itself.
func TestWellnessWeights_SumToOne(t *testing.T) {
	var sum float64
	for _, w := range wellnessWeights {
		sum += w
	}
	if math.Abs(sum-1.0) > 0.01 {
		t.Errorf("wellness weights sum to %g, want 1.0", sum)
	}
}

// TestCompositeScore_PerfectRoundTrip verifies that raw 100 on every
// component with weights summing to 1 yields exactly 100.
func TestCompositeScore_PerfectRoundTrip(t *testing.T) {
	got, err := compositeScore(canonicalComponents(100, 100, 100, 100, 100))
	if err != nil {
		t.Fatalf("compositeScore returned error: %v", err)
	}
	if got != 100 {
		t.Errorf("compositeScore(all 100) = %g, want exactly 100", got)
	}
}

// TestCompositeScore_WeightedAndRounded verifies the weighted sum and
// rounding: 80*0.25 + 60*0.25 + 70*0.15 + 90*0.15 + 55*0.20 = 70.0.
func TestCompositeScore_WeightedAndRounded(t *testing.T) {
	got, err := compositeScore(canonicalComponents(80, 60, 70, 90, 55))
	if err != nil {
		t.Fatalf("compositeScore returned error: %v", err)
	}
	if got != 70 {
		t.Errorf("compositeScore = %g, want 70", got)
	}
}

// TestCompositeScore_OrderInvariant verifies that shuffling the component
// slice does not change the result.
func TestCompositeScore_OrderInvariant(t *testing.T) {
	components := canonicalComponents(73, 41, 88, 62, 95)
	want, err := compositeScore(components)
	if err != nil {
		t.Fatalf("compositeScore returned error: %v", err)
	}

	reversed := make([]componentScore, len(components))
	for i, comp := range components {
		reversed[len(components)-1-i] = comp
	}
	got, err := compositeScore(reversed)
	if err != nil {
		t.Fatalf("compositeScore (reversed) returned error: %v", err)
	}
	if got != want {
		t.Errorf("reversed order changed the score: %g vs %g", got, want)
	}
}

// TestCompositeScore_BadWeightSum verifies that weights off by more than
// 0.01 are rejected rather than normalized.
func TestCompositeScore_BadWeightSum(t *testing.T) {
	components := []componentScore{
		{Name: "bmi", RawScore: 100, Weight: 0.5},
		{Name: "activity", RawScore: 100, Weight: 0.3},
	}
	if _, err := compositeScore(components); !errors.Is(err, errInvalidInput) {
		t.Errorf("expected errInvalidInput for weight sum 0.8, got %v", err)
	}
}

// TestCompositeScore_Clamped verifies the [0,100] clamp on the result when
// raw scores stray outside the display range.
func TestCompositeScore_Clamped(t *testing.T) {
	over := []componentScore{{Name: "bmi", RawScore: 150, Weight: 1.0}}
	got, err := compositeScore(over)
	if err != nil {
		t.Fatalf("compositeScore returned error: %v", err)
	}
	if got != 100 {
		t.Errorf("compositeScore(raw 150) = %g, want clamp to 100", got)
	}

	under := []componentScore{{Name: "bmi", RawScore: -40, Weight: 1.0}}
	got, err = compositeScore(under)
	if err != nil {
		t.Fatalf("compositeScore returned error: %v", err)
	}
	if got != 0 {
		t.Errorf("compositeScore(raw -40) = %g, want clamp to 0", got)
	}
}

/* ─── classifyAdequacy ───────────────────────────────────────────────── */

// TestClassifyAdequacy verifies the 90/110 band with inclusive boundaries.
func TestClassifyAdequacy(t *testing.T) {
	cases := []struct {
		name           string
		actual, target float64
		want           string
	}{
		{"adequate", 95, 100, "adequate"},
		{"insufficient", 80, 100, "insufficient"},
		{"excessive", 130, 100, "excessive"},
		{"lower bound inclusive", 90, 100, "adequate"},
		{"upper bound inclusive", 110, 100, "adequate"},
		{"just under band", 89.9, 100, "insufficient"},
		{"just over band", 110.1, 100, "excessive"},
		{"zero actual", 0, 100, "insufficient"},
		{"scaled target", 190, 200, "adequate"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := classifyAdequacy(tc.actual, tc.target)
			if err != nil {
				t.Fatalf("classifyAdequacy returned error: %v", err)
			}
			if got != tc.want {
				t.Errorf("classifyAdequacy(%g, %g) = %q, want %q", tc.actual, tc.target, got, tc.want)
			}
		})
	}
}

// TestClassifyAdequacy_InvalidTarget verifies that non-positive targets are
// rejected (the percentage would be undefined or sign-flipped).
func TestClassifyAdequacy_InvalidTarget(t *testing.T) {
	if _, err := classifyAdequacy(100, 0); !errors.Is(err, errInvalidInput) {
		t.Errorf("zero target: expected errInvalidInput, got %v", err)
	}
	if _, err := classifyAdequacy(100, -50); !errors.Is(err, errInvalidInput) {
		t.Errorf("negative target: expected errInvalidInput, got %v", err)
	}
}
