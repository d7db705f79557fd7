package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

/* ─── Dimension derivations ──────────────────────────────────────────── */

// The composite score combines five dimensions. BMI and activity come
// straight from the engine's scorers; the three below turn logged data into
// raw scores. All are pure so the dashboard math stays testable without a
// database.

const neutralScore = 50 // used when a dimension has no data to score

// progressScore maps weight-change progress onto [0,100]: the fraction of
// the start→target distance already covered. Works for both loss and gain
// goals since the signs cancel. Already at target counts as complete.
func progressScore(startKG, targetKG, currentKG float64) float64 {
	total := startKG - targetKG
	if total == 0 {
		return 100
	}
	return clampScore((startKG - currentKG) / total * 100)
}

// habitsScore rewards logging consistency: the share of the trailing seven
// days with at least one meal entry.
func habitsScore(daysLogged int) float64 {
	return clampScore(float64(daysLogged) / 7 * 100)
}

// nutritionScore maps calorie intake vs target onto [0,100]: full marks
// inside the adequacy band, minus 2 points per percentage point outside it.
// The same 90/110 band that drives dashboard coloring anchors the slope.
func nutritionScore(actualKcal, targetKcal float64) float64 {
	if targetKcal <= 0 {
		return neutralScore
	}
	pct := actualKcal / targetKcal * 100
	switch {
	case pct < adequacyLowPct:
		return clampScore(100 - (adequacyLowPct-pct)*2)
	case pct > adequacyHighPct:
		return clampScore(100 - (pct-adequacyHighPct)*2)
	default:
		return 100
	}
}

// nutrientAdequacies classifies each nutrient with a positive target.
// Nutrients without a target are skipped rather than erroring — a fresh
// account with no targets still gets a (shorter) adequacy list.
func nutrientAdequacies(calories, proteinG, carbG, fatG float64, s wellnessUserSettings) []nutrientAdequacy {
	actuals := []struct {
		nutrient string
		actual   float64
		target   float64
	}{
		{"calories", calories, float64(s.CalorieTarget)},
		{"protein", proteinG, float64(s.ProteinTargetG)},
		{"carbs", carbG, float64(s.CarbTargetG)},
		{"fat", fatG, float64(s.FatTargetG)},
	}

	result := []nutrientAdequacy{}
	for _, a := range actuals {
		status, err := classifyAdequacy(a.actual, a.target)
		if err != nil {
			continue
		}
		result = append(result, nutrientAdequacy{
			Nutrient: a.nutrient,
			Actual:   a.actual,
			Target:   a.target,
			Status:   status,
		})
	}
	return result
}

/* ─── Handler ────────────────────────────────────────────────────────── */

// mealDayTotals is the shape of the single-row intake aggregate query.
type mealDayTotals struct {
	Calories int     `db:"calories"`
	ProteinG float64 `db:"protein_g"`
	CarbG    float64 `db:"carb_g"`
	FatG     float64 `db:"fat_g"`
}

// getWellnessScore composes the five-dimension wellness score for a date.
// GET /api/wellness/score?date=YYYY-MM-DD (defaults to today).
// Dimensions with missing inputs score neutral (50) rather than failing —
// the dashboard always renders something.
func (h *Handler) getWellnessScore(c *gin.Context) {
	userID := c.GetInt("user_id")
	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	settings, err := queryOne[wellnessUserSettings](h.db, c,
		"SELECT * FROM wellness_user_settings WHERE user_id = @userID",
		pgx.NamedArgs{"userID": userID})
	if err != nil {
		apiError(c, http.StatusNotFound, "settings not found")
		return
	}

	// Intake totals for the day.
	totals, err := queryOne[mealDayTotals](h.db, c,
		`SELECT
			COALESCE(SUM(calories), 0)::int AS calories,
			COALESCE(SUM(protein_g), 0)     AS protein_g,
			COALESCE(SUM(carb_g), 0)        AS carb_g,
			COALESCE(SUM(fat_g), 0)         AS fat_g
		 FROM meal_log WHERE user_id = @userID AND date = @date`,
		pgx.NamedArgs{"userID": userID, "date": date})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch meal totals")
		return
	}

	// Logging consistency over the trailing 7 days (the day itself plus six).
	var daysLogged int
	weekStart := day.AddDate(0, 0, -6).Format("2006-01-02")
	if err := h.db.QueryRow(c,
		"SELECT COUNT(DISTINCT date) FROM meal_log WHERE user_id = @userID AND date >= @weekStart AND date <= @date",
		pgx.NamedArgs{"userID": userID, "weekStart": weekStart, "date": date}).Scan(&daysLogged); err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch log history")
		return
	}

	// Current weight: latest logged entry up to the date, falling back to
	// the profile weight.
	currentWeight := settings.WeightKG
	if w, err := queryOne[weightEntry](h.db, c,
		`SELECT * FROM weight_log
		 WHERE user_id = @userID AND date <= @date
		 ORDER BY date DESC LIMIT 1`,
		pgx.NamedArgs{"userID": userID, "date": date}); err == nil {
		currentWeight = &w.WeightKG
	}

	// Raw dimension scores.
	bmiScore := float64(neutralScore)
	populateComputedEnergy(&settings)
	if settings.ComputedBMI != nil {
		bmiScore = scoreBMI(*settings.ComputedBMI)
	}

	activityLevel := ""
	if settings.ActivityLevel != nil {
		activityLevel = *settings.ActivityLevel
	}
	activityScore := scoreActivity(activityLevel)

	progress := float64(neutralScore)
	if settings.StartWeightKG != nil && settings.TargetWeightKG != nil && currentWeight != nil {
		progress = progressScore(*settings.StartWeightKG, *settings.TargetWeightKG, *currentWeight)
	}

	habits := habitsScore(daysLogged)
	nutrition := nutritionScore(float64(totals.Calories), float64(settings.CalorieTarget))

	components := []componentScore{
		{Name: "bmi", RawScore: bmiScore, Weight: wellnessWeights["bmi"]},
		{Name: "activity", RawScore: activityScore, Weight: wellnessWeights["activity"]},
		{Name: "progress", RawScore: progress, Weight: wellnessWeights["progress"]},
		{Name: "habits", RawScore: habits, Weight: wellnessWeights["habits"]},
		{Name: "nutrition", RawScore: nutrition, Weight: wellnessWeights["nutrition"]},
	}

	score, err := compositeScore(components)
	if err != nil {
		// Only reachable if the fixed weight table is broken.
		apiError(c, http.StatusInternalServerError, "failed to compute score")
		return
	}

	c.JSON(http.StatusOK, wellnessScoreResponse{
		Date:       date,
		Score:      score,
		Components: components,
		Adequacy:   nutrientAdequacies(float64(totals.Calories), totals.ProteinG, totals.CarbG, totals.FatG, settings),
	})
}
