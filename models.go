package main

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// DateOnly wraps time.Time to serialize as "YYYY-MM-DD" in JSON.
type DateOnly struct{ time.Time }

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format("2006-01-02") + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"2006-01-02"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ScanDate implements pgtype.DateScanner so pgx can scan PostgreSQL date
// columns (OID 1082) into DateOnly. NULL values zero the time and return nil
// so that *DateOnly pointer fields can be set to nil by pgx's NULL handling.
func (d *DateOnly) ScanDate(v pgtype.Date) error {
	if !v.Valid {
		d.Time = time.Time{}
		return nil
	}
	d.Time = v.Time
	return nil
}

/* ─── Domain structs ─────────────────────────────────────────────────── */

// user maps to the users table. AuthToken and Password are hidden from JSON responses.
type user struct {
	ID        int        `json:"id" db:"id"`
	Username  string     `json:"username" db:"username"`
	Email     string     `json:"email" db:"email"`
	AuthToken string     `json:"-" db:"auth_token"`
	Password  string     `json:"-" db:"password"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

// wellnessUserSettings maps to wellness_user_settings. One row per user with
// body-profile fields, diet preferences, and daily macro targets.
type wellnessUserSettings struct {
	UserID int `json:"user_id" db:"user_id"`

	// Profile fields — all nullable; zero-knowledge rows still work.
	Sex            *string   `json:"sex"              db:"sex"`
	DateOfBirth    *DateOnly `json:"date_of_birth"    db:"date_of_birth"`
	HeightCM       *float64  `json:"height_cm"        db:"height_cm"`
	WeightKG       *float64  `json:"weight_kg"        db:"weight_kg"`
	StartWeightKG  *float64  `json:"start_weight_kg"  db:"start_weight_kg"`
	TargetWeightKG *float64  `json:"target_weight_kg" db:"target_weight_kg"`
	ActivityLevel  *string   `json:"activity_level"   db:"activity_level"`
	Goal           *string   `json:"goal"             db:"goal"`
	DietArchetype  *string   `json:"diet_archetype"   db:"diet_archetype"`

	// Daily targets. With auto_targets on, these are overwritten from the
	// engine whenever the profile changes.
	CalorieTarget  int  `json:"calorie_target"   db:"calorie_target"`
	ProteinTargetG int  `json:"protein_target_g" db:"protein_target_g"`
	CarbTargetG    int  `json:"carb_target_g"    db:"carb_target_g"`
	FatTargetG     int  `json:"fat_target_g"     db:"fat_target_g"`
	AutoTargets    bool `json:"auto_targets"     db:"auto_targets"`
	SetupComplete  bool `json:"setup_complete"   db:"setup_complete"`

	// Computed fields — populated server-side from the profile; not stored.
	// db:"-" tells RowToStructByName to skip these during scanning.
	ComputedBMR  *float64 `json:"computed_bmr,omitempty"  db:"-"`
	ComputedTDEE *float64 `json:"computed_tdee,omitempty" db:"-"`
	ComputedBMI  *float64 `json:"computed_bmi,omitempty"  db:"-"`
}

// mealLogItem maps to meal_log. Nullable macro fields use pointers so pgx
// can scan NULLs.
type mealLogItem struct {
	ID        int        `json:"id" db:"id"`
	UserID    int        `json:"user_id" db:"user_id"`
	Date      DateOnly   `json:"date" db:"date"`
	ItemName  string     `json:"item_name" db:"item_name"`
	Calories  int        `json:"calories" db:"calories"`
	ProteinG  *float64   `json:"protein_g" db:"protein_g"`
	CarbG     *float64   `json:"carb_g" db:"carb_g"`
	FatG      *float64   `json:"fat_g" db:"fat_g"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

// weightEntry maps to weight_log: one weight reading per user per date.
type weightEntry struct {
	ID        int        `json:"id" db:"id"`
	UserID    int        `json:"user_id" db:"user_id"`
	Date      DateOnly   `json:"date" db:"date"`
	WeightKG  float64    `json:"weight_kg" db:"weight_kg"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

/* ─── Request / response shapes ──────────────────────────────────────── */

// patchWellnessSettingsRequest is the body for PATCH /api/wellness/settings.
// All fields are pointers — only non-nil fields get written to the database.
type patchWellnessSettingsRequest struct {
	Sex            *string  `json:"sex"`
	DateOfBirth    *string  `json:"date_of_birth"` // YYYY-MM-DD string, stored as date
	HeightCM       *float64 `json:"height_cm"`
	WeightKG       *float64 `json:"weight_kg"`
	StartWeightKG  *float64 `json:"start_weight_kg"`
	TargetWeightKG *float64 `json:"target_weight_kg"`
	ActivityLevel  *string  `json:"activity_level"`
	Goal           *string  `json:"goal"`
	DietArchetype  *string  `json:"diet_archetype"`
	CalorieTarget  *int     `json:"calorie_target"`
	ProteinTargetG *int     `json:"protein_target_g"`
	CarbTargetG    *int     `json:"carb_target_g"`
	FatTargetG     *int     `json:"fat_target_g"`
	AutoTargets    *bool    `json:"auto_targets"`
	SetupComplete  *bool    `json:"setup_complete"`
}

// createMealLogItemRequest is the body for POST /api/meal-log.
type createMealLogItemRequest struct {
	Date     string   `json:"date"`
	ItemName string   `json:"item_name"`
	Calories int      `json:"calories"`
	ProteinG *float64 `json:"protein_g"`
	CarbG    *float64 `json:"carb_g"`
	FatG     *float64 `json:"fat_g"`
}

// energyRequest is the body for POST /api/wellness/energy — a stateless
// calculator call straight off the profile form.
type energyRequest struct {
	Age           int     `json:"age"`
	Sex           string  `json:"sex"`
	HeightCM      float64 `json:"height_cm"`
	WeightKG      float64 `json:"weight_kg"`
	ActivityLevel string  `json:"activity_level"`
	Goal          string  `json:"goal"`
}

// energyResponse carries the two energy estimates back to the form.
type energyResponse struct {
	BMR  float64 `json:"bmr"`
	TDEE float64 `json:"tdee"`
}

// macrosRequest is the body for POST /api/wellness/macros.
type macrosRequest struct {
	Calories      float64 `json:"calories"`
	DietArchetype string  `json:"diet_archetype"`
}

// validateMacrosRequest is the body for POST /api/wellness/macros/validate.
// ToleranceKcal omitted or zero selects the default band.
type validateMacrosRequest struct {
	Targets       macroTargets `json:"targets"`
	ToleranceKcal float64      `json:"tolerance_kcal"`
}

// checkPreferencesRequest is the body for POST /api/preferences/check.
type checkPreferencesRequest struct {
	Selected []string `json:"selected"`
}

// checkPreferencesResponse reports the conflicts within a selection and the
// disabled state of every catalog entry outside it.
type checkPreferencesResponse struct {
	Conflicts []preferenceConflict `json:"conflicts"`
	Disabled  []string             `json:"disabled"`
}

// nutrientAdequacy labels one nutrient's actual intake against its target.
type nutrientAdequacy struct {
	Nutrient string  `json:"nutrient"`
	Actual   float64 `json:"actual"`
	Target   float64 `json:"target"`
	Status   string  `json:"status"`
}

// wellnessScoreResponse is the body of GET /api/wellness/score.
type wellnessScoreResponse struct {
	Date       string             `json:"date"`
	Score      float64            `json:"score"`
	Components []componentScore   `json:"components"`
	Adequacy   []nutrientAdequacy `json:"adequacy"`
}
