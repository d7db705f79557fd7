package main

import (
	"log"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// ageFromDOB derives whole years from a date of birth, handling the
// not-yet-had-a-birthday-this-year case. Returns ok=false for implausible
// ages (DOB in the future, or over 130 years ago).
func ageFromDOB(dob time.Time) (int, bool) {
	today := time.Now()
	age := today.Year() - dob.Year()
	if today.Before(dob.AddDate(age, 0, 0)) {
		age--
	}
	if age <= 0 || age > 130 {
		return 0, false
	}
	return age, true
}

// populateComputedEnergy fills the computed-only fields on s (BMR, TDEE,
// BMI) from the profile. No-ops for any value whose inputs are missing or
// rejected by the engine — a half-filled profile still gets whatever can be
// computed.
func populateComputedEnergy(s *wellnessUserSettings) {
	if s.HeightCM != nil && s.WeightKG != nil && *s.HeightCM > 0 {
		meters := *s.HeightCM / 100
		bmi := *s.WeightKG / (meters * meters)
		s.ComputedBMI = &bmi
	}

	if s.Sex == nil || s.DateOfBirth == nil || s.HeightCM == nil || s.WeightKG == nil {
		return
	}
	age, ok := ageFromDOB(s.DateOfBirth.Time)
	if !ok {
		return
	}
	bmr, err := estimateBMR(age, *s.Sex, *s.HeightCM, *s.WeightKG)
	if err != nil {
		return
	}
	s.ComputedBMR = &bmr

	if s.ActivityLevel == nil {
		return
	}
	goal := ""
	if s.Goal != nil {
		goal = *s.Goal
	}
	tdee, err := estimateTDEE(bmr, *s.ActivityLevel, goal)
	if err != nil {
		return
	}
	s.ComputedTDEE = &tdee
}

// autoTargetsFromProfile derives the full macro-target set for a profile:
// TDEE (already goal-adjusted) becomes the calorie target, split by the
// user's diet archetype. ok=false when the profile is incomplete or the
// engine rejects any step.
func autoTargetsFromProfile(s *wellnessUserSettings) (macroTargets, bool) {
	populateComputedEnergy(s)
	if s.ComputedTDEE == nil || s.DietArchetype == nil {
		return macroTargets{}, false
	}
	calories := math.Round(*s.ComputedTDEE)
	targets, err := allocateMacros(calories, *s.DietArchetype)
	if err != nil {
		return macroTargets{}, false
	}
	return targets, true
}

// getWellnessSettings returns the wellness settings for the authenticated
// user, with computed BMR/TDEE/BMI populated where the profile allows.
// GET /api/wellness/settings.
func (h *Handler) getWellnessSettings(c *gin.Context) {
	userID := c.GetInt("user_id")

	s, err := queryOne[wellnessUserSettings](h.db, c,
		"SELECT * FROM wellness_user_settings WHERE user_id = @userID",
		pgx.NamedArgs{"userID": userID})
	if err != nil {
		apiError(c, http.StatusNotFound, "settings not found")
		return
	}

	populateComputedEnergy(&s)

	c.JSON(http.StatusOK, s)
}

// patchWellnessSettings updates only the provided settings fields.
// PATCH /api/wellness/settings. Uses pointer fields in the request body to
// distinguish "not provided" from zero — only non-nil fields get updated.
// When auto_targets is true after the update, the stored macro targets are
// overwritten with engine-derived values if the profile is complete.
func (h *Handler) patchWellnessSettings(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body patchWellnessSettingsRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	// Validate enum-backed fields before saving — a bad activity level
	// silently breaks all future auto-target calculations, and a bad
	// archetype has no ratio entry to allocate from.
	if body.ActivityLevel != nil {
		if _, ok := tdeeMultipliers[*body.ActivityLevel]; !ok {
			apiError(c, http.StatusBadRequest, "activity_level must be one of: sedentary, light, moderate, very_active, extra_active")
			return
		}
	}
	if body.DietArchetype != nil {
		if _, ok := dietArchetypes[*body.DietArchetype]; !ok {
			apiError(c, http.StatusBadRequest, "diet_archetype must be one of: standard, keto, low_carb, high_protein")
			return
		}
	}
	if body.Goal != nil {
		if _, ok := goalDeltas[*body.Goal]; !ok {
			apiError(c, http.StatusBadRequest, "goal must be one of: weight_loss, muscle_gain, maintenance, performance")
			return
		}
	}

	// Build SET clause dynamically — only update fields the client actually sent
	setClauses := []string{}
	args := pgx.NamedArgs{"userID": userID}

	if body.Sex != nil {
		setClauses = append(setClauses, "sex = @sex")
		args["sex"] = *body.Sex
	}
	if body.DateOfBirth != nil {
		setClauses = append(setClauses, "date_of_birth = @dateOfBirth")
		args["dateOfBirth"] = *body.DateOfBirth
	}
	if body.HeightCM != nil {
		setClauses = append(setClauses, "height_cm = @heightCM")
		args["heightCM"] = *body.HeightCM
	}
	if body.WeightKG != nil {
		setClauses = append(setClauses, "weight_kg = @weightKG")
		args["weightKG"] = *body.WeightKG
	}
	if body.StartWeightKG != nil {
		setClauses = append(setClauses, "start_weight_kg = @startWeightKG")
		args["startWeightKG"] = *body.StartWeightKG
	}
	if body.TargetWeightKG != nil {
		setClauses = append(setClauses, "target_weight_kg = @targetWeightKG")
		args["targetWeightKG"] = *body.TargetWeightKG
	}
	if body.ActivityLevel != nil {
		setClauses = append(setClauses, "activity_level = @activityLevel")
		args["activityLevel"] = *body.ActivityLevel
	}
	if body.Goal != nil {
		setClauses = append(setClauses, "goal = @goal")
		args["goal"] = *body.Goal
	}
	if body.DietArchetype != nil {
		setClauses = append(setClauses, "diet_archetype = @dietArchetype")
		args["dietArchetype"] = *body.DietArchetype
	}
	if body.CalorieTarget != nil {
		setClauses = append(setClauses, "calorie_target = @calorieTarget")
		args["calorieTarget"] = *body.CalorieTarget
	}
	if body.ProteinTargetG != nil {
		setClauses = append(setClauses, "protein_target_g = @proteinTargetG")
		args["proteinTargetG"] = *body.ProteinTargetG
	}
	if body.CarbTargetG != nil {
		setClauses = append(setClauses, "carb_target_g = @carbTargetG")
		args["carbTargetG"] = *body.CarbTargetG
	}
	if body.FatTargetG != nil {
		setClauses = append(setClauses, "fat_target_g = @fatTargetG")
		args["fatTargetG"] = *body.FatTargetG
	}
	if body.AutoTargets != nil {
		setClauses = append(setClauses, "auto_targets = @autoTargets")
		args["autoTargets"] = *body.AutoTargets
	}
	if body.SetupComplete != nil {
		setClauses = append(setClauses, "setup_complete = @setupComplete")
		args["setupComplete"] = *body.SetupComplete
	}

	if len(setClauses) == 0 {
		apiError(c, http.StatusBadRequest, "no fields to update")
		return
	}

	query := "UPDATE wellness_user_settings SET " +
		strings.Join(setClauses, ", ") +
		" WHERE user_id = @userID RETURNING *"

	s, err := queryOne[wellnessUserSettings](h.db, c, query, args)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to update settings")
		return
	}

	// If auto_targets is on, derive macro targets from the updated profile
	// and persist them.
	if s.AutoTargets {
		if targets, ok := autoTargetsFromProfile(&s); ok {
			updated, err := queryOne[wellnessUserSettings](h.db, c,
				`UPDATE wellness_user_settings SET
					calorie_target = @calories,
					protein_target_g = @proteinG,
					carb_target_g = @carbG,
					fat_target_g = @fatG
				 WHERE user_id = @userID RETURNING *`,
				pgx.NamedArgs{
					"calories": int(targets.Calories),
					"proteinG": int(targets.ProteinG),
					"carbG":    int(targets.CarbG),
					"fatG":     int(targets.FatG),
					"userID":   userID,
				})
			if err != nil {
				log.Printf("[patchWellnessSettings] auto-target update failed for user %d: %v", userID, err)
			} else {
				s = updated
			}
		}
	}

	populateComputedEnergy(&s)

	c.JSON(http.StatusOK, s)
}
