package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// engineError maps a calculation-engine failure onto an HTTP response.
// errInvalidInput is the caller's fault (400) and its message is safe to
// surface; anything else is a 500.
func engineError(c *gin.Context, err error) {
	if errors.Is(err, errInvalidInput) {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}
	apiError(c, http.StatusInternalServerError, "calculation failed")
}

// computeEnergy estimates BMR and TDEE from body metrics supplied directly
// by the profile form. POST /api/wellness/energy. Stateless — nothing is
// read from or written to the database.
func (h *Handler) computeEnergy(c *gin.Context) {
	var req energyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	bmr, err := estimateBMR(req.Age, req.Sex, req.HeightCM, req.WeightKG)
	if err != nil {
		engineError(c, err)
		return
	}
	tdee, err := estimateTDEE(bmr, req.ActivityLevel, req.Goal)
	if err != nil {
		engineError(c, err)
		return
	}

	c.JSON(http.StatusOK, energyResponse{BMR: bmr, TDEE: tdee})
}

// computeMacros converts a calorie target and diet archetype into gram
// targets. POST /api/wellness/macros.
func (h *Handler) computeMacros(c *gin.Context) {
	var req macrosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	targets, err := allocateMacros(req.Calories, req.DietArchetype)
	if err != nil {
		engineError(c, err)
		return
	}

	c.JSON(http.StatusOK, targets)
}

// validateMacros checks caller-edited macro targets for drift and
// out-of-range fields. POST /api/wellness/macros/validate. Always 200 —
// violations are data, not errors, so a form can show all of them at once.
func (h *Handler) validateMacros(c *gin.Context) {
	var req validateMacrosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	violations := validateMacroConsistency(req.Targets, req.ToleranceKcal)
	// Ensure empty array (not null) in JSON
	if violations == nil {
		violations = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"violations": violations})
}
