package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// dailyMealSummary is the response shape for GET /api/meal-log/daily:
// the day's items, intake totals, and how each nutrient sits against the
// user's targets.
type dailyMealSummary struct {
	Date     string             `json:"date"`
	Items    []mealLogItem      `json:"items"`
	Calories int                `json:"calories"`
	ProteinG float64            `json:"protein_g"`
	CarbG    float64            `json:"carb_g"`
	FatG     float64            `json:"fat_g"`
	Adequacy []nutrientAdequacy `json:"adequacy"`
}

// getDailyMealLog returns meal entries and computed totals for a given date.
// GET /api/meal-log/daily?date=YYYY-MM-DD (defaults to today).
func (h *Handler) getDailyMealLog(c *gin.Context) {
	userID := c.GetInt("user_id")
	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))

	// Validate date format before querying — an invalid value silently returns no rows.
	if _, err := time.Parse("2006-01-02", date); err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	items, err := queryMany[mealLogItem](h.db, c,
		`SELECT * FROM meal_log
		 WHERE user_id = @userID AND date = @date
		 ORDER BY created_at`,
		pgx.NamedArgs{"userID": userID, "date": date})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch items")
		return
	}
	// Ensure items is an empty array (not null) in JSON
	if items == nil {
		items = []mealLogItem{}
	}

	settings, err := queryOne[wellnessUserSettings](h.db, c,
		"SELECT * FROM wellness_user_settings WHERE user_id = @userID",
		pgx.NamedArgs{"userID": userID})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch settings")
		return
	}

	var calories int
	var proteinG, carbG, fatG float64
	for _, item := range items {
		calories += item.Calories
		if item.ProteinG != nil {
			proteinG += *item.ProteinG
		}
		if item.CarbG != nil {
			carbG += *item.CarbG
		}
		if item.FatG != nil {
			fatG += *item.FatG
		}
	}

	c.JSON(http.StatusOK, dailyMealSummary{
		Date:     date,
		Items:    items,
		Calories: calories,
		ProteinG: proteinG,
		CarbG:    carbG,
		FatG:     fatG,
		Adequacy: nutrientAdequacies(float64(calories), proteinG, carbG, fatG, settings),
	})
}

// createMealLogItem inserts a new meal entry.
// POST /api/meal-log. Defaults date to today if omitted.
func (h *Handler) createMealLogItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body createMealLogItemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.ItemName == "" {
		apiError(c, http.StatusBadRequest, "item_name is required")
		return
	}
	if body.Calories < 0 {
		apiError(c, http.StatusBadRequest, "calories must not be negative")
		return
	}
	if body.Date == "" {
		body.Date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", body.Date); err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	item, err := queryOne[mealLogItem](h.db, c,
		`INSERT INTO meal_log (user_id, date, item_name, calories, protein_g, carb_g, fat_g)
		 VALUES (@userID, @date, @itemName, @calories, @proteinG, @carbG, @fatG)
		 RETURNING *`,
		pgx.NamedArgs{
			"userID": userID, "date": body.Date, "itemName": body.ItemName,
			"calories": body.Calories, "proteinG": body.ProteinG,
			"carbG": body.CarbG, "fatG": body.FatG,
		})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to create item")
		return
	}

	c.JSON(http.StatusCreated, item)
}

// deleteMealLogItem removes a meal entry. Returns 204 on success.
// DELETE /api/meal-log/:id. Ownership is enforced by requiring both id and
// user_id to match.
func (h *Handler) deleteMealLogItem(c *gin.Context) {
	userID := c.GetInt("user_id")
	id := c.Param("id")

	result, err := h.db.Exec(c,
		"DELETE FROM meal_log WHERE id = @id AND user_id = @userID",
		pgx.NamedArgs{"id": id, "userID": userID})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to delete item")
		return
	}
	if result.RowsAffected() == 0 {
		apiError(c, http.StatusNotFound, "item not found")
		return
	}

	c.Status(http.StatusNoContent)
}
