package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// getPreferenceCatalog returns every dietary-preference tag with its label
// and declared conflicts. GET /api/preferences. The conflicts column is the
// raw one-directional declaration — clients should not resolve it
// themselves; that's what POST /api/preferences/check is for.
func (h *Handler) getPreferenceCatalog(c *gin.Context) {
	catalog, err := queryMany[preferenceEntry](h.db, c,
		"SELECT id, label, conflicts FROM preference_catalog ORDER BY label",
		pgx.NamedArgs{})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch preference catalog")
		return
	}
	// Ensure empty array (not null) in JSON
	if catalog == nil {
		catalog = []preferenceEntry{}
	}

	c.JSON(http.StatusOK, catalog)
}

// checkPreferences resolves a selection against the catalog: the conflict
// pairs inside it, and which non-selected entries the form should grey out.
// POST /api/preferences/check. Unknown selected ids are harmless — they
// have empty conflict sets.
func (h *Handler) checkPreferences(c *gin.Context) {
	var req checkPreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	catalog, err := queryMany[preferenceEntry](h.db, c,
		"SELECT id, label, conflicts FROM preference_catalog ORDER BY id",
		pgx.NamedArgs{})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch preference catalog")
		return
	}

	conflicts := findConflicts(req.Selected, catalog)
	if conflicts == nil {
		conflicts = []preferenceConflict{}
	}

	disabled := []string{}
	for _, entry := range catalog {
		if isDisabled(entry.ID, req.Selected, catalog) {
			disabled = append(disabled, entry.ID)
		}
	}

	c.JSON(http.StatusOK, checkPreferencesResponse{
		Conflicts: conflicts,
		Disabled:  disabled,
	})
}
