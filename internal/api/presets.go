package api

import (
	"database/sql"
	"net/http"

	"github.com/mfcastro/requisita/internal/model"
	"github.com/mfcastro/requisita/internal/store"
)

// presetLimit caps how many suggestions a single lookup returns.
const presetLimit = 20

// PresetsHandler serves item autocomplete suggestions.
type PresetsHandler struct {
	DB *sql.DB
}

// Search handles GET /api/item-presets?q=. An empty term returns the first
// presets in name order, which the form uses as the initial suggestion list.
func (h *PresetsHandler) Search(w http.ResponseWriter, r *http.Request) {
	presets, err := store.SearchItemPresets(r.Context(), h.DB, r.URL.Query().Get("q"), presetLimit)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to search presets")
		return
	}
	if presets == nil {
		presets = []model.ItemPreset{}
	}
	jsonResponse(w, http.StatusOK, presets)
}
