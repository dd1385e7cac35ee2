package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/mfcastro/requisita/internal/store"
	"github.com/mfcastro/requisita/internal/views"
)

// trendMonths is how far back the dashboard's monthly chart reaches.
const trendMonths = 6

// DashboardHandler serves the aggregate view of all requests.
type DashboardHandler struct {
	DB *sql.DB
}

// Get handles GET /api/dashboard.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	requests, err := store.ListRequests(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list requests")
		return
	}

	stats := views.Stats(requests)
	stats.MonthlyTrend = views.MonthlyTrend(requests, time.Now(), trendMonths)
	jsonResponse(w, http.StatusOK, stats)
}
