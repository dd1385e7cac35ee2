package api

import (
	"database/sql"
	"net/http"

	"github.com/mfcastro/requisita/internal/model"
	"github.com/mfcastro/requisita/internal/store"
)

// NotificationsHandler handles notification endpoints.
type NotificationsHandler struct {
	DB *sql.DB
}

// List handles GET /api/notifications, most recent first.
func (h *NotificationsHandler) List(w http.ResponseWriter, r *http.Request) {
	notifications, err := store.ListNotifications(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list notifications")
		return
	}
	if notifications == nil {
		notifications = []model.Notification{}
	}
	jsonResponse(w, http.StatusOK, notifications)
}

// MarkRead handles POST /api/notifications/{id}/read. Unknown ids are a
// no-op so a stale client cannot fail on an already-pruned notification.
func (h *NotificationsHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	if err := store.MarkNotificationRead(r.Context(), h.DB, r.PathValue("id")); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to mark notification read")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
