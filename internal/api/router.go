package api

import (
	"database/sql"
	"net/http"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	usersHandler := &UsersHandler{DB: db}
	departmentsHandler := &DepartmentsHandler{DB: db}
	requestsHandler := &RequestsHandler{DB: db}
	notificationsHandler := &NotificationsHandler{DB: db}
	dashboardHandler := &DashboardHandler{DB: db}
	presetsHandler := &PresetsHandler{DB: db}

	authMW := AuthMiddleware(jwtSecret, db)

	// Public: login and liveness.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Session.
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("GET /api/auth/me", authMW(http.HandlerFunc(authHandler.Me)))

	// Reference data.
	mux.Handle("GET /api/users", authMW(http.HandlerFunc(usersHandler.List)))
	mux.Handle("GET /api/users/{id}", authMW(http.HandlerFunc(usersHandler.Get)))
	mux.Handle("GET /api/departments", authMW(http.HandlerFunc(departmentsHandler.List)))
	mux.Handle("GET /api/departments/{id}", authMW(http.HandlerFunc(departmentsHandler.Get)))

	// Requests.
	mux.Handle("POST /api/requests", authMW(http.HandlerFunc(requestsHandler.Create)))
	mux.Handle("GET /api/requests", authMW(http.HandlerFunc(requestsHandler.List)))
	mux.Handle("GET /api/requests/{id}", authMW(http.HandlerFunc(requestsHandler.Get)))
	mux.Handle("PUT /api/requests/{id}", authMW(http.HandlerFunc(requestsHandler.Update)))
	mux.Handle("POST /api/requests/{id}/review", authMW(http.HandlerFunc(requestsHandler.Review)))
	mux.Handle("POST /api/requests/{id}/approve", authMW(http.HandlerFunc(requestsHandler.Approve)))
	mux.Handle("POST /api/requests/{id}/reject", authMW(http.HandlerFunc(requestsHandler.Reject)))

	// Notifications.
	mux.Handle("GET /api/notifications", authMW(http.HandlerFunc(notificationsHandler.List)))
	mux.Handle("POST /api/notifications/{id}/read", authMW(http.HandlerFunc(notificationsHandler.MarkRead)))

	// Dashboard and autocomplete.
	mux.Handle("GET /api/dashboard", authMW(http.HandlerFunc(dashboardHandler.Get)))
	mux.Handle("GET /api/item-presets", authMW(http.HandlerFunc(presetsHandler.Search)))

	return mux
}
