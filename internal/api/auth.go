package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/mfcastro/requisita/internal/auth"
	"github.com/mfcastro/requisita/internal/model"
	"github.com/mfcastro/requisita/internal/store"
)

// AuthHandler handles session endpoints.
type AuthHandler struct {
	DB        *sql.DB
	JWTSecret string
}

type loginRequest struct {
	Email string `json:"email"`
}

type loginResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Login handles POST /api/auth/login. The user directory is reference data
// and carries no credentials: a known email is enough to start a session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" {
		jsonError(w, http.StatusBadRequest, "email required")
		return
	}

	user, err := store.GetUserByEmail(r.Context(), h.DB, req.Email)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if user == nil {
		slog.Warn("login failed", "email", req.Email, "remote", r.RemoteAddr)
		jsonError(w, http.StatusUnauthorized, "unknown email")
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, user.ID, user.Name, user.Email, user.Role)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	slog.Info("user logged in", "user", user.Name, "role", user.Role)
	jsonResponse(w, http.StatusOK, loginResponse{Token: token, User: *user})
}

// Logout handles POST /api/auth/logout by revoking the session's token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := store.RevokeToken(r.Context(), h.DB, claims.ID, claims.ExpiresAt.Time); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to end session")
		return
	}

	slog.Info("user logged out", "user", claims.Name)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	user, err := store.GetUser(r.Context(), h.DB, claims.UserID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if user == nil {
		jsonError(w, http.StatusUnauthorized, "unknown user")
		return
	}

	jsonResponse(w, http.StatusOK, user)
}
