package api

import (
	"database/sql"
	"net/http"

	"github.com/mfcastro/requisita/internal/store"
)

// DepartmentsHandler handles department lookups.
type DepartmentsHandler struct {
	DB *sql.DB
}

// List handles GET /api/departments.
func (h *DepartmentsHandler) List(w http.ResponseWriter, r *http.Request) {
	departments, err := store.ListDepartments(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list departments")
		return
	}
	jsonResponse(w, http.StatusOK, departments)
}

// Get handles GET /api/departments/{id}.
func (h *DepartmentsHandler) Get(w http.ResponseWriter, r *http.Request) {
	dept, err := store.GetDepartment(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get department")
		return
	}
	if dept == nil {
		jsonError(w, http.StatusNotFound, "department not found")
		return
	}
	jsonResponse(w, http.StatusOK, dept)
}
