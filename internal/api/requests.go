package api

import (
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mfcastro/requisita/internal/model"
	"github.com/mfcastro/requisita/internal/store"
	"github.com/mfcastro/requisita/internal/views"
)

// dateFormat is the wire format for calendar dates.
const dateFormat = "2006-01-02"

// RequestsHandler handles purchase-requisition endpoints. It is the "form
// layer": all validation happens here, before the store is invoked.
type RequestsHandler struct {
	DB *sql.DB
}

type requestItemPayload struct {
	Description       string   `json:"description"`
	Quantity          float64  `json:"quantity"`
	Unit              string   `json:"unit"`
	EstimatedValue    *float64 `json:"estimated_value"`
	Specifications    string   `json:"specifications"`
	SuggestedSupplier string   `json:"suggested_supplier"`
}

type requestPayload struct {
	DepartmentID     string               `json:"department_id"`
	Urgency          string               `json:"urgency"`
	RequestType      string               `json:"request_type"`
	Items            []requestItemPayload `json:"items"`
	Justification    string               `json:"justification"`
	ExpectedDate     string               `json:"expected_date"`
	DeliveryLocation string               `json:"delivery_location"`
	Observations     string               `json:"observations"`
	ProjectCode      string               `json:"project_code"`
}

// validate checks every form-level constraint. Returns an empty string when
// the payload is acceptable. The expected date must not be in the past
// relative to now; creation time and edit time count the same way.
func (p requestPayload) validate(now time.Time) string {
	if p.DepartmentID == "" {
		return "department_id required"
	}
	if !model.ValidUrgency(p.Urgency) {
		return "urgency must be normal, urgent or critical"
	}
	if !model.ValidRequestType(p.RequestType) {
		return "request_type must be material, service or equipment"
	}
	if len(p.Items) == 0 {
		return "at least one item is required"
	}
	for _, item := range p.Items {
		if item.Description == "" {
			return "item description required"
		}
		if item.Quantity <= 0 {
			return "item quantity must be greater than 0"
		}
		if item.Unit == "" {
			return "item unit required"
		}
		if item.EstimatedValue != nil && *item.EstimatedValue < 0 {
			return "item estimated_value must not be negative"
		}
	}
	if len(strings.TrimSpace(p.Justification)) < 10 {
		return "justification must be at least 10 characters"
	}
	expected, err := time.Parse(dateFormat, p.ExpectedDate)
	if err != nil {
		return "expected_date must be a date in YYYY-MM-DD form"
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if expected.Before(today) {
		return "expected_date must not be in the past"
	}
	if p.DeliveryLocation == "" {
		return "delivery_location required"
	}
	return ""
}

func (p requestPayload) itemInputs() []model.NewItemInput {
	inputs := make([]model.NewItemInput, 0, len(p.Items))
	for _, item := range p.Items {
		inputs = append(inputs, model.NewItemInput{
			Description:       item.Description,
			Quantity:          item.Quantity,
			Unit:              item.Unit,
			EstimatedValue:    item.EstimatedValue,
			Specifications:    item.Specifications,
			SuggestedSupplier: item.SuggestedSupplier,
		})
	}
	return inputs
}

// Create handles POST /api/requests.
func (h *RequestsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p requestPayload
	if err := decodeJSON(r, &p); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if msg := p.validate(time.Now()); msg != "" {
		jsonError(w, http.StatusBadRequest, msg)
		return
	}

	dept, err := store.GetDepartment(r.Context(), h.DB, p.DepartmentID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if dept == nil {
		jsonError(w, http.StatusBadRequest, "unknown department")
		return
	}

	requester, err := h.currentUser(r)
	if err != nil {
		jsonError(w, http.StatusUnauthorized, "unknown user")
		return
	}

	expected, _ := time.Parse(dateFormat, p.ExpectedDate)
	input := model.NewRequestInput{
		Department:       *dept,
		Urgency:          p.Urgency,
		RequestType:      p.RequestType,
		Items:            p.itemInputs(),
		Justification:    p.Justification,
		ExpectedDate:     expected,
		DeliveryLocation: p.DeliveryLocation,
		Observations:     p.Observations,
		ProjectCode:      p.ProjectCode,
	}

	req, err := store.CreateRequest(r.Context(), h.DB, input, *requester)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create request")
		return
	}

	slog.Info("request created", "number", req.RequestNumber, "user", requester.Name,
		"items", len(req.Items), "urgency", req.Urgency)
	jsonResponse(w, http.StatusCreated, req)
}

// List handles GET /api/requests. The optional view, q and status query
// parameters narrow the result; every view is recomputed from the full
// snapshot on each call.
func (h *RequestsHandler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := store.ListRequests(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list requests")
		return
	}

	claims := GetClaims(r.Context())
	switch view := r.URL.Query().Get("view"); view {
	case "", "all":
	case "mine":
		requests = views.My(requests, claims.UserID)
	case "pending":
		requests = views.Pending(requests)
	case "approved":
		requests = views.Approved(requests)
	case "rejected":
		requests = views.Rejected(requests)
	case "urgent":
		requests = views.Urgent(requests)
	default:
		jsonError(w, http.StatusBadRequest, "unknown view")
		return
	}

	status := r.URL.Query().Get("status")
	if status != "" && !model.ValidStatus(status) {
		jsonError(w, http.StatusBadRequest, "invalid status filter")
		return
	}
	requests = views.Search(requests, r.URL.Query().Get("q"), status)

	if requests == nil {
		requests = []model.RFPRequest{}
	}
	jsonResponse(w, http.StatusOK, requests)
}

// Get handles GET /api/requests/{id}.
func (h *RequestsHandler) Get(w http.ResponseWriter, r *http.Request) {
	req, err := store.GetRequest(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get request")
		return
	}
	if req == nil {
		jsonError(w, http.StatusNotFound, "request not found")
		return
	}
	jsonResponse(w, http.StatusOK, req)
}

// Update handles PUT /api/requests/{id}: a wholesale edit of the request's
// form fields. Status and approval fields are not editable here; they only
// move through the review/approve/reject endpoints.
func (h *RequestsHandler) Update(w http.ResponseWriter, r *http.Request) {
	existing, err := store.GetRequest(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get request")
		return
	}
	if existing == nil {
		jsonError(w, http.StatusNotFound, "request not found")
		return
	}

	var p requestPayload
	if err := decodeJSON(r, &p); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := p.validate(time.Now()); msg != "" {
		jsonError(w, http.StatusBadRequest, msg)
		return
	}

	dept, err := store.GetDepartment(r.Context(), h.DB, p.DepartmentID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if dept == nil {
		jsonError(w, http.StatusBadRequest, "unknown department")
		return
	}

	expected, _ := time.Parse(dateFormat, p.ExpectedDate)
	updated := *existing
	updated.Department = *dept
	updated.Urgency = p.Urgency
	updated.RequestType = p.RequestType
	updated.Items = model.NewItems(p.itemInputs())
	updated.Justification = p.Justification
	updated.ExpectedDate = expected
	updated.DeliveryLocation = p.DeliveryLocation
	updated.Observations = p.Observations
	updated.ProjectCode = p.ProjectCode

	if err := store.UpdateRequest(r.Context(), h.DB, &updated); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update request")
		return
	}

	slog.Info("request updated", "number", updated.RequestNumber)
	jsonResponse(w, http.StatusOK, &updated)
}

// Review handles POST /api/requests/{id}/review: a submitted request enters
// the approval queue.
func (h *RequestsHandler) Review(w http.ResponseWriter, r *http.Request) {
	req, ok := h.loadForTransition(w, r, model.StatusPending, "review")
	if !ok {
		return
	}

	req.Status = model.StatusPending
	if err := store.UpdateRequest(r.Context(), h.DB, req); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update request")
		return
	}

	if _, err := store.AddNotification(r.Context(), h.DB, model.NewNotificationInput{
		Kind:      model.KindInfo,
		Title:     "Request under review",
		Message:   "Request " + req.RequestNumber + " is now awaiting a decision.",
		RequestID: req.ID,
	}); err != nil {
		slog.Warn("failed to add notification", "error", err)
	}

	slog.Info("request under review", "number", req.RequestNumber)
	jsonResponse(w, http.StatusOK, req)
}

type approvePayload struct {
	Comments string `json:"comments"`
}

// Approve handles POST /api/requests/{id}/approve.
func (h *RequestsHandler) Approve(w http.ResponseWriter, r *http.Request) {
	req, ok := h.loadForTransition(w, r, model.StatusApproved, "approve")
	if !ok {
		return
	}

	var p approvePayload
	if err := decodeJSON(r, &p); err != nil && !errors.Is(err, io.EOF) {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	approver, err := h.currentUser(r)
	if err != nil {
		jsonError(w, http.StatusUnauthorized, "unknown user")
		return
	}

	now := time.Now()
	req.Status = model.StatusApproved
	req.Approver = approver
	req.ApprovalDate = &now
	req.ApproverComments = p.Comments

	if err := store.UpdateRequest(r.Context(), h.DB, req); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update request")
		return
	}

	if _, err := store.AddNotification(r.Context(), h.DB, model.NewNotificationInput{
		Kind:      model.KindSuccess,
		Title:     "Request approved",
		Message:   "Request " + req.RequestNumber + " was approved by " + approver.Name + ".",
		RequestID: req.ID,
	}); err != nil {
		slog.Warn("failed to add notification", "error", err)
	}

	slog.Info("request approved", "number", req.RequestNumber, "approver", approver.Name)
	jsonResponse(w, http.StatusOK, req)
}

type rejectPayload struct {
	Reason string `json:"reason"`
}

// Reject handles POST /api/requests/{id}/reject.
func (h *RequestsHandler) Reject(w http.ResponseWriter, r *http.Request) {
	req, ok := h.loadForTransition(w, r, model.StatusRejected, "reject")
	if !ok {
		return
	}

	var p rejectPayload
	if err := decodeJSON(r, &p); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if p.Reason == "" {
		jsonError(w, http.StatusBadRequest, "reason required")
		return
	}

	approver, err := h.currentUser(r)
	if err != nil {
		jsonError(w, http.StatusUnauthorized, "unknown user")
		return
	}

	now := time.Now()
	req.Status = model.StatusRejected
	req.Approver = approver
	req.ApprovalDate = &now
	req.RejectionReason = p.Reason

	if err := store.UpdateRequest(r.Context(), h.DB, req); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update request")
		return
	}

	if _, err := store.AddNotification(r.Context(), h.DB, model.NewNotificationInput{
		Kind:      model.KindWarning,
		Title:     "Request rejected",
		Message:   "Request " + req.RequestNumber + " was rejected: " + p.Reason,
		RequestID: req.ID,
	}); err != nil {
		slog.Warn("failed to add notification", "error", err)
	}

	slog.Info("request rejected", "number", req.RequestNumber, "approver", approver.Name)
	jsonResponse(w, http.StatusOK, req)
}

// loadForTransition fetches the request and checks that moving it to the
// target status is allowed. Writes the error response itself when not.
func (h *RequestsHandler) loadForTransition(w http.ResponseWriter, r *http.Request, target, verb string) (*model.RFPRequest, bool) {
	req, err := store.GetRequest(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get request")
		return nil, false
	}
	if req == nil {
		jsonError(w, http.StatusNotFound, "request not found")
		return nil, false
	}
	if !model.CanTransition(req.Status, target) {
		jsonError(w, http.StatusBadRequest, "cannot "+verb+" a "+req.Status+" request")
		return nil, false
	}
	return req, true
}

// currentUser resolves the session's user from the claims in the context.
func (h *RequestsHandler) currentUser(r *http.Request) (*model.User, error) {
	claims := GetClaims(r.Context())
	if claims == nil {
		return nil, errors.New("not authenticated")
	}
	user, err := store.GetUser(r.Context(), h.DB, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("unknown user")
	}
	return user, nil
}
