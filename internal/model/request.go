package model

import "time"

// Request statuses, in pipeline order.
const (
	StatusDraft     = "draft"
	StatusSubmitted = "submitted"
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
)

// Urgency levels.
const (
	UrgencyNormal   = "normal"
	UrgencyUrgent   = "urgent"
	UrgencyCritical = "critical"
)

// Request types.
const (
	TypeMaterial  = "material"
	TypeService   = "service"
	TypeEquipment = "equipment"
)

// RequestItem is a line item of a requisition. Items are owned by their
// parent request and have no identity outside it.
type RequestItem struct {
	ID                string   `json:"id"`
	Description       string   `json:"description"`
	Quantity          float64  `json:"quantity"`
	Unit              string   `json:"unit"`
	EstimatedValue    *float64 `json:"estimated_value,omitempty"`
	Specifications    string   `json:"specifications,omitempty"`
	SuggestedSupplier string   `json:"suggested_supplier,omitempty"`
}

// RFPRequest is the purchase-requisition aggregate. The approval fields
// (Approver, ApprovalDate, ApproverComments, RejectionReason) are only
// populated once the status leaves pending.
type RFPRequest struct {
	ID               string        `json:"id"`
	RequestNumber    string        `json:"request_number"`
	RequestDate      time.Time     `json:"request_date"`
	Requester        User          `json:"requester"`
	Department       Department    `json:"department"`
	Urgency          string        `json:"urgency"`
	RequestType      string        `json:"request_type"`
	Items            []RequestItem `json:"items"`
	Justification    string        `json:"justification"`
	ExpectedDate     time.Time     `json:"expected_date"`
	DeliveryLocation string        `json:"delivery_location"`
	Observations     string        `json:"observations,omitempty"`
	ProjectCode      string        `json:"project_code,omitempty"`
	TotalValue       *float64      `json:"total_value,omitempty"`
	Status           string        `json:"status"`
	Approver         *User         `json:"approver,omitempty"`
	ApprovalDate     *time.Time    `json:"approval_date,omitempty"`
	ApproverComments string        `json:"approver_comments,omitempty"`
	RejectionReason  string        `json:"rejection_reason,omitempty"`
}

// ValidStatus reports whether s is one of the known statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// ValidUrgency reports whether u is one of the known urgency levels.
func ValidUrgency(u string) bool {
	switch u {
	case UrgencyNormal, UrgencyUrgent, UrgencyCritical:
		return true
	}
	return false
}

// ValidRequestType reports whether t is one of the known request types.
func ValidRequestType(t string) bool {
	switch t {
	case TypeMaterial, TypeService, TypeEquipment:
		return true
	}
	return false
}

// statusTransitions lists the allowed next statuses for each status.
// The pipeline is monotonic; approved and rejected are terminal.
var statusTransitions = map[string][]string{
	StatusDraft:     {StatusSubmitted},
	StatusSubmitted: {StatusPending},
	StatusPending:   {StatusApproved, StatusRejected},
	StatusApproved:  {},
	StatusRejected:  {},
}

// CanTransition reports whether a request may move from one status to
// another. Unknown statuses have no outgoing transitions.
func CanTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TotalValue returns the sum of the defined item estimated values, or nil
// when no item carries a value. The aggregate's total is always derived
// through this function, never set independently.
func TotalValue(items []RequestItem) *float64 {
	var sum float64
	for _, item := range items {
		if item.EstimatedValue != nil {
			sum += *item.EstimatedValue
		}
	}
	if sum == 0 {
		return nil
	}
	return &sum
}
