package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewRequestInput is the payload for creating a request: RFPRequest minus the
// server-assigned fields (id, number, date, requester, status). Callers
// validate it before construction; the factory trusts its input.
type NewRequestInput struct {
	Department       Department
	Urgency          string
	RequestType      string
	Items            []NewItemInput
	Justification    string
	ExpectedDate     time.Time
	DeliveryLocation string
	Observations     string
	ProjectCode      string
}

// NewItemInput is the payload for a single line item.
type NewItemInput struct {
	Description       string
	Quantity          float64
	Unit              string
	EstimatedValue    *float64
	Specifications    string
	SuggestedSupplier string
}

// NewRequest builds a fully-populated request from validated input. ordinal
// is the per-year sequence number already allocated by the caller; the
// request number is RFP-<year>-<ordinal> with the ordinal zero-padded to
// three digits (wider ordinals keep their full width). Requests created this
// way always start out submitted.
func NewRequest(input NewRequestInput, requester User, ordinal int, now time.Time) *RFPRequest {
	req := &RFPRequest{
		ID:               uuid.NewString(),
		RequestNumber:    fmt.Sprintf("RFP-%d-%03d", now.Year(), ordinal),
		RequestDate:      now,
		Requester:        requester,
		Department:       input.Department,
		Urgency:          input.Urgency,
		RequestType:      input.RequestType,
		Items:            NewItems(input.Items),
		Justification:    input.Justification,
		ExpectedDate:     input.ExpectedDate,
		DeliveryLocation: input.DeliveryLocation,
		Observations:     input.Observations,
		ProjectCode:      input.ProjectCode,
		Status:           StatusSubmitted,
	}
	req.TotalValue = TotalValue(req.Items)
	return req
}

// NewItems builds line items from inputs, assigning fresh ids and keeping
// the input order.
func NewItems(inputs []NewItemInput) []RequestItem {
	items := make([]RequestItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, RequestItem{
			ID:                uuid.NewString(),
			Description:       in.Description,
			Quantity:          in.Quantity,
			Unit:              in.Unit,
			EstimatedValue:    in.EstimatedValue,
			Specifications:    in.Specifications,
			SuggestedSupplier: in.SuggestedSupplier,
		})
	}
	return items
}
