package model

import (
	"testing"
	"time"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from     string
		to       string
		expected bool
	}{
		{StatusDraft, StatusSubmitted, true},
		{StatusSubmitted, StatusPending, true},
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		// No skipping ahead.
		{StatusDraft, StatusPending, false},
		{StatusSubmitted, StatusApproved, false},
		// No going back.
		{StatusPending, StatusSubmitted, false},
		{StatusSubmitted, StatusDraft, false},
		// Terminal statuses are final.
		{StatusApproved, StatusPending, false},
		{StatusApproved, StatusRejected, false},
		{StatusRejected, StatusPending, false},
		{StatusRejected, StatusApproved, false},
		// Unknown statuses fail-closed.
		{"unknown", StatusPending, false},
		{StatusPending, "unknown", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got := CanTransition(tt.from, tt.to)
		if got != tt.expected {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.expected)
		}
	}
}

func TestValidators(t *testing.T) {
	if !ValidStatus(StatusDraft) || !ValidStatus(StatusRejected) {
		t.Error("expected pipeline statuses to be valid")
	}
	if ValidStatus("archived") {
		t.Error("expected unknown status to be invalid")
	}
	if !ValidUrgency(UrgencyCritical) || ValidUrgency("asap") {
		t.Error("unexpected urgency validation")
	}
	if !ValidRequestType(TypeService) || ValidRequestType("software") {
		t.Error("unexpected request type validation")
	}
	if !ValidRole(RoleApprover) || ValidRole("guest") {
		t.Error("unexpected role validation")
	}
	if !ValidKind(KindWarning) || ValidKind("fatal") {
		t.Error("unexpected notification kind validation")
	}
}

func TestTotalValue(t *testing.T) {
	v1, v2 := 5.0, 12.5

	if got := TotalValue(nil); got != nil {
		t.Errorf("expected nil total for no items, got %v", *got)
	}

	// No item carries a value: nil, never a bare zero.
	noValues := []RequestItem{{Description: "Pens"}, {Description: "Paper"}}
	if got := TotalValue(noValues); got != nil {
		t.Errorf("expected nil total for valueless items, got %v", *got)
	}

	mixed := []RequestItem{
		{Description: "Paper", EstimatedValue: &v1},
		{Description: "Pens"},
		{Description: "Toner", EstimatedValue: &v2},
	}
	got := TotalValue(mixed)
	if got == nil || *got != 17.5 {
		t.Errorf("expected total 17.5, got %v", got)
	}
}

func newTestInput() NewRequestInput {
	v := 5.0
	return NewRequestInput{
		Department:  Department{ID: "1", Name: "Produção", Code: "PROD", CostCenter: "CC001"},
		Urgency:     UrgencyNormal,
		RequestType: TypeMaterial,
		Items: []NewItemInput{
			{Description: "Paper", Quantity: 10, Unit: "box", EstimatedValue: &v},
			{Description: "Pens", Quantity: 2, Unit: "pack"},
		},
		Justification:    "Restocking office supplies",
		ExpectedDate:     time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		DeliveryLocation: "Main warehouse",
	}
}

func TestNewRequest(t *testing.T) {
	requester := User{ID: "1", Name: "João Silva", Role: RoleRequester}
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	req := NewRequest(newTestInput(), requester, 1, now)

	if req.ID == "" {
		t.Error("expected generated id")
	}
	if req.RequestNumber != "RFP-2024-001" {
		t.Errorf("expected number RFP-2024-001, got %q", req.RequestNumber)
	}
	if req.Status != StatusSubmitted {
		t.Errorf("expected status submitted, got %q", req.Status)
	}
	if req.Requester.ID != "1" {
		t.Errorf("expected requester bound to creator, got %q", req.Requester.ID)
	}
	if !req.RequestDate.Equal(now) {
		t.Errorf("expected request date %v, got %v", now, req.RequestDate)
	}
	if len(req.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(req.Items))
	}
	if req.Items[0].Description != "Paper" || req.Items[1].Description != "Pens" {
		t.Error("expected items to keep input order")
	}
	if req.Items[0].ID == "" || req.Items[0].ID == req.Items[1].ID {
		t.Error("expected distinct item ids")
	}
	// Only the first item has a value.
	if req.TotalValue == nil || *req.TotalValue != 5 {
		t.Errorf("expected total value 5, got %v", req.TotalValue)
	}
}

func TestNewRequestNoItemValues(t *testing.T) {
	input := newTestInput()
	for i := range input.Items {
		input.Items[i].EstimatedValue = nil
	}

	req := NewRequest(input, User{ID: "2"}, 7, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	if req.TotalValue != nil {
		t.Errorf("expected absent total value, got %v", *req.TotalValue)
	}
	if req.RequestNumber != "RFP-2024-007" {
		t.Errorf("expected number RFP-2024-007, got %q", req.RequestNumber)
	}
}

func TestRequestNumberWidth(t *testing.T) {
	tests := []struct {
		ordinal  int
		expected string
	}{
		{1, "RFP-2024-001"},
		{42, "RFP-2024-042"},
		{999, "RFP-2024-999"},
		// Past 999 the width grows, nothing wraps or truncates.
		{1000, "RFP-2024-1000"},
		{12345, "RFP-2024-12345"},
	}

	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		req := NewRequest(newTestInput(), User{ID: "1"}, tt.ordinal, now)
		if req.RequestNumber != tt.expected {
			t.Errorf("ordinal %d: expected %q, got %q", tt.ordinal, tt.expected, req.RequestNumber)
		}
	}
}
