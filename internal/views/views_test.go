package views

import (
	"reflect"
	"testing"
	"time"

	"github.com/mfcastro/requisita/internal/model"
)

func sampleRequests() []model.RFPRequest {
	v1, v2, v3 := 250.0, 15000.0, 800.0
	return []model.RFPRequest{
		{
			ID: "r1", RequestNumber: "RFP-2024-001",
			RequestDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Requester:   model.User{ID: "1", Name: "João Silva"},
			Urgency:     model.UrgencyNormal, Status: model.StatusApproved, TotalValue: &v1,
		},
		{
			ID: "r2", RequestNumber: "RFP-2024-002",
			RequestDate: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			Requester:   model.User{ID: "3", Name: "Carlos Oliveira"},
			Urgency:     model.UrgencyUrgent, Status: model.StatusPending, TotalValue: &v2,
		},
		{
			ID: "r3", RequestNumber: "RFP-2024-003",
			RequestDate: time.Date(2024, 2, 25, 0, 0, 0, 0, time.UTC),
			Requester:   model.User{ID: "1", Name: "João Silva"},
			Urgency:     model.UrgencyCritical, Status: model.StatusSubmitted, TotalValue: &v3,
		},
		{
			ID: "r4", RequestNumber: "RFP-2024-004",
			RequestDate: time.Date(2024, 2, 26, 0, 0, 0, 0, time.UTC),
			Requester:   model.User{ID: "4", Name: "Ana Costa"},
			Urgency:     model.UrgencyNormal, Status: model.StatusRejected,
		},
	}
}

func ids(requests []model.RFPRequest) []string {
	out := make([]string, 0, len(requests))
	for _, r := range requests {
		out = append(out, r.ID)
	}
	return out
}

func TestMy(t *testing.T) {
	requests := sampleRequests()

	mine := My(requests, "1")
	if !reflect.DeepEqual(ids(mine), []string{"r1", "r3"}) {
		t.Errorf("expected [r1 r3] in original order, got %v", ids(mine))
	}

	if got := My(requests, "nobody"); len(got) != 0 {
		t.Errorf("expected no requests for unknown user, got %d", len(got))
	}
}

func TestStatusViews(t *testing.T) {
	requests := sampleRequests()

	if got := ids(Pending(requests)); !reflect.DeepEqual(got, []string{"r2"}) {
		t.Errorf("Pending = %v, want [r2]", got)
	}
	if got := ids(Approved(requests)); !reflect.DeepEqual(got, []string{"r1"}) {
		t.Errorf("Approved = %v, want [r1]", got)
	}
	if got := ids(Rejected(requests)); !reflect.DeepEqual(got, []string{"r4"}) {
		t.Errorf("Rejected = %v, want [r4]", got)
	}
}

func TestUrgent(t *testing.T) {
	requests := sampleRequests()

	urgent := Urgent(requests)
	if !reflect.DeepEqual(ids(urgent), []string{"r2", "r3"}) {
		t.Errorf("Urgent = %v, want [r2 r3]", ids(urgent))
	}
	for _, r := range urgent {
		if r.Urgency == model.UrgencyNormal {
			t.Errorf("normal-urgency request %s must never be urgent", r.ID)
		}
	}
}

func TestSearch(t *testing.T) {
	requests := sampleRequests()

	// Case-insensitive match on requester name.
	if got := ids(Search(requests, "joão", "")); !reflect.DeepEqual(got, []string{"r1", "r3"}) {
		t.Errorf("Search(joão) = %v, want [r1 r3]", got)
	}

	// Match on request number.
	if got := ids(Search(requests, "2024-002", "")); !reflect.DeepEqual(got, []string{"r2"}) {
		t.Errorf("Search(2024-002) = %v, want [r2]", got)
	}

	// Term and status are AND-ed.
	if got := ids(Search(requests, "silva", model.StatusApproved)); !reflect.DeepEqual(got, []string{"r1"}) {
		t.Errorf("Search(silva, approved) = %v, want [r1]", got)
	}

	// Empty term with status filter only.
	if got := ids(Search(requests, "", model.StatusRejected)); !reflect.DeepEqual(got, []string{"r4"}) {
		t.Errorf("Search(, rejected) = %v, want [r4]", got)
	}

	// Empty term and status match everything.
	if got := Search(requests, "", ""); len(got) != len(requests) {
		t.Errorf("empty search returned %d of %d", len(got), len(requests))
	}
}

func TestViewsAreIdempotent(t *testing.T) {
	requests := sampleRequests()

	first := Search(requests, "rfp", model.StatusPending)
	second := Search(requests, "rfp", model.StatusPending)
	if !reflect.DeepEqual(first, second) {
		t.Error("expected structurally equal results for repeated calls")
	}

	if !reflect.DeepEqual(Urgent(requests), Urgent(requests)) {
		t.Error("expected Urgent to be idempotent")
	}

	// Views never mutate their input.
	before := sampleRequests()
	My(requests, "1")
	Pending(requests)
	if !reflect.DeepEqual(requests, before) {
		t.Error("expected input snapshot to be unchanged")
	}
}

func TestStats(t *testing.T) {
	s := Stats(sampleRequests())

	if s.TotalRequests != 4 {
		t.Errorf("TotalRequests = %d, want 4", s.TotalRequests)
	}
	if s.PendingApprovals != 1 || s.ApprovedRequests != 1 || s.RejectedRequests != 1 {
		t.Errorf("unexpected counters: %+v", s)
	}
	if s.TotalValue != 16050 {
		t.Errorf("TotalValue = %v, want 16050", s.TotalValue)
	}
}

func TestMonthlyTrend(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	trend := MonthlyTrend(sampleRequests(), now, 3)
	if len(trend) != 3 {
		t.Fatalf("expected 3 points, got %d", len(trend))
	}

	if trend[0].Month != "Jan 2024" || trend[0].Requests != 2 || trend[0].Value != 15250 {
		t.Errorf("unexpected January point: %+v", trend[0])
	}
	if trend[1].Month != "Feb 2024" || trend[1].Requests != 2 || trend[1].Value != 800 {
		t.Errorf("unexpected February point: %+v", trend[1])
	}
	// Current month has no requests but still appears.
	if trend[2].Month != "Mar 2024" || trend[2].Requests != 0 {
		t.Errorf("unexpected March point: %+v", trend[2])
	}
}
