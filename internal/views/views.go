// Package views derives read-only subsets and aggregates of the request
// collection. Every function is pure and recomputed on each call; nothing is
// cached, so staleness cannot occur. Inputs are treated as immutable
// snapshots and are never modified.
package views

import (
	"strings"
	"time"

	"github.com/mfcastro/requisita/internal/model"
)

// My returns the requests created by the given user, preserving order.
func My(requests []model.RFPRequest, userID string) []model.RFPRequest {
	return filter(requests, func(r model.RFPRequest) bool {
		return r.Requester.ID == userID
	})
}

// Pending returns the requests awaiting approval.
func Pending(requests []model.RFPRequest) []model.RFPRequest {
	return ByStatus(requests, model.StatusPending)
}

// Approved returns the approved requests.
func Approved(requests []model.RFPRequest) []model.RFPRequest {
	return ByStatus(requests, model.StatusApproved)
}

// Rejected returns the rejected requests.
func Rejected(requests []model.RFPRequest) []model.RFPRequest {
	return ByStatus(requests, model.StatusRejected)
}

// ByStatus returns the requests with exactly the given status.
func ByStatus(requests []model.RFPRequest, status string) []model.RFPRequest {
	return filter(requests, func(r model.RFPRequest) bool {
		return r.Status == status
	})
}

// Urgent returns the requests flagged urgent or critical. Normal urgency is
// never included.
func Urgent(requests []model.RFPRequest) []model.RFPRequest {
	return filter(requests, func(r model.RFPRequest) bool {
		return r.Urgency == model.UrgencyUrgent || r.Urgency == model.UrgencyCritical
	})
}

// Search filters by a case-insensitive substring match against the request
// number and requester name, AND-ed with an optional exact status filter.
// An empty term or status matches everything.
func Search(requests []model.RFPRequest, term, status string) []model.RFPRequest {
	term = strings.ToLower(term)
	return filter(requests, func(r model.RFPRequest) bool {
		if term != "" &&
			!strings.Contains(strings.ToLower(r.RequestNumber), term) &&
			!strings.Contains(strings.ToLower(r.Requester.Name), term) {
			return false
		}
		return status == "" || r.Status == status
	})
}

// DashboardStats summarizes the request collection.
type DashboardStats struct {
	TotalRequests    int          `json:"total_requests"`
	PendingApprovals int          `json:"pending_approvals"`
	ApprovedRequests int          `json:"approved_requests"`
	RejectedRequests int          `json:"rejected_requests"`
	TotalValue       float64      `json:"total_value"`
	MonthlyTrend     []TrendPoint `json:"monthly_trend,omitempty"`
}

// TrendPoint is one month's worth of dashboard trend data.
type TrendPoint struct {
	Month    string  `json:"month"`
	Requests int     `json:"requests"`
	Value    float64 `json:"value"`
}

// Stats computes the dashboard counters. The monthly trend is filled in
// separately by MonthlyTrend.
func Stats(requests []model.RFPRequest) DashboardStats {
	var s DashboardStats
	s.TotalRequests = len(requests)
	for _, r := range requests {
		switch r.Status {
		case model.StatusPending:
			s.PendingApprovals++
		case model.StatusApproved:
			s.ApprovedRequests++
		case model.StatusRejected:
			s.RejectedRequests++
		}
		if r.TotalValue != nil {
			s.TotalValue += *r.TotalValue
		}
	}
	return s
}

// MonthlyTrend buckets requests by calendar month of their request date over
// the trailing window ending at now, oldest month first. Months with no
// requests still appear, with zero counts.
func MonthlyTrend(requests []model.RFPRequest, now time.Time, months int) []TrendPoint {
	if months <= 0 {
		return nil
	}

	points := make([]TrendPoint, months)
	index := make(map[string]int, months)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := range points {
		m := first.AddDate(0, i-(months-1), 0)
		key := m.Format("2006-01")
		points[i] = TrendPoint{Month: m.Format("Jan 2006")}
		index[key] = i
	}

	for _, r := range requests {
		i, ok := index[r.RequestDate.Format("2006-01")]
		if !ok {
			continue
		}
		points[i].Requests++
		if r.TotalValue != nil {
			points[i].Value += *r.TotalValue
		}
	}
	return points
}

// filter returns the requests matching keep, preserving relative order.
func filter(requests []model.RFPRequest, keep func(model.RFPRequest) bool) []model.RFPRequest {
	var out []model.RFPRequest
	for _, r := range requests {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
