package model

import "time"

// Notification kinds.
const (
	KindInfo    = "info"
	KindSuccess = "success"
	KindWarning = "warning"
	KindError   = "error"
)

// Notification is an event record emitted by the store as a side effect of
// mutating operations. Once created it is never changed except to flip Read.
type Notification struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
	RequestID string    `json:"request_id,omitempty"`
}

// NewNotificationInput is the payload for adding a notification; id and
// timestamp are assigned by the store.
type NewNotificationInput struct {
	Kind      string
	Title     string
	Message   string
	RequestID string
}

// ValidKind reports whether k is one of the known notification kinds.
func ValidKind(k string) bool {
	switch k {
	case KindInfo, KindSuccess, KindWarning, KindError:
		return true
	}
	return false
}
