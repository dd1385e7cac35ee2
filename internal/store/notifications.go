package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mfcastro/requisita/internal/model"
)

// AddNotification records a new notification, assigning its id and
// timestamp. Notifications are listed most-recent-first.
func AddNotification(ctx context.Context, db *sql.DB, input model.NewNotificationInput) (*model.Notification, error) {
	n := newNotification(input)
	if err := insertNotification(ctx, db, n); err != nil {
		return nil, err
	}
	return n, nil
}

func newNotification(input model.NewNotificationInput) *model.Notification {
	return &model.Notification{
		ID:        uuid.NewString(),
		Kind:      input.Kind,
		Title:     input.Title,
		Message:   input.Message,
		CreatedAt: time.Now(),
		RequestID: input.RequestID,
	}
}

// execer covers both *sql.DB and *sql.Tx, so a notification can be written
// standalone or inside a larger transaction.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertNotification(ctx context.Context, db execer, n *model.Notification) error {
	var requestID *string
	if n.RequestID != "" {
		requestID = &n.RequestID
	}

	_, err := db.ExecContext(ctx,
		`INSERT INTO notifications (id, kind, title, message, read, created_at, request_id)
		 VALUES (?, ?, ?, ?, 0, ?, ?)`,
		n.ID, n.Kind, n.Title, n.Message, n.CreatedAt, requestID,
	)
	if err != nil {
		return fmt.Errorf("adding notification: %w", err)
	}
	return nil
}

// ListNotifications returns all notifications, most recent first.
func ListNotifications(ctx context.Context, db *sql.DB) ([]model.Notification, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, kind, title, message, read, created_at, request_id
		 FROM notifications ORDER BY rowid DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		var n model.Notification
		var requestID sql.NullString
		if err := rows.Scan(&n.ID, &n.Kind, &n.Title, &n.Message, &n.Read, &n.CreatedAt, &requestID); err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}
		n.RequestID = requestID.String
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkNotificationRead flips a notification's read flag. Unknown ids are a
// silent no-op; a notification is never changed in any other way.
func MarkNotificationRead(ctx context.Context, db *sql.DB, id string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE notifications SET read = 1 WHERE id = ?`, id,
	)
	if err != nil {
		return fmt.Errorf("marking notification read: %w", err)
	}
	return nil
}
