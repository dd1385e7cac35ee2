package store

import (
	"context"
	"testing"

	"github.com/mfcastro/requisita/internal/db"
	"github.com/mfcastro/requisita/internal/model"
)

func TestNotificationsMostRecentFirst(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	first, _ := AddNotification(ctx, database, model.NewNotificationInput{
		Kind: model.KindInfo, Title: "First", Message: "first message",
	})
	second, _ := AddNotification(ctx, database, model.NewNotificationInput{
		Kind: model.KindWarning, Title: "Second", Message: "second message",
	})

	notifications, err := ListNotifications(ctx, database)
	if err != nil {
		t.Fatalf("ListNotifications: %v", err)
	}
	if len(notifications) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(notifications))
	}
	if notifications[0].ID != second.ID || notifications[1].ID != first.ID {
		t.Error("expected most-recent-first ordering")
	}
	if notifications[0].CreatedAt.IsZero() {
		t.Error("expected assigned timestamp")
	}
}

func TestMarkNotificationRead(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	n, _ := AddNotification(ctx, database, model.NewNotificationInput{
		Kind: model.KindSuccess, Title: "Created", Message: "done",
	})

	if err := MarkNotificationRead(ctx, database, n.ID); err != nil {
		t.Fatalf("MarkNotificationRead: %v", err)
	}

	notifications, _ := ListNotifications(ctx, database)
	if len(notifications) != 1 || !notifications[0].Read {
		t.Error("expected notification to be marked read")
	}

	// Everything but the read flag stays as it was.
	if notifications[0].Title != "Created" || notifications[0].Message != "done" {
		t.Error("expected notification content unchanged")
	}
}

func TestMarkNotificationReadUnknownIDIsNoop(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	AddNotification(ctx, database, model.NewNotificationInput{
		Kind: model.KindInfo, Title: "Only", Message: "only one",
	})

	if err := MarkNotificationRead(ctx, database, "no-such-id"); err != nil {
		t.Fatalf("expected no error for unknown id, got %v", err)
	}

	notifications, _ := ListNotifications(ctx, database)
	if len(notifications) != 1 || notifications[0].Read {
		t.Error("expected collection unchanged")
	}
}
