package store

import (
	"context"
	"testing"
	"time"

	"github.com/mfcastro/requisita/internal/db"
)

func TestGetJWTSecret(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	secret1, err := GetJWTSecret(ctx, database)
	if err != nil {
		t.Fatalf("GetJWTSecret: %v", err)
	}
	if secret1 == "" {
		t.Fatal("expected non-empty secret")
	}

	// Second call returns the same stored secret.
	secret2, err := GetJWTSecret(ctx, database)
	if err != nil {
		t.Fatalf("GetJWTSecret (second): %v", err)
	}
	if secret1 != secret2 {
		t.Error("expected stable secret across calls")
	}
}

func TestRevokeToken(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	revoked, err := IsTokenRevoked(ctx, database, "jti-1")
	if err != nil {
		t.Fatalf("IsTokenRevoked: %v", err)
	}
	if revoked {
		t.Error("expected fresh JTI to not be revoked")
	}

	if err := RevokeToken(ctx, database, "jti-1", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("RevokeToken: %v", err)
	}

	revoked, err = IsTokenRevoked(ctx, database, "jti-1")
	if err != nil {
		t.Fatalf("IsTokenRevoked: %v", err)
	}
	if !revoked {
		t.Error("expected JTI to be revoked")
	}

	// Revoking twice is fine.
	if err := RevokeToken(ctx, database, "jti-1", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("RevokeToken (second): %v", err)
	}
}

func TestExpiredRevocationDoesNotCount(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if err := RevokeToken(ctx, database, "jti-old", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("RevokeToken: %v", err)
	}

	revoked, err := IsTokenRevoked(ctx, database, "jti-old")
	if err != nil {
		t.Fatalf("IsTokenRevoked: %v", err)
	}
	if revoked {
		t.Error("expected expired revocation to not count")
	}
}

func TestPurgeRevokedTokens(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if err := RevokeToken(ctx, database, "jti-old", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("RevokeToken: %v", err)
	}
	if err := RevokeToken(ctx, database, "jti-live", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("RevokeToken: %v", err)
	}

	purged, err := PurgeRevokedTokens(ctx, database)
	if err != nil {
		t.Fatalf("PurgeRevokedTokens: %v", err)
	}
	if purged != 1 {
		t.Errorf("expected 1 purged revocation, got %d", purged)
	}

	// The live revocation survives the sweep.
	revoked, err := IsTokenRevoked(ctx, database, "jti-live")
	if err != nil {
		t.Fatalf("IsTokenRevoked: %v", err)
	}
	if !revoked {
		t.Error("expected unexpired revocation to survive the purge")
	}
}

func TestSearchItemPresets(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	requester, _ := GetUser(ctx, database, "1")
	input := inputForTest(t, database)
	input.Items[0].Specifications = "A4, 75g/m²"
	input.Items[0].SuggestedSupplier = "Papelaria Central"
	if _, err := CreateRequest(ctx, database, input, *requester); err != nil {
		t.Fatalf("CreateRequest: %v", err)
	}

	presets, err := SearchItemPresets(ctx, database, "paper", 10)
	if err != nil {
		t.Fatalf("SearchItemPresets: %v", err)
	}
	if len(presets) != 1 {
		t.Fatalf("expected 1 preset, got %d", len(presets))
	}
	p := presets[0]
	if p.Description != "Paper" || p.Unit != "box" {
		t.Errorf("unexpected preset %+v", p)
	}
	if p.Specifications != "A4, 75g/m²" || p.SuggestedSupplier != "Papelaria Central" {
		t.Errorf("expected specifications and supplier carried, got %+v", p)
	}

	// No match.
	none, err := SearchItemPresets(ctx, database, "granite", 10)
	if err != nil {
		t.Fatalf("SearchItemPresets: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no presets, got %d", len(none))
	}
}
