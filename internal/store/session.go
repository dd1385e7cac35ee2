package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"
)

// jwtSecretKey is the only settings key this application uses.
const jwtSecretKey = "jwt_secret"

// GetJWTSecret returns the JWT signing secret, generating and storing one on
// first use. With the default in-memory database the secret lives only as
// long as the process, so sessions naturally end on restart.
func GetJWTSecret(ctx context.Context, db *sql.DB) (string, error) {
	secret, err := readSetting(ctx, db, jwtSecretKey)
	if err != nil {
		return "", err
	}
	if secret != "" {
		return secret, nil
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating jwt secret: %w", err)
	}

	// INSERT OR IGNORE then re-read, so concurrent first runs settle on a
	// single secret.
	_, err = db.ExecContext(ctx,
		`INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?)`,
		jwtSecretKey, hex.EncodeToString(buf),
	)
	if err != nil {
		return "", fmt.Errorf("storing jwt secret: %w", err)
	}

	secret, err = readSetting(ctx, db, jwtSecretKey)
	if err != nil {
		return "", err
	}
	if secret == "" {
		return "", fmt.Errorf("jwt secret missing after insert")
	}
	return secret, nil
}

func readSetting(ctx context.Context, db *sql.DB, key string) (string, error) {
	var value string
	err := db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading setting %s: %w", key, err)
	}
	return value, nil
}

// RevokeToken adds a token's JTI to the revocation list, ending its session.
// Revoking the same JTI twice is fine.
func RevokeToken(ctx context.Context, db *sql.DB, jti string, expiresAt time.Time) error {
	_, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO revoked_tokens (jti, expires_at) VALUES (?, ?)`,
		jti, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("revoking token: %w", err)
	}
	return nil
}

// IsTokenRevoked reports whether a token's JTI has been revoked. A revocation
// past its expiry no longer counts; the token itself is invalid by then, so a
// stale row changes nothing.
func IsTokenRevoked(ctx context.Context, db *sql.DB, jti string) (bool, error) {
	var revoked bool
	err := db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE jti = ? AND expires_at > ?)`,
		jti, time.Now(),
	).Scan(&revoked)
	if err != nil {
		return false, fmt.Errorf("checking token revocation: %w", err)
	}
	return revoked, nil
}

// PurgeRevokedTokens deletes revocations whose tokens have expired. Run at
// startup; on a persistent database the list would otherwise grow forever.
func PurgeRevokedTokens(ctx context.Context, db *sql.DB) (int64, error) {
	result, err := db.ExecContext(ctx,
		`DELETE FROM revoked_tokens WHERE expires_at <= ?`, time.Now(),
	)
	if err != nil {
		return 0, fmt.Errorf("purging revoked tokens: %w", err)
	}
	return result.RowsAffected()
}
