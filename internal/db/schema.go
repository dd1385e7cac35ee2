package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id         TEXT PRIMARY KEY,
    name       TEXT NOT NULL,
    email      TEXT NOT NULL UNIQUE,
    department TEXT NOT NULL,
    role       TEXT NOT NULL DEFAULT 'requester' CHECK (role IN ('requester', 'approver', 'admin'))
);

CREATE TABLE IF NOT EXISTS departments (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    code        TEXT NOT NULL,
    cost_center TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS requests (
    id                TEXT PRIMARY KEY,
    request_number    TEXT NOT NULL UNIQUE,
    request_date      DATETIME NOT NULL,
    requester_id      TEXT NOT NULL REFERENCES users(id),
    department_id     TEXT NOT NULL REFERENCES departments(id),
    urgency           TEXT NOT NULL CHECK (urgency IN ('normal', 'urgent', 'critical')),
    request_type      TEXT NOT NULL CHECK (request_type IN ('material', 'service', 'equipment')),
    justification     TEXT NOT NULL,
    expected_date     DATETIME NOT NULL,
    delivery_location TEXT NOT NULL,
    observations      TEXT,
    project_code      TEXT,
    total_value       REAL,
    status            TEXT NOT NULL CHECK (status IN ('draft', 'submitted', 'pending', 'approved', 'rejected')),
    approver_id       TEXT REFERENCES users(id),
    approval_date     DATETIME,
    approver_comments TEXT,
    rejection_reason  TEXT
);

CREATE TABLE IF NOT EXISTS request_items (
    id                 TEXT PRIMARY KEY,
    request_id         TEXT NOT NULL REFERENCES requests(id),
    position           INTEGER NOT NULL,
    description        TEXT NOT NULL,
    quantity           REAL NOT NULL CHECK (quantity > 0),
    unit               TEXT NOT NULL,
    estimated_value    REAL CHECK (estimated_value >= 0),
    specifications     TEXT,
    suggested_supplier TEXT
);

CREATE TABLE IF NOT EXISTS notifications (
    id         TEXT PRIMARY KEY,
    kind       TEXT NOT NULL CHECK (kind IN ('info', 'success', 'warning', 'error')),
    title      TEXT NOT NULL,
    message    TEXT NOT NULL,
    read       INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME NOT NULL,
    request_id TEXT REFERENCES requests(id)
);

CREATE TABLE IF NOT EXISTS sequences (
    year    INTEGER PRIMARY KEY,
    counter INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS revoked_tokens (
    jti        TEXT PRIMARY KEY,
    expires_at DATETIME NOT NULL
);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
