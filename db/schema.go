// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// connectTimeout bounds the startup connection check.
const connectTimeout = 5 * time.Second

// Open connects to PostgreSQL and verifies the connection with a bounded
// ping. The returned pool is shared by all handlers; callers never open
// per-request connections.
func Open(databaseURL string) (*sql.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL is not configured")
	}

	conn, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Students (seeded out of band; read-only for this service)
CREATE TABLE IF NOT EXISTS students (
    email TEXT PRIMARY KEY,
    full_name TEXT NOT NULL,
    team_name TEXT NOT NULL,
    booth_id TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_students_team_name ON students(team_name);
CREATE INDEX IF NOT EXISTS idx_students_booth_id ON students(booth_id);

-- Sessions (one feedback submission per row; append-only)
-- booth_id is intentionally not a foreign key: feedback for a booth with no
-- registered team is kept rather than rejected.
CREATE TABLE IF NOT EXISTS sessions (
    id BIGSERIAL PRIMARY KEY,
    booth_id TEXT NOT NULL,
    praise_ratio DOUBLE PRECISION NOT NULL DEFAULT 0,
    advice_ratio DOUBLE PRECISION NOT NULL DEFAULT 0,
    raw_text TEXT NOT NULL,
    visitor_attribute TEXT NOT NULL,
    summary_text TEXT NOT NULL DEFAULT '',
    is_processed BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_sessions_booth_id ON sessions(booth_id);
`
