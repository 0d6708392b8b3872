// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation.

# Connecting

Open dials PostgreSQL and verifies the connection with a 5 second ping:

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

The returned *sql.DB is a shared pool injected into every handler. Handlers
check connections out implicitly per query; there is no per-request open and
close.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - students: Seed data mapping email -> full name, team, booth
  - sessions: Feedback submissions, one row per submission, append-only

sessions.booth_id has no foreign key to students: orphaned sessions for
unregistered booths are accepted by design.

# Indexes

Performance indexes on:

  - students.team_name
  - students.booth_id
  - sessions.booth_id
*/
package db
