// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and persistence.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables.

# Tables

  - responses: Append-only survey submissions (id, created, data). The data
    column is the submitted answer map stored verbatim as JSON; nothing is
    validated against the question schema at write time.
  - settings: Key-value settings (admin password hash)
  - sessions: Admin login tokens with expiry

# Store

Store wraps the connection and exposes the persistence operations the
handlers consume: response insert/list/get/delete, the settings KV, and
session lifecycle. Responses are immutable once inserted; ids are assigned
by the database and strictly increase with insertion order.

Both sqlite (modernc.org/sqlite, the default) and postgres (lib/pq) are
supported. Queries are written with ? placeholders and rebound to $n for
postgres; the sqlite flavor runs on a single pooled connection so writes
serialize cleanly.
*/
package db
