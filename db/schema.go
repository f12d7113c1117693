// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// DriverName maps a configured database type to the registered driver.
func DriverName(databaseType string) string {
	if databaseType == "postgres" {
		return "postgres"
	}
	return "sqlite"
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, databaseType string) error {
	schema := sqliteSchema
	if databaseType == "postgres" {
		schema = postgresSchema
	}

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The created column is written by the application (UTC RFC 3339) rather
// than a database default, so the schema stays portable across flavors.
const sqliteSchema = `
-- Survey responses, stored verbatim as submitted
CREATE TABLE IF NOT EXISTS responses (
    id      INTEGER PRIMARY KEY AUTOINCREMENT,
    created TEXT NOT NULL,
    data    TEXT NOT NULL
);

-- Key-value settings (admin password hash)
CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

-- Admin login sessions
CREATE TABLE IF NOT EXISTS sessions (
    token   TEXT PRIMARY KEY,
    expires BIGINT NOT NULL
);
`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS responses (
    id      BIGSERIAL PRIMARY KEY,
    created TEXT NOT NULL,
    data    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sessions (
    token   TEXT PRIMARY KEY,
    expires BIGINT NOT NULL
);
`
