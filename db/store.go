// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/bio-survey/models"
)

// ErrNotFound is returned by single-record reads when the id does not exist.
var ErrNotFound = errors.New("not found")

// SettingAdminPassword is the settings key holding the admin password hash.
const SettingAdminPassword = "admin_password"

// Listing order for ListResponses. The admin listing wants newest first,
// the export wants insertion order; callers must say which.
type Order int

const (
	OrderAsc Order = iota
	OrderDesc
)

// Store wraps the database connection and serializes all persistence
// operations for responses, settings, and sessions.
type Store struct {
	db     *sql.DB
	flavor string
}

// NewStore creates a Store over an open connection. The sqlite flavor is
// restricted to a single connection so concurrent inserts serialize in the
// pool instead of surfacing SQLITE_BUSY.
func NewStore(db *sql.DB, databaseType string) *Store {
	if databaseType != "postgres" {
		db.SetMaxOpenConns(1)
	}
	return &Store{db: db, flavor: databaseType}
}

// DB exposes the underlying connection (for Close in main and tests).
func (s *Store) DB() *sql.DB {
	return s.db
}

// rebind converts ? placeholders to $n for postgres. Queries in this
// package are written with ? (the sqlite form).
func (s *Store) rebind(query string) string {
	if s.flavor != "postgres" {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// InsertResponse persists a submission verbatim and returns its assigned id.
// No semantic validation happens here: the store accepts any JSON object, so
// historical responses stay readable as the survey instrument evolves.
func (s *Store) InsertResponse(answers map[string]any) (int64, error) {
	data, err := json.Marshal(answers)
	if err != nil {
		return 0, fmt.Errorf("failed to encode response: %w", err)
	}
	created := time.Now().UTC().Format(time.RFC3339)

	if s.flavor == "postgres" {
		var id int64
		err := s.db.QueryRow(s.rebind(`
			INSERT INTO responses (created, data) VALUES (?, ?) RETURNING id
		`), created, string(data)).Scan(&id)
		if err != nil {
			return 0, fmt.Errorf("failed to insert response: %w", err)
		}
		return id, nil
	}

	res, err := s.db.Exec(`
		INSERT INTO responses (created, data) VALUES (?, ?)
	`, created, string(data))
	if err != nil {
		return 0, fmt.Errorf("failed to insert response: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted id: %w", err)
	}
	return id, nil
}

// ListResponses returns every stored response in the requested id order.
func (s *Store) ListResponses(order Order) ([]models.Response, error) {
	dir := "ASC"
	if order == OrderDesc {
		dir = "DESC"
	}

	rows, err := s.db.Query("SELECT id, created, data FROM responses ORDER BY id " + dir)
	if err != nil {
		return nil, fmt.Errorf("failed to query responses: %w", err)
	}
	defer rows.Close()

	responses := []models.Response{}
	for rows.Next() {
		resp, err := scanResponse(rows)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, rows.Err()
}

// GetResponse returns one stored response, or ErrNotFound.
func (s *Store) GetResponse(id int64) (models.Response, error) {
	row := s.db.QueryRow(s.rebind(`
		SELECT id, created, data FROM responses WHERE id = ?
	`), id)

	resp, err := scanResponse(row)
	if err == sql.ErrNoRows {
		return models.Response{}, ErrNotFound
	}
	return resp, err
}

// DeleteResponse removes one response. Deleting a missing id is not an
// error; the operation is idempotent.
func (s *Store) DeleteResponse(id int64) error {
	_, err := s.db.Exec(s.rebind(`DELETE FROM responses WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete response: %w", err)
	}
	return nil
}

// DeleteAllResponses removes every stored response.
func (s *Store) DeleteAllResponses() error {
	_, err := s.db.Exec(`DELETE FROM responses`)
	if err != nil {
		return fmt.Errorf("failed to delete responses: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

// scanResponse decodes a responses row. A malformed data blob yields an
// empty answer map rather than an error: one bad record must never abort a
// listing or an aggregation over the rest of the set.
func scanResponse(row scanner) (models.Response, error) {
	var resp models.Response
	var created, data string
	if err := row.Scan(&resp.ID, &created, &data); err != nil {
		return models.Response{}, err
	}

	resp.Created, _ = time.Parse(time.RFC3339, created)

	resp.Answers = map[string]any{}
	_ = json.Unmarshal([]byte(data), &resp.Answers)

	return resp, nil
}

// Setting returns a settings value, or ErrNotFound.
func (s *Store) Setting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(s.rebind(`
		SELECT value FROM settings WHERE key = ?
	`), key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query setting: %w", err)
	}
	return value, nil
}

// SetSetting inserts or replaces a settings value.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(s.rebind(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`), key, value)
	if err != nil {
		return fmt.Errorf("failed to store setting: %w", err)
	}
	return nil
}

// CreateSession stores a login session token with its expiry.
func (s *Store) CreateSession(token string, expires time.Time) error {
	_, err := s.db.Exec(s.rebind(`
		INSERT INTO sessions (token, expires) VALUES (?, ?)
	`), token, expires.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// SessionValid reports whether the token names a live session. Expired
// sessions are deleted on sight.
func (s *Store) SessionValid(token string, now time.Time) (bool, error) {
	if token == "" {
		return false, nil
	}

	var expires int64
	err := s.db.QueryRow(s.rebind(`
		SELECT expires FROM sessions WHERE token = ?
	`), token).Scan(&expires)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query session: %w", err)
	}

	if now.UnixMilli() > expires {
		if err := s.DeleteSession(token); err != nil {
			return false, err
		}
		return false, nil
	}
	return true, nil
}

// DeleteSession removes a session token (logout). Idempotent.
func (s *Store) DeleteSession(token string) error {
	_, err := s.db.Exec(s.rebind(`DELETE FROM sessions WHERE token = ?`), token)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// PurgeExpiredSessions removes every session past its expiry.
func (s *Store) PurgeExpiredSessions(now time.Time) error {
	_, err := s.db.Exec(s.rebind(`DELETE FROM sessions WHERE expires < ?`), now.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to purge sessions: %w", err)
	}
	return nil
}
