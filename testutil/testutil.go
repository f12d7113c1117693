// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/bio-survey/auth"
	"github.com/danielhkuo/bio-survey/cliparse"
	"github.com/danielhkuo/bio-survey/db"
)

// SetupTestDB creates a fresh sqlite database in a per-test temp directory
// with the full schema, and closes it when the test finishes.
func SetupTestDB(t *testing.T) *db.Store {
	t.Helper()

	conn, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db.NewStore(conn, "sqlite")
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3000,
		DatabaseType:  "sqlite",
		PasswordSalt:  "test-password-salt",
		AdminPassword: "test-admin-password",
	}
}

// SeedResponse inserts a response directly and returns its id
func SeedResponse(t *testing.T, store *db.Store, answers map[string]any) int64 {
	t.Helper()

	id, err := store.InsertResponse(answers)
	if err != nil {
		t.Fatalf("Failed to seed response: %v", err)
	}
	return id
}

// SeedAdminPassword stores the hash of the configured admin password
func SeedAdminPassword(t *testing.T, store *db.Store, cfg cliparse.Config) {
	t.Helper()

	hash := auth.HashPassword(cfg.AdminPassword, cfg.PasswordSalt)
	if err := store.SetSetting(db.SettingAdminPassword, hash); err != nil {
		t.Fatalf("Failed to seed admin password: %v", err)
	}
}

// CreateTestSession creates a live admin session and returns its token
func CreateTestSession(t *testing.T, store *db.Store) string {
	t.Helper()

	token, err := auth.GenerateSessionToken()
	if err != nil {
		t.Fatalf("Failed to generate session token: %v", err)
	}
	if err := store.CreateSession(token, time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	return token
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
