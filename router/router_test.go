// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/bio-survey/middleware"
	"github.com/danielhkuo/bio-survey/models"
	"github.com/danielhkuo/bio-survey/testutil"
)

func TestPublicRoutes(t *testing.T) {
	store := testutil.SetupTestDB(t)
	mux := NewRouter(store, testutil.GetTestConfig())

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
	}{
		{name: "health", method: "GET", path: "/health", expectedStatus: http.StatusOK},
		{name: "root", method: "GET", path: "/", expectedStatus: http.StatusOK},
		{name: "submit", method: "POST", path: "/api/responses", body: `{"q1":"Other"}`, expectedStatus: http.StatusCreated},
		{name: "submit wrong method", method: "GET", path: "/api/responses", expectedStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}

func TestAdminRoutesRequireSession(t *testing.T) {
	store := testutil.SetupTestDB(t)
	mux := NewRouter(store, testutil.GetTestConfig())

	gated := []struct {
		method string
		path   string
	}{
		{"GET", "/api/admin/responses"},
		{"GET", "/api/admin/responses/1"},
		{"DELETE", "/api/admin/responses/1"},
		{"DELETE", "/api/admin/responses"},
		{"GET", "/api/admin/aggregate"},
		{"GET", "/api/admin/export"},
		{"POST", "/api/admin/password"},
	}

	for _, route := range gated {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(route.method, route.path, nil))
			testutil.AssertStatus(t, w, http.StatusUnauthorized)
		})
	}
}

func TestLoginGrantsAdminAccess(t *testing.T) {
	store := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	testutil.SeedAdminPassword(t, store, cfg)
	mux := NewRouter(store, cfg)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/api/admin/login", models.LoginRequest{Password: cfg.AdminPassword}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var session *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			session = c
		}
	}
	if session == nil {
		t.Fatal("Expected a session cookie from login")
	}

	testutil.SeedResponse(t, store, map[string]any{"q1": "Other"})

	req := httptest.NewRequest("GET", "/api/admin/responses", nil)
	req.AddCookie(session)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var summaries []models.ResponseSummary
	testutil.AssertJSON(t, w, &summaries)
	if len(summaries) != 1 {
		t.Errorf("Expected 1 summary, got %d", len(summaries))
	}
}
