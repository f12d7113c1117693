// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/bio-survey/middleware"
	"github.com/danielhkuo/bio-survey/models"
	"github.com/danielhkuo/bio-survey/testutil"
)

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			return c
		}
	}
	return nil
}

func TestLogin(t *testing.T) {
	store := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	testutil.SeedAdminPassword(t, store, cfg)
	handler := NewAdminHandler(store, cfg)

	tests := []struct {
		name           string
		password       string
		expectedStatus int
	}{
		{name: "correct password", password: cfg.AdminPassword, expectedStatus: http.StatusOK},
		{name: "wrong password", password: "nope", expectedStatus: http.StatusUnauthorized},
		{name: "empty password", password: "", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/admin/login", models.LoginRequest{Password: tt.password}, nil)
			w := httptest.NewRecorder()

			handler.Login(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			cookie := sessionCookie(w)
			if tt.expectedStatus == http.StatusOK {
				if cookie == nil || cookie.Value == "" {
					t.Fatal("Expected a session cookie on successful login")
				}
				if !cookie.HttpOnly {
					t.Error("Expected HttpOnly session cookie")
				}
			} else if cookie != nil {
				t.Error("Expected no session cookie on failed login")
			}
		})
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	store := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewAdminHandler(store, cfg)

	token := testutil.CreateTestSession(t, store)

	req := httptest.NewRequest("POST", "/api/admin/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
	w := httptest.NewRecorder()
	handler.Logout(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	// The gate must now reject the token
	gated := middleware.RequireAdmin(store, func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler ran with a logged-out session")
	})
	req = httptest.NewRequest("GET", "/api/admin/responses", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
	w = httptest.NewRecorder()
	gated(w, req)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}

func TestChangePassword(t *testing.T) {
	store := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	testutil.SeedAdminPassword(t, store, cfg)
	handler := NewAdminHandler(store, cfg)

	tests := []struct {
		name           string
		req            models.ChangePasswordRequest
		expectedStatus int
	}{
		{
			name:           "wrong current password",
			req:            models.ChangePasswordRequest{Current: "wrong", NewPassword: "longenough", Confirm: "longenough"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "new password too short",
			req:            models.ChangePasswordRequest{Current: cfg.AdminPassword, NewPassword: "tiny", Confirm: "tiny"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "confirmation mismatch",
			req:            models.ChangePasswordRequest{Current: cfg.AdminPassword, NewPassword: "longenough", Confirm: "different"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "success",
			req:            models.ChangePasswordRequest{Current: cfg.AdminPassword, NewPassword: "longenough", Confirm: "longenough"},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/admin/password", tt.req, nil)
			w := httptest.NewRecorder()

			handler.ChangePassword(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}

	// The old password no longer works; the new one does
	w := httptest.NewRecorder()
	handler.Login(w, testutil.MakeRequest("POST", "/api/admin/login", models.LoginRequest{Password: cfg.AdminPassword}, nil))
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	w = httptest.NewRecorder()
	handler.Login(w, testutil.MakeRequest("POST", "/api/admin/login", models.LoginRequest{Password: "longenough"}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
}
