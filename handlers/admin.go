// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/bio-survey/auth"
	"github.com/danielhkuo/bio-survey/cliparse"
	"github.com/danielhkuo/bio-survey/db"
	"github.com/danielhkuo/bio-survey/middleware"
	"github.com/danielhkuo/bio-survey/models"
)

// SessionTTL is how long an admin login stays valid.
const SessionTTL = 4 * time.Hour

type AdminHandler struct {
	store *db.Store
	cfg   cliparse.Config
}

func NewAdminHandler(store *db.Store, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{store: store, cfg: cfg}
}

// Login handles POST /api/admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	stored, err := h.store.Setting(db.SettingAdminPassword)
	if err != nil && err != db.ErrNotFound {
		slog.Error("failed to load admin password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if err == db.ErrNotFound || !auth.VerifyPassword(req.Password, h.cfg.PasswordSalt, stored) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	token, err := auth.GenerateSessionToken()
	if err != nil {
		slog.Error("failed to generate session token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}
	if err := h.store.CreateSession(token, time.Now().Add(SessionTTL)); err != nil {
		slog.Error("failed to create session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	slog.Info("admin logged in")
	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}

// Logout handles POST /api/admin/logout
// Always succeeds, with or without a live session.
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := middleware.SessionToken(r); token != "" {
		if err := h.store.DeleteSession(token); err != nil {
			slog.Error("failed to delete session", "error", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}

// ChangePassword handles POST /api/admin/password
func (h *AdminHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req models.ChangePasswordRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	stored, err := h.store.Setting(db.SettingAdminPassword)
	if err != nil && err != db.ErrNotFound {
		slog.Error("failed to load admin password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if err == db.ErrNotFound || !auth.VerifyPassword(req.Current, h.cfg.PasswordSalt, stored) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Current password is incorrect.")
		return
	}
	if len(req.NewPassword) < 6 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "New password must be at least 6 characters.")
		return
	}
	if req.NewPassword != req.Confirm {
		middleware.ErrorResponse(w, http.StatusBadRequest, "New passwords do not match.")
		return
	}

	newHash := auth.HashPassword(req.NewPassword, h.cfg.PasswordSalt)
	if err := h.store.SetSetting(db.SettingAdminPassword, newHash); err != nil {
		slog.Error("failed to update admin password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("admin password changed")
	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}
