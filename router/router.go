// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/bio-survey/cliparse"
	"github.com/danielhkuo/bio-survey/db"
	"github.com/danielhkuo/bio-survey/handlers"
	"github.com/danielhkuo/bio-survey/middleware"
)

func NewRouter(store *db.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	responsesHandler := handlers.NewResponsesHandler(store, cfg)
	aggregateHandler := handlers.NewAggregateHandler(store, cfg)
	adminHandler := handlers.NewAdminHandler(store, cfg)

	// gate requires a valid admin session
	gate := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.RequireAdmin(store, next)
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Survey submission (public)
	mux.HandleFunc("POST /api/responses", middleware.WithLogging(responsesHandler.Submit))

	// Admin authentication (open)
	mux.HandleFunc("POST /api/admin/login", middleware.WithLogging(adminHandler.Login))
	mux.HandleFunc("POST /api/admin/logout", middleware.WithLogging(adminHandler.Logout))

	// Admin operations (session required)
	mux.HandleFunc("GET /api/admin/responses", middleware.WithLogging(gate(responsesHandler.List)))
	mux.HandleFunc("GET /api/admin/responses/{id}", middleware.WithLogging(gate(responsesHandler.Detail)))
	mux.HandleFunc("DELETE /api/admin/responses/{id}", middleware.WithLogging(gate(responsesHandler.Delete)))
	mux.HandleFunc("DELETE /api/admin/responses", middleware.WithLogging(gate(responsesHandler.DeleteAll)))
	mux.HandleFunc("GET /api/admin/aggregate", middleware.WithLogging(gate(aggregateHandler.Aggregate)))
	mux.HandleFunc("GET /api/admin/export", middleware.WithLogging(gate(responsesHandler.Export)))
	mux.HandleFunc("POST /api/admin/password", middleware.WithLogging(gate(adminHandler.ChangePassword)))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("bio-survey API v1"))
	})

	return mux
}
