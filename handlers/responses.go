// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/bio-survey/cliparse"
	"github.com/danielhkuo/bio-survey/db"
	"github.com/danielhkuo/bio-survey/middleware"
	"github.com/danielhkuo/bio-survey/models"
	"github.com/danielhkuo/bio-survey/survey"
)

type ResponsesHandler struct {
	store *db.Store
	cfg   cliparse.Config
}

func NewResponsesHandler(store *db.Store, cfg cliparse.Config) *ResponsesHandler {
	return &ResponsesHandler{store: store, cfg: cfg}
}

// Submit handles POST /api/responses (public)
// The payload must be a JSON object; beyond that nothing is validated, and
// the answer map is persisted verbatim.
func (h *ResponsesHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var answers map[string]any
	if err := middleware.ParseJSONBody(r, &answers); err != nil || answers == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	id, err := h.store.InsertResponse(answers)
	if err != nil {
		slog.Error("failed to insert response", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to store response")
		return
	}

	slog.Info("response submitted", "id", id)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitResponseResponse{
		OK: true,
		ID: id,
	})
}

// List handles GET /api/admin/responses
// Returns summaries of every response, newest first.
func (h *ResponsesHandler) List(w http.ResponseWriter, r *http.Request) {
	responses, err := h.store.ListResponses(db.OrderDesc)
	if err != nil {
		slog.Error("failed to list responses", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	summaries := make([]models.ResponseSummary, 0, len(responses))
	for _, resp := range responses {
		summaries = append(summaries, models.ResponseSummary{
			ID:          resp.ID,
			Created:     resp.Created,
			Institution: scalarAnswer(resp, "q1"),
			Area:        scalarAnswer(resp, "q3"),
			PrepScore:   scalarAnswer(resp, "q61"),
		})
	}

	middleware.JSONResponse(w, http.StatusOK, summaries)
}

// Detail handles GET /api/admin/responses/{id}
// Returns the raw stored answers plus their formatted rendering.
func (h *ResponsesHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid response id")
		return
	}

	resp, err := h.store.GetResponse(id)
	if err == db.ErrNotFound {
		middleware.ErrorResponse(w, http.StatusNotFound, "Response not found")
		return
	}
	if err != nil {
		slog.Error("failed to load response", "error", err, "id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResponseDetail{
		ID:        resp.ID,
		Created:   resp.Created,
		Data:      resp.Answers,
		Formatted: FormatResponse(resp.Answers),
	})
}

// Delete handles DELETE /api/admin/responses/{id}
// Idempotent: deleting an id that does not exist succeeds.
func (h *ResponsesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid response id")
		return
	}

	if err := h.store.DeleteResponse(id); err != nil {
		slog.Error("failed to delete response", "error", err, "id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("response deleted", "id", id)
	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}

// DeleteAll handles DELETE /api/admin/responses
func (h *ResponsesHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteAllResponses(); err != nil {
		slog.Error("failed to delete all responses", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("all responses deleted")
	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}

// Export handles GET /api/admin/export
// Streams every response as a downloadable JSON document, flattened to
// {id, created, ...answers}, in insertion (ascending id) order.
func (h *ResponsesHandler) Export(w http.ResponseWriter, r *http.Request) {
	responses, err := h.store.ListResponses(db.OrderAsc)
	if err != nil {
		slog.Error("failed to load responses for export", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	out := make([]map[string]any, 0, len(responses))
	for _, resp := range responses {
		record := map[string]any{
			"id":      resp.ID,
			"created": resp.Created,
		}
		for key, value := range resp.Answers {
			record[key] = value
		}
		out = append(out, record)
	}

	body, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		slog.Error("failed to encode export", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to encode export")
		return
	}

	filename := fmt.Sprintf("biology_survey_export_%s.json", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		slog.Error("failed to write export", "error", err)
	}
}

// scalarAnswer reads one answer as display text for the summary projection.
func scalarAnswer(resp models.Response, questionID string) string {
	q, ok := survey.Lookup(questionID)
	if !ok {
		return ""
	}
	return survey.Decode(q, resp.Answers[questionID]).Value
}
