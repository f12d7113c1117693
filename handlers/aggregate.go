// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/bio-survey/cliparse"
	"github.com/danielhkuo/bio-survey/db"
	"github.com/danielhkuo/bio-survey/middleware"
	"github.com/danielhkuo/bio-survey/models"
	"github.com/danielhkuo/bio-survey/survey"
)

// chartQuestions are the distributions the dashboard renders.
var chartQuestions = []string{"q1", "q6", "q7", "q25", "q43", "q54", "q58"}

// Bounds of the q61 preparedness score.
const (
	prepScaleMin = 1
	prepScaleMax = 10
)

type AggregateHandler struct {
	store *db.Store
	cfg   cliparse.Config
}

func NewAggregateHandler(store *db.Store, cfg cliparse.Config) *AggregateHandler {
	return &AggregateHandler{store: store, cfg: cfg}
}

// Aggregate handles GET /api/admin/aggregate
// Reads one snapshot of the store, then computes everything purely from it:
// two calls with no intervening writes return identical output.
func (h *AggregateHandler) Aggregate(w http.ResponseWriter, r *http.Request) {
	responses, err := h.store.ListResponses(db.OrderAsc)
	if err != nil {
		slog.Error("failed to load responses for aggregation", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	agg := ComputeAggregate(responses)
	middleware.JSONResponse(w, http.StatusOK, agg)
}

// ComputeAggregate derives the dashboard statistics from a response
// snapshot.
func ComputeAggregate(responses []models.Response) models.AggregateResponse {
	total := len(responses)

	agg := models.AggregateResponse{
		Total:      total,
		PrepScores: ScaleSamples("q61", responses, prepScaleMin, prepScaleMax),
		Charts:     map[string]map[string]int{},
	}

	for _, qid := range chartQuestions {
		agg.Charts[qid] = Tally(qid, responses)
	}

	// Mean preparedness, rounded to one decimal only here at the boundary
	if mean, ok := MeanOfScale("q61", responses, prepScaleMin, prepScaleMax); ok {
		s := strconv.FormatFloat(mean, 'f', 1, 64)
		agg.AvgPrep = &s
	}

	// Most-reported preparedness trend
	if trendQ, ok := survey.Lookup("q7"); ok {
		if label, count, ok := TopCategory(agg.Charts["q7"], trendQ.Vocabulary()); ok {
			agg.TopTrend = &models.TopEntry{Label: label, Count: count}
		}
	}

	// Share of instructors using AI detection in any form: the two
	// affirmative options of q58, over all responses
	if detectQ, ok := survey.Lookup("q58"); ok && len(detectQ.Options) >= 2 {
		if pct, ok := DerivedPercentage(agg.Charts["q58"], detectQ.Options[:2], total); ok {
			agg.DetectYesPct = &pct
		}
	}

	return agg
}
