package models

import "time"

// Request types

type LoginRequest struct {
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	Current     string `json:"current"`
	NewPassword string `json:"newPassword"`
	Confirm     string `json:"confirm"`
}

// Response types

type OKResponse struct {
	OK bool `json:"ok"`
}

type SubmitResponseResponse struct {
	OK bool  `json:"ok"`
	ID int64 `json:"id"`
}

// Domain types

// Response is one stored survey submission. Answers is the opaque map the
// respondent submitted, keyed by question id; its values are whatever JSON
// shapes the form produced and are only interpreted at read time.
type Response struct {
	ID      int64          `json:"id"`
	Created time.Time      `json:"created"`
	Answers map[string]any `json:"data"`
}

// ResponseSummary is the fixed projection shown in the admin listing:
// institution type (q1), primary teaching area (q3), and the 1-10
// preparedness score (q61).
type ResponseSummary struct {
	ID          int64     `json:"id"`
	Created     time.Time `json:"created"`
	Institution string    `json:"q1"`
	Area        string    `json:"q3"`
	PrepScore   string    `json:"q61"`
}

// QA is one formatted question/answer pair for the detail view.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ResponseDetail carries both the raw stored answers and their formatted
// rendering for a single response.
type ResponseDetail struct {
	ID        int64          `json:"id"`
	Created   time.Time      `json:"created"`
	Data      map[string]any `json:"data"`
	Formatted []QA           `json:"formatted"`
}

// Aggregate types

// TopEntry is the highest-count entry of a distribution.
type TopEntry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// AggregateResponse powers the admin dashboard. Distributions always carry
// one entry per declared option, including zero counts, so chart axes stay
// complete. AvgPrep and DetectYesPct are null when undefined (no valid
// samples / zero responses) rather than zero.
type AggregateResponse struct {
	Total        int                       `json:"total"`
	AvgPrep      *string                   `json:"avgPrep"`
	PrepScores   []float64                 `json:"prepScores"`
	Charts       map[string]map[string]int `json:"charts"`
	DetectYesPct *int                      `json:"detectYesPct"`
	TopTrend     *TopEntry                 `json:"topTrend"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
