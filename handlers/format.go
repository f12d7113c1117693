// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"strings"

	"github.com/danielhkuo/bio-survey/models"
	"github.com/danielhkuo/bio-survey/survey"
)

// FormatResponse renders one stored answer map as question/answer pairs in
// instrument order. Unanswered questions are skipped to keep detail views
// uncluttered.
func FormatResponse(answers map[string]any) []models.QA {
	var pairs []models.QA

	for i, q := range survey.Questions() {
		ans := survey.Decode(q, answers[q.ID])
		if ans.Kind == survey.AnswerNone {
			continue
		}

		var display string
		switch ans.Kind {
		case survey.AnswerMulti:
			display = strings.Join(ans.Values, "; ")
		case survey.AnswerMatrix:
			// Rows follow the registry's declared sub-item order. The
			// stored map's iteration order is never significant.
			var rows []string
			for si, sub := range q.Subs {
				if v, ok := ans.Matrix[si]; ok {
					rows = append(rows, fmt.Sprintf("%s: %s", sub, v))
				}
			}
			display = strings.Join(rows, "\n")
		default:
			display = ans.Value
		}

		pairs = append(pairs, models.QA{
			Question: fmt.Sprintf("Q%d. %s", i+1, q.Text),
			Answer:   display,
		})
	}

	return pairs
}
