// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"math"
	"strconv"

	"github.com/danielhkuo/bio-survey/models"
	"github.com/danielhkuo/bio-survey/survey"
)

// Tally counts how many responses selected each declared option of a
// question. The result always holds one entry per vocabulary value,
// including zeros, so chart axes stay complete.
//
// Values outside the declared vocabulary are excluded, not errors: a
// response recorded before an option was renamed or removed must not crash
// aggregation or introduce spurious chart rows. It merely goes uncounted.
func Tally(questionID string, responses []models.Response) map[string]int {
	counts := map[string]int{}

	q, ok := survey.Lookup(questionID)
	if !ok {
		return counts
	}
	for _, value := range q.Vocabulary() {
		counts[value] = 0
	}

	for _, resp := range responses {
		ans := survey.Decode(q, resp.Answers[questionID])
		switch ans.Kind {
		case survey.AnswerSingle, survey.AnswerScale:
			if _, declared := counts[ans.Value]; declared {
				counts[ans.Value]++
			}
		case survey.AnswerMulti:
			for _, v := range ans.Values {
				if _, declared := counts[v]; declared {
					counts[v]++
				}
			}
		}
	}

	return counts
}

// ScaleSamples collects the parseable numeric answers for a scale question
// that fall inside [min, max]. Unparseable and out-of-range values are
// dropped.
func ScaleSamples(questionID string, responses []models.Response, min, max float64) []float64 {
	q, ok := survey.Lookup(questionID)
	if !ok {
		return nil
	}

	var samples []float64
	for _, resp := range responses {
		ans := survey.Decode(q, resp.Answers[questionID])
		if ans.Kind != survey.AnswerScale {
			continue
		}
		v, err := strconv.ParseFloat(ans.Value, 64)
		if err != nil || v < min || v > max {
			continue
		}
		samples = append(samples, v)
	}
	return samples
}

// MeanOfScale returns the arithmetic mean of a scale question's valid
// samples. The second return is false when no valid samples exist; callers
// must not read the mean in that case. No rounding happens here - that is a
// presentation concern, so repeated computation stays stable.
func MeanOfScale(questionID string, responses []models.Response, min, max float64) (float64, bool) {
	samples := ScaleSamples(questionID, responses, min, max)
	if len(samples) == 0 {
		return 0, false
	}

	sum := 0.0
	for _, v := range samples {
		sum += v
	}
	return sum / float64(len(samples)), true
}

// TopCategory returns the highest-count entry of a distribution. Ties break
// to the earliest entry in declared option order, which is fixed by the
// registry and therefore deterministic. The third return is false for an
// all-zero distribution.
func TopCategory(counts map[string]int, order []string) (string, int, bool) {
	label := ""
	best := -1
	for _, opt := range order {
		if c := counts[opt]; c > best {
			label = opt
			best = c
		}
	}
	if best <= 0 {
		return "", 0, false
	}
	return label, best, true
}

// DerivedPercentage sums the counts of the given keys and expresses them as
// a whole percentage of the total response count - not of the distribution
// total, which may exclude unanswered responses. False when total is zero.
func DerivedPercentage(counts map[string]int, keys []string, total int) (int, bool) {
	if total == 0 {
		return 0, false
	}

	sum := 0
	for _, key := range keys {
		sum += counts[key]
	}
	return int(math.Round(float64(sum) / float64(total) * 100)), true
}
