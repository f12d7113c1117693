// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import "strconv"

// Question shape constants
const (
	TypeSingleChoice = "single_choice" // one option from a closed vocabulary
	TypeMultiChoice  = "multi_choice"  // any subset of a closed vocabulary
	TypeScale        = "scale"         // 1..N rating, stored as the rank string
	TypeFreeText     = "free_text"     // unconstrained text
	TypeMatrix       = "matrix"        // one 1..N rating per sub-item row
)

// Question describes one entry of the survey instrument. The registry is
// immutable at runtime; stored answers are interpreted against it at read
// time, never validated against it at write time.
type Question struct {
	ID      string
	Section int
	Type    string
	Text    string
	Options []string // display labels; closed vocabulary for choice shapes
	Subs    []string // matrix row labels, in declared order
	AI      bool     // part of the technology & AI question group
}

// Section groups questions for presentation.
type Section struct {
	Num   int
	Title string
	Note  string
}

// Vocabulary returns the set of stored values that count toward a tally for
// this question, in declared order. Choice shapes count their option labels.
// Scale shapes store the 1-based rank, not the label, so their vocabulary is
// the rank strings. Free text, matrix, and unlabeled scales have no
// countable vocabulary.
func (q Question) Vocabulary() []string {
	switch q.Type {
	case TypeSingleChoice, TypeMultiChoice:
		return q.Options
	case TypeScale:
		if len(q.Options) == 0 {
			return nil
		}
		ranks := make([]string, len(q.Options))
		for i := range q.Options {
			ranks[i] = strconv.Itoa(i + 1)
		}
		return ranks
	}
	return nil
}

// Lookup returns the question with the given id.
func Lookup(id string) (Question, bool) {
	for _, q := range questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Questions returns the full instrument in declared order.
func Questions() []Question {
	return questions
}

// Sections returns the section metadata in order.
func Sections() []Section {
	return sections
}

// QuestionsForSection returns the questions of one section in declared
// order. Unknown section numbers yield an empty result.
func QuestionsForSection(num int) []Question {
	var qs []Question
	for _, q := range questions {
		if q.Section == num {
			qs = append(qs, q)
		}
	}
	return qs
}

// Options returns a question's declared option labels, or an empty slice
// when the question is unknown or has none.
func Options(id string) []string {
	q, ok := Lookup(id)
	if !ok {
		return nil
	}
	return q.Options
}
