// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"reflect"
	"strconv"
	"testing"
)

func TestLookup(t *testing.T) {
	q, ok := Lookup("q1")
	if !ok {
		t.Fatal("Expected q1 to exist")
	}
	if q.Type != TypeSingleChoice || q.Section != 1 {
		t.Errorf("Unexpected q1 shape: %+v", q)
	}

	if _, ok := Lookup("q999"); ok {
		t.Error("Expected q999 lookup to fail")
	}
	if _, ok := Lookup(""); ok {
		t.Error("Expected empty id lookup to fail")
	}
}

func TestInstrumentIsWellFormed(t *testing.T) {
	qs := Questions()
	if len(qs) != 65 {
		t.Fatalf("Expected 65 questions, got %d", len(qs))
	}

	sectionNums := map[int]bool{}
	for _, s := range Sections() {
		sectionNums[s.Num] = true
	}

	seen := map[string]bool{}
	for i, q := range qs {
		if q.ID != "q"+strconv.Itoa(i+1) {
			t.Errorf("Position %d: expected sequential id, got %s", i, q.ID)
		}
		if seen[q.ID] {
			t.Errorf("Duplicate question id %s", q.ID)
		}
		seen[q.ID] = true

		if !sectionNums[q.Section] {
			t.Errorf("%s references unknown section %d", q.ID, q.Section)
		}

		switch q.Type {
		case TypeSingleChoice, TypeMultiChoice:
			if len(q.Options) == 0 {
				t.Errorf("%s is a choice question with no options", q.ID)
			}
		case TypeMatrix:
			if len(q.Options) == 0 || len(q.Subs) == 0 {
				t.Errorf("%s is a matrix question missing options or subs", q.ID)
			}
		}
	}
}

func TestVocabulary(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		expected []string
	}{
		{
			name: "single choice uses option labels",
			id:   "q1",
			expected: []string{
				"R1/R2 Doctoral University (high or very high research activity)",
				"Master's University",
				"Liberal Arts College / Baccalaureate College",
				"Community College or Two-Year Institution",
				"Other",
			},
		},
		{
			name:     "labeled scale uses rank strings",
			id:       "q6",
			expected: []string{"1", "2", "3", "4", "5"},
		},
		{
			name:     "unlabeled scale has no vocabulary",
			id:       "q61",
			expected: nil,
		},
		{
			name:     "free text has no vocabulary",
			id:       "q8",
			expected: nil,
		},
		{
			name:     "matrix has no vocabulary",
			id:       "q47",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, ok := Lookup(tt.id)
			if !ok {
				t.Fatalf("Missing question %s", tt.id)
			}
			if got := q.Vocabulary(); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestQuestionsForSection(t *testing.T) {
	qs := QuestionsForSection(9)
	if len(qs) != 5 {
		t.Fatalf("Expected 5 questions in section 9, got %d", len(qs))
	}
	if qs[0].ID != "q61" || qs[4].ID != "q65" {
		t.Errorf("Expected q61..q65 in order, got %s..%s", qs[0].ID, qs[4].ID)
	}

	if qs := QuestionsForSection(42); len(qs) != 0 {
		t.Errorf("Expected no questions for unknown section, got %d", len(qs))
	}
}

func TestOptions(t *testing.T) {
	if opts := Options("q53"); len(opts) != 5 {
		t.Errorf("Expected 5 options for q53, got %d", len(opts))
	}
	if opts := Options("q999"); len(opts) != 0 {
		t.Errorf("Expected no options for unknown id, got %v", opts)
	}
	if opts := Options("q8"); len(opts) != 0 {
		t.Errorf("Expected no options for free text, got %v", opts)
	}
}
