// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"strconv"
)

// AnswerKind tags the decoded shape of a stored answer value.
type AnswerKind int

const (
	AnswerNone AnswerKind = iota // absent, empty, or unusable for the shape
	AnswerSingle
	AnswerMulti
	AnswerScale
	AnswerText
	AnswerMatrix
)

// Answer is the typed form of one stored answer value. Exactly one of the
// payload fields is set, selected by Kind.
type Answer struct {
	Kind   AnswerKind
	Value  string         // AnswerSingle, AnswerScale, AnswerText
	Values []string       // AnswerMulti
	Matrix map[int]string // AnswerMatrix: sub-item index -> rank string
}

// Decode interprets a raw stored value against a question's declared shape.
// Submissions are persisted without validation, so any JSON shape may appear
// here; values that cannot be read as the declared shape decode to
// AnswerNone rather than an error.
func Decode(q Question, raw any) Answer {
	if raw == nil {
		return Answer{}
	}

	switch q.Type {
	case TypeSingleChoice:
		if s := scalarString(raw); s != "" {
			return Answer{Kind: AnswerSingle, Value: s}
		}

	case TypeScale:
		if s := scalarString(raw); s != "" {
			return Answer{Kind: AnswerScale, Value: s}
		}

	case TypeFreeText:
		if s, ok := raw.(string); ok && s != "" {
			return Answer{Kind: AnswerText, Value: s}
		}

	case TypeMultiChoice:
		list, ok := raw.([]any)
		if !ok {
			break
		}
		var values []string
		for _, v := range list {
			if s, ok := v.(string); ok && s != "" {
				values = append(values, s)
			}
		}
		if len(values) > 0 {
			return Answer{Kind: AnswerMulti, Values: values}
		}

	case TypeMatrix:
		m, ok := raw.(map[string]any)
		if !ok {
			break
		}
		matrix := map[int]string{}
		for key, v := range m {
			idx, err := strconv.Atoi(key)
			if err != nil || idx < 0 || idx >= len(q.Subs) {
				continue
			}
			if s := scalarString(v); s != "" {
				matrix[idx] = s
			}
		}
		if len(matrix) > 0 {
			return Answer{Kind: AnswerMatrix, Matrix: matrix}
		}
	}

	return Answer{}
}

// scalarString reads a JSON scalar as its stored-string form. Scale answers
// are recorded by the form as rank strings, but numbers are tolerated since
// the store never rejects a shape.
func scalarString(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}
