// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package survey is the registry for the biology instructor survey instrument:
65 questions across 9 sections, each with a declared answer shape and, for
choice and scale shapes, a closed option vocabulary.

The registry is the single source of truth for aggregation. Stored answers
are never validated against it at write time; Decode interprets them against
it at read time, and values that no longer match the declared shape or
vocabulary simply decode to nothing. This keeps historical responses
readable as the instrument evolves.

Lookups are pure and total: unknown ids and section numbers yield empty
results, never errors.
*/
package survey
