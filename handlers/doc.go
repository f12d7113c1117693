// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP request handlers and the aggregation
core.

# Handlers

  - ResponsesHandler: public submission plus the admin listing, detail,
    delete, and export operations
  - AggregateHandler: the dashboard statistics endpoint
  - AdminHandler: login, logout, and password change

# Aggregation

Tally, MeanOfScale, TopCategory, and DerivedPercentage are pure functions
over a response snapshot and the survey registry. Tally initializes a zero
count for every declared option and silently excludes values outside the
vocabulary, so schema drift in old responses under-counts rather than
breaking aggregation. All divisions are guarded: means and percentages
report "no value" instead of NaN or a division error when there is nothing
to average.

FormatResponse renders one stored response into question/answer pairs in
instrument order for the detail view.
*/
package handlers
