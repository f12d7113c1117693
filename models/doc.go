// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the request, response, and domain types shared by the
handlers and the store.

Stored survey responses keep their answers as an opaque map (Response.Answers);
the survey package interprets those values against the question registry at
read time.
*/
package models
