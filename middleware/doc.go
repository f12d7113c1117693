// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helpers.

# Middleware

  - WithLogging: Request/response logging via slog
  - CORS: Cross-origin support with preflight handling
  - RequireAdmin: Admin session gate for the /api/admin routes

# Helpers

  - JSONResponse: Write a JSON response with status code
  - ErrorResponse: Write a standardized JSON error
  - ParseJSONBody: Decode a JSON request body
  - SessionToken: Read the admin session cookie
*/
package middleware
