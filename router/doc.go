// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes using Go 1.22+ method routing.

Public routes: POST /api/responses (submission), POST /api/admin/login,
POST /api/admin/logout, GET /health.

Everything else under /api/admin/ requires a valid session cookie and is
wrapped by middleware.RequireAdmin: response listing, detail, deletion
(single and bulk), the aggregate dashboard, export, and password change.
*/
package router
