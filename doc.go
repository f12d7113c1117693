// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Biology Survey API server.

The server collects structured survey responses from college biology
instructors (a 9-section instrument covering preparedness, lab skills, and
AI-related teaching practices) and exposes an authenticated admin API for
aggregation, inspection, export, and deletion of responses.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	PASSWORD_SALT=... ADMIN_PASSWORD=... go run main.go

Or with flags:

	go run main.go -p 3000 -d survey.db --password-salt ... --admin-password ...

A .env file in the working directory is loaded automatically.

# Configuration

Required settings:

  - PASSWORD_SALT (--password-salt): Secret mixed into password hashes
  - ADMIN_PASSWORD (--admin-password): Initial admin password, seeded on first boot

Optional settings:

  - PORT (-p): Server port (default: 3000)
  - DATABASE_URL (-d): Database path or connection string (default: survey.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (submission, admin, aggregation, export)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, admin session gate
  - models: Request/response types
  - survey: The fixed question registry (schema, vocabularies, answer decoding)
  - auth: Password hashing and session token generation
  - db: Schema creation and the response/settings/session store
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
