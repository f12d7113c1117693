// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration parsing from CLI flags and environment
variables.

CLI flags take precedence; environment variables are the fallback. Secrets
(PASSWORD_SALT, ADMIN_PASSWORD) must be provided one way or the other, and
are normally supplied via the environment or a .env file.

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Defaults: port 3000, sqlite database at ./survey.db.
*/
package cliparse
