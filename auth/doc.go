// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and session token generation for the
admin surface.

Passwords are hashed with salted SHA-256 and compared in constant time.
Session tokens are 256-bit random hex strings; their storage and expiry live
in the db package.
*/
package auth
