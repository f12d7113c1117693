// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import "testing"

func TestHashPassword(t *testing.T) {
	h1 := HashPassword("secret", "salt-a")
	h2 := HashPassword("secret", "salt-a")
	if h1 != h2 {
		t.Error("Expected hashing to be deterministic")
	}
	if len(h1) != 64 {
		t.Errorf("Expected 64 hex chars, got %d", len(h1))
	}

	if HashPassword("secret", "salt-b") == h1 {
		t.Error("Expected a different salt to change the hash")
	}
	if HashPassword("other", "salt-a") == h1 {
		t.Error("Expected a different password to change the hash")
	}
}

func TestVerifyPassword(t *testing.T) {
	stored := HashPassword("secret", "salt")

	tests := []struct {
		name     string
		password string
		salt     string
		expected bool
	}{
		{name: "correct", password: "secret", salt: "salt", expected: true},
		{name: "wrong password", password: "nope", salt: "salt", expected: false},
		{name: "wrong salt", password: "secret", salt: "other", expected: false},
		{name: "empty password", password: "", salt: "salt", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerifyPassword(tt.password, tt.salt, stored); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestGenerateSessionToken(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		token, err := GenerateSessionToken()
		if err != nil {
			t.Fatalf("Failed to generate token: %v", err)
		}
		if len(token) != 64 {
			t.Errorf("Expected 64 hex chars, got %d", len(token))
		}
		if seen[token] {
			t.Errorf("Duplicate token %s", token)
		}
		seen[token] = true
	}
}
