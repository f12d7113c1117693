package cliparse

import (
	"strings"
	"testing"
)

// clearEnv blanks every env variable ParseFlags reads so tests control the
// whole input. t.Setenv restores the originals afterward.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "DATABASE_URL", "DATABASE_TYPE", "PASSWORD_SALT", "ADMIN_PASSWORD"} {
		t.Setenv(key, "")
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("PASSWORD_SALT", "s")
	t.Setenv("ADMIN_PASSWORD", "p")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.Port != 3000 {
		t.Errorf("Expected default port 3000, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "survey.db" {
		t.Errorf("Expected default database survey.db, got %q", cfg.DatabaseURL)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("Expected default type sqlite, got %q", cfg.DatabaseType)
	}
}

func TestParseFlagsCLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_URL", "env.db")
	t.Setenv("PASSWORD_SALT", "env-salt")
	t.Setenv("ADMIN_PASSWORD", "env-password")

	cfg, err := ParseFlags([]string{"-p", "9090", "-d", "cli.db", "-password-salt", "cli-salt"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.Port != 9090 {
		t.Errorf("Expected CLI port 9090, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "cli.db" {
		t.Errorf("Expected CLI database, got %q", cfg.DatabaseURL)
	}
	if cfg.PasswordSalt != "cli-salt" {
		t.Errorf("Expected CLI salt, got %q", cfg.PasswordSalt)
	}
	// Unset on the CLI, so the env value applies
	if cfg.AdminPassword != "env-password" {
		t.Errorf("Expected env admin password, got %q", cfg.AdminPassword)
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		env         map[string]string
		expectedErr string
	}{
		{
			name:        "missing salt",
			env:         map[string]string{"ADMIN_PASSWORD": "p"},
			expectedErr: "PASSWORD_SALT required",
		},
		{
			name:        "missing admin password",
			env:         map[string]string{"PASSWORD_SALT": "s"},
			expectedErr: "ADMIN_PASSWORD required",
		},
		{
			name:        "invalid database type",
			args:        []string{"-t", "mongodb"},
			env:         map[string]string{"PASSWORD_SALT": "s", "ADMIN_PASSWORD": "p"},
			expectedErr: "database type",
		},
		{
			name:        "invalid PORT env",
			env:         map[string]string{"PORT": "not-a-number", "PASSWORD_SALT": "s", "ADMIN_PASSWORD": "p"},
			expectedErr: "invalid PORT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := ParseFlags(tt.args)
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !strings.Contains(err.Error(), tt.expectedErr) {
				t.Errorf("Expected error containing %q, got %q", tt.expectedErr, err.Error())
			}
		})
	}
}

func TestParseFlagsPostgres(t *testing.T) {
	clearEnv(t)
	t.Setenv("PASSWORD_SALT", "s")
	t.Setenv("ADMIN_PASSWORD", "p")

	cfg, err := ParseFlags([]string{"-t", "postgres", "-d", "postgres://localhost/survey"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("Expected postgres, got %q", cfg.DatabaseType)
	}
}
