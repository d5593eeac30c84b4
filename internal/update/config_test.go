package update

import "testing"

func TestDefaultRuntimeConfig(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.DBPath != "planner.db" {
		t.Fatalf("unexpected default db path: %q", cfg.DBPath)
	}
	if cfg.UserID != "local" {
		t.Fatalf("unexpected default user id: %q", cfg.UserID)
	}
	if cfg.FirestoreProject != "" {
		t.Fatalf("mirror should be off by default, got project %q", cfg.FirestoreProject)
	}
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("PLANNER_DB_PATH", "/tmp/p.db")
	t.Setenv("PLANNER_USER_ID", "eugene")
	t.Setenv("PLANNER_FIRESTORE_PROJECT", "planner-prod")
	t.Setenv("PLANNER_FIRESTORE_TOKEN_FILE", "  /tmp/token.json  ")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.DBPath != "/tmp/p.db" {
		t.Fatalf("db path not read from env: %q", cfg.DBPath)
	}
	if cfg.UserID != "eugene" {
		t.Fatalf("user id not read from env: %q", cfg.UserID)
	}
	if cfg.FirestoreProject != "planner-prod" {
		t.Fatalf("project not read from env: %q", cfg.FirestoreProject)
	}
	if cfg.FirestoreTokenFile != "/tmp/token.json" {
		t.Fatalf("token file not trimmed: %q", cfg.FirestoreTokenFile)
	}
}

func TestRuntimeConfigFromEnvKeepsBaseWhenUnset(t *testing.T) {
	t.Setenv("PLANNER_DB_PATH", "")
	base := DefaultRuntimeConfig()
	base.UserID = "someone"
	cfg := RuntimeConfigFromEnv(base)
	if cfg.DBPath != base.DBPath || cfg.UserID != "someone" {
		t.Fatalf("expected base values kept, got %+v", cfg)
	}
}
