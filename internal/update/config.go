package update

import (
	"os"
	"strings"
)

type RuntimeConfig struct {
	DBPath             string
	UserID             string
	FirestoreProject   string
	FirestoreTokenFile string
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DBPath: "planner.db",
		UserID: "local",
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("PLANNER_DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := getEnvString("PLANNER_USER_ID"); ok {
		cfg.UserID = v
	}
	if v, ok := getEnvString("PLANNER_FIRESTORE_PROJECT"); ok {
		cfg.FirestoreProject = v
	}
	if v, ok := getEnvString("PLANNER_FIRESTORE_TOKEN_FILE"); ok {
		cfg.FirestoreTokenFile = v
	}
	return cfg
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}
