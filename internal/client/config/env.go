package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first; its absence is fine.
//
// Recognized variables:
//
//	MYFLIX_API_URL  — base URL of the backend API
//	MYFLIX_DB       — path of the local state database
//	MYFLIX_TIMEOUT  — request timeout as a Go duration string ("30s")
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("MYFLIX_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("MYFLIX_DB"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("MYFLIX_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
