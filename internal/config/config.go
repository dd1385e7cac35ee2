// Package config loads runtime settings from the environment. A .env file in
// the working directory is honored when present, real environment variables
// take precedence.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the server.
type Config struct {
	// DBPath is the SQLite DSN. The default keeps everything in memory, so
	// nothing survives a restart.
	DBPath string

	// Addr is the listen address.
	Addr string

	// LogPath is an optional log file. Empty means stdout/stderr only.
	LogPath string

	// Demo enables seeding a few example requests on an empty database.
	Demo bool
}

// Load reads configuration from the environment.
func Load() Config {
	godotenv.Load()

	return Config{
		DBPath:  envOr("REQUISITA_DB", ":memory:"),
		Addr:    envOr("REQUISITA_ADDR", ":8080"),
		LogPath: os.Getenv("REQUISITA_LOG"),
		Demo:    os.Getenv("REQUISITA_DEMO") == "true",
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
