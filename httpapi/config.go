package httpapi

import (
	"os"
	"strconv"
)

// Config holds the HTTP server settings.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// DBPath is the SQLite database path used by the serve command.
	DBPath string

	// MaxUploadBytes caps the size of an uploaded document.
	MaxUploadBytes int64

	// PhoneRegion is the default region for phone number formatting.
	PhoneRegion string
}

// LoadConfig reads configuration from the environment, falling back to
// defaults for unset or malformed values.
func LoadConfig() Config {
	cfg := Config{
		Addr:           envOr("VITAE_ADDR", ":8080"),
		DBPath:         envOr("VITAE_DB_PATH", "vitae.db"),
		MaxUploadBytes: envInt64("VITAE_MAX_UPLOAD_BYTES", 20<<20),
		PhoneRegion:    envOr("VITAE_PHONE_REGION", "US"),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 20 << 20
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
