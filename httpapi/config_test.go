package httpapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("VITAE_ADDR", "")
	t.Setenv("VITAE_DB_PATH", "")
	t.Setenv("VITAE_MAX_UPLOAD_BYTES", "")
	t.Setenv("VITAE_PHONE_REGION", "")

	cfg := LoadConfig()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "vitae.db", cfg.DBPath)
	assert.Equal(t, int64(20<<20), cfg.MaxUploadBytes)
	assert.Equal(t, "US", cfg.PhoneRegion)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("VITAE_ADDR", ":9999")
	t.Setenv("VITAE_DB_PATH", "/tmp/custom.db")
	t.Setenv("VITAE_MAX_UPLOAD_BYTES", "1024")
	t.Setenv("VITAE_PHONE_REGION", "GB")

	cfg := LoadConfig()
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
	assert.Equal(t, int64(1024), cfg.MaxUploadBytes)
	assert.Equal(t, "GB", cfg.PhoneRegion)
}

func TestLoadConfigClampsUploadLimit(t *testing.T) {
	t.Setenv("VITAE_MAX_UPLOAD_BYTES", "-5")

	cfg := LoadConfig()
	assert.Equal(t, int64(20<<20), cfg.MaxUploadBytes)
}

func TestLoadConfigIgnoresMalformedInt(t *testing.T) {
	t.Setenv("VITAE_MAX_UPLOAD_BYTES", "lots")

	cfg := LoadConfig()
	assert.Equal(t, int64(20<<20), cfg.MaxUploadBytes)
}
