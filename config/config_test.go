package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_URI", "mongodb://localhost:27017")
	t.Setenv("DB_NAME", "messages")
	t.Setenv("ACCESS_SECRET", "access-secret")
	t.Setenv("REFRESH_SECRET", "refresh-secret")

	cfg, err := Load("does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 72*time.Hour, cfg.RefreshTokenTTL)
	assert.Equal(t, "messages-backend", cfg.JWTIssuer)
}

func TestLoadMissingSecrets(t *testing.T) {
	t.Setenv("DB_URI", "mongodb://localhost:27017")
	t.Setenv("DB_NAME", "messages")
	// t.Setenv records the originals so the unsets are restored afterwards.
	t.Setenv("ACCESS_SECRET", "")
	t.Setenv("REFRESH_SECRET", "")
	os.Unsetenv("ACCESS_SECRET")
	os.Unsetenv("REFRESH_SECRET")

	_, err := Load("does-not-exist.env")
	assert.Error(t, err)
}

func TestAllowedOrigins(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: "http://localhost, https://example.com"}
	assert.Equal(t, []string{"http://localhost", "https://example.com"}, cfg.AllowedOrigins())
}
