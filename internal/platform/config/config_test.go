package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir()) // keep a developer .env out of the test

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.Equal(t, 2*time.Minute, cfg.GatewayTimeout)
	assert.Equal(t, time.Hour, cfg.StagingSweepAge)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, int64(100<<20), cfg.StagingMaxBytes)
	assert.False(t, cfg.IsProduction)
}

func TestLoadConfigFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("GATEWAY_TIMEOUT", "45s")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("AWS_BUCKET_NAME", "voice-notes")
	t.Setenv("STAGING_MAX_BYTES", "1024")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 45*time.Second, cfg.GatewayTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "voice-notes", cfg.AWSBucketName)
	assert.Equal(t, int64(1024), cfg.StagingMaxBytes)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	chdir(t, t.TempDir())

	t.Run("timeout", func(t *testing.T) {
		t.Setenv("GATEWAY_TIMEOUT", "soon")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "GATEWAY_TIMEOUT")
	})

	t.Run("default secret in production", func(t *testing.T) {
		t.Setenv("IS_PRODUCTION", "true")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "JWT_SECRET")
	})
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
