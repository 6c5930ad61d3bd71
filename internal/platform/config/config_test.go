package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_URL", "postgres://hrm@localhost/hrm")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 12*time.Hour, cfg.TokenTTL)
	assert.Equal(t, int64(10<<20), cfg.MaxBodyBytes)
	assert.Equal(t, 120, cfg.RateLimitPerMinute)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, "/metrics", cfg.MetricsPath)
	assert.True(t, cfg.RunMigrations)
	assert.True(t, cfg.MetricsEnabled)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_URL", "postgres://hrm@localhost/hrm")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "5")
	t.Setenv("RUN_SEED", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 5, cfg.RateLimitPerMinute)
	assert.False(t, cfg.RunSeed)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MAX_BODY_BYTES", "lots")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := Config{
		DatabaseURL:        "postgres://hrm@localhost/hrm",
		MaxBodyBytes:       1 << 20,
		RateLimitPerMinute: 60,
		TokenTTL:           time.Hour,
	}

	cases := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"ok", func(*Config) {}, ""},
		{"missing database", func(c *Config) { c.DatabaseURL = " " }, "DATABASE_URL"},
		{"production without secret", func(c *Config) { c.Environment = EnvProduction }, "JWT_SECRET"},
		{"production seed without password", func(c *Config) {
			c.Environment = EnvProduction
			c.JWTSecret = "s3cret"
			c.RunSeed = true
		}, "SEED_ADMIN_PASSWORD"},
		{"production without seed", func(c *Config) {
			c.Environment = EnvProduction
			c.JWTSecret = "s3cret"
		}, ""},
		{"tiny body limit", func(c *Config) { c.MaxBodyBytes = 100 }, "MAX_BODY_BYTES"},
		{"zero rate limit", func(c *Config) { c.RateLimitPerMinute = 0 }, "RATE_LIMIT_PER_MINUTE"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}
