package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Port:                 "8081",
		ShutdownTimeout:      30 * time.Second,
		LogLevel:             "info",
		LogFormat:            "text",
		DataDir:              "data",
		RecentLimit:          5,
		TopCategories:        5,
		CacheSize:            16,
		CacheTTL:             5 * time.Minute,
		CacheCleanupInterval: 10 * time.Minute,
		RateLimitRPM:         60,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		errorString string
	}{
		{name: "valid config", mutate: func(*Config) {}},
		{name: "zero cache ttl disables expiry", mutate: func(c *Config) { c.CacheTTL = 0 }},
		{name: "json log format", mutate: func(c *Config) { c.LogFormat = "json" }},
		{
			name:        "non-numeric port",
			mutate:      func(c *Config) { c.Port = "http" },
			errorString: "invalid port 'http': must be a number",
		},
		{
			name:        "port out of range",
			mutate:      func(c *Config) { c.Port = "70000" },
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name:        "unknown log level",
			mutate:      func(c *Config) { c.LogLevel = "verbose" },
			errorString: "invalid log level 'verbose'",
		},
		{
			name:        "unknown log format",
			mutate:      func(c *Config) { c.LogFormat = "xml" },
			errorString: "invalid log format 'xml'",
		},
		{
			name:        "blank data dir",
			mutate:      func(c *Config) { c.DataDir = "  " },
			errorString: "data directory cannot be empty",
		},
		{
			name:        "recent limit zero",
			mutate:      func(c *Config) { c.RecentLimit = 0 },
			errorString: "invalid recent limit 0: must be between 1 and 100",
		},
		{
			name:        "top categories beyond registry",
			mutate:      func(c *Config) { c.TopCategories = 14 },
			errorString: "invalid top categories 14: must be between 1 and 13",
		},
		{
			name:        "cache size too small",
			mutate:      func(c *Config) { c.CacheSize = 0 },
			errorString: "invalid cache size 0: must be at least 1",
		},
		{
			name:        "cache size too large",
			mutate:      func(c *Config) { c.CacheSize = 2000 },
			errorString: "invalid cache size 2000: must be at most 1000",
		},
		{
			name:        "negative cache ttl",
			mutate:      func(c *Config) { c.CacheTTL = -time.Second },
			errorString: "invalid cache ttl -1s: must not be negative",
		},
		{
			name:        "cleanup interval too short",
			mutate:      func(c *Config) { c.CacheCleanupInterval = 500 * time.Millisecond },
			errorString: "invalid cache cleanup interval 500ms: must be at least 1 second",
		},
		{
			name:        "rate limit zero",
			mutate:      func(c *Config) { c.RateLimitRPM = 0 },
			errorString: "invalid rate limit 0: must be at least 1 request per minute",
		},
		{
			name:        "shutdown timeout too long",
			mutate:      func(c *Config) { c.ShutdownTimeout = 10 * time.Minute },
			errorString: "invalid shutdown timeout 10m0s: must be between 1 second and 5 minutes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.errorString == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}

func TestConfig_ValidateAggregatesErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Port = "0"
	cfg.RecentLimit = -1
	cfg.RateLimitRPM = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port 0")
	assert.Contains(t, err.Error(), "invalid recent limit -1")
	assert.Contains(t, err.Error(), "invalid rate limit 0")
}

func TestLoad(t *testing.T) {
	keys := []string{
		"PORT", "SHUTDOWN_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT", "DATA_DIR",
		"RECENT_LIMIT", "TOP_CATEGORIES", "CACHE_SIZE", "CACHE_TTL",
		"CACHE_CLEANUP_INTERVAL", "RATE_LIMIT_RPM",
	}
	for _, k := range keys {
		t.Setenv(k, "")
	}

	t.Run("default values", func(t *testing.T) {
		cfg := Load()
		assert.Equal(t, validConfig(), *cfg)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("environment variables", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("DATA_DIR", "/tmp/fintrack")
		t.Setenv("RECENT_LIMIT", "10")
		t.Setenv("CACHE_TTL", "45s")
		t.Setenv("RATE_LIMIT_RPM", "120")

		cfg := Load()
		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "/tmp/fintrack", cfg.DataDir)
		assert.Equal(t, 10, cfg.RecentLimit)
		assert.Equal(t, 45*time.Second, cfg.CacheTTL)
		assert.Equal(t, 120, cfg.RateLimitRPM)
	})

	t.Run("invalid environment variables use defaults", func(t *testing.T) {
		t.Setenv("RECENT_LIMIT", "many")
		t.Setenv("CACHE_TTL", "forever")

		cfg := Load()
		assert.Equal(t, 5, cfg.RecentLimit)
		assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	})
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), ".env")))
	})

	t.Run("values are exported", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("FINTRACK_TEST_KEY=from-dotenv\n"), 0o644))
		t.Setenv("FINTRACK_TEST_KEY", "")
		require.NoError(t, os.Unsetenv("FINTRACK_TEST_KEY"))

		require.NoError(t, LoadEnvFile(path))
		assert.Equal(t, "from-dotenv", os.Getenv("FINTRACK_TEST_KEY"))
	})
}
