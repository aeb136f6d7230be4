package config

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"business-simulator/domain"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 5, cfg.RateLimitCapacity)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.Equal(t, 24, cfg.ProjectionMonths)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("RATE_LIMIT_CAPACITY", "20")
	t.Setenv("PROJECTION_MONTHS", "36")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, 20, cfg.RateLimitCapacity)
	assert.Equal(t, 36, cfg.ProjectionMonths)
}

func TestLoad_EnvFile(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("LOG_LEVEL")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=debug\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("LOG_LEVEL") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_RejectsInvalid(t *testing.T) {
	t.Setenv("PROJECTION_MONTHS", "0")

	_, err := Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{
		HTTPAddr:          ":8080",
		RateLimitCapacity: 1,
		RateLimitWindow:   time.Second,
		ProjectionMonths:  24,
	}
	require.NoError(t, valid.Validate())

	broken := valid
	broken.HTTPAddr = ""
	assert.Error(t, broken.Validate())

	broken = valid
	broken.RateLimitWindow = 0
	assert.Error(t, broken.Validate())

	broken = valid
	broken.CacheTTL = -time.Second
	assert.Error(t, broken.Validate())
}

func TestValidate_ProjectionMonthsCeiling(t *testing.T) {
	cfg := Config{
		HTTPAddr:          ":8080",
		RateLimitCapacity: 1,
		RateLimitWindow:   time.Second,
		ProjectionMonths:  domain.MaxProjectionMonths,
	}
	require.NoError(t, cfg.Validate())

	cfg.ProjectionMonths = domain.MaxProjectionMonths + 1
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), strconv.Itoa(domain.MaxProjectionMonths))
}
