package bootstrap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigReadsEnvironment(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9100")
	t.Setenv("API_BASE_URL", "https://platform.classpoint.example/api")
	t.Setenv("REDIS_URI", "redis-box:6380")
	t.Setenv("REDIS_USE_SENTINEL", "true")
	t.Setenv("REDIS_SENTINEL_NODES", "s1:26379,s2:26379")
	t.Setenv("DEV", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9100", cfg.HTTP.Addr)
	assert.Equal(t, "https://platform.classpoint.example/api", cfg.API.BaseURL)
	assert.Equal(t, "redis-box:6380", cfg.Redis.URI)
	assert.True(t, cfg.Redis.UseSentinel)
	assert.Equal(t, []string{"s1:26379", "s2:26379"}, cfg.Redis.SentinelNodes)
	assert.True(t, cfg.IsDev)
}

func TestLoadConfigSanitizesBadDurations(t *testing.T) {
	t.Setenv("SESSION_TTL", "-1h")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 12*time.Hour, cfg.Session.TTL)
}

func TestLoadConfigRejectsUnparsableValues(t *testing.T) {
	t.Setenv("API_TIMEOUT", "soon")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoadConfigDevModeFromNodeEnv(t *testing.T) {
	t.Setenv("DEV", "false")
	t.Setenv("NODE_ENV", "development")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsDev)
}
