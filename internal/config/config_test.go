package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadAppConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("APP_BASE_URL", "")

	cfg := LoadAppConfig()
	assert.Equal(t, "10000", cfg.Port)
	assert.Equal(t, "./public", cfg.PublicDir)
	assert.Equal(t, "", cfg.BaseURL)
}

func TestGetAppPort_PrefersPORT(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("PORT", "")
	assert.Equal(t, "8080", GetAppPort())

	t.Setenv("PORT", "9090")
	assert.Equal(t, "9090", GetAppPort())
}

func TestLoadAppConfig_TrimsBaseURL(t *testing.T) {
	t.Setenv("APP_BASE_URL", "https://example.test/")
	assert.Equal(t, "https://example.test", LoadAppConfig().BaseURL)
}

func TestLoadAdminConfig_NoDefaultKey(t *testing.T) {
	t.Setenv("ADMIN_KEY", "")
	assert.Equal(t, "", LoadAdminConfig().Key)

	t.Setenv("ADMIN_KEY", "s3cret")
	assert.Equal(t, "s3cret", LoadAdminConfig().Key)
}

func TestLoadRedisConfig(t *testing.T) {
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_STREAM_MAXLEN", "not-a-number")

	cfg := LoadRedisConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, int64(100000), cfg.MaxLen)
	assert.Equal(t, "withdrawal:events", cfg.Stream)
}

func TestGetEnvAsBool_Invalid(t *testing.T) {
	t.Setenv("SOME_FLAG", "maybe")
	assert.True(t, getEnvAsBool("SOME_FLAG", true))
}
