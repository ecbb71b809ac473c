package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "murmur", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.False(t, cfg.AuthEnabled)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("AUTH_ENABLED", "true")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.AuthEnabled)
}
