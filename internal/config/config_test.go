package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/reqschema/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.Default(), cfg)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("REQSCHEMA_PRIMARY_ENV", "production")
	t.Setenv("REQSCHEMA_LOGGING_LEVEL", "debug")
	t.Setenv("REQSCHEMA_LOGGING_FORMAT", "json")
	t.Setenv("REQSCHEMA_SCHEMAS_DIR", "/etc/reqschema")
	t.Setenv("REQSCHEMA_SERVER_PORT", "9000")
	t.Setenv("REQSCHEMA_SERVER_TIMEOUT_READ", "5")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/etc/reqschema", cfg.Schemas.Dir)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.Timeout.Read)
	assert.Equal(t, 30, cfg.Server.Timeout.Write)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("REQSCHEMA_LOGGING_LEVEL", "loud")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoadRejectsNonNumericPort(t *testing.T) {
	t.Setenv("REQSCHEMA_SERVER_PORT", "http")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestValidateCatchesOverrides(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	cfg.Server.Port = "http"
	assert.ErrorContains(t, cfg.Validate(), "config validation failed")
}
