package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServerConfig(t *testing.T) {
	t.Setenv("BACKOFFICE_DB_DSN", "postgres://localhost/backoffice")
	t.Setenv("BACKOFFICE_HTTP_PORT", "9000")
	t.Setenv("BACKOFFICE_OTEL_ENABLED", "true")

	cfg, err := LoadServerConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/backoffice", cfg.Database.DSN)
	assert.Equal(t, "9000", cfg.HTTP.Port)
	assert.True(t, cfg.Observability.OTelEnabled)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout, "shutdown timeout has a default")
}

func TestLoadServerConfig_RequiresDSN(t *testing.T) {
	cfg, err := LoadServerConfig()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDSNRequired)
	assert.Nil(t, cfg)
}
