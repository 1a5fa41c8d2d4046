package env

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serverEnv struct {
	Host    string        `env:"TEST_HOST" default:"localhost"`
	Port    int           `env:"TEST_PORT" default:"8080"`
	Enabled bool          `env:"TEST_ENABLED" default:"true"`
	Timeout time.Duration `env:"TEST_TIMEOUT" default:"15s"`
	NoDef   string        `env:"TEST_NO_DEF"`
}

func TestParse(t *testing.T) {
	t.Setenv("TEST_HOST", "example.com")
	t.Setenv("TEST_PORT", "9090")
	t.Setenv("TEST_ENABLED", "false")
	t.Setenv("TEST_TIMEOUT", "1m30s")
	t.Setenv("TEST_NO_DEF", "foo")

	var cfg serverEnv
	require.NoError(t, Parse(&cfg))

	assert.Equal(t, "example.com", cfg.Host)
	assert.Equal(t, 9090, cfg.Port)
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 90*time.Second, cfg.Timeout)
	assert.Equal(t, "foo", cfg.NoDef)
}

func TestParse_Defaults(t *testing.T) {
	var cfg serverEnv
	require.NoError(t, Parse(&cfg))

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.Empty(t, cfg.NoDef)
}

func TestParse_EmptyStringRespected(t *testing.T) {
	// An explicitly empty variable counts as set and must not fall back to
	// the default.
	t.Setenv("TEST_HOST", "")

	var cfg serverEnv
	require.NoError(t, Parse(&cfg))

	assert.Equal(t, "", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
}

func TestParse_BadValueErrors(t *testing.T) {
	t.Setenv("TEST_PORT", "not-a-number")

	var cfg serverEnv
	err := Parse(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TEST_PORT")
}

func TestParse_EmbeddedStruct(t *testing.T) {
	type BaseEnv struct {
		DSN    string `env:"TEST_DSN"`
		Driver string `env:"TEST_DRIVER" default:"postgres"`
	}
	type appEnv struct {
		BaseEnv
		Name string `env:"TEST_APP_NAME" default:"myapp"`
	}

	t.Setenv("TEST_DSN", "postgres://localhost/db")
	t.Setenv("TEST_APP_NAME", "testapp")

	var cfg appEnv
	require.NoError(t, Parse(&cfg))

	assert.Equal(t, "postgres://localhost/db", cfg.DSN)
	assert.Equal(t, "postgres", cfg.Driver)
	assert.Equal(t, "testapp", cfg.Name)
}

type validatedEnv struct {
	Port int `env:"TEST_VALID_PORT" default:"0"`
}

var errPortRequired = errors.New("port is required")

func (c *validatedEnv) Validate() error {
	if c.Port <= 0 {
		return errPortRequired
	}
	return nil
}

func TestParse_RunsValidator(t *testing.T) {
	var cfg validatedEnv
	assert.ErrorIs(t, Parse(&cfg), errPortRequired)

	t.Setenv("TEST_VALID_PORT", "8080")
	require.NoError(t, Parse(&cfg))
	assert.Equal(t, 8080, cfg.Port)
}
