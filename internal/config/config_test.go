package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, ".", cfg.DataDir)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("GOLFSHOTS_ADDR", ":9090")
	t.Setenv("GOLFSHOTS_DATA_DIR", "/var/lib/golfshots")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/var/lib/golfshots", cfg.DataDir)
}
