package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// t.Setenv registers the restore; the vars must be absent, not empty.
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("SEED_SALES", "")
	os.Unsetenv("HTTP_ADDR")
	os.Unsetenv("SEED_SALES")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":5000", cfg.HTTPAddr)
	assert.Equal(t, 50, cfg.SeedSales)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SEED_SALES", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 0, cfg.SeedSales)
}
