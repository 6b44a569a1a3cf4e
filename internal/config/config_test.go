package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"economy", "business", "first"}, cfg.DefaultCabins)
	assert.Equal(t, OutputTable, cfg.Output)
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	require.NoError(t, Save(Config{DefaultCabins: []string{"economy"}, Output: OutputJSON}))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"economy"}, cfg.DefaultCabins)
	assert.Equal(t, OutputJSON, cfg.Output)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("FLYWISE_CABINS", "business, first")
	t.Setenv("FLYWISE_OUTPUT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"business", "first"}, cfg.DefaultCabins)
	assert.Equal(t, OutputJSON, cfg.Output)
}
