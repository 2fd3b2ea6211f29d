package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Simulator.MaxTraits)
	assert.Equal(t, 1000, cfg.MonteCarlo.Iterations)
	assert.Equal(t, int64(42), cfg.MonteCarlo.Seed)
	assert.InDelta(t, 0.01, cfg.GWAS.MAFThreshold, 1e-12)
	assert.Equal(t, 4, cfg.GWAS.Workers)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ZYGOTRIX_MAX_TRAITS", "8")
	t.Setenv("ZYGOTRIX_GWAS_MAF_THRESHOLD", "0.05")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Simulator.MaxTraits)
	assert.InDelta(t, 0.05, cfg.GWAS.MAFThreshold, 1e-12)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("ZYGOTRIX_MC_ITERATIONS", "lots")

	_, err := Load()
	assert.Error(t, err)
}
