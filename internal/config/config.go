package config

import (
	"os"
	"strconv"

	"zygotrix/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Simulator  SimulatorConfig
	MonteCarlo MonteCarloConfig
	GWAS       GWASConfig
}

// SimulatorConfig holds cross-simulation settings
type SimulatorConfig struct {
	// MaxTraits caps traits per request to bound the joint Cartesian
	// product.
	MaxTraits int
}

// MonteCarloConfig holds sampling-strategy settings
type MonteCarloConfig struct {
	Iterations int
	Workers    int
	Seed       int64
}

// GWASConfig holds association analysis settings
type GWASConfig struct {
	MAFThreshold float64
	Workers      int
}

// Load reads configuration from environment variables, falling back to
// defaults for anything unset.
func Load() (*Config, error) {
	maxTraits, err := getEnvInt("ZYGOTRIX_MAX_TRAITS", 5)
	if err != nil {
		return nil, err
	}
	iterations, err := getEnvInt("ZYGOTRIX_MC_ITERATIONS", 1000)
	if err != nil {
		return nil, err
	}
	mcWorkers, err := getEnvInt("ZYGOTRIX_MC_WORKERS", 4)
	if err != nil {
		return nil, err
	}
	seed, err := getEnvInt("ZYGOTRIX_MC_SEED", 42)
	if err != nil {
		return nil, err
	}
	mafThreshold, err := getEnvFloat("ZYGOTRIX_GWAS_MAF_THRESHOLD", 0.01)
	if err != nil {
		return nil, err
	}
	gwasWorkers, err := getEnvInt("ZYGOTRIX_GWAS_WORKERS", 4)
	if err != nil {
		return nil, err
	}

	return &Config{
		Simulator: SimulatorConfig{
			MaxTraits: maxTraits,
		},
		MonteCarlo: MonteCarloConfig{
			Iterations: iterations,
			Workers:    mcWorkers,
			Seed:       int64(seed),
		},
		GWAS: GWASConfig{
			MAFThreshold: mafThreshold,
			Workers:      gwasWorkers,
		},
	}, nil
}

func getEnvInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid integer for %s", key)
	}
	return value, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid float for %s", key)
	}
	return value, nil
}
