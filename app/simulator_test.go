package app

import (
	"context"
	"testing"

	"zygotrix/domain/core"
	"zygotrix/domain/genetics"
	"zygotrix/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimulator(t *testing.T) *Simulator {
	t.Helper()
	return NewSimulator(testkit.Registry(), nil, SimulatorConfig{})
}

func TestSimulateMendelianTraits(t *testing.T) {
	sim := newTestSimulator(t)
	ctx := context.Background()

	results, err := sim.SimulateMendelianTraits(ctx,
		map[string]string{"eye_color": "Bb"},
		map[string]string{"eye_color": "bb"},
		false,
	)
	require.NoError(t, err)
	require.Contains(t, results, "eye_color")

	result := results["eye_color"]
	assert.InDelta(t, 0.5, result.GenotypicRatios["Bb"], 1e-9)
	assert.InDelta(t, 0.5, result.GenotypicRatios["bb"], 1e-9)
	assert.InDelta(t, 0.5, result.PhenotypicRatios["Brown"], 1e-9)
	assert.InDelta(t, 0.5, result.PhenotypicRatios["Blue"], 1e-9)
}

func TestSimulateMendelianTraitsAsPercentages(t *testing.T) {
	sim := newTestSimulator(t)

	results, err := sim.SimulateMendelianTraits(context.Background(),
		map[string]string{"hair_color": "Hh"},
		map[string]string{"hair_color": "Hh"},
		true,
	)
	require.NoError(t, err)

	result := results["hair_color"]
	assert.InDelta(t, 75.0, result.PhenotypicRatios["Brown"], 1e-9)
	assert.InDelta(t, 25.0, result.PhenotypicRatios["Blonde"], 1e-9)
}

// Traits absent from either parent map or from the registry are
// skipped, never errors.
func TestSimulateMendelianTraitsSkips(t *testing.T) {
	sim := newTestSimulator(t)

	results, err := sim.SimulateMendelianTraits(context.Background(),
		map[string]string{"eye_color": "Bb", "unknown_trait": "Xx", "blood_type": "AO"},
		map[string]string{"eye_color": "bb", "unknown_trait": "Xx"},
		false,
	)
	require.NoError(t, err)

	assert.Contains(t, results, "eye_color")
	assert.NotContains(t, results, "unknown_trait") // not in registry
	assert.NotContains(t, results, "blood_type")    // missing from parent 2
}

func TestSimulateMendelianTraitsTooMany(t *testing.T) {
	sim := NewSimulator(testkit.Registry(), nil, SimulatorConfig{MaxTraits: 1})

	_, err := sim.SimulateMendelianTraits(context.Background(),
		map[string]string{"eye_color": "Bb", "hair_color": "Hh"},
		map[string]string{"eye_color": "bb", "hair_color": "hh"},
		false,
	)
	assert.ErrorIs(t, err, core.ErrTooManyTraits)
}

func TestSimulateMendelianTraitsInvalidGenotype(t *testing.T) {
	sim := newTestSimulator(t)

	_, err := sim.SimulateMendelianTraits(context.Background(),
		map[string]string{"eye_color": "XYZ"},
		map[string]string{"eye_color": "bb"},
		false,
	)
	assert.ErrorIs(t, err, core.ErrInvalidGenotype)
}

func TestSimulateJointPhenotypes(t *testing.T) {
	sim := newTestSimulator(t)

	joint, err := sim.SimulateJointPhenotypes(context.Background(),
		map[string]string{"eye_color": "Bb", "hair_texture": "Cc"},
		map[string]string{"eye_color": "Bb", "hair_texture": "Cc"},
		true,
	)
	require.NoError(t, err)

	assert.InDelta(t, 56.25, joint["Brown + Curly"], 1e-9)
	assert.InDelta(t, 18.75, joint["Brown + Straight"], 1e-9)
	assert.InDelta(t, 18.75, joint["Blue + Curly"], 1e-9)
	assert.InDelta(t, 6.25, joint["Blue + Straight"], 1e-9)
}

func TestSimulateJointPhenotypesEmpty(t *testing.T) {
	sim := newTestSimulator(t)

	joint, err := sim.SimulateJointPhenotypes(context.Background(),
		map[string]string{"not_registered": "Aa"},
		map[string]string{"not_registered": "Aa"},
		false,
	)
	require.NoError(t, err)
	assert.Empty(t, joint)
}

func TestPossibleGenotypes(t *testing.T) {
	sim := newTestSimulator(t)

	genotypes, err := sim.PossibleGenotypes([]string{"blood_type"})
	require.NoError(t, err)
	assert.Equal(t, []string{"AA", "AB", "AO", "BB", "BO", "OO"}, genotypes["blood_type"])
}

func TestPossibleGenotypesUnknownTrait(t *testing.T) {
	sim := newTestSimulator(t)

	_, err := sim.PossibleGenotypes([]string{"wings"})
	assert.ErrorIs(t, err, core.ErrTraitNotFound)
}

func TestSimulatePolygenicTrait(t *testing.T) {
	sim := newTestSimulator(t)

	score := sim.SimulatePolygenicTrait(
		map[string]float64{"rs1": 1.0, "rs2": 0.0},
		map[string]float64{"rs1": 2.0, "rs2": 0.0},
		map[string]float64{"rs1": 0.6, "rs2": -0.2},
	)
	assert.InDelta(t, 0.9, score, 1e-12)
}

func TestMissingTraits(t *testing.T) {
	sim := newTestSimulator(t)

	missing := sim.MissingTraits(
		map[string]string{"eye_color": "Bb", "tail_length": "Tt", "antenna": "Aa"},
		map[string]string{"eye_color": "bb", "tail_length": "tt", "antenna": "aa"},
	)
	assert.Equal(t, []string{"antenna", "tail_length"}, missing)
}

// The registry is copied at construction: mutating the source map must
// not leak into a live simulator.
func TestSimulatorRegistryIsolation(t *testing.T) {
	registry := map[string]genetics.Trait{"eye_color": testkit.EyeColor()}
	sim := NewSimulator(registry, nil, SimulatorConfig{})

	delete(registry, "eye_color")

	_, ok := sim.Trait("eye_color")
	assert.True(t, ok)
}
