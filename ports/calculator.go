package ports

import (
	"context"

	"zygotrix/domain/genetics"
)

// CrossCalculator produces an offspring genotype distribution for a
// single-trait cross. The exact adapter evaluates the Punnett product
// analytically; the Monte Carlo adapter estimates it by sampling.
type CrossCalculator interface {
	Cross(ctx context.Context, parent1, parent2 string, trait genetics.Trait) (genetics.Distribution, error)
}
