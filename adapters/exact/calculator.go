// Package exact implements the analytical cross strategy: the Punnett
// outer product evaluated in closed form.
package exact

import (
	"context"

	"zygotrix/domain/genetics"
	"zygotrix/ports"
)

// Calculator is the reference CrossCalculator implementation.
type Calculator struct {
	mendelian genetics.MendelianCalculator
}

var _ ports.CrossCalculator = (*Calculator)(nil)

// NewCalculator creates an exact calculator.
func NewCalculator() *Calculator {
	return &Calculator{mendelian: genetics.NewMendelianCalculator()}
}

// Cross delegates to the domain Mendelian calculator. The context is
// accepted for interface symmetry with sampling strategies; the exact
// computation completes in microseconds and is never cancelled.
func (c *Calculator) Cross(_ context.Context, parent1, parent2 string, trait genetics.Trait) (genetics.Distribution, error) {
	return c.mendelian.OffspringGenotypeProbabilities(parent1, parent2, trait)
}
