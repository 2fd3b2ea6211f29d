// Package montecarlo implements the sampling cross strategy: offspring
// genotypes are drawn from the parents' gamete distributions and
// aggregated into empirical frequencies. It exists for parity with the
// high-performance simulation engine; the exact strategy remains the
// reference implementation.
package montecarlo

import (
	"context"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"zygotrix/domain/genetics"
	"zygotrix/ports"
)

const (
	DefaultIterations = 1000
	DefaultWorkers    = 4
)

// Config tunes the sampler.
type Config struct {
	// Iterations is the number of offspring sampled per cross; <= 0
	// uses DefaultIterations.
	Iterations int
	// Workers shards sampling across goroutines; <= 0 uses
	// DefaultWorkers.
	Workers int
	// Seed makes a cross reproducible. Worker w derives its source
	// from Seed+w, so results are stable for a fixed worker count.
	Seed int64
}

// Calculator samples offspring genotypes concurrently.
type Calculator struct {
	iterations int
	workers    int
	seed       int64
	mendelian  genetics.MendelianCalculator
}

var _ ports.CrossCalculator = (*Calculator)(nil)

// NewCalculator creates a Monte Carlo calculator.
func NewCalculator(cfg Config) *Calculator {
	iterations := cfg.Iterations
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if workers > iterations {
		workers = iterations
	}
	return &Calculator{
		iterations: iterations,
		workers:    workers,
		seed:       cfg.Seed,
		mendelian:  genetics.NewMendelianCalculator(),
	}
}

// Cross estimates the offspring genotype distribution by drawing one
// allele from each parent's gamete distribution per iteration and
// canonicalizing the pair. Counts are aggregated per worker and merged
// once, so no mutable state is shared while sampling.
func (c *Calculator) Cross(ctx context.Context, parent1, parent2 string, trait genetics.Trait) (genetics.Distribution, error) {
	gametes1, err := c.mendelian.GameteDistribution(parent1, trait)
	if err != nil {
		return nil, err
	}
	gametes2, err := c.mendelian.GameteDistribution(parent2, trait)
	if err != nil {
		return nil, err
	}

	perWorker := make([]map[string]int, c.workers)
	g, ctx := errgroup.WithContext(ctx)

	base := c.iterations / c.workers
	extra := c.iterations % c.workers
	for w := 0; w < c.workers; w++ {
		draws := base
		if w < extra {
			draws++
		}
		worker := w
		g.Go(func() error {
			rng := rand.New(rand.NewSource(c.seed + int64(worker)))
			counts := make(map[string]int)
			for i := 0; i < draws; i++ {
				if i%256 == 0 && ctx.Err() != nil {
					return ctx.Err()
				}
				allele1 := gametes1.Sample(rng)
				allele2 := gametes2.Sample(rng)
				genotype, err := trait.CanonicalGenotype(allele1 + allele2)
				if err != nil {
					return err
				}
				counts[genotype]++
			}
			perWorker[worker] = counts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	dist := genetics.Distribution{}
	for _, counts := range perWorker {
		for genotype, n := range counts {
			dist[genotype] += float64(n)
		}
	}
	return dist.Normalize(), nil
}
