// Package app orchestrates the genetics calculators behind the
// narrow entry points external callers consume.
package app

import (
	"context"
	"sort"

	"zygotrix/domain/core"
	"zygotrix/domain/genetics"
	"zygotrix/ports"
)

// DefaultMaxTraits bounds the joint-phenotype Cartesian product.
// Realistic crosses involve a handful of traits; the ceiling exists to
// stop combinatorial blow-up when many traits arrive in one request.
const DefaultMaxTraits = 5

// TraitResult pairs the genotypic and phenotypic probability
// distributions of a single-trait cross.
type TraitResult struct {
	GenotypicRatios  genetics.Distribution `json:"genotypic_ratios"`
	PhenotypicRatios genetics.Distribution `json:"phenotypic_ratios"`
}

// SimulatorConfig tunes the simulator.
type SimulatorConfig struct {
	// MaxTraits caps traits per request; <= 0 uses DefaultMaxTraits.
	MaxTraits int
}

// Simulator coordinates a trait registry against the Mendelian and
// polygenic calculators. The registry is copied at construction and
// never mutated afterwards, so a Simulator is safe to share across
// concurrent requests; swapping registries means constructing a new
// Simulator.
type Simulator struct {
	registry  map[string]genetics.Trait
	cross     ports.CrossCalculator
	mendelian genetics.MendelianCalculator
	polygenic genetics.PolygenicCalculator
	maxTraits int
}

// NewSimulator builds a simulator over the given trait registry. A nil
// cross calculator selects the exact analytical strategy.
func NewSimulator(registry map[string]genetics.Trait, cross ports.CrossCalculator, cfg SimulatorConfig) *Simulator {
	traits := make(map[string]genetics.Trait, len(registry))
	for key, trait := range registry {
		traits[key] = trait
	}

	maxTraits := cfg.MaxTraits
	if maxTraits <= 0 {
		maxTraits = DefaultMaxTraits
	}

	return &Simulator{
		registry:  traits,
		cross:     cross,
		mendelian: genetics.NewMendelianCalculator(),
		polygenic: genetics.NewPolygenicCalculator(),
		maxTraits: maxTraits,
	}
}

// TraitKeys returns the registered trait keys in sorted order.
func (s *Simulator) TraitKeys() []string {
	keys := make([]string, 0, len(s.registry))
	for key := range s.registry {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Trait looks up a registered trait definition.
func (s *Simulator) Trait(key string) (genetics.Trait, bool) {
	trait, ok := s.registry[key]
	return trait, ok
}

// sharedTraitKeys returns the sorted trait keys present in both parent
// maps, before any registry filtering.
func sharedTraitKeys(parent1, parent2 map[string]string) []string {
	keys := make([]string, 0, len(parent1))
	for key := range parent1 {
		if _, ok := parent2[key]; ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// crossGenotypes runs the configured cross strategy for one trait.
func (s *Simulator) crossGenotypes(ctx context.Context, parent1, parent2 string, trait genetics.Trait) (genetics.Distribution, error) {
	if s.cross != nil {
		return s.cross.Cross(ctx, parent1, parent2, trait)
	}
	return s.mendelian.OffspringGenotypeProbabilities(parent1, parent2, trait)
}

// SimulateMendelianTraits computes, for every trait present in the
// registry and in both parent maps, the offspring genotype and
// phenotype distributions. Traits absent from either parent map or from
// the registry are skipped silently; use MissingTraits to report the
// latter at the caller boundary. Genotype content errors propagate.
func (s *Simulator) SimulateMendelianTraits(ctx context.Context, parent1, parent2 map[string]string, asPercentages bool) (map[string]TraitResult, error) {
	shared := sharedTraitKeys(parent1, parent2)
	if len(shared) > s.maxTraits {
		return nil, core.NewTooManyTraitsError(s.maxTraits, len(shared))
	}

	results := make(map[string]TraitResult)
	for _, key := range shared {
		trait, ok := s.registry[key]
		if !ok {
			continue
		}

		genotypeProbs, err := s.crossGenotypes(ctx, parent1[key], parent2[key], trait)
		if err != nil {
			return nil, err
		}
		phenotypeProbs, err := trait.PhenotypeDistribution(genotypeProbs)
		if err != nil {
			return nil, err
		}

		if asPercentages {
			results[key] = TraitResult{
				GenotypicRatios:  genotypeProbs.ToPercentages(),
				PhenotypicRatios: phenotypeProbs.ToPercentages(),
			}
		} else {
			results[key] = TraitResult{
				GenotypicRatios:  genotypeProbs.Normalize(),
				PhenotypicRatios: phenotypeProbs,
			}
		}
	}
	return results, nil
}

// SimulateJointPhenotypes computes the combined phenotype distribution
// across independently-assorting traits, keyed by joint labels such as
// "Brown + Curly". The joint product is always evaluated analytically.
func (s *Simulator) SimulateJointPhenotypes(ctx context.Context, parent1, parent2 map[string]string, asPercentages bool) (genetics.Distribution, error) {
	shared := sharedTraitKeys(parent1, parent2)
	if len(shared) > s.maxTraits {
		return nil, core.NewTooManyTraitsError(s.maxTraits, len(shared))
	}

	joint, err := s.mendelian.JointPhenotypeProbabilities(parent1, parent2, s.registry)
	if err != nil {
		return nil, err
	}
	if asPercentages {
		return joint.ToPercentages(), nil
	}
	return joint, nil
}

// PossibleGenotypes lists every canonical genotype for the requested
// trait keys, sorted per trait. Unlike the cross paths, an unknown
// trait key is an error here: the caller asked about that trait
// specifically.
func (s *Simulator) PossibleGenotypes(traitKeys []string) (map[string][]string, error) {
	if len(traitKeys) > s.maxTraits {
		return nil, core.NewTooManyTraitsError(s.maxTraits, len(traitKeys))
	}

	result := make(map[string][]string, len(traitKeys))
	for _, key := range traitKeys {
		trait, ok := s.registry[key]
		if !ok {
			return nil, core.NewTraitNotFoundError(key)
		}
		genotypes := trait.AllGenotypes()
		sorted := make([]string, len(genotypes))
		copy(sorted, genotypes)
		sort.Strings(sorted)
		result[key] = sorted
	}
	return result, nil
}

// SimulatePolygenicTrait delegates to the polygenic calculator.
func (s *Simulator) SimulatePolygenicTrait(parent1, parent2, weights map[string]float64) float64 {
	return s.polygenic.CalculatePolygenicScore(parent1, parent2, weights)
}

// MissingTraits reports which trait keys were requested by both parents
// but are absent from the registry. The calculators skip these
// silently; the collaborator that aggregates results decides how to
// surface them.
func (s *Simulator) MissingTraits(parent1, parent2 map[string]string) []string {
	var missing []string
	for _, key := range sharedTraitKeys(parent1, parent2) {
		if _, ok := s.registry[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}
