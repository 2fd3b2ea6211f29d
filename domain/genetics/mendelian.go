package genetics

import (
	"sort"
	"strings"
)

// JointLabelSeparator joins per-trait phenotype labels into a joint
// phenotype key, e.g. "Brown + Curly".
const JointLabelSeparator = " + "

// MendelianCalculator computes offspring genotype probabilities from
// two parental genotypes. It is a pure function calculator: stateless
// between calls and safe for concurrent use.
type MendelianCalculator struct{}

// NewMendelianCalculator creates a Mendelian calculator.
func NewMendelianCalculator() MendelianCalculator {
	return MendelianCalculator{}
}

// GameteDistribution returns the probability of each allele symbol a
// parent transmits: each of the genotype's two symbols contributes
// count/2, so a homozygote yields a single symbol at 1.0 and a
// heterozygote two symbols at 0.5 each.
func (MendelianCalculator) GameteDistribution(genotype string, trait Trait) (Distribution, error) {
	canonical, err := trait.CanonicalGenotype(genotype)
	if err != nil {
		return nil, err
	}

	first, second, _ := trait.splitAlleles(canonical)
	gametes := Distribution{}
	gametes[first] += 0.5
	gametes[second] += 0.5
	return gametes, nil
}

// OffspringGenotypeProbabilities crosses two parental genotypes for a
// single trait: the outer product of the parents' gamete distributions,
// accumulated into canonical offspring genotypes and normalized.
// Parent order does not affect the result.
func (c MendelianCalculator) OffspringGenotypeProbabilities(parent1, parent2 string, trait Trait) (Distribution, error) {
	gametes1, err := c.GameteDistribution(parent1, trait)
	if err != nil {
		return nil, err
	}
	gametes2, err := c.GameteDistribution(parent2, trait)
	if err != nil {
		return nil, err
	}

	genotypeProbs := Distribution{}
	for allele1, prob1 := range gametes1 {
		for allele2, prob2 := range gametes2 {
			genotype, err := trait.CanonicalGenotype(allele1 + allele2)
			if err != nil {
				return nil, err
			}
			genotypeProbs[genotype] += prob1 * prob2
		}
	}
	return genotypeProbs.Normalize(), nil
}

// JointPhenotypeProbabilities combines per-trait phenotype
// distributions across independently-assorting traits into one joint
// distribution. Trait keys are iterated in sorted order so the same
// key set always produces the same joint label ordering; traits absent
// from either parent's map are excluded, not an error. Zero resolvable
// traits yields an empty distribution.
func (c MendelianCalculator) JointPhenotypeProbabilities(parent1, parent2 map[string]string, traits map[string]Trait) (Distribution, error) {
	keys := make([]string, 0, len(traits))
	for key := range traits {
		_, ok1 := parent1[key]
		_, ok2 := parent2[key]
		if ok1 && ok2 {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	if len(keys) == 0 {
		return Distribution{}, nil
	}

	perTrait := make([]Distribution, 0, len(keys))
	for _, key := range keys {
		trait := traits[key]
		genotypeProbs, err := c.OffspringGenotypeProbabilities(parent1[key], parent2[key], trait)
		if err != nil {
			return nil, err
		}
		phenotypeProbs, err := trait.PhenotypeDistribution(genotypeProbs)
		if err != nil {
			return nil, err
		}
		perTrait = append(perTrait, phenotypeProbs)
	}

	// Cartesian product over the per-trait phenotype distributions.
	// Duplicate joint labels, if any, accumulate.
	joint := Distribution{"": 1.0}
	for _, phenotypeProbs := range perTrait {
		next := make(Distribution, len(joint)*len(phenotypeProbs))
		for prefix, prefixProb := range joint {
			for _, phenotype := range phenotypeProbs.Keys() {
				label := phenotype
				if prefix != "" {
					label = prefix + JointLabelSeparator + phenotype
				}
				next[label] += prefixProb * phenotypeProbs[phenotype]
			}
		}
		joint = next
	}
	return joint.Normalize(), nil
}

// SplitJointLabel decomposes a joint phenotype key back into its
// per-trait labels.
func SplitJointLabel(label string) []string {
	return strings.Split(label, JointLabelSeparator)
}
