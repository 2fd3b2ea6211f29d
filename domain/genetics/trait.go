package genetics

import (
	"strings"

	"zygotrix/domain/core"
)

// Trait is the immutable definition of a single locus: an ordered
// allele alphabet and a canonical-genotype to phenotype map.
//
// Allele order is the declaration order, not alphabetical; it encodes
// the dominance convention for the trait and defines the canonical
// genotype ordering. Symbols may be multi-character (e.g. "Rh+"), so
// genotype parsing is symbol-aware.
type Trait struct {
	Name         string
	Alleles      []string
	PhenotypeMap map[string]string
	Description  string
	Metadata     map[string]string
}

// NewTrait builds a Trait, de-duplicating alleles while preserving
// declaration order and copying the phenotype map so the definition is
// immutable with respect to its inputs.
func NewTrait(name string, alleles []string, phenotypeMap map[string]string) Trait {
	seen := make(map[string]bool, len(alleles))
	deduped := make([]string, 0, len(alleles))
	for _, allele := range alleles {
		if allele == "" || seen[allele] {
			continue
		}
		seen[allele] = true
		deduped = append(deduped, allele)
	}

	mapped := make(map[string]string, len(phenotypeMap))
	for genotype, phenotype := range phenotypeMap {
		mapped[genotype] = phenotype
	}

	return Trait{
		Name:         name,
		Alleles:      deduped,
		PhenotypeMap: mapped,
	}
}

// alleleIndex returns the declaration index of an allele symbol, or -1.
func (t Trait) alleleIndex(symbol string) int {
	for i, allele := range t.Alleles {
		if allele == symbol {
			return i
		}
	}
	return -1
}

// splitAlleles decomposes a cleaned genotype string into its two
// constituent allele symbols. Split positions are scanned so the
// longest first symbol wins when a decomposition is ambiguous, which
// keeps multi-character alleles ("Rh+") from being shredded into
// single characters.
func (t Trait) splitAlleles(cleaned string) (string, string, bool) {
	for i := len(cleaned) - 1; i >= 1; i-- {
		first := cleaned[:i]
		second := cleaned[i:]
		if t.alleleIndex(first) >= 0 && t.alleleIndex(second) >= 0 {
			return first, second, true
		}
	}
	return "", "", false
}

// CanonicalGenotype parses a raw genotype into exactly two allele
// symbols and re-joins them in the trait's canonical (declaration)
// order. Returns ErrInvalidGenotype when the string does not decompose
// into two known alleles.
//
// Canonicalization is idempotent: feeding the result back in returns
// the same string.
func (t Trait) CanonicalGenotype(genotype string) (string, error) {
	cleaned := strings.ReplaceAll(genotype, " ", "")
	first, second, ok := t.splitAlleles(cleaned)
	if !ok {
		return "", core.NewInvalidGenotypeError(t.Name, genotype, t.Alleles)
	}
	if t.alleleIndex(first) > t.alleleIndex(second) {
		first, second = second, first
	}
	return first + second, nil
}

// PhenotypeFor maps a genotype to its phenotype label. When the
// canonical genotype has no phenotype entry the canonical genotype
// itself is returned; callers that need strict coverage must validate
// the trait with ValidatePhenotypeCoverage first.
func (t Trait) PhenotypeFor(genotype string) (string, error) {
	canonical, err := t.CanonicalGenotype(genotype)
	if err != nil {
		return "", err
	}
	if phenotype, ok := t.PhenotypeMap[canonical]; ok {
		return phenotype, nil
	}
	return canonical, nil
}

// AllGenotypes enumerates every canonical diploid genotype derivable
// from the allele alphabet, in deterministic declaration-pair order.
func (t Trait) AllGenotypes() []string {
	genotypes := make([]string, 0, len(t.Alleles)*(len(t.Alleles)+1)/2)
	for i := 0; i < len(t.Alleles); i++ {
		for j := i; j < len(t.Alleles); j++ {
			genotypes = append(genotypes, t.Alleles[i]+t.Alleles[j])
		}
	}
	return genotypes
}

// PhenotypeDistribution aggregates genotype probabilities into
// phenotype probabilities, re-normalizing to guard against floating
// drift after repeated aggregation.
func (t Trait) PhenotypeDistribution(genotypeProbs Distribution) (Distribution, error) {
	phenotypeProbs := make(Distribution, len(genotypeProbs))
	for genotype, probability := range genotypeProbs {
		phenotype, err := t.PhenotypeFor(genotype)
		if err != nil {
			return nil, err
		}
		phenotypeProbs[phenotype] += probability
	}
	return phenotypeProbs.Normalize(), nil
}
