package genetics

import (
	"fmt"
	"sort"
)

// CoverageResult reports whether a candidate phenotype map exactly
// covers every canonical genotype derivable from an allele list.
// It is a structured pass/fail value, never an abort: the caller
// decides whether to reject the trait definition.
type CoverageResult struct {
	Passed     bool     `json:"passed"`
	Missing    []string `json:"missing,omitempty"`
	Unexpected []string `json:"unexpected,omitempty"`
	Errors     []string `json:"errors,omitempty"`
}

// ValidatePhenotypeCoverage checks 1:1 coverage between the canonical
// genotype set of an allele list and the keys of a candidate phenotype
// map. Missing and unexpected genotypes are disjoint error classes,
// both surfaced as human-readable strings.
func ValidatePhenotypeCoverage(alleles []string, phenotypeMap map[string]string) CoverageResult {
	if len(alleles) == 0 {
		return CoverageResult{
			Errors: []string{"Alleles list cannot be empty"},
		}
	}

	// A throwaway trait gives us canonicalization over the candidate
	// allele list without requiring a registered definition.
	trait := NewTrait("coverage", alleles, phenotypeMap)

	expected := make(map[string]bool)
	for _, genotype := range trait.AllGenotypes() {
		expected[genotype] = true
	}

	provided := make(map[string]bool, len(phenotypeMap))
	var unexpected []string
	for key := range phenotypeMap {
		canonical, err := trait.CanonicalGenotype(key)
		if err != nil {
			// Keys that do not even parse against the allele list are
			// unexpected by definition.
			unexpected = append(unexpected, key)
			continue
		}
		provided[canonical] = true
		if !expected[canonical] {
			unexpected = append(unexpected, key)
		}
	}

	var missing []string
	for genotype := range expected {
		if !provided[genotype] {
			missing = append(missing, genotype)
		}
	}

	sort.Strings(missing)
	sort.Strings(unexpected)

	result := CoverageResult{
		Missing:    missing,
		Unexpected: unexpected,
	}
	for _, genotype := range missing {
		result.Errors = append(result.Errors, fmt.Sprintf("Missing phenotype mapping for genotype %q", genotype))
	}
	for _, key := range unexpected {
		result.Errors = append(result.Errors, fmt.Sprintf("Unexpected phenotype mapping for %q", key))
	}
	result.Passed = len(result.Errors) == 0
	return result
}
