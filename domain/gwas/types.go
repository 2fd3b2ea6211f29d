// Package gwas defines the data model for genome-wide association
// analysis: SNP descriptors, per-sample dosage vectors, and association
// test results.
package gwas

import (
	"zygotrix/domain/core"
)

// MissingGenotype marks a sample with no call at a SNP. Valid dosages
// are 0 (homozygous reference), 1 (heterozygous), 2 (homozygous
// alternate).
const MissingGenotype = -9

// TestType selects the association test.
type TestType string

const (
	TestLinear    TestType = "linear"
	TestChiSquare TestType = "chi_square"
)

// SNP identifies a single nucleotide polymorphism.
type SNP struct {
	RSID       string `json:"rsid"`
	Chromosome int    `json:"chromosome"`
	Position   uint64 `json:"position"`
	RefAllele  string `json:"ref_allele"`
	AltAllele  string `json:"alt_allele"`
}

// Sample carries one individual's phenotype and its dosage at every
// requested SNP, indexed in request order.
type Sample struct {
	SampleID  string  `json:"sample_id"`
	Phenotype float64 `json:"phenotype"`
	Genotypes []int   `json:"genotypes"`
}

// Request describes an association sweep.
type Request struct {
	SNPs         []SNP    `json:"snps"`
	Samples      []Sample `json:"samples"`
	TestType     TestType `json:"test_type"`
	MAFThreshold float64  `json:"maf_threshold"`
	Workers      int      `json:"workers,omitempty"`
}

// AssociationResult is the per-SNP test outcome.
type AssociationResult struct {
	RSID       string  `json:"rsid"`
	Chromosome int     `json:"chromosome"`
	Position   uint64  `json:"position"`
	RefAllele  string  `json:"ref_allele"`
	AltAllele  string  `json:"alt_allele"`
	Beta       float64 `json:"beta"`
	SE         float64 `json:"se"`
	TStat      float64 `json:"t_stat"`
	PValue     float64 `json:"p_value"`
	MAF        float64 `json:"maf"`
	NSamples   int     `json:"n_samples"`
}

// Response aggregates a sweep: results for SNPs that passed quality
// control, counts for the rest.
type Response struct {
	AnalysisID   core.AnalysisID     `json:"analysis_id"`
	Results      []AssociationResult `json:"results"`
	SNPsTested   int                 `json:"snps_tested"`
	SNPsFiltered int                 `json:"snps_filtered"`
	RuntimeMs    int64               `json:"runtime_ms"`
}

// MinorAlleleFrequency computes the MAF over the called genotypes of
// one SNP; missing calls are excluded from both counts.
func MinorAlleleFrequency(genotypes []int) float64 {
	altAlleles := 0
	totalAlleles := 0
	for _, g := range genotypes {
		if g < 0 || g > 2 {
			continue
		}
		altAlleles += g
		totalAlleles += 2
	}
	if totalAlleles == 0 {
		return 0.0
	}
	freq := float64(altAlleles) / float64(totalAlleles)
	if freq > 0.5 {
		return 1.0 - freq
	}
	return freq
}
