package genetics

// PolygenicCalculator computes additive polygenic scores from per-SNP
// dosages and effect weights. Stateless and safe for concurrent use.
type PolygenicCalculator struct{}

// NewPolygenicCalculator creates a polygenic calculator.
func NewPolygenicCalculator() PolygenicCalculator {
	return PolygenicCalculator{}
}

// CalculatePolygenicScore returns the expected offspring polygenic
// score: for each weighted SNP the expected dosage is the mean of the
// two parental dosages (independent allele transmission in
// expectation), and the score is the weight-dosage sum. A SNP missing
// from a parent's map counts as dosage 0.0, representing "no data,
// assume reference allele". The result is a real-valued score, not a
// probability; no normalization is applied.
func (PolygenicCalculator) CalculatePolygenicScore(parent1, parent2, weights map[string]float64) float64 {
	score := 0.0
	for snp, weight := range weights {
		dosage1 := parent1[snp]
		dosage2 := parent2[snp]
		expected := (dosage1 + dosage2) / 2.0
		score += expected * weight
	}
	return score
}
