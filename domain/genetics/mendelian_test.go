package genetics

import (
	"testing"

	"zygotrix/domain/core"
)

func bloodTypeTrait() Trait {
	return NewTrait("Blood Type", []string{"A", "B", "O"}, map[string]string{
		"AA": "A",
		"AO": "A",
		"BB": "B",
		"BO": "B",
		"AB": "AB",
		"OO": "O",
	})
}

func hairTextureTrait() Trait {
	return NewTrait("Hair Texture", []string{"C", "c"}, map[string]string{
		"CC": "Curly",
		"Cc": "Curly",
		"cc": "Straight",
	})
}

// TestGameteDistribution verifies the segregation split: heterozygotes
// transmit each allele at 0.5, homozygotes a single allele at 1.0.
func TestGameteDistribution(t *testing.T) {
	calc := NewMendelianCalculator()
	trait := eyeColorTrait()

	gametes, err := calc.GameteDistribution("Bb", trait)
	if err != nil {
		t.Fatalf("GameteDistribution returned error: %v", err)
	}
	if !approxEqual(gametes["B"], 0.5) || !approxEqual(gametes["b"], 0.5) {
		t.Errorf("heterozygous gametes = %v, want B=0.5 b=0.5", gametes)
	}

	gametes, err = calc.GameteDistribution("bb", trait)
	if err != nil {
		t.Fatalf("GameteDistribution returned error: %v", err)
	}
	if len(gametes) != 1 || !approxEqual(gametes["b"], 1.0) {
		t.Errorf("homozygous gametes = %v, want b=1.0", gametes)
	}
}

// TestOffspringProbabilitiesMonohybrid covers the Bb x bb testcross:
// genotypes split 50/50, phenotypes Brown/Blue 50/50.
func TestOffspringProbabilitiesMonohybrid(t *testing.T) {
	calc := NewMendelianCalculator()
	trait := eyeColorTrait()

	genotypes, err := calc.OffspringGenotypeProbabilities("Bb", "bb", trait)
	if err != nil {
		t.Fatalf("OffspringGenotypeProbabilities returned error: %v", err)
	}
	if !approxEqual(genotypes["Bb"], 0.5) || !approxEqual(genotypes["bb"], 0.5) {
		t.Errorf("genotype distribution = %v, want Bb=0.5 bb=0.5", genotypes)
	}
	assertNormalized(t, genotypes)

	phenotypes, err := trait.PhenotypeDistribution(genotypes)
	if err != nil {
		t.Fatalf("PhenotypeDistribution returned error: %v", err)
	}
	if !approxEqual(phenotypes["Brown"], 0.5) || !approxEqual(phenotypes["Blue"], 0.5) {
		t.Errorf("phenotype distribution = %v, want Brown=0.5 Blue=0.5", phenotypes)
	}
}

// TestOffspringProbabilitiesABO covers the three-allele AO x BO cross.
func TestOffspringProbabilitiesABO(t *testing.T) {
	calc := NewMendelianCalculator()
	trait := bloodTypeTrait()

	genotypes, err := calc.OffspringGenotypeProbabilities("AO", "BO", trait)
	if err != nil {
		t.Fatalf("OffspringGenotypeProbabilities returned error: %v", err)
	}
	for _, genotype := range []string{"AB", "AO", "BO", "OO"} {
		if !approxEqual(genotypes[genotype], 0.25) {
			t.Errorf("genotype %q = %v, want 0.25", genotype, genotypes[genotype])
		}
	}
	assertNormalized(t, genotypes)

	phenotypes, err := trait.PhenotypeDistribution(genotypes)
	if err != nil {
		t.Fatalf("PhenotypeDistribution returned error: %v", err)
	}
	for _, phenotype := range []string{"A", "B", "AB", "O"} {
		if !approxEqual(phenotypes[phenotype], 0.25) {
			t.Errorf("phenotype %q = %v, want 0.25", phenotype, phenotypes[phenotype])
		}
	}
}

// TestOffspringProbabilitiesSymmetric verifies parent order is
// irrelevant.
func TestOffspringProbabilitiesSymmetric(t *testing.T) {
	calc := NewMendelianCalculator()
	trait := bloodTypeTrait()

	forward, err := calc.OffspringGenotypeProbabilities("AO", "BB", trait)
	if err != nil {
		t.Fatalf("OffspringGenotypeProbabilities returned error: %v", err)
	}
	reverse, err := calc.OffspringGenotypeProbabilities("BB", "AO", trait)
	if err != nil {
		t.Fatalf("OffspringGenotypeProbabilities returned error: %v", err)
	}

	if len(forward) != len(reverse) {
		t.Fatalf("asymmetric support: %v vs %v", forward, reverse)
	}
	for genotype, prob := range forward {
		if !approxEqual(reverse[genotype], prob) {
			t.Errorf("genotype %q: %v vs %v", genotype, prob, reverse[genotype])
		}
	}
}

// TestOffspringProbabilitiesInvalidGenotype verifies parse errors
// propagate uncaught from the trait.
func TestOffspringProbabilitiesInvalidGenotype(t *testing.T) {
	calc := NewMendelianCalculator()
	trait := eyeColorTrait()

	_, err := calc.OffspringGenotypeProbabilities("XYZ", "bb", trait)
	if !core.IsInvalidGenotypeError(err) {
		t.Errorf("error = %v, want ErrInvalidGenotype", err)
	}
}

// TestJointPhenotypeProbabilities covers the dihybrid Bb x Bb with
// Cc x Cc cross and its 9:3:3:1 joint distribution.
func TestJointPhenotypeProbabilities(t *testing.T) {
	calc := NewMendelianCalculator()
	traits := map[string]Trait{
		"eye_color":    eyeColorTrait(),
		"hair_texture": hairTextureTrait(),
	}
	parent1 := map[string]string{"eye_color": "Bb", "hair_texture": "Cc"}
	parent2 := map[string]string{"eye_color": "Bb", "hair_texture": "Cc"}

	joint, err := calc.JointPhenotypeProbabilities(parent1, parent2, traits)
	if err != nil {
		t.Fatalf("JointPhenotypeProbabilities returned error: %v", err)
	}

	want := map[string]float64{
		"Brown + Curly":    0.5625,
		"Brown + Straight": 0.1875,
		"Blue + Curly":     0.1875,
		"Blue + Straight":  0.0625,
	}
	if len(joint) != len(want) {
		t.Fatalf("joint distribution = %v, want %d keys", joint, len(want))
	}
	for label, prob := range want {
		if !approxEqual(joint[label], prob) {
			t.Errorf("joint[%q] = %v, want %v", label, joint[label], prob)
		}
	}
	assertNormalized(t, joint)
}

// TestJointPhenotypeLabelOrderIsSortedByTraitKey verifies the joint
// label order depends on trait keys, not registration order: keys sort
// eye_color < hair_texture, so eye phenotypes always come first.
func TestJointPhenotypeLabelOrderIsSortedByTraitKey(t *testing.T) {
	calc := NewMendelianCalculator()
	traits := map[string]Trait{
		"hair_texture": hairTextureTrait(),
		"eye_color":    eyeColorTrait(),
	}
	parent1 := map[string]string{"eye_color": "bb", "hair_texture": "cc"}
	parent2 := map[string]string{"eye_color": "bb", "hair_texture": "cc"}

	joint, err := calc.JointPhenotypeProbabilities(parent1, parent2, traits)
	if err != nil {
		t.Fatalf("JointPhenotypeProbabilities returned error: %v", err)
	}
	if !approxEqual(joint["Blue + Straight"], 1.0) {
		t.Errorf("joint = %v, want {\"Blue + Straight\": 1.0}", joint)
	}
}

// TestJointPhenotypeSkipsMissingTraits verifies a trait absent from one
// parent's map is silently excluded.
func TestJointPhenotypeSkipsMissingTraits(t *testing.T) {
	calc := NewMendelianCalculator()
	traits := map[string]Trait{
		"eye_color":    eyeColorTrait(),
		"hair_texture": hairTextureTrait(),
	}
	parent1 := map[string]string{"eye_color": "Bb", "hair_texture": "Cc"}
	parent2 := map[string]string{"eye_color": "bb"}

	joint, err := calc.JointPhenotypeProbabilities(parent1, parent2, traits)
	if err != nil {
		t.Fatalf("JointPhenotypeProbabilities returned error: %v", err)
	}
	if !approxEqual(joint["Brown"], 0.5) || !approxEqual(joint["Blue"], 0.5) {
		t.Errorf("joint = %v, want Brown=0.5 Blue=0.5", joint)
	}
}

// TestJointPhenotypeNoResolvableTraits verifies the empty-mapping edge
// case: zero resolvable traits is not an error.
func TestJointPhenotypeNoResolvableTraits(t *testing.T) {
	calc := NewMendelianCalculator()

	joint, err := calc.JointPhenotypeProbabilities(
		map[string]string{"eye_color": "Bb"},
		map[string]string{"hair_texture": "Cc"},
		map[string]Trait{"eye_color": eyeColorTrait()},
	)
	if err != nil {
		t.Fatalf("JointPhenotypeProbabilities returned error: %v", err)
	}
	if len(joint) != 0 {
		t.Errorf("joint = %v, want empty distribution", joint)
	}
}

// TestJointPhenotypeCardinality verifies the independent assortment
// bound: at most the product of per-trait phenotype counts.
func TestJointPhenotypeCardinality(t *testing.T) {
	calc := NewMendelianCalculator()
	traits := map[string]Trait{
		"blood_type":   bloodTypeTrait(),
		"eye_color":    eyeColorTrait(),
		"hair_texture": hairTextureTrait(),
	}
	parent1 := map[string]string{"blood_type": "AO", "eye_color": "Bb", "hair_texture": "Cc"}
	parent2 := map[string]string{"blood_type": "BO", "eye_color": "Bb", "hair_texture": "Cc"}

	joint, err := calc.JointPhenotypeProbabilities(parent1, parent2, traits)
	if err != nil {
		t.Fatalf("JointPhenotypeProbabilities returned error: %v", err)
	}
	// 4 blood types x 2 eye colors x 2 textures
	if len(joint) > 16 {
		t.Errorf("joint has %d keys, want at most 16", len(joint))
	}
	assertNormalized(t, joint)
}
