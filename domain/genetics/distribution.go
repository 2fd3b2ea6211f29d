package genetics

import (
	"math/rand"
	"sort"
)

// Distribution maps an outcome key (genotype, phenotype, or joint
// phenotype label) to a non-negative probability weight.
type Distribution map[string]float64

// Sum returns the total weight of the distribution.
func (d Distribution) Sum() float64 {
	total := 0.0
	for _, p := range d {
		total += p
	}
	return total
}

// Normalize returns a fresh distribution whose values sum to 1.0.
// A zero-total input resolves to an all-zero distribution rather than
// NaN; callers treat that as the documented degenerate case, not an
// error.
func (d Distribution) Normalize() Distribution {
	total := d.Sum()
	out := make(Distribution, len(d))
	if total == 0 {
		for key := range d {
			out[key] = 0.0
		}
		return out
	}
	for key, p := range d {
		out[key] = p / total
	}
	return out
}

// ToPercentages returns a normalized copy scaled to the 0-100 range.
func (d Distribution) ToPercentages() Distribution {
	normalized := d.Normalize()
	out := make(Distribution, len(normalized))
	for key, p := range normalized {
		out[key] = p * 100.0
	}
	return out
}

// Keys returns the outcome keys in sorted order.
func (d Distribution) Keys() []string {
	keys := make([]string, 0, len(d))
	for key := range d {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Sample draws a single outcome key proportionally to its weight.
// Iteration runs over sorted keys so a seeded source yields a
// reproducible draw.
func (d Distribution) Sample(rng *rand.Rand) string {
	normalized := d.Normalize()
	keys := normalized.Keys()
	if len(keys) == 0 {
		return ""
	}

	threshold := rng.Float64()
	cumulative := 0.0
	for _, key := range keys {
		cumulative += normalized[key]
		if threshold <= cumulative {
			return key
		}
	}
	// Floating point rounding can leave the threshold above the final
	// cumulative sum.
	return keys[0]
}
