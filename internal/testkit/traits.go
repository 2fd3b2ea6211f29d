// Package testkit provides the canonical trait fixtures used by tests
// and by the CLI's built-in registry.
package testkit

import (
	"zygotrix/domain/genetics"
)

// EyeColor models Brown dominant, Green intermediate, Blue recessive.
func EyeColor() genetics.Trait {
	return genetics.NewTrait("Eye Color", []string{"B", "G", "b"}, map[string]string{
		"BB": "Brown",
		"BG": "Brown",
		"Bb": "Brown",
		"GG": "Green",
		"Gb": "Green",
		"bb": "Blue",
	})
}

// BloodType models the ABO system with codominant A/B and recessive O.
func BloodType() genetics.Trait {
	return genetics.NewTrait("Blood Type", []string{"A", "B", "O"}, map[string]string{
		"AA": "A",
		"AO": "A",
		"BB": "B",
		"BO": "B",
		"AB": "AB",
		"OO": "O",
	})
}

// HairColor models Brown dominant over Blonde.
func HairColor() genetics.Trait {
	return genetics.NewTrait("Hair Color", []string{"H", "h"}, map[string]string{
		"HH": "Brown",
		"Hh": "Brown",
		"hh": "Blonde",
	})
}

// HairTexture models Curly dominant over Straight.
func HairTexture() genetics.Trait {
	return genetics.NewTrait("Hair Texture", []string{"C", "c"}, map[string]string{
		"CC": "Curly",
		"Cc": "Curly",
		"cc": "Straight",
	})
}

// RhFactor exercises multi-character allele symbols.
func RhFactor() genetics.Trait {
	return genetics.NewTrait("Rh Factor", []string{"Rh+", "Rh-"}, map[string]string{
		"Rh+Rh+": "Rh Positive",
		"Rh+Rh-": "Rh Positive",
		"Rh-Rh-": "Rh Negative",
	})
}

// Registry returns the default trait registry.
func Registry() map[string]genetics.Trait {
	return map[string]genetics.Trait{
		"eye_color":    EyeColor(),
		"blood_type":   BloodType(),
		"hair_color":   HairColor(),
		"hair_texture": HairTexture(),
		"rh_factor":    RhFactor(),
	}
}
