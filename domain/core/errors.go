package core

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors - centralized error definitions
var (
	// Trait definition errors
	ErrTraitNotFound = errors.New("trait not found in registry")
	ErrEmptyAlleles  = errors.New("alleles list cannot be empty")

	// Genotype errors
	ErrInvalidGenotype = errors.New("invalid genotype")

	// Simulation errors
	ErrTooManyTraits = errors.New("too many traits requested")

	// Association analysis errors
	ErrUnknownTestType = errors.New("unknown association test type")
	ErrEmptyRequest    = errors.New("empty SNPs or samples")
)

// Error constructors with context

// NewInvalidGenotypeError reports a genotype string that does not parse
// into two known allele symbols for the named trait.
func NewInvalidGenotypeError(trait, genotype string, alleles []string) error {
	return fmt.Errorf("%w: trait %q expects a diploid genotype composed of two valid alleles (got %q), allowed: [%s]",
		ErrInvalidGenotype, trait, genotype, strings.Join(alleles, " "))
}

func NewTraitNotFoundError(traitKey string) error {
	return fmt.Errorf("%w: %q", ErrTraitNotFound, traitKey)
}

func NewTooManyTraitsError(max, got int) error {
	return fmt.Errorf("%w: maximum %d traits allowed, got %d", ErrTooManyTraits, max, got)
}

// Error checking helpers

func IsInvalidGenotypeError(err error) bool {
	return errors.Is(err, ErrInvalidGenotype)
}

func IsTraitNotFoundError(err error) bool {
	return errors.Is(err, ErrTraitNotFound)
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidGenotype) ||
		errors.Is(err, ErrEmptyAlleles) ||
		errors.Is(err, ErrTooManyTraits)
}
