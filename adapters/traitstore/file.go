// Package traitstore provides trait-registry loading at the
// collaborator boundary: the engine itself never reads storage.
package traitstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"zygotrix/domain/core"
	"zygotrix/domain/genetics"
	"zygotrix/internal/errors"
	"zygotrix/ports"
)

// traitDefinition is the on-disk shape of one trait.
type traitDefinition struct {
	Name         string            `json:"name"`
	Alleles      []string          `json:"alleles"`
	PhenotypeMap map[string]string `json:"phenotype_map"`
	Description  string            `json:"description,omitempty"`
}

// FileRepository loads trait definitions from a JSON document mapping
// trait keys to definitions. Every definition must pass phenotype
// coverage validation; a registry with holes is rejected at load time
// rather than surfacing as lenient lookups later.
type FileRepository struct {
	path string
}

var (
	_ ports.TraitRepository = (*FileRepository)(nil)
	_ ports.TraitRepository = (*StaticRepository)(nil)
)

// NewFileRepository creates a repository reading from path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// LoadTraits reads, decodes, and validates the registry.
func (r *FileRepository) LoadTraits(_ context.Context) (map[string]genetics.Trait, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read trait registry %s", r.path)
	}

	var definitions map[string]traitDefinition
	if err := json.Unmarshal(raw, &definitions); err != nil {
		return nil, errors.Wrapf(err, "failed to decode trait registry %s", r.path)
	}

	registry := make(map[string]genetics.Trait, len(definitions))
	for key, def := range definitions {
		if len(def.Alleles) == 0 {
			return nil, fmt.Errorf("trait %s: %w", key, core.ErrEmptyAlleles)
		}
		coverage := genetics.ValidatePhenotypeCoverage(def.Alleles, def.PhenotypeMap)
		if !coverage.Passed {
			return nil, errors.New("INVALID_TRAIT",
				"trait "+key+" failed coverage validation: "+strings.Join(coverage.Errors, "; "))
		}
		trait := genetics.NewTrait(def.Name, def.Alleles, def.PhenotypeMap)
		trait.Description = def.Description
		registry[key] = trait
	}
	return registry, nil
}

// StaticRepository serves a fixed in-memory registry; used for the
// built-in traits and in tests.
type StaticRepository struct {
	registry map[string]genetics.Trait
}

// NewStaticRepository wraps an existing registry.
func NewStaticRepository(registry map[string]genetics.Trait) *StaticRepository {
	return &StaticRepository{registry: registry}
}

// LoadTraits returns the wrapped registry.
func (r *StaticRepository) LoadTraits(_ context.Context) (map[string]genetics.Trait, error) {
	return r.registry, nil
}
