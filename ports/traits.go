package ports

import (
	"context"

	"zygotrix/domain/genetics"
)

// TraitRepository loads trait definitions for the simulator registry.
// The engine itself never touches storage; implementations live at the
// collaborator boundary (file-backed store, fixtures).
type TraitRepository interface {
	LoadTraits(ctx context.Context) (map[string]genetics.Trait, error)
}
