package repository

import (
	"context"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// PerspectiveRepository persists named perspectives and the current marker.
type PerspectiveRepository interface {
	// SaveAll replaces the stored set with set.
	SaveAll(ctx context.Context, set *entity.PerspectiveSet) error

	// LoadAll returns every stored perspective, ordered by name.
	LoadAll(ctx context.Context) (*entity.PerspectiveSet, error)

	// Save inserts or updates a single perspective.
	Save(ctx context.Context, p *entity.Perspective) error

	// Delete removes a perspective by name. Missing names are not an error.
	Delete(ctx context.Context, name string) error

	// SetCurrent records the current perspective name.
	SetCurrent(ctx context.Context, name string) error
}
