package port

import (
	"context"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// LayoutStateStore is the save/restore surface of a dock manager as seen by
// perspective management.
type LayoutStateStore interface {
	// SaveState serializes the whole live layout.
	SaveState() ([]byte, error)

	// RestoreState replaces the live layout with a serialized one.
	// On failure the live layout is left untouched.
	RestoreState(ctx context.Context, blob []byte) error

	// Snapshot returns the codec-neutral tree of the live layout.
	Snapshot() *entity.LayoutState

	// Bounds returns the main container bounds.
	Bounds() entity.Rect
}
