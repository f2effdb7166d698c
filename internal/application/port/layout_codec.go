package port

import "github.com/bnema/dockyard/internal/domain/entity"

// LayoutCodec converts a layout snapshot to and from its persisted form.
// The XML codec is the default; YAML and JSON exist for tooling.
type LayoutCodec interface {
	// Format returns the short format name ("xml", "yaml", "json").
	Format() string

	// Encode serializes a snapshot.
	Encode(state *entity.LayoutState) ([]byte, error)

	// Decode parses a snapshot. Parse failures wrap entity.ErrMalformedState.
	// Structural validation is the caller's job.
	Decode(data []byte) (*entity.LayoutState, error)
}
