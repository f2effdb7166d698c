package port

import (
	"io"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// PerspectiveCodec reads and writes standalone perspective documents.
type PerspectiveCodec interface {
	EncodePerspective(w io.Writer, p *entity.Perspective) error
	DecodePerspective(r io.Reader) (*entity.Perspective, error)
}
