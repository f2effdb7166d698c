package dock

import (
	"errors"
	"fmt"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// ErrDragInactive is returned when a drag operation is issued with no armed
// gesture.
var ErrDragInactive = errors.New("no drag in progress")

func errWidgetNotFound(w *entity.DockWidget) error {
	return fmt.Errorf("%w: %s", entity.ErrWidgetNotFound, widgetName(w))
}
