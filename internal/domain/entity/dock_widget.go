package entity

// DockWidgetState is the lifecycle state of a dock widget.
type DockWidgetState int

const (
	DockWidgetHidden   DockWidgetState = iota // Not part of any area
	DockWidgetDocked                          // In an area of the main container
	DockWidgetFloating                        // In an area of a floating container
)

func (s DockWidgetState) String() string {
	switch s {
	case DockWidgetDocked:
		return "docked"
	case DockWidgetFloating:
		return "floating"
	default:
		return "hidden"
	}
}

// CloseHandler decides whether a widget with CustomCloseHandling may close.
type CloseHandler func(w *DockWidget) bool

// DockWidget is the atomic pane: a content host plus features and lifecycle state.
//
// State, Area and AutoHide are maintained by the layout use case and the dock
// manager; hosts read them but should not assign them.
type DockWidget struct {
	Name     string // Object name, unique within a dock manager
	Title    string
	Icon     string
	Features DockWidgetFeatures
	UserData any

	State    DockWidgetState
	Area     *DockArea    // nil while Hidden or while being moved
	AutoHide DockLocation // side strip when auto-hidden, NoDockLocation otherwise

	// LastArea remembers where a hidden widget lived so it can be re-shown there.
	LastArea *DockArea

	content      Content
	closeHandler CloseHandler
}

// NewDockWidget creates a hidden widget with the default feature set.
func NewDockWidget(name, title string) *DockWidget {
	if title == "" {
		title = name
	}
	return &DockWidget{
		Name:     name,
		Title:    title,
		Features: DefaultDockWidgetFeatures(),
		State:    DockWidgetHidden,
	}
}

// Widget returns the content handle.
func (w *DockWidget) Widget() Content {
	return w.content
}

// SetWidget installs the content handle, replacing any previous one.
func (w *DockWidget) SetWidget(c Content) {
	w.content = c
}

// TakeWidget removes and returns the content handle unmodified.
func (w *DockWidget) TakeWidget() Content {
	c := w.content
	w.content = nil
	return c
}

// SetCloseHandler installs the handler consulted when CustomCloseHandling is set.
func (w *DockWidget) SetCloseHandler(h CloseHandler) {
	w.closeHandler = h
}

// CloseHandler returns the installed close handler, if any.
func (w *DockWidget) CloseHandler() CloseHandler {
	return w.closeHandler
}

// IsClosed reports whether the widget is hidden.
func (w *DockWidget) IsClosed() bool {
	return w.State == DockWidgetHidden
}

// IsFloating reports whether the widget lives in a floating container.
func (w *DockWidget) IsFloating() bool {
	return w.State == DockWidgetFloating
}

// IsAutoHide reports whether the widget is collapsed into a side strip.
func (w *DockWidget) IsAutoHide() bool {
	return w.AutoHide != NoDockLocation
}

// IsCurrentTab reports whether the widget is the current tab of its area.
func (w *DockWidget) IsCurrentTab() bool {
	return w.Area != nil && w.Area.CurrentWidget() == w
}
