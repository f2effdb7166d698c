package entity

// DefaultSplitRatio is the share a newly inserted area takes from its target.
const DefaultSplitRatio = 0.5

// DockManagerConfig is the dock manager feature configuration.
// Renderers query these; the layout algorithm only reads the split policy.
type DockManagerConfig struct {
	OpaqueSplitterResize                 bool
	XMLAutoFormatting                    bool
	AlwaysShowTabs                       bool
	AllTabsHaveCloseButton               bool
	TabCloseButtonIsToolButton           bool
	DockAreaHasCloseButton               bool
	DockAreaCloseButtonClosesTab         bool
	FocusHighlighting                    bool
	EqualSplitOnInsertion                bool
	FloatingContainerForceNativeTitleBar bool

	DefaultSplitRatio float64
}

// DefaultDockManagerConfig returns the configuration used when none is given.
func DefaultDockManagerConfig() DockManagerConfig {
	return DockManagerConfig{
		OpaqueSplitterResize:   true,
		XMLAutoFormatting:      true,
		DockAreaHasCloseButton: true,
		DefaultSplitRatio:      DefaultSplitRatio,
	}
}

// AutoHideConfig configures the auto-hide side strips.
type AutoHideConfig struct {
	Enabled         bool
	ShowCloseButton bool
	OpenOnHover     bool
}

// DefaultAutoHideConfig returns auto-hide enabled with a close button.
func DefaultAutoHideConfig() AutoHideConfig {
	return AutoHideConfig{
		Enabled:         true,
		ShowCloseButton: true,
	}
}
