package entity

// Feature names one dock widget capability. The names are stable and are
// written into layout state as feature overrides.
type Feature string

const (
	FeatureClosable             Feature = "closable"
	FeatureMovable              Feature = "movable"
	FeatureFloatable            Feature = "floatable"
	FeatureDeleteOnClose        Feature = "delete_on_close"
	FeatureFocusable            Feature = "focusable"
	FeatureForceCloseWithArea   Feature = "force_close_with_area"
	FeatureNoTab                Feature = "no_tab"
	FeaturePositionLocked       Feature = "position_locked"
	FeaturePinned               Feature = "pinned"
	FeatureDeleteContentOnClose Feature = "delete_content_on_close"
	FeatureCustomCloseHandling  Feature = "custom_close_handling"
)

// AllFeatures lists every known feature in a stable order.
func AllFeatures() []Feature {
	return []Feature{
		FeatureClosable,
		FeatureMovable,
		FeatureFloatable,
		FeatureDeleteOnClose,
		FeatureFocusable,
		FeatureForceCloseWithArea,
		FeatureNoTab,
		FeaturePositionLocked,
		FeaturePinned,
		FeatureDeleteContentOnClose,
		FeatureCustomCloseHandling,
	}
}

// DockWidgetFeatures is the capability set of a dock widget.
// Combinations are built with the named constructors below.
type DockWidgetFeatures struct {
	Closable             bool
	Movable              bool
	Floatable            bool
	DeleteOnClose        bool
	Focusable            bool
	ForceCloseWithArea   bool
	NoTab                bool
	PositionLocked       bool
	Pinned               bool
	DeleteContentOnClose bool
	CustomCloseHandling  bool
}

// DefaultDockWidgetFeatures returns closable, movable, floatable and focusable.
func DefaultDockWidgetFeatures() DockWidgetFeatures {
	return DockWidgetFeatures{
		Closable:  true,
		Movable:   true,
		Floatable: true,
		Focusable: true,
	}
}

// NoDockWidgetFeatures returns an empty capability set.
func NoDockWidgetFeatures() DockWidgetFeatures {
	return DockWidgetFeatures{}
}

// AlwaysCloseAndDelete returns the default set plus ForceCloseWithArea and DeleteOnClose.
func AlwaysCloseAndDelete() DockWidgetFeatures {
	f := DefaultDockWidgetFeatures()
	f.ForceCloseWithArea = true
	f.DeleteOnClose = true
	return f
}

// CanMove reports whether the widget may be dragged to another place.
func (f DockWidgetFeatures) CanMove() bool {
	return f.Movable && !f.PositionLocked && !f.Pinned
}

// CanFloat reports whether the widget may be torn out into a floating window.
func (f DockWidgetFeatures) CanFloat() bool {
	return f.Floatable && f.CanMove()
}

// Has reports whether feature is enabled.
func (f DockWidgetFeatures) Has(feature Feature) bool {
	if p := f.field(feature); p != nil {
		return *p
	}
	return false
}

// With returns a copy with feature set to enabled. Unknown names are ignored.
func (f DockWidgetFeatures) With(feature Feature, enabled bool) DockWidgetFeatures {
	if p := f.field(feature); p != nil {
		*p = enabled
	}
	return f
}

// Overrides lists the features that differ from base.
func (f DockWidgetFeatures) Overrides(base DockWidgetFeatures) []FeatureOverride {
	var out []FeatureOverride
	for _, name := range AllFeatures() {
		if f.Has(name) != base.Has(name) {
			out = append(out, FeatureOverride{Feature: name, Enabled: f.Has(name)})
		}
	}
	return out
}

// Apply returns a copy with every override applied.
func (f DockWidgetFeatures) Apply(overrides []FeatureOverride) DockWidgetFeatures {
	for _, o := range overrides {
		f = f.With(o.Feature, o.Enabled)
	}
	return f
}

func (f *DockWidgetFeatures) field(feature Feature) *bool {
	switch feature {
	case FeatureClosable:
		return &f.Closable
	case FeatureMovable:
		return &f.Movable
	case FeatureFloatable:
		return &f.Floatable
	case FeatureDeleteOnClose:
		return &f.DeleteOnClose
	case FeatureFocusable:
		return &f.Focusable
	case FeatureForceCloseWithArea:
		return &f.ForceCloseWithArea
	case FeatureNoTab:
		return &f.NoTab
	case FeaturePositionLocked:
		return &f.PositionLocked
	case FeaturePinned:
		return &f.Pinned
	case FeatureDeleteContentOnClose:
		return &f.DeleteContentOnClose
	case FeatureCustomCloseHandling:
		return &f.CustomCloseHandling
	default:
		return nil
	}
}

// KnownFeature reports whether name is a feature this engine understands.
func KnownFeature(name Feature) bool {
	var f DockWidgetFeatures
	return f.field(name) != nil
}

// FeatureOverride records one feature that differs from the defaults.
type FeatureOverride struct {
	Feature Feature `json:"feature" yaml:"feature"`
	Enabled bool    `json:"enabled" yaml:"enabled"`
}
