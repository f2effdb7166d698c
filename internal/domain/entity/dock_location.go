package entity

// DockLocation names one of the five drop zones of a dock target.
type DockLocation string

const (
	NoDockLocation DockLocation = ""
	DockLeft       DockLocation = "left"
	DockRight      DockLocation = "right"
	DockTop        DockLocation = "top"
	DockBottom     DockLocation = "bottom"
	DockCenter     DockLocation = "center"
)

// AllDockLocations lists every drop zone in overlay paint order.
func AllDockLocations() DockLocations {
	return DockLocations{DockTop, DockBottom, DockLeft, DockRight, DockCenter}
}

// OuterDockLocations lists the four edge drop zones.
func OuterDockLocations() DockLocations {
	return DockLocations{DockTop, DockBottom, DockLeft, DockRight}
}

// Valid reports whether l is one of the five drop zones.
func (l DockLocation) Valid() bool {
	switch l {
	case DockLeft, DockRight, DockTop, DockBottom, DockCenter:
		return true
	default:
		return false
	}
}

// IsEdge reports whether l is a side zone (splits instead of tabbing).
func (l DockLocation) IsEdge() bool {
	return l.Valid() && l != DockCenter
}

// Orientation returns the splitter orientation an edge insertion needs.
func (l DockLocation) Orientation() Orientation {
	switch l {
	case DockTop, DockBottom:
		return OrientationVertical
	default:
		return OrientationHorizontal
	}
}

// InsertsBefore reports whether the new region goes first (left/top).
func (l DockLocation) InsertsBefore() bool {
	return l == DockLeft || l == DockTop
}

// DockLocations is a small set of drop zones.
type DockLocations []DockLocation

// Contains reports whether the set holds l.
func (s DockLocations) Contains(l DockLocation) bool {
	for _, v := range s {
		if v == l {
			return true
		}
	}
	return false
}

// Orientation indicates how a splitter arranges its children.
type Orientation int

const (
	OrientationHorizontal Orientation = iota // Children side by side (left/right)
	OrientationVertical                      // Children stacked (top/bottom)
)

func (o Orientation) String() string {
	if o == OrientationVertical {
		return "vertical"
	}
	return "horizontal"
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Orientation) UnmarshalText(text []byte) error {
	v, err := ParseOrientation(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// ParseOrientation parses "horizontal" or "vertical".
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "horizontal":
		return OrientationHorizontal, nil
	case "vertical":
		return OrientationVertical, nil
	default:
		return OrientationHorizontal, &OrientationError{Value: s}
	}
}

// OrientationError reports an unknown orientation name.
type OrientationError struct {
	Value string
}

func (e *OrientationError) Error() string {
	return "unknown orientation: " + e.Value
}
