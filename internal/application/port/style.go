package port

// DockStyle holds the visual metrics the engine needs to place overlay
// indicators and hint frames.
type DockStyle struct {
	IndicatorSize    int
	IndicatorSpacing int // Distance from the target center to each edge indicator
	ContainerMargin  int // Inset of container overlay indicators from the frame
	FrameColor       string
	IndicatorColor   string
	HighlightColor   string
}

// StyleProvider gives the engine read-only access to the host theme.
type StyleProvider interface {
	DockStyle() DockStyle
}
