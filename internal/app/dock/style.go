package dock

import "github.com/bnema/dockyard/internal/application/port"

// Default overlay metrics in pixels.
const (
	DefaultIndicatorSize    = 32
	DefaultIndicatorSpacing = 44
	DefaultContainerMargin  = 8
)

// DefaultStyleProvider serves a fixed style. It is used when the host
// installs no theme of its own.
type DefaultStyleProvider struct {
	style port.DockStyle
}

// NewDefaultStyleProvider returns the built-in style.
func NewDefaultStyleProvider() *DefaultStyleProvider {
	return &DefaultStyleProvider{style: DefaultDockStyle()}
}

// NewStaticStyleProvider serves style, filling zero metrics with defaults.
func NewStaticStyleProvider(style port.DockStyle) *DefaultStyleProvider {
	def := DefaultDockStyle()
	if style.IndicatorSize <= 0 {
		style.IndicatorSize = def.IndicatorSize
	}
	if style.IndicatorSpacing <= 0 {
		style.IndicatorSpacing = def.IndicatorSpacing
	}
	if style.ContainerMargin < 0 {
		style.ContainerMargin = def.ContainerMargin
	}
	if style.FrameColor == "" {
		style.FrameColor = def.FrameColor
	}
	if style.IndicatorColor == "" {
		style.IndicatorColor = def.IndicatorColor
	}
	if style.HighlightColor == "" {
		style.HighlightColor = def.HighlightColor
	}
	return &DefaultStyleProvider{style: style}
}

// DockStyle implements port.StyleProvider.
func (p *DefaultStyleProvider) DockStyle() port.DockStyle {
	return p.style
}

// DefaultDockStyle returns the built-in metrics and colors.
func DefaultDockStyle() port.DockStyle {
	return port.DockStyle{
		IndicatorSize:    DefaultIndicatorSize,
		IndicatorSpacing: DefaultIndicatorSpacing,
		ContainerMargin:  DefaultContainerMargin,
		FrameColor:       "#3daee9",
		IndicatorColor:   "#31363b",
		HighlightColor:   "#3daee980",
	}
}
