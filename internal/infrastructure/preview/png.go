// Package preview renders perspective thumbnails.
package preview

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/lucasb-eyer/go-colorful"
)

// Default thumbnail size.
const (
	DefaultWidth  = 200
	DefaultHeight = 150
)

// PNGRenderer draws every area of a layout as a flat rectangle, floating
// windows on top, scaled to fit the thumbnail.
type PNGRenderer struct {
	width, height int
	style         port.StyleProvider
	layout        *usecase.ManageLayoutUseCase
}

var _ port.PreviewRenderer = (*PNGRenderer)(nil)

// NewPNGRenderer creates a renderer. Zero sizes fall back to the defaults.
func NewPNGRenderer(width, height int, style port.StyleProvider) *PNGRenderer {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	seq := 0
	return &PNGRenderer{
		width:  width,
		height: height,
		style:  style,
		layout: usecase.NewManageLayoutUseCase(func() string {
			seq++
			return fmt.Sprintf("preview-%d", seq)
		}),
	}
}

type palette struct {
	background, area, border, floating color.Color
}

func (r *PNGRenderer) palette() palette {
	p := palette{
		background: color.RGBA{0x23, 0x26, 0x29, 0xff},
		area:       color.RGBA{0x31, 0x36, 0x3b, 0xff},
		border:     color.RGBA{0x3d, 0xae, 0xe9, 0xff},
		floating:   color.RGBA{0x4d, 0x52, 0x57, 0xff},
	}
	if r.style == nil {
		return p
	}
	s := r.style.DockStyle()
	if c, ok := parseColor(s.FrameColor); ok {
		p.area = c
	}
	if c, ok := parseColor(s.IndicatorColor); ok {
		p.border = c
	}
	return p
}

// parseColor accepts #rgb, #rrggbb and #rrggbbaa; alpha is dropped.
func parseColor(s string) (color.Color, bool) {
	if len(s) == 9 {
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, false
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 0xff}, true
}

// RenderPreview encodes a PNG thumbnail of state laid out inside bounds.
func (r *PNGRenderer) RenderPreview(ctx context.Context, state *entity.LayoutState, bounds entity.Rect) ([]byte, error) {
	if state == nil {
		return nil, fmt.Errorf("%w: nil state", entity.ErrMalformedState)
	}
	if bounds.Empty() {
		return nil, fmt.Errorf("cannot render preview of empty bounds")
	}

	pal := r.palette()
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(pal.background), image.Point{}, draw.Src)

	// Fit bounds (and every floating window) into the thumbnail, preserving
	// the aspect ratio.
	extent := bounds
	for _, f := range state.Floating {
		extent = union(extent, f.Geometry)
	}
	scale := math.Min(float64(r.width)/float64(extent.W), float64(r.height)/float64(extent.H))
	offX := (float64(r.width) - float64(extent.W)*scale) / 2
	offY := (float64(r.height) - float64(extent.H)*scale) / 2
	project := func(rect entity.Rect) image.Rectangle {
		x0 := offX + float64(rect.X-extent.X)*scale
		y0 := offY + float64(rect.Y-extent.Y)*scale
		return image.Rect(
			int(math.Round(x0)),
			int(math.Round(y0)),
			int(math.Round(x0+float64(rect.W)*scale)),
			int(math.Round(y0+float64(rect.H)*scale)),
		)
	}

	lookup := func(name string) *entity.DockWidget { return entity.NewDockWidget(name, name) }
	areas := 0

	mainTree := r.layout.BuildContainer("main", bounds, state.Main, lookup)
	for _, g := range usecase.ComputeGeometry(mainTree) {
		fillFramed(img, project(g.Rect), pal.area, pal.border)
		areas++
	}
	for i, f := range state.Floating {
		fc := r.layout.BuildContainer(fmt.Sprintf("floating-%d", i), f.Geometry, f.Container, lookup)
		fillFramed(img, project(f.Geometry), pal.floating, pal.border)
		for _, g := range usecase.ComputeGeometry(fc) {
			fillFramed(img, project(g.Rect), pal.floating, pal.border)
			areas++
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}

	logging.FromContext(ctx).Debug().
		Int("areas", areas).
		Int("bytes", buf.Len()).
		Msg("preview rendered")
	return buf.Bytes(), nil
}

func fillFramed(img *image.RGBA, r image.Rectangle, fill, border color.Color) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(img, r, image.NewUniform(border), image.Point{}, draw.Src)
	if inner := r.Inset(1); !inner.Empty() {
		draw.Draw(img, inner, image.NewUniform(fill), image.Point{}, draw.Src)
	}
}

func union(a, b entity.Rect) entity.Rect {
	if b.Empty() {
		return a
	}
	x0 := min(a.X, b.X)
	y0 := min(a.Y, b.Y)
	x1 := max(a.X+a.W, b.X+b.W)
	y1 := max(a.Y+a.H, b.Y+b.H)
	return entity.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
