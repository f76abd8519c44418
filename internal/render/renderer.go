// Package render draws strokes with gg and pushes finished frames to the
// display.
package render

import (
	"errors"
	"fmt"
	"image"

	"SketchPad/internal/state"

	"github.com/gogpu/gg"
)

// ErrEmptySize is returned when asked for a context with no pixels.
var ErrEmptySize = errors.New("render: width and height must be positive")

// Renderer rasterises a Scene into a pixel buffer the size of the canvas.
type Renderer struct {
	dc     *gg.Context
	width  int
	height int
}

// NewRenderer creates a renderer of width×height pixels.
func NewRenderer(width, height int) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptySize, width, height)
	}
	Logger().Info("render context created", "width", width, "height", height)
	return &Renderer{
		dc:     gg.NewContext(width, height),
		width:  width,
		height: height,
	}, nil
}

// Size returns the pixel dimensions.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// Resize changes the pixel dimensions. The content is discarded; callers
// render again afterwards.
func (r *Renderer) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptySize, width, height)
	}
	if err := r.dc.Resize(width, height); err != nil {
		return fmt.Errorf("resizing render context: %w", err)
	}
	r.width, r.height = width, height
	Logger().Debug("render context resized", "width", width, "height", height)
	return nil
}

// Render clears to transparent and paints every drawable in order.
// Failures on single drawables don't stop the frame; they are joined and
// returned.
func (r *Renderer) Render(scene *Scene) error {
	r.dc.Clear()

	var errs []error
	for i, d := range scene.Drawables() {
		if err := r.draw(d); err != nil {
			errs = append(errs, fmt.Errorf("drawable %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func (r *Renderer) draw(d *Drawable) error {
	c := inkColor(d.Style)
	r.dc.SetRGBA(c.R, c.G, c.B, c.A)

	if d.Dot != nil {
		r.dc.DrawCircle(d.Dot.X, d.Dot.Y, d.Style.Width/2)
		return r.dc.Fill()
	}

	r.dc.SetLineWidth(d.Style.Width)
	r.dc.SetLineCap(gg.LineCapRound)
	r.dc.SetLineJoin(gg.LineJoinRound)
	d.Path.Iterate(func(verb gg.PathVerb, coords []float64) {
		switch verb {
		case gg.MoveTo:
			r.dc.MoveTo(coords[0], coords[1])
		case gg.LineTo:
			r.dc.LineTo(coords[0], coords[1])
		}
	})
	return r.dc.Stroke()
}

// Image returns a copy of the current frame.
func (r *Renderer) Image() image.Image {
	if err := r.dc.FlushGPU(); err != nil {
		Logger().Warn("flushing gpu work", "err", err)
	}
	return r.dc.Image()
}

// Close releases the drawing context.
func (r *Renderer) Close() error {
	return r.dc.Close()
}

// inkColor folds the stroke alpha into the colour's own alpha.
func inkColor(s state.Style) gg.RGBA {
	c := gg.FromColor(s.Color)
	// FromColor works on premultiplied components; undo that before scaling.
	c = c.Unpremultiply()
	c.A *= s.Alpha
	return c
}
