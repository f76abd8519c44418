package sketch

import (
	"SketchPad/internal/render"
	"SketchPad/internal/state"
)

// Accumulator keeps the strokes of a surface and mirrors them into the render
// scene. Only the in-progress stroke is ever rebuilt; sealed strokes keep the
// drawable they were sealed with.
type Accumulator struct {
	canvas    *state.Canvas
	scene     *render.Scene
	current   *render.Drawable
	presenter *render.Presenter
}

// NewAccumulator creates an accumulator that adds drawables to scene.
func NewAccumulator(scene *render.Scene) *Accumulator {
	return &Accumulator{
		canvas: state.NewCanvas(),
		scene:  scene,
	}
}

// SetPresenter attaches the presenter used for redraws. Until one is set,
// redraw requests are dropped.
func (a *Accumulator) SetPresenter(p *render.Presenter) {
	a.presenter = p
}

// StartStroke seals whatever stroke is in progress and starts a new one at p.
func (a *Accumulator) StartStroke(p state.Point, style state.Style) {
	a.canvas.Start(p, style)
	a.current = render.NewDrawable(a.canvas.CurrentPoints(), style)
	a.scene.Add(a.current)
	a.requestRedraw()
}

// AppendPoint extends the in-progress stroke. Without one it does nothing.
func (a *Accumulator) AppendPoint(p state.Point) {
	if !a.canvas.Append(p) {
		return
	}
	a.rebuildPath()
	a.requestRedraw()
}

// EndStroke appends the final point and seals the stroke. It reports whether
// there was a stroke to seal.
func (a *Accumulator) EndStroke(p state.Point) bool {
	if !a.canvas.Append(p) {
		return false
	}
	a.rebuildPath()
	a.canvas.Seal()
	a.current = nil
	a.requestRedraw()
	return true
}

// Seal closes the in-progress stroke as it stands, without a final point.
func (a *Accumulator) Seal() bool {
	if !a.canvas.Seal() {
		return false
	}
	a.current = nil
	a.requestRedraw()
	return true
}

// Clear removes every stroke and redraws the empty canvas.
func (a *Accumulator) Clear() {
	a.canvas.Clear()
	a.scene.Reset()
	a.current = nil
	a.requestRedraw()
}

// Canvas exposes the stroke state for reading.
func (a *Accumulator) Canvas() *state.Canvas {
	return a.canvas
}

func (a *Accumulator) rebuildPath() {
	if a.current == nil {
		return
	}
	a.current.Rebuild(a.canvas.CurrentPoints())
}

func (a *Accumulator) requestRedraw() {
	if a.presenter == nil {
		return
	}
	a.presenter.Present()
}
