// Package sketch is the stroke surface. It feeds pointer input into the
// stroke list and notifies the embedding application when the surface
// becomes ready and when a stroke is completed.
package sketch

import (
	"image"
	"log/slog"
	"math"

	"SketchPad/internal/config"
	"SketchPad/internal/gesture"
	"SketchPad/internal/render"
	"SketchPad/internal/state"

	"github.com/google/uuid"
)

// Surface is one freehand drawing surface. Every method is meant to be called
// from the UI goroutine; only OnChange is delivered later, through the
// Scheduler.
type Surface struct {
	// OnReady fires once, when the render context first exists.
	OnReady func(r *render.Renderer)
	// OnChange fires after each completed stroke, one tick later.
	OnChange func(r *render.Renderer)

	id        string
	style     state.Style
	adapter   *gesture.Adapter
	acc       *Accumulator
	scene     *render.Scene
	renderer  *render.Renderer
	presenter *render.Presenter
	sink      func(image.Image)
	scheduler Scheduler
	clock     gesture.Clock
	log       *slog.Logger
}

// Option configures a Surface.
type Option func(*Surface)

// WithClock sets the clock the move throttle reads.
func WithClock(c gesture.Clock) Option {
	return func(s *Surface) { s.clock = c }
}

// WithScheduler sets how OnChange is deferred.
func WithScheduler(sc Scheduler) Option {
	return func(s *Surface) {
		if sc != nil {
			s.scheduler = sc
		}
	}
}

// WithSink sets where presented frames go.
func WithSink(sink func(image.Image)) Option {
	return func(s *Surface) { s.sink = sink }
}

// New creates a surface with the given configuration. Zero fields take their
// defaults.
func New(conf config.Config, opts ...Option) *Surface {
	conf = conf.WithDefaults()
	s := &Surface{
		id:        uuid.NewString(),
		style:     conf.Style(),
		scene:     render.NewScene(),
		scheduler: AfterTick,
		clock:     gesture.WallClock,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.log = render.Logger().With("surface", s.id)
	s.acc = NewAccumulator(s.scene)
	s.adapter = gesture.NewAdapter(strokeSink{s},
		gesture.WithClock(s.clock),
		gesture.WithEase(conf.EaseFactor),
		gesture.WithThrottle(conf.ThrottleDelay()),
	)
	return s
}

// ID identifies this surface instance. Every surface gets its own.
func (s *Surface) ID() string { return s.id }

// Ready reports whether the render context exists. Input is ignored until it
// does.
func (s *Surface) Ready() bool { return s.renderer != nil }

// Renderer returns the render context, nil before Ready.
func (s *Surface) Renderer() *render.Renderer { return s.renderer }

// Style returns the style the next stroke will use.
func (s *Surface) Style() state.Style { return s.style }

// SetStyle changes the style of strokes started from now on. Strokes already
// drawn keep theirs.
func (s *Surface) SetStyle(style state.Style) {
	s.style = style
}

// Resize tells the surface its layout size in logical units and the device
// pixel-density scale. The first non-empty size creates the render context
// and fires OnReady; later sizes rescale it and redraw.
func (s *Surface) Resize(width, height, scale float32) {
	if scale <= 0 {
		scale = 1
	}
	pw := int(math.Round(float64(width * scale)))
	ph := int(math.Round(float64(height * scale)))
	if pw <= 0 || ph <= 0 {
		return
	}
	s.adapter.SetScale(float64(scale))

	if s.renderer != nil {
		if w, h := s.renderer.Size(); w == pw && h == ph {
			return
		}
		if err := s.renderer.Resize(pw, ph); err != nil {
			s.log.Warn("resizing surface", "err", err)
			return
		}
		s.present()
		return
	}

	r, err := render.NewRenderer(pw, ph)
	if err != nil {
		s.log.Warn("creating render context", "err", err)
		return
	}
	s.renderer = r
	s.presenter = render.NewPresenter(r, s.scene, s.sink)
	s.acc.SetPresenter(s.presenter)
	s.log.Info("surface ready", "width", pw, "height", ph, "scale", scale)

	if s.OnReady != nil {
		s.OnReady(r)
	}
	s.present()
}

// PointerDown starts a stroke at a raw (unscaled) position.
func (s *Surface) PointerDown(raw state.Point) {
	if !s.Ready() {
		return
	}
	s.adapter.Start(raw)
}

// PointerMove feeds a raw position to the throttle and smoothing filter.
func (s *Surface) PointerMove(raw state.Point) {
	if !s.Ready() {
		return
	}
	s.adapter.Move(raw)
}

// PointerUp ends the stroke at the exact raw position.
func (s *Surface) PointerUp(raw state.Point) {
	if !s.Ready() {
		return
	}
	s.adapter.End(raw)
}

// PointerCancel ends a stroke the system interrupted. It keeps what was drawn.
func (s *Surface) PointerCancel(raw state.Point) {
	if !s.Ready() {
		return
	}
	s.adapter.Cancel(raw)
}

// Drawing reports whether a stroke is in progress.
func (s *Surface) Drawing() bool { return s.adapter.Active() }

// Clear wipes the canvas.
func (s *Surface) Clear() {
	if !s.Ready() {
		return
	}
	s.adapter.Reset()
	s.acc.Clear()
	s.log.Debug("surface cleared")
	s.notifyChange()
}

// Strokes returns copies of the completed strokes.
func (s *Surface) Strokes() []state.Stroke {
	return s.acc.Canvas().Completed()
}

// Current returns a copy of the stroke in progress.
func (s *Surface) Current() (state.Stroke, bool) {
	return s.acc.Canvas().Current()
}

// Bounds returns the inked area in canvas pixels.
func (s *Surface) Bounds() state.Rect {
	return state.Bounds(s.acc.Canvas().All())
}

// Close releases the render context. An open gesture is ended where it stands
// and kept as a stroke. Input is ignored until the next Resize, which builds a
// fresh context, fires OnReady again and redraws the kept strokes.
func (s *Surface) Close() error {
	s.adapter.Reset()
	s.acc.SetPresenter(nil)
	s.acc.Seal()
	if s.renderer == nil {
		return nil
	}
	r := s.renderer
	s.renderer = nil
	s.presenter = nil
	return r.Close()
}

func (s *Surface) present() {
	if s.presenter == nil {
		return
	}
	s.presenter.Present()
}

func (s *Surface) notifyChange() {
	if s.OnChange == nil {
		return
	}
	r := s.renderer
	s.scheduler.Defer(func() {
		if s.OnChange != nil && r != nil {
			s.OnChange(r)
		}
	})
}

// strokeSink routes adapter output into the accumulator with the surface's
// current style.
type strokeSink struct{ s *Surface }

func (k strokeSink) StartStroke(p state.Point) {
	k.s.acc.StartStroke(p, k.s.style)
}

func (k strokeSink) AppendPoint(p state.Point) {
	k.s.acc.AppendPoint(p)
}

func (k strokeSink) EndStroke(p state.Point) bool {
	if !k.s.acc.EndStroke(p) {
		return false
	}
	k.s.log.Debug("stroke completed", "strokes", k.s.acc.Canvas().Len())
	k.s.notifyChange()
	return true
}
