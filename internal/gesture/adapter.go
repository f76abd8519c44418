// Package gesture turns raw pointer events into canvas points. Moves are
// throttled and eased toward the pointer to smooth out touch jitter.
package gesture

import (
	"time"

	"SketchPad/internal/state"
)

const (
	DefaultEase          = 0.3
	DefaultThrottleDelay = 10 * time.Millisecond
)

// Sink receives the points the adapter accepts. All coordinates are in canvas
// pixels.
type Sink interface {
	StartStroke(p state.Point)
	AppendPoint(p state.Point)
	EndStroke(p state.Point) bool
}

// Clock reports the current time. Tests swap in a manual one.
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

// WallClock is the default Clock.
var WallClock Clock = wallClock{}

// Adapter converts pointer events for one surface. It is not safe for
// concurrent use; callers deliver events from the UI goroutine.
type Adapter struct {
	sink  Sink
	clock Clock
	scale float64
	ease  float64
	delay time.Duration

	active   bool
	last     state.Point
	lastMove time.Time
	moved    bool
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithClock replaces the wall clock used by the throttle.
func WithClock(c Clock) Option {
	return func(a *Adapter) {
		if c != nil {
			a.clock = c
		}
	}
}

// WithEase sets the fraction of the distance to the pointer that each
// accepted move covers.
func WithEase(ease float64) Option {
	return func(a *Adapter) { a.ease = ease }
}

// WithThrottle sets the minimum interval between accepted moves.
func WithThrottle(d time.Duration) Option {
	return func(a *Adapter) { a.delay = d }
}

// WithScale sets the initial device pixel-density scale.
func WithScale(scale float64) Option {
	return func(a *Adapter) { a.SetScale(scale) }
}

// NewAdapter creates an adapter that feeds sink.
func NewAdapter(sink Sink, opts ...Option) *Adapter {
	a := &Adapter{
		sink:  sink,
		clock: WallClock,
		scale: 1,
		ease:  DefaultEase,
		delay: DefaultThrottleDelay,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SetScale updates the density scale; a non-positive scale means 1.
func (a *Adapter) SetScale(scale float64) {
	if scale <= 0 {
		scale = 1
	}
	a.scale = scale
}

// Scale returns the density scale in use.
func (a *Adapter) Scale() float64 {
	return a.scale
}

// Active reports whether a gesture is in progress.
func (a *Adapter) Active() bool {
	return a.active
}

func (a *Adapter) scaled(raw state.Point) state.Point {
	return state.Point{X: raw.X * a.scale, Y: raw.Y * a.scale}
}

// Start begins a stroke at raw. Any stroke still open is sealed by the sink.
func (a *Adapter) Start(raw state.Point) {
	p := a.scaled(raw)
	a.active = true
	a.last = p
	a.moved = false
	a.sink.StartStroke(p)
}

// Move appends an eased point toward raw, unless the previous accepted move
// was less than the throttle delay ago. It reports whether the event was
// accepted.
func (a *Adapter) Move(raw state.Point) bool {
	if !a.active {
		return false
	}

	now := a.clock.Now()
	if a.moved && now.Sub(a.lastMove) < a.delay {
		return false
	}
	a.lastMove = now
	a.moved = true

	p := a.scaled(raw)
	smoothed := state.Point{
		X: a.last.X + a.ease*(p.X-a.last.X),
		Y: a.last.Y + a.ease*(p.Y-a.last.Y),
	}
	a.last = smoothed
	a.sink.AppendPoint(smoothed)
	return true
}

// End records the exact release position and seals the stroke. It reports
// whether a stroke was sealed.
func (a *Adapter) End(raw state.Point) bool {
	if !a.active {
		return false
	}
	a.active = false
	a.moved = false
	return a.sink.EndStroke(a.scaled(raw))
}

// Reset forgets the gesture in progress without telling the sink. The caller
// owns whatever the sink holds for it.
func (a *Adapter) Reset() {
	a.active = false
	a.moved = false
}

// Cancel handles a gesture the system interrupted. The stroke keeps whatever
// was captured, exactly as on release.
func (a *Adapter) Cancel(raw state.Point) bool {
	return a.End(raw)
}
