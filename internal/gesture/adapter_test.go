package gesture

import (
	"testing"
	"time"

	"SketchPad/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualClock struct{ now time.Time }

func newManualClock() *manualClock { return &manualClock{now: time.Unix(1700000000, 0)} }

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// recorder is a Sink backed by a real canvas.
type recorder struct {
	canvas  *state.Canvas
	appends []state.Point
}

func newRecorder() *recorder { return &recorder{canvas: state.NewCanvas()} }

func (r *recorder) StartStroke(p state.Point) { r.canvas.Start(p, state.Style{Width: 1, Alpha: 1}) }

func (r *recorder) AppendPoint(p state.Point) {
	r.appends = append(r.appends, p)
	r.canvas.Append(p)
}

func (r *recorder) EndStroke(p state.Point) bool {
	if !r.canvas.Append(p) {
		return false
	}
	return r.canvas.Seal()
}

func TestAdapter_Smoothing(t *testing.T) {
	sink := newRecorder()
	a := NewAdapter(sink, WithClock(newManualClock()))

	a.Start(state.Point{X: 0, Y: 0})
	require.True(t, a.Move(state.Point{X: 10, Y: 0}))

	require.Len(t, sink.appends, 1)
	assert.InDelta(t, 3.0, sink.appends[0].X, 1e-9)
	assert.InDelta(t, 0.0, sink.appends[0].Y, 1e-9)
}

func TestAdapter_SmoothingChainsFromLastAccepted(t *testing.T) {
	clock := newManualClock()
	sink := newRecorder()
	a := NewAdapter(sink, WithClock(clock), WithEase(0.5))

	a.Start(state.Point{X: 0, Y: 0})
	a.Move(state.Point{X: 8, Y: 8})
	clock.Advance(20 * time.Millisecond)
	a.Move(state.Point{X: 8, Y: 8})

	require.Len(t, sink.appends, 2)
	assert.Equal(t, state.Point{X: 4, Y: 4}, sink.appends[0])
	assert.Equal(t, state.Point{X: 6, Y: 6}, sink.appends[1])
}

func TestAdapter_Throttle(t *testing.T) {
	clock := newManualClock()
	sink := newRecorder()
	a := NewAdapter(sink, WithClock(clock))

	a.Start(state.Point{})
	assert.True(t, a.Move(state.Point{X: 1}))

	clock.Advance(9 * time.Millisecond)
	assert.False(t, a.Move(state.Point{X: 2}))

	clock.Advance(1 * time.Millisecond)
	assert.True(t, a.Move(state.Point{X: 3}))

	assert.Len(t, sink.appends, 2)
}

func TestAdapter_PointCountIsAcceptedMovesPlusOne(t *testing.T) {
	clock := newManualClock()
	sink := newRecorder()
	a := NewAdapter(sink, WithClock(clock))

	a.Start(state.Point{})
	accepted := 0
	for i := 0; i < 50; i++ {
		if a.Move(state.Point{X: float64(i), Y: float64(i)}) {
			accepted++
		}
		clock.Advance(time.Duration(i%4) * 4 * time.Millisecond)
	}

	cur, ok := sink.canvas.Current()
	require.True(t, ok)
	assert.Equal(t, accepted+1, len(cur.Points))
	assert.Less(t, accepted, 50)
}

func TestAdapter_NewStrokeResetsThrottle(t *testing.T) {
	clock := newManualClock()
	sink := newRecorder()
	a := NewAdapter(sink, WithClock(clock))

	a.Start(state.Point{})
	require.True(t, a.Move(state.Point{X: 1}))
	a.End(state.Point{X: 1})

	a.Start(state.Point{X: 5})
	assert.True(t, a.Move(state.Point{X: 6}), "first move of a stroke is never throttled")
}

func TestAdapter_MoveBeforeStartIgnored(t *testing.T) {
	sink := newRecorder()
	a := NewAdapter(sink, WithClock(newManualClock()))

	assert.False(t, a.Move(state.Point{X: 10, Y: 10}))
	assert.False(t, a.End(state.Point{X: 10, Y: 10}))
	assert.Empty(t, sink.appends)
	assert.Equal(t, 0, sink.canvas.Len())
}

func TestAdapter_EndIsExactAndScaled(t *testing.T) {
	clock := newManualClock()
	sink := newRecorder()
	a := NewAdapter(sink, WithClock(clock), WithScale(2))

	a.Start(state.Point{X: 0, Y: 0})
	assert.True(t, a.Move(state.Point{X: 5, Y: 5}))
	clock.Advance(5 * time.Millisecond)
	assert.False(t, a.Move(state.Point{X: 5, Y: 5}))
	assert.True(t, a.End(state.Point{X: 10, Y: 10}))

	completed := sink.canvas.Completed()
	require.Len(t, completed, 1)
	pts := completed[0].Points
	require.Len(t, pts, 3)
	assert.Equal(t, state.Point{X: 0, Y: 0}, pts[0])
	assert.InDelta(t, 3.0, pts[1].X, 1e-9)
	assert.InDelta(t, 3.0, pts[1].Y, 1e-9)
	assert.Equal(t, state.Point{X: 20, Y: 20}, pts[2])
	assert.False(t, a.Active())
}

func TestAdapter_CancelSealsLikeEnd(t *testing.T) {
	sink := newRecorder()
	a := NewAdapter(sink, WithClock(newManualClock()))

	a.Start(state.Point{X: 1, Y: 1})
	assert.True(t, a.Cancel(state.Point{X: 2, Y: 2}))
	assert.Equal(t, 1, sink.canvas.Len())
	assert.False(t, a.Cancel(state.Point{X: 3, Y: 3}))
}

func TestAdapter_SetScale(t *testing.T) {
	a := NewAdapter(newRecorder())
	assert.Equal(t, 1.0, a.Scale())

	a.SetScale(3)
	assert.Equal(t, 3.0, a.Scale())

	a.SetScale(0)
	assert.Equal(t, 1.0, a.Scale())
}
