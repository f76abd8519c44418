package sketch

import "time"

// Scheduler runs fn later, after the current event and its redraw have been
// handled. It must never call fn synchronously.
type Scheduler interface {
	Defer(fn func())
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(fn func())

// Defer calls f(fn).
func (f SchedulerFunc) Defer(fn func()) { f(fn) }

// AfterTick defers by a millisecond on a timer goroutine. UI code that needs
// fn back on its own goroutine wraps it; see ui.fyneScheduler.
var AfterTick Scheduler = SchedulerFunc(func(fn func()) {
	time.AfterFunc(time.Millisecond, fn)
})
