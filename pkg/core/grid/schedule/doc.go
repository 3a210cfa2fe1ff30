// Package schedule coalesces high-frequency relayout triggers.
//
// A [Scheduler] wraps a trigger source (pointer moves during a drag, window
// resizes) with a window of fixed length. The first trigger opens the
// window. Triggers that arrive while it is open replace the pending action
// instead of running it. When the window closes, the latest pending action
// runs exactly once, and no new window opens until the next trigger.
//
// With [WithLeading] the opening trigger also runs immediately, which keeps
// the first reaction to a gesture instantaneous:
//
//	resize := schedule.New(333*time.Millisecond, nil, schedule.WithLeading())
//	resize.Trigger(func() { b.Relayout("todo", true) })
//	...
//	resize.Poll() // from the host's idle or frame callback
//
// Without a [Clock] a scheduler is polled. It records each window's
// deadline and closes an expired window on the next Trigger, Poll or
// Flush, so every action runs on the caller's goroutine. A Clock closes
// windows from its callback instead. [RealClock] fires from the runtime
// timer goroutine, so hosts with a single event loop provide a clock
// that delivers callbacks on that loop. [ManualClock] makes tests
// deterministic.
package schedule
