package schedule

import (
	"sync"
	"time"
)

// Timer is a pending callback that can be stopped.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// RealClock schedules callbacks with time.AfterFunc.
type RealClock struct{}

// AfterFunc calls time.AfterFunc.
func (RealClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLeading runs the trigger that opens a window immediately.
func WithLeading() Option {
	return func(s *Scheduler) { s.leading = true }
}

// WithOnClose registers a callback invoked each time a window closes, with
// the number of triggers the window absorbed.
func WithOnClose(f func(absorbed int)) Option {
	return func(s *Scheduler) { s.onClose = f }
}

// WithNow sets the time source of a polled scheduler.
func WithNow(now func() time.Time) Option {
	return func(s *Scheduler) {
		if now != nil {
			s.now = now
		}
	}
}

// Scheduler coalesces triggers into at most one leading and one trailing
// run per window.
type Scheduler struct {
	window  time.Duration
	clock   Clock
	now     func() time.Time
	leading bool
	onClose func(int)

	mu       sync.Mutex
	open     bool
	deadline time.Time
	timer    Timer
	gen      uint64
	pending  func()
	absorbed int
}

// New creates a scheduler with the given window length.
//
// With a nil clock the scheduler is polled: it starts no timers, and an
// expired window closes on the next Trigger, Poll or Flush, on the
// caller's goroutine. With a clock, windows close from the clock's
// callback.
func New(window time.Duration, clock Clock, opts ...Option) *Scheduler {
	s := &Scheduler{window: window, clock: clock, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Window returns the window length.
func (s *Scheduler) Window() time.Duration { return s.window }

// Trigger records fn as the latest action. If no window is open one is
// opened, and fn runs immediately when the scheduler is leading. Otherwise
// fn replaces any pending action and runs when the window closes.
func (s *Scheduler) Trigger(fn func()) {
	s.Poll()

	s.mu.Lock()
	if s.open {
		s.pending = fn
		s.absorbed++
		s.mu.Unlock()
		return
	}

	s.open = true
	s.absorbed = 0
	s.gen++
	if s.clock != nil {
		gen := s.gen
		s.timer = s.clock.AfterFunc(s.window, func() { s.close(gen) })
	} else {
		s.deadline = s.now().Add(s.window)
	}
	if !s.leading {
		s.pending = fn
		s.mu.Unlock()
		return
	}
	s.pending = nil
	s.mu.Unlock()
	fn()
}

// Poll closes a polled window whose deadline has passed and runs its
// pending action. It reports whether a window closed. Clock-driven
// schedulers never need polling.
func (s *Scheduler) Poll() bool {
	s.mu.Lock()
	if s.clock != nil || !s.open || s.now().Before(s.deadline) {
		s.mu.Unlock()
		return false
	}
	s.finish()
	return true
}

// Flush closes the open window early, running the pending action now.
func (s *Scheduler) Flush() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	fn := s.reset()
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Cancel closes the open window and discards the pending action.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.reset()
	s.mu.Unlock()
}

// Pending reports whether an action is waiting for the window to close.
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

// Open reports whether a window is currently open. A polled window stays
// open past its deadline until it is polled.
func (s *Scheduler) Open() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

func (s *Scheduler) close(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || !s.open {
		// Flushed or cancelled before the timer fired.
		s.mu.Unlock()
		return
	}
	s.finish()
}

// finish must be called with mu held; it unlocks before running callbacks.
func (s *Scheduler) finish() {
	absorbed := s.absorbed
	fn := s.reset()
	onClose := s.onClose
	s.mu.Unlock()

	if fn != nil {
		fn()
	}
	if onClose != nil {
		onClose(absorbed)
	}
}

// reset must be called with mu held.
func (s *Scheduler) reset() func() {
	fn := s.pending
	s.pending = nil
	s.open = false
	s.timer = nil
	s.absorbed = 0
	s.gen++
	return fn
}
