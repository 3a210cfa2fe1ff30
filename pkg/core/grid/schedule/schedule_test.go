package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTrailingRunAfterWindow(t *testing.T) {
	clock := NewManualClock()
	s := New(333*time.Millisecond, clock)

	width := 0
	var runs []int
	relayout := func() { runs = append(runs, width) }

	width = 800
	s.Trigger(relayout)
	clock.Advance(50 * time.Millisecond)
	width = 640
	s.Trigger(relayout)

	require.Empty(t, runs, "nothing runs while the window is open")
	require.True(t, s.Pending())

	clock.Advance(283 * time.Millisecond)
	require.Equal(t, []int{640}, runs, "exactly one run reflecting the final width")
	require.False(t, s.Open())

	clock.Advance(time.Second)
	require.Len(t, runs, 1, "no window reopens without a trigger")
}

func TestLeadingRunsImmediately(t *testing.T) {
	clock := NewManualClock()
	s := New(333*time.Millisecond, clock, WithLeading())

	var calls []string
	s.Trigger(func() { calls = append(calls, "first") })
	require.Equal(t, []string{"first"}, calls)

	clock.Advance(50 * time.Millisecond)
	s.Trigger(func() { calls = append(calls, "second") })
	s.Trigger(func() { calls = append(calls, "third") })

	clock.Advance(283 * time.Millisecond)
	require.Equal(t, []string{"first", "third"}, calls, "one trailing run with the latest action")
}

func TestLeadingWithoutFollowUpHasNoTrailingRun(t *testing.T) {
	clock := NewManualClock()
	s := New(200*time.Millisecond, clock, WithLeading())

	count := 0
	s.Trigger(func() { count++ })
	clock.Advance(time.Second)
	require.Equal(t, 1, count)
	require.False(t, s.Open())
}

func TestFlushAndCancel(t *testing.T) {
	t.Run("flush runs the pending action early", func(t *testing.T) {
		clock := NewManualClock()
		s := New(200*time.Millisecond, clock)

		count := 0
		s.Trigger(func() { count++ })
		s.Flush()
		require.Equal(t, 1, count)
		require.False(t, s.Open())

		clock.Advance(time.Second)
		require.Equal(t, 1, count, "the stopped timer does not run it again")
	})

	t.Run("cancel discards the pending action", func(t *testing.T) {
		clock := NewManualClock()
		s := New(200*time.Millisecond, clock)

		count := 0
		s.Trigger(func() { count++ })
		s.Cancel()
		clock.Advance(time.Second)
		require.Zero(t, count)
		require.False(t, s.Pending())
	})

	t.Run("new window after flush", func(t *testing.T) {
		clock := NewManualClock()
		s := New(200*time.Millisecond, clock)

		count := 0
		s.Trigger(func() { count++ })
		s.Flush()
		s.Trigger(func() { count += 10 })
		require.True(t, s.Open())
		clock.Advance(200 * time.Millisecond)
		require.Equal(t, 11, count)
	})
}

func TestOnCloseReportsAbsorbedTriggers(t *testing.T) {
	clock := NewManualClock()
	var absorbed []int
	s := New(100*time.Millisecond, clock, WithLeading(), WithOnClose(func(n int) { absorbed = append(absorbed, n) }))

	for i := 0; i < 5; i++ {
		s.Trigger(func() {})
		clock.Advance(10 * time.Millisecond)
	}
	clock.Advance(100 * time.Millisecond)
	require.Equal(t, []int{4}, absorbed)
}

func TestRealClockFires(t *testing.T) {
	s := New(5*time.Millisecond, RealClock{})
	done := make(chan struct{})
	s.Trigger(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("trailing run did not fire")
	}
}

func TestPolledWindowClosesOnNextCall(t *testing.T) {
	now := time.Unix(0, 0)
	s := New(200*time.Millisecond, nil, WithLeading(), WithNow(func() time.Time { return now }))

	var calls []string
	s.Trigger(func() { calls = append(calls, "first") })
	s.Trigger(func() { calls = append(calls, "second") })
	require.Equal(t, []string{"first"}, calls)

	now = now.Add(199 * time.Millisecond)
	require.False(t, s.Poll(), "window still open")
	require.True(t, s.Pending())

	now = now.Add(time.Millisecond)
	require.True(t, s.Poll())
	require.Equal(t, []string{"first", "second"}, calls)
	require.False(t, s.Open())
	require.False(t, s.Poll(), "nothing left to close")
}

func TestPolledTriggerClosesExpiredWindowFirst(t *testing.T) {
	now := time.Unix(0, 0)
	var absorbed []int
	s := New(100*time.Millisecond, nil,
		WithLeading(),
		WithNow(func() time.Time { return now }),
		WithOnClose(func(n int) { absorbed = append(absorbed, n) }),
	)

	var calls []int
	s.Trigger(func() { calls = append(calls, 1) })
	s.Trigger(func() { calls = append(calls, 2) })

	now = now.Add(time.Second)
	s.Trigger(func() { calls = append(calls, 3) })
	require.Equal(t, []int{1, 2, 3}, calls, "trailing run of the old window, then the new leading run")
	require.Equal(t, []int{1}, absorbed)
	require.True(t, s.Open())
}

func TestPolledRunsOnCallerGoroutine(t *testing.T) {
	s := New(time.Millisecond, nil, WithLeading())

	items := []int{0}
	s.Trigger(func() { items = append(items, 1) })
	s.Trigger(func() { items = append(items, 2) })

	// Nothing may touch items from another goroutine while we read it.
	deadline := time.Now().Add(20 * time.Millisecond)
	for time.Now().Before(deadline) {
		require.Len(t, items, 2)
	}
	require.True(t, s.Poll())
	require.Equal(t, []int{0, 1, 2}, items)
}
