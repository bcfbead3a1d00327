package clock

import (
	"math"
	"testing"
	"time"
)

func TestFrameClockTick(t *testing.T) {
	cases := []struct {
		name string
		gap  time.Duration
		want float64
	}{
		{"zero", 0, 0},
		{"sixty_hz", 16 * time.Millisecond, 0.016},
		{"just_below_cap", 49 * time.Millisecond, 0.049},
		{"at_cap", 50 * time.Millisecond, 0.05},
		{"stall", 3 * time.Second, 0.05},
		{"backwards", -10 * time.Millisecond, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			clk := NewFrameClock(0.05)
			base := 5 * time.Second
			if got := clk.Tick(base); got != 0 {
				t.Fatalf("first tick: got %v want 0", got)
			}
			got := clk.Tick(base + c.gap)
			if math.Abs(got-c.want) > 1e-9 {
				t.Fatalf("got %v want %v", got, c.want)
			}
		})
	}
}

func TestFrameClockResetMakesNextTickZero(t *testing.T) {
	clk := NewFrameClock(0)
	if clk.MaxDelta != DefaultMaxDelta {
		t.Fatalf("default max delta: got %v", clk.MaxDelta)
	}
	clk.Tick(time.Second)
	clk.Tick(time.Second + 10*time.Millisecond)
	clk.Reset()
	if clk.Started() {
		t.Fatalf("clock should not be started after reset")
	}
	if got := clk.Tick(10 * time.Second); got != 0 {
		t.Fatalf("tick after reset: got %v want 0", got)
	}
	if got := clk.Tick(10*time.Second + 20*time.Millisecond); math.Abs(got-0.02) > 1e-9 {
		t.Fatalf("tick: got %v want 0.02", got)
	}
}

func TestFrameSchedulerRunsOnce(t *testing.T) {
	var s FrameScheduler
	if s.Dispatch(0) {
		t.Fatalf("dispatch without request should not run")
	}

	calls := 0
	var seen time.Duration
	s.RequestFrame(func(ts time.Duration) {
		calls++
		seen = ts
	})
	if !s.Pending() {
		t.Fatalf("expected pending frame")
	}
	if !s.Dispatch(42 * time.Millisecond) {
		t.Fatalf("expected dispatch to run")
	}
	if s.Dispatch(43 * time.Millisecond) {
		t.Fatalf("request must be consumed by the first dispatch")
	}
	if calls != 1 || seen != 42*time.Millisecond {
		t.Fatalf("calls=%d seen=%v", calls, seen)
	}
}

func TestFrameSchedulerCallbackMayRequeue(t *testing.T) {
	var s FrameScheduler
	frames := 0
	var loop FrameFunc
	loop = func(time.Duration) {
		frames++
		if frames < 3 {
			s.RequestFrame(loop)
		}
	}
	s.RequestFrame(loop)
	for i := 0; i < 10; i++ {
		s.Dispatch(time.Duration(i) * time.Millisecond)
	}
	if frames != 3 {
		t.Fatalf("frames: got %d want 3", frames)
	}

	s.RequestFrame(loop)
	s.Cancel()
	if s.Pending() {
		t.Fatalf("cancel should drop the request")
	}
}
