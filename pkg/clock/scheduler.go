package clock

import "time"

// FrameFunc is a frame callback receiving the frame timestamp.
type FrameFunc func(ts time.Duration)

// FrameScheduler holds at most one pending frame callback, the way a display
// refresh source does. The owner calls Dispatch once per refresh.
type FrameScheduler struct {
	pending FrameFunc
}

// RequestFrame queues fn for the next Dispatch, replacing any earlier request.
func (s *FrameScheduler) RequestFrame(fn FrameFunc) {
	s.pending = fn
}

// Cancel drops the pending request.
func (s *FrameScheduler) Cancel() {
	s.pending = nil
}

// Pending reports whether a frame has been requested.
func (s *FrameScheduler) Pending() bool {
	return s.pending != nil
}

// Dispatch runs the pending callback with ts. The request is cleared before
// the callback runs so the callback may request the following frame.
func (s *FrameScheduler) Dispatch(ts time.Duration) bool {
	fn := s.pending
	if fn == nil {
		return false
	}
	s.pending = nil
	fn(ts)
	return true
}
