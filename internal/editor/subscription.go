package editor

// Subscription ties the controller to an event source. Close detaches it.
type Subscription struct {
	cancel func()
	closed bool
}

// Close stops event delivery. Closing twice is a no-op.
func (s *Subscription) Close() {
	if s == nil || s.closed {
		return
	}
	s.closed = true
	if s.cancel != nil {
		s.cancel()
	}
}

// Closed reports whether Close was called
func (s *Subscription) Closed() bool {
	return s == nil || s.closed
}
