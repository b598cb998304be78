package marquee

// Subscriptions collects unsubscribe functions and releases them exactly
// once, in reverse order of registration.
type Subscriptions struct {
	cancels []func()
	closed  bool
}

// Add registers unsubscribe. On a closed set it runs immediately.
func (s *Subscriptions) Add(unsubscribe func()) {
	if unsubscribe == nil {
		return
	}
	if s.closed {
		unsubscribe()
		return
	}
	s.cancels = append(s.cancels, unsubscribe)
}

// Close runs every registered unsubscribe function. Later calls do
// nothing.
func (s *Subscriptions) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for i := len(s.cancels) - 1; i >= 0; i-- {
		s.cancels[i]()
	}
	s.cancels = nil
}

func (s *Subscriptions) Closed() bool { return s.closed }
func (s *Subscriptions) Len() int { return len(s.cancels) }
