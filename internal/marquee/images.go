package marquee

// ImageTracker follows the outstanding image loads of one sequence. A
// failed load settles just like a successful one.
type ImageTracker struct {
	pending map[int]struct{}
	failed  map[int]error
}

// NewImageTracker starts tracking the given item indexes.
func NewImageTracker(ids ...int) *ImageTracker {
	t := &ImageTracker{
		pending: make(map[int]struct{}, len(ids)),
		failed:  make(map[int]error),
	}
	for _, id := range ids {
		t.pending[id] = struct{}{}
	}
	return t
}

// Settle marks id as loaded, recording err if the load failed. It reports
// whether id was still pending.
func (t *ImageTracker) Settle(id int, err error) bool {
	if _, ok := t.pending[id]; !ok {
		return false
	}
	delete(t.pending, id)
	if err != nil {
		t.failed[id] = err
	}
	return true
}

// Pending returns the number of outstanding loads.
func (t *ImageTracker) Pending() int { return len(t.pending) }

// Err returns the failure recorded for id, if any.
func (t *ImageTracker) Err(id int) error { return t.failed[id] }
