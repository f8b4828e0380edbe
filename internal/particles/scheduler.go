package particles

// FrameQueue is a Scheduler that holds at most one pending callback
// until Fire is called. It stands in for requestAnimationFrame outside
// the browser.
type FrameQueue struct {
	pending func(float64)
}

var _ Scheduler = (*FrameQueue)(nil)

func (q *FrameQueue) RequestFrame(fn func(timestamp float64)) {
	q.pending = fn
}

// Pending reports whether a callback is waiting.
func (q *FrameQueue) Pending() bool {
	return q.pending != nil
}

// Fire runs the pending callback with timestamp t. It returns false
// when nothing was scheduled.
func (q *FrameQueue) Fire(t float64) bool {
	fn := q.pending
	if fn == nil {
		return false
	}
	q.pending = nil
	fn(t)
	return true
}
