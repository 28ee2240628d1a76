package scheduler

// maxBehind bounds how many periods Due will replay after a stall.
const maxBehind = 4

// Interval answers "has the fixed period elapsed" against a monotonic tick
// counter such as hal.Time.
type Interval struct {
	period uint64
	next   uint64
	primed bool
}

// NewInterval returns an Interval firing every period ticks (at least 1).
func NewInterval(period uint64) *Interval {
	if period == 0 {
		period = 1
	}
	return &Interval{period: period}
}

// Period returns the interval length in ticks.
func (iv *Interval) Period() uint64 { return iv.period }

// Due reports whether now has reached the next boundary and consumes it.
// Calling Due in a loop replays missed periods, up to maxBehind of them;
// older ones are dropped.
func (iv *Interval) Due(now uint64) bool {
	if !iv.primed {
		iv.primed = true
		iv.next = now + iv.period
		return true
	}
	if now < iv.next {
		return false
	}
	if now-iv.next >= maxBehind*iv.period {
		iv.next = now - (maxBehind-1)*iv.period
	}
	iv.next += iv.period
	return true
}
