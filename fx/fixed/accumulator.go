package fixed

// Threshold is the amount an accumulator must collect before one step is
// released. A speed of Threshold therefore yields one step per tick.
const Threshold = 16

// StepAccumulator converts a per-tick speed into discrete steps. The zero
// value is empty.
type StepAccumulator struct {
	acc uint16
}

// Add feeds one tick worth of speed into the accumulator.
func (a *StepAccumulator) Add(speed uint8) {
	a.acc += uint16(speed)
}

// Next consumes one step if enough has accumulated.
//
// Typical use:
//
//	a.Add(speed)
//	for a.Next() {
//		advance()
//	}
func (a *StepAccumulator) Next() bool {
	if a.acc < Threshold {
		return false
	}
	a.acc -= Threshold
	return true
}

// Steps adds speed and drains every whole step, returning how many.
func (a *StepAccumulator) Steps(speed uint8) int {
	a.Add(speed)
	n := int(a.acc / Threshold)
	a.acc %= Threshold
	return n
}

// Pending returns the remainder carried into the next tick.
func (a *StepAccumulator) Pending() uint16 { return a.acc }

// Reset drops any carried remainder.
func (a *StepAccumulator) Reset() { a.acc = 0 }
