// Package prng provides the cheap pseudo random source used for visual
// variety by every stochastic effect.
//
// It is not random in any statistical sense: each call adds a large odd
// constant to a 16-bit state. Callers own a Source value and pass it down
// explicitly.
package prng

// Step is the constant added to the state on every draw.
const Step = 13331

// Source is an additive 16-bit generator. The zero value is ready to use.
type Source struct {
	state uint16
}

// New returns a Source starting at seed.
func New(seed uint16) *Source {
	return &Source{state: seed}
}

// Uint16 advances the generator and returns the new state.
func (s *Source) Uint16() uint16 {
	s.state += Step
	return s.state
}

// Below returns a value in [0,n). It returns 0 when n is 0.
func (s *Source) Below(n uint16) uint16 {
	if n == 0 {
		return 0
	}
	return s.Uint16() % n
}

// Signed returns a value in [-r,r].
func (s *Source) Signed(r int16) int16 {
	if r <= 0 {
		return 0
	}
	span := uint16(2*int32(r) + 1)
	return int16(s.Uint16()%span) - r
}

// SignedOffset returns ±(offset + [0,r)); the sign is drawn separately.
func (s *Source) SignedOffset(offset, r int16) int16 {
	v := offset
	if r > 0 {
		v += int16(s.Below(uint16(r)))
	}
	if s.Uint16()&0x80 != 0 {
		v = -v
	}
	return v
}
