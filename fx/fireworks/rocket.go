package fireworks

import (
	"lumen/fx/prng"

	"tinygo.org/x/drivers"
)

const (
	// DotCount is the number of dots a rocket bursts into.
	DotCount = 8
	// TrailLength is the number of dots drawn while ascending.
	TrailLength = 4
	// Spent marks a rocket that already burst; no velocity is below it.
	Spent int16 = -128
)

// Phase describes where a rocket is in its life.
type Phase uint8

const (
	PhaseFused Phase = iota
	PhaseAscending
	PhaseBurst
	PhaseSpent
)

func (p Phase) String() string {
	switch p {
	case PhaseFused:
		return "fused"
	case PhaseAscending:
		return "ascending"
	case PhaseBurst:
		return "burst"
	case PhaseSpent:
		return "spent"
	default:
		return "unknown"
	}
}

// Rocket waits for its fuse, rises with a short trail while its vertical
// velocity is below the trigger, then bursts into DotCount dots.
type Rocket struct {
	dots    [DotCount]VelocityDot
	fuse    uint8
	trigger int16
	// lit is set by the first step after the fuse burned out.
	lit bool

	width int16
	yEnd  int16
}

// NewRocket returns a rocket launched from the bottom row at x with the
// given velocity. width and yEnd bound the surface in fixed units.
func NewRocket(x, vx, vy int16, fuse uint8, trigger int16, width, yEnd int16) Rocket {
	r := Rocket{
		fuse:    fuse,
		trigger: trigger,
		width:   width,
		yEnd:    yEnd,
	}
	r.dots[0] = VelocityDot{Dot: Dot{X: x, Y: yEnd - 1}, VX: vx, VY: vy}
	for i := 1; i < DotCount; i++ {
		r.dots[i] = VelocityDot{Dot: Dot{Y: yEnd}}
	}
	return r
}

// spentRocket returns a rocket with nothing left to show.
func spentRocket(width, yEnd int16) Rocket {
	r := NewRocket(0, 0, 0, 0, Spent, width, yEnd)
	r.dots[0].Y = yEnd
	return r
}

func (r *Rocket) Fuse() uint8           { return r.fuse }
func (r *Rocket) Trigger() int16        { return r.trigger }
func (r *Rocket) Head() VelocityDot     { return r.dots[0] }
func (r *Rocket) Dot(i int) VelocityDot { return r.dots[i] }

// Phase derives the life phase from the rocket state.
func (r *Rocket) Phase() Phase {
	switch {
	case r.fuse > 0, !r.lit && r.trigger != Spent:
		return PhaseFused
	case r.trigger != Spent && !r.dots[0].Terminal(r.yEnd):
		return PhaseAscending
	case r.live() > 0:
		return PhaseBurst
	default:
		return PhaseSpent
	}
}

func (r *Rocket) live() int {
	n := 0
	for i := range r.dots {
		if !r.dots[i].Terminal(r.yEnd) {
			n++
		}
	}
	return n
}

// Step advances the rocket by one tick and reports whether it is still
// worth rendering.
func (r *Rocket) Step(rng *prng.Source, gravity int16) bool {
	if r.fuse > 0 {
		r.fuse--
		return true
	}
	r.lit = true

	head := &r.dots[0]
	if !head.Terminal(r.yEnd) && head.VY < r.trigger {
		for k := TrailLength - 1; k > 0; k-- {
			r.dots[k] = r.dots[k-1]
		}
		head.Integrate(gravity, r.width, r.yEnd)
		if head.VY >= r.trigger && !head.Terminal(r.yEnd) {
			r.burst(rng)
		}
		return true
	}

	active := false
	for i := range r.dots {
		d := &r.dots[i]
		if d.Terminal(r.yEnd) {
			continue
		}
		d.Integrate(gravity, r.width, r.yEnd)
		if !d.Terminal(r.yEnd) {
			active = true
		}
	}
	return active
}

func (r *Rocket) burst(rng *prng.Source) {
	r.trigger = Spent
	head := r.dots[0]
	for i := range r.dots {
		r.dots[i] = VelocityDot{
			Dot: head.Dot,
			VX:  head.VX + rng.SignedOffset(0, 7),
			VY:  head.VY + rng.SignedOffset(1, 7),
		}
	}
}

// Render paints every live dot. Nothing is drawn until the first step
// after the fuse burned out. It returns the number of pixels written.
func (r *Rocket) Render(d drivers.Displayer) int {
	if !r.lit {
		return 0
	}
	n := 0
	for i := range r.dots {
		if paint(d, &r.dots[i], r.yEnd) {
			n++
		}
	}
	return n
}
