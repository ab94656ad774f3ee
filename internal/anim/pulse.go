package anim

import "time"

// Pulse alternates linearly between two values, one leg at a time,
// for as long as it is running. A stopped pulse rests on its first value.
type Pulse struct {
	from, to float64
	leg      time.Duration
	elapsed  time.Duration
	forward  bool
	running  bool
}

// NewPulse returns a stopped pulse that swings from -> to -> from,
// spending leg on each half.
func NewPulse(from, to float64, leg time.Duration) Pulse {
	return Pulse{from: from, to: to, leg: leg, forward: true}
}

// Start begins the cycle from the first value.
func (p *Pulse) Start() {
	p.running = true
	p.elapsed = 0
	p.forward = true
}

// Stop halts the cycle and returns to the first value.
func (p *Pulse) Stop() {
	p.running = false
	p.elapsed = 0
	p.forward = true
}

// Running reports whether the pulse is cycling.
func (p Pulse) Running() bool {
	return p.running
}

// Advance moves the pulse forward by dt. It is a no-op while stopped.
func (p *Pulse) Advance(dt time.Duration) {
	if !p.running || p.leg <= 0 || dt <= 0 {
		return
	}
	p.elapsed += dt
	// Skip whole cycles at once so a long stall costs nothing.
	p.elapsed %= 2 * p.leg
	if p.elapsed >= p.leg {
		p.elapsed -= p.leg
		p.forward = !p.forward
	}
}

// Value returns the current interpolated value.
func (p Pulse) Value() float64 {
	if !p.running || p.leg <= 0 {
		return p.from
	}
	t := float64(p.elapsed) / float64(p.leg)
	if p.forward {
		return p.from + (p.to-p.from)*t
	}
	return p.to + (p.from-p.to)*t
}

// Progress returns how far the pulse is from its first value toward its
// second, in [0, 1].
func (p Pulse) Progress() float64 {
	if p.to == p.from {
		return 0
	}
	return (p.Value() - p.from) / (p.to - p.from)
}
