// Package anim holds the small animation drivers behind the landing page:
// springs for the card intro and copy popup, a two-state pulse for the buy
// button and a looping scroll for the backdrop. Drivers are advanced by the
// caller's frame ticks and never own timers.
package anim

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// settleEpsilon is the distance and speed below which a spring counts as at rest.
const settleEpsilon = 0.001

// SpringConfig describes a unit-mass spring by tension and friction.
type SpringConfig struct {
	Tension  float64
	Friction float64
}

// Presets used by the landing page.
var (
	// Wobbly overshoots noticeably before settling. Used for the card intro.
	Wobbly = SpringConfig{Tension: 180, Friction: 12}
	// Popup is stiff and lightly damped. Used for the copy notification.
	Popup = SpringConfig{Tension: 300, Friction: 10}
)

// AngularFrequency returns sqrt(tension).
func (c SpringConfig) AngularFrequency() float64 {
	if c.Tension <= 0 {
		return 0
	}
	return math.Sqrt(c.Tension)
}

// DampingRatio returns friction / (2 * sqrt(tension)).
func (c SpringConfig) DampingRatio() float64 {
	w := c.AngularFrequency()
	if w == 0 {
		return 1
	}
	return c.Friction / (2 * w)
}

// Spring animates a single value toward a target.
type Spring struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

// NewSpring returns a spring at rest on from, heading for to, stepped at fps.
func NewSpring(cfg SpringConfig, fps int, from, to float64) Spring {
	if fps <= 0 {
		fps = 60
	}
	return Spring{
		spring: harmonica.NewSpring(harmonica.FPS(fps), cfg.AngularFrequency(), cfg.DampingRatio()),
		pos:    from,
		target: to,
	}
}

// Step advances the spring by one frame.
func (s *Spring) Step() {
	if s.Settled() {
		s.pos, s.vel = s.target, 0
		return
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
}

// SetTarget redirects the spring, keeping its current velocity.
func (s *Spring) SetTarget(target float64) {
	s.target = target
}

// Value returns the current position.
func (s Spring) Value() float64 {
	return s.pos
}

// Target returns the position the spring is heading for.
func (s Spring) Target() float64 {
	return s.target
}

// Settled reports whether the spring has come to rest on its target.
func (s Spring) Settled() bool {
	return math.Abs(s.pos-s.target) < settleEpsilon && math.Abs(s.vel) < settleEpsilon
}
