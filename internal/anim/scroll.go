package anim

import "time"

// Scroll maps elapsed time to a looping offset: distance cells per period.
type Scroll struct {
	Distance int
	Period   time.Duration
}

// Offset returns the offset in [0, Distance) after elapsed.
func (s Scroll) Offset(elapsed time.Duration) int {
	if s.Distance <= 0 || s.Period <= 0 || elapsed <= 0 {
		return 0
	}
	frac := elapsed % s.Period
	return int(int64(s.Distance) * int64(frac) / int64(s.Period))
}
