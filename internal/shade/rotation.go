package shade

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is how often the background moves to the next shade.
const DefaultInterval = 500 * time.Millisecond

// Rotation is a cursor into an immutable palette.
// The zero value is an empty rotation whose Current is "".
type Rotation struct {
	shades []Color
	index  int
}

// NewRotation returns a rotation positioned on the first shade.
func NewRotation(shades []Color) Rotation {
	return Rotation{shades: shades}
}

// Index returns the current position in [0, Len()).
func (r Rotation) Index() int {
	return r.index
}

// Len returns the palette length.
func (r Rotation) Len() int {
	return len(r.shades)
}

// Current returns the shade under the cursor.
func (r Rotation) Current() Color {
	if len(r.shades) == 0 {
		return ""
	}
	return r.shades[r.index]
}

// Advance moves to the next shade, wrapping at the end, and returns the new index.
func (r *Rotation) Advance() int {
	if len(r.shades) == 0 {
		return 0
	}
	r.index = (r.index + 1) % len(r.shades)
	return r.index
}

// Rotator advances a Rotation on a fixed period from its own goroutine.
// It is used outside the UI event loop, where no message queue exists.
type Rotator struct {
	rotation Rotation
	interval time.Duration
	onTick   func(index int, c Color)

	mu      sync.Mutex
	started bool
	stopped bool
	stop    chan struct{}
	done    chan struct{}
}

// NewRotator creates a stopped rotator. onTick runs on the rotator goroutine
// after every advance.
func NewRotator(shades []Color, interval time.Duration, onTick func(index int, c Color)) *Rotator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Rotator{
		rotation: NewRotation(shades),
		interval: interval,
		onTick:   onTick,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the timer. It does nothing if the rotator was already
// started or stopped. Cancelling ctx has the same effect as Stop.
func (r *Rotator) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.started || r.stopped {
		return
	}
	r.started = true
	go r.loop(ctx)
}

// Stop halts the timer. Only the first call closes the stop channel; every
// call returns after the goroutine has exited, so no onTick runs afterwards.
// Stop must not be called from onTick.
func (r *Rotator) Stop() {
	r.mu.Lock()
	if !r.stopped {
		r.stopped = true
		close(r.stop)
	}
	started := r.started
	r.mu.Unlock()

	if started {
		<-r.done
	}
}

// Done is closed when the rotator goroutine has exited.
// It is never closed for a rotator that was not started.
func (r *Rotator) Done() <-chan struct{} {
	return r.done
}

func (r *Rotator) loop(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.stop:
			return
		case <-ticker.C:
		}

		// Stop may race with a pending tick; honour it first.
		select {
		case <-r.stop:
			return
		default:
		}

		idx := r.rotation.Advance()
		if r.onTick != nil {
			r.onTick(idx, r.rotation.Current())
		}
	}
}
