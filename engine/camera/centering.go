package camera

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// centering drives the timed re-centering of Back/Fixed direction and distance. Values are
// linear in time; gween clamps progress to [0, 1] and lands exactly on the end values.
type centering struct {
	phase  CenteringPhase
	target uint64

	h, v, dist float32
	base       [3]float32 // values captured on the first start, restored by stop

	tweens   [3]*gween.Tween
	elapsed  float64
	duration float64
}

// completionSlack is the fraction of a duration below which the remaining time counts as done.
// Frame deltas rarely sum to the duration exactly.
const completionSlack = 1e-5

// running reports whether a start has not yet been followed by a stop.
func (c *centering) running() bool {
	return c.phase == CenteringStarting || c.phase == CenteringHolding
}

// active reports whether the centering values override the mode's own.
func (c *centering) active() bool {
	return c.phase != CenteringIdle
}

func (c *centering) start(target uint64, from, to [3]float32, duration float32) {
	c.target = target
	c.phase = CenteringStarting
	c.animate(from, to, duration)
	if duration <= 0 {
		c.phase = CenteringHolding
	}
}

func (c *centering) stop(duration float32) {
	c.phase = CenteringStopping
	c.animate([3]float32{c.h, c.v, c.dist}, c.base, duration)
	if duration <= 0 {
		c.abort()
	}
}

func (c *centering) abort() {
	c.phase = CenteringIdle
	c.tweens = [3]*gween.Tween{}
	c.elapsed, c.duration = 0, 0
}

func (c *centering) animate(from, to [3]float32, duration float32) {
	if duration <= 0 {
		c.h, c.v, c.dist = to[0], to[1], to[2]
		c.tweens = [3]*gween.Tween{}
		return
	}
	c.h, c.v, c.dist = from[0], from[1], from[2]
	c.elapsed, c.duration = 0, float64(duration)
	for i := range c.tweens {
		c.tweens[i] = gween.New(from[i], to[i], duration, ease.Linear)
	}
}

// advance steps the running tweens and moves Starting -> Holding and Stopping -> Idle.
func (c *centering) advance(dt float32) {
	if c.phase != CenteringStarting && c.phase != CenteringStopping {
		return
	}
	if c.tweens[0] == nil {
		return
	}
	c.elapsed += float64(dt)
	if c.duration-c.elapsed <= completionSlack*c.duration {
		c.elapsed = c.duration
	}
	var values [3]float32
	done := true
	for i, tw := range c.tweens {
		v, finished := tw.Set(float32(c.elapsed))
		values[i] = v
		done = done && finished
	}
	c.h, c.v, c.dist = values[0], values[1], values[2]
	if !done {
		return
	}
	if c.phase == CenteringStarting {
		c.phase = CenteringHolding
		return
	}
	c.abort()
}
