package viewport

import (
	"math"
	"time"

	"github.com/mkview/mkview/geom"
)

// animation interpolates scale and translate between a start state
// captured at scheduling time and a target. Cancellation clears the
// active flag, so a frame scheduled before the cancellation can never
// apply itself afterwards.
type animation struct {
	active    bool
	start     time.Time
	duration  time.Duration
	fromScale float64
	toScale   float64
	from      geom.Point
	to        geom.Point
}

// animateTo starts a transition from the current committed state to the
// target, replacing any animation already in progress.
func (c *Controller) animateTo(scale float64, translate geom.Point, d time.Duration, now time.Time) {
	if d <= 0 {
		c.anim = animation{}
		c.state.Scale = scale
		c.state.Translate = translate
		return
	}
	c.anim = animation{
		active:    true,
		start:     now,
		duration:  d,
		fromScale: c.state.Scale,
		toScale:   scale,
		from:      c.state.Translate,
		to:        translate,
	}
}

// cancelAnimation invalidates the in-flight animation, if any. Direct
// manipulation always wins over an animation, so every input handler
// that mutates state cancels before computing its own delta.
func (c *Controller) cancelAnimation() {
	c.anim.active = false
}

// Animating reports whether a transition is in flight; hosts keep
// scheduling frames while it is.
func (c *Controller) Animating() bool { return c.anim.active }

// Step advances the in-flight animation to now and commits the
// interpolated state. It returns false once the animation has finished
// or been cancelled, meaning no further frames are needed.
func (c *Controller) Step(now time.Time) bool {
	a := c.anim
	if !a.active {
		return false
	}
	progress := float64(now.Sub(a.start)) / float64(a.duration)
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	eased := easeOutCubic(progress)
	c.state.Scale = lerp(a.fromScale, a.toScale, eased)
	c.state.Translate = geom.Point{
		X: lerp(a.from.X, a.to.X, eased),
		Y: lerp(a.from.Y, a.to.Y, eased),
	}
	if progress >= 1 {
		c.anim.active = false
		return false
	}
	return true
}

func easeOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

func lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}
