package viewport

import (
	"math"
	"time"

	"github.com/mkview/mkview/geom"
	"github.com/mkview/mkview/input"
	"github.com/mkview/mkview/observability"
)

const (
	// wheelZoomBase raised to deltaY gives the zoom factor, so wheel
	// down (positive deltaY) zooms out.
	wheelZoomBase = 0.995
	// lineDeltaPx converts one wheel click into pan pixels.
	lineDeltaPx = 20.0
)

// HandleWheel routes a wheel event to exactly one of zoom, pan or
// page turn. Wheel input is direct manipulation, so any in-flight
// animation is cancelled before the event's own delta is computed.
func (c *Controller) HandleWheel(ev input.WheelEvent, now time.Time) {
	if c.doc.NumPages() == 0 {
		return
	}
	c.cancelAnimation()
	if ev.Modifiers.Shortcut() {
		c.wheelZoom(ev)
		return
	}
	c.wheelScroll(ev, now)
}

// wheelZoom scales around the pointer position so the content under the
// cursor stays put.
func (c *Controller) wheelZoom(ev input.WheelEvent) {
	cur := c.state
	newScale := c.clampScale(cur.Scale * math.Pow(wheelZoomBase, ev.DeltaY))
	ratio := newScale / cur.Scale
	translate := geom.Point{
		X: ev.Position.X - (ev.Position.X-cur.Translate.X)*ratio,
		Y: ev.Position.Y - (ev.Position.Y-cur.Translate.Y)*ratio,
	}
	c.state.FitMode = false
	c.state.Scale = newScale
	c.state.Translate = c.clampTranslate(translate, newScale)
	c.log.Debug("wheel zoom",
		observability.Float64("scale", newScale),
		observability.Float64("deltaY", ev.DeltaY))
}

// wheelScroll pans while the document can still move in the scrolled
// direction and otherwise treats vertical scroll as page-turn intent.
func (c *Controller) wheelScroll(ev input.WheelEvent, now time.Time) {
	view := c.size()
	cur := c.state
	over := geom.ComputeOverflow(cur.Scale, cur.Translate, view, c.doc.PageSize(), c.cfg.edgePadding)

	mult := 1.0
	if ev.Discrete() {
		mult = lineDeltaPx
	}

	translate := cur.Translate
	didPan := false
	if ev.DeltaX != 0 && ((ev.DeltaX > 0 && over.Right) || (ev.DeltaX < 0 && over.Left)) {
		translate.X -= ev.DeltaX * mult
		didPan = true
	}
	if ev.DeltaY != 0 && ((ev.DeltaY > 0 && over.Down) || (ev.DeltaY < 0 && over.Up)) {
		translate.Y -= ev.DeltaY * mult
		didPan = true
	}
	if didPan {
		// An active pan cancels any pending page-turn intent.
		c.accum.pending = 0
		c.state.FitMode = false
		c.state.Translate = c.clampTranslate(translate, cur.Scale)
		return
	}
	if ev.DeltaY == 0 {
		return
	}

	// Vertical panning is impossible: the page fits or sits at an edge.
	if ev.Discrete() {
		c.discretePageTurn(ev.DeltaY, now)
	} else {
		c.continuousPageTurn(ev.DeltaY, now, view)
	}
}

// discretePageTurn treats a wheel click as a deliberate single step,
// throttled only by the cooldown.
func (c *Controller) discretePageTurn(deltaY float64, now time.Time) {
	if now.Sub(c.accum.lastChange) <= c.cfg.pageTurnCooldown {
		return
	}
	c.accum.pending = 0
	c.accum.lastChange = now
	page := c.doc.ClampPage(c.state.Page + sign(deltaY))
	if page == c.state.Page {
		return
	}
	c.state.Page = page
	c.log.Debug("page turn",
		observability.Int("page", page),
		observability.String("trigger", "wheel"))
}

// continuousPageTurn accumulates trackpad deltas until they clear the
// threshold, so incidental micro-scrolls never flip pages.
func (c *Controller) continuousPageTurn(deltaY float64, now time.Time, view geom.Size) {
	c.accum.pending += deltaY
	if math.Abs(c.accum.pending) < c.cfg.pageTurnThreshold ||
		now.Sub(c.accum.lastChange) <= c.cfg.pageTurnCooldown {
		return
	}
	dir := sign(c.accum.pending)
	page := c.state.Page + dir
	if page < 1 || page > c.doc.NumPages() {
		// Stop runaway accumulation once at the first or last page.
		c.accum.pending = 0
		return
	}
	c.state.Page = page
	c.accum.pending = 0
	c.accum.lastChange = now

	// Land on the leading edge going forward, the trailing edge going
	// backward, when the new page overflows the viewport vertically.
	if scaledH := c.doc.PageSize().Height * c.state.Scale; scaledH > view.Height {
		if dir > 0 {
			c.state.Translate.Y = c.cfg.edgePadding
		} else {
			c.state.Translate.Y = view.Height - scaledH - c.cfg.edgePadding
		}
		c.state.Translate = c.clampTranslate(c.state.Translate, c.state.Scale)
	}
	c.log.Debug("page turn",
		observability.Int("page", page),
		observability.String("trigger", "trackpad"))
}

func sign(v float64) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
