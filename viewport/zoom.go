package viewport

import (
	"time"

	"github.com/mkview/mkview/geom"
	"github.com/mkview/mkview/observability"
)

// ZoomIn zooms in one step, anchored at the viewport center, animating
// the transition.
func (c *Controller) ZoomIn(now time.Time) { c.zoomStep(c.cfg.zoomStep, now) }

// ZoomOut zooms out one step, anchored at the viewport center,
// animating the transition.
func (c *Controller) ZoomOut(now time.Time) { c.zoomStep(1/c.cfg.zoomStep, now) }

func (c *Controller) zoomStep(factor float64, now time.Time) {
	if c.doc.NumPages() == 0 {
		return
	}
	view := c.size()
	cur := c.state
	newScale := c.clampScale(cur.Scale * factor)
	if newScale == cur.Scale {
		return
	}
	// Keep the viewport center fixed, unlike wheel zoom which anchors
	// at the pointer.
	center := geom.Point{X: view.Width / 2, Y: view.Height / 2}
	ratio := newScale / cur.Scale
	target := c.clampTranslate(geom.Point{
		X: center.X - (center.X-cur.Translate.X)*ratio,
		Y: center.Y - (center.Y-cur.Translate.Y)*ratio,
	}, newScale)
	c.state.FitMode = false
	c.animateTo(newScale, target, c.cfg.zoomAnimDuration, now)
	c.log.Debug("zoom step", observability.Float64("scale", newScale))
}

// FitToViewport recomputes the fit and animates to it. It marks the
// view as fit-tracking so subsequent resizes re-fit instantly.
func (c *Controller) FitToViewport(now time.Time) {
	c.applyFit(true, now)
}

// applyFit computes the fit transform and either animates to it (for
// explicit user actions) or applies it instantly (document load, and
// resize while fit mode is already active, where animation would
// visibly jitter). A zero-area viewport leaves the state unchanged.
func (c *Controller) applyFit(animate bool, now time.Time) {
	scale, translate, ok := geom.Fit(c.doc.PageSize(), c.size(), c.cfg.edgePadding)
	if !ok {
		return
	}
	// The fit computation itself has no upper bound; the committed
	// scale honors the zoom bounds, re-centering if clamping reduced it.
	if s := c.clampScale(scale); s != scale {
		scale = s
		translate = c.clampTranslate(translate, scale)
	}
	c.state.FitMode = true
	if animate {
		c.animateTo(scale, translate, c.cfg.zoomAnimDuration, now)
	} else {
		c.cancelAnimation()
		c.state.Scale = scale
		c.state.Translate = translate
	}
}
