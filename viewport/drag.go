package viewport

import (
	"github.com/mkview/mkview/geom"
	"github.com/mkview/mkview/input"
)

// dragState tracks an in-progress pointer drag.
type dragState struct {
	active bool
	last   geom.Point
}

// Dragging reports whether a pointer drag is in progress. Hosts use it
// to hold pointer capture for the duration of the drag.
func (c *Controller) Dragging() bool { return c.drag.active }

// HandlePointer converts primary-button drags into 1:1 pans. A press on
// an interactive overlay control never starts a drag, so clicks are not
// hijacked into pans.
func (c *Controller) HandlePointer(ev input.PointerEvent) {
	switch ev.Kind {
	case input.PointerDown:
		if c.drag.active || ev.OnControl || !ev.Buttons.Contain(input.ButtonPrimary) {
			return
		}
		if c.doc.NumPages() == 0 {
			return
		}
		c.cancelAnimation()
		c.drag = dragState{active: true, last: ev.Position}
	case input.PointerMove:
		if !c.drag.active {
			return
		}
		delta := geom.Point{X: ev.Position.X - c.drag.last.X, Y: ev.Position.Y - c.drag.last.Y}
		c.drag.last = ev.Position
		translate := c.clampTranslate(geom.Point{
			X: c.state.Translate.X + delta.X,
			Y: c.state.Translate.Y + delta.Y,
		}, c.state.Scale)
		if translate == c.state.Translate {
			return
		}
		c.state.Translate = translate
		c.state.FitMode = false
		c.accum.pending = 0
	case input.PointerUp, input.PointerCancel:
		c.drag.active = false
	}
}
