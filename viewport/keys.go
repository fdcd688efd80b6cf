package viewport

import (
	"time"

	"github.com/mkview/mkview/input"
)

// HandleKey maps a key press onto page navigation and zoom operations.
// It reports whether the event was consumed so hosts can fall through
// to their own bindings. Events arriving while a text-editing surface
// has focus are ignored.
func (c *Controller) HandleKey(ev input.KeyEvent, now time.Time) bool {
	if ev.EditorFocus {
		return false
	}
	if ev.Modifiers.Shortcut() {
		switch ev.Name {
		case "=", "+":
			c.ZoomIn(now)
		case "-":
			c.ZoomOut(now)
		case "0":
			c.FitToViewport(now)
		default:
			return false
		}
		return true
	}
	switch ev.Name {
	case input.KeyLeft, input.KeyUp:
		c.PrevPage()
	case input.KeyRight, input.KeyDown:
		c.NextPage()
	case input.KeyHome:
		c.FirstPage()
	case input.KeyEnd:
		c.LastPage()
	default:
		return false
	}
	return true
}
