package viewport

import (
	"testing"
	"time"

	"github.com/mkview/mkview/input"
)

func key(name string, mods input.Modifiers) input.KeyEvent {
	return input.KeyEvent{Name: name, Modifiers: mods}
}

func TestHandleKey(t *testing.T) {
	now := time.Now()

	t.Run("Arrows navigate and clamp", func(t *testing.T) {
		c, _ := newTestController(t, 5)
		c.state.Page = 3
		if !c.HandleKey(key(input.KeyRight, 0), now) {
			t.Error("Expected Right to be consumed")
		}
		if got := c.State().Page; got != 4 {
			t.Errorf("Expected page 4, got %d", got)
		}
		c.HandleKey(key(input.KeyRight, 0), now)
		if got := c.State().Page; got != 5 {
			t.Errorf("Expected page 5, got %d", got)
		}
		c.HandleKey(key(input.KeyRight, 0), now)
		if got := c.State().Page; got != 5 {
			t.Errorf("Expected Right at the last page to be a no-op, got %d", got)
		}
		c.HandleKey(key(input.KeyUp, 0), now)
		if got := c.State().Page; got != 4 {
			t.Errorf("Expected Up to go back, got %d", got)
		}
		c.HandleKey(key(input.KeyDown, 0), now)
		if got := c.State().Page; got != 5 {
			t.Errorf("Expected Down to advance, got %d", got)
		}
	})

	t.Run("Home and End jump", func(t *testing.T) {
		c, _ := newTestController(t, 5)
		c.HandleKey(key(input.KeyEnd, 0), now)
		if got := c.State().Page; got != 5 {
			t.Errorf("Expected last page, got %d", got)
		}
		c.HandleKey(key(input.KeyHome, 0), now)
		if got := c.State().Page; got != 1 {
			t.Errorf("Expected first page, got %d", got)
		}
	})

	t.Run("Shortcut zoom and fit", func(t *testing.T) {
		c, _ := newTestController(t, 1)
		start := c.State().Scale
		if !c.HandleKey(key("=", input.ModCtrl), now) {
			t.Error("Expected Ctrl+= to be consumed")
		}
		settle(c, now)
		if got := c.State().Scale; !approx(got, start*1.25) {
			t.Errorf("Expected scale %v, got %v", start*1.25, got)
		}
		c.HandleKey(key("-", input.ModCommand), now)
		settle(c, now)
		if got := c.State().Scale; !approx(got, start) {
			t.Errorf("Expected scale %v, got %v", start, got)
		}
		c.HandleKey(key("0", input.ModCtrl), now)
		settle(c, now)
		if !c.State().FitMode {
			t.Error("Expected Ctrl+0 to restore fit mode")
		}
	})

	t.Run("Plus works like equals", func(t *testing.T) {
		c, _ := newTestController(t, 1)
		start := c.State().Scale
		c.HandleKey(key("+", input.ModCtrl), now)
		settle(c, now)
		if got := c.State().Scale; !approx(got, start*1.25) {
			t.Errorf("Expected scale %v, got %v", start*1.25, got)
		}
	})

	t.Run("Ignored while editing", func(t *testing.T) {
		c, _ := newTestController(t, 5)
		ev := key(input.KeyRight, 0)
		ev.EditorFocus = true
		if c.HandleKey(ev, now) {
			t.Error("Expected editor-focused key to pass through")
		}
		if got := c.State().Page; got != 1 {
			t.Errorf("Expected page unchanged, got %d", got)
		}
	})

	t.Run("Unknown keys pass through", func(t *testing.T) {
		c, _ := newTestController(t, 5)
		if c.HandleKey(key("x", 0), now) {
			t.Error("Expected unmapped key to pass through")
		}
		if c.HandleKey(key("9", input.ModCtrl), now) {
			t.Error("Expected unmapped shortcut to pass through")
		}
	})
}
