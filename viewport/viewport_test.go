package viewport

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/mkview/mkview/document"
	"github.com/mkview/mkview/geom"
)

// testView lets tests resize the viewport mid-scenario.
type testView struct {
	size geom.Size
}

func (v *testView) Size() geom.Size { return v.size }

func letterDoc(pages int) *document.Document {
	return &document.Document{
		Pages:        make([]document.Page, pages),
		PageWidthPt:  612,
		PageHeightPt: 792,
	}
}

// newTestController returns a controller viewing a letter-size document
// in an 800x600 viewport, already reset to the fit state
// (scale ~0.697, translate ~(186.7, 24)).
func newTestController(t *testing.T, pages int, opts ...Option) (*Controller, *testView) {
	t.Helper()
	view := &testView{size: geom.Size{Width: 800, Height: 600}}
	c := New(view.Size, opts...)
	c.SetDocument(letterDoc(pages))
	return c, view
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestSetDocument(t *testing.T) {
	t.Run("Resets to fit state", func(t *testing.T) {
		c, _ := newTestController(t, 5)
		st := c.State()
		if !st.FitMode {
			t.Error("Expected FitMode after document load")
		}
		if st.Page != 1 {
			t.Errorf("Expected page 1, got %d", st.Page)
		}
		if want := 552.0 / 792.0; !approx(st.Scale, want) {
			t.Errorf("Expected fit scale %v, got %v", want, st.Scale)
		}
		if !approx(st.Translate.Y, 24) {
			t.Errorf("Expected translate.Y 24, got %v", st.Translate.Y)
		}
	})

	t.Run("Load applies instantly", func(t *testing.T) {
		c, _ := newTestController(t, 1)
		if c.Animating() {
			t.Error("Expected no animation on document load")
		}
	})

	t.Run("Replacing a document resets view and page", func(t *testing.T) {
		c, _ := newTestController(t, 5)
		c.NextPage()
		c.ZoomIn(time.Now())
		c.SetDocument(letterDoc(3))
		st := c.State()
		if st.Page != 1 || !st.FitMode || c.Animating() {
			t.Errorf("Expected fresh fit state, got %+v animating=%v", st, c.Animating())
		}
	})

	t.Run("Empty document", func(t *testing.T) {
		c, _ := newTestController(t, 0)
		if got := c.State().Page; got != 0 {
			t.Errorf("Expected page 0 for empty document, got %d", got)
		}
		c.NextPage()
		c.HandleWheel(wheelLine(0, 1), time.Now())
		if got := c.State().Page; got != 0 {
			t.Errorf("Expected page to stay 0, got %d", got)
		}
	})

	t.Run("Zero-area viewport leaves state unchanged", func(t *testing.T) {
		view := &testView{}
		c := New(view.Size)
		c.SetDocument(letterDoc(2))
		st := c.State()
		if st.Scale != 1 {
			t.Errorf("Expected scale 1 with no fit available, got %v", st.Scale)
		}
		if !st.FitMode {
			t.Error("Expected FitMode set even when fit is unavailable")
		}
	})
}

func TestResize(t *testing.T) {
	t.Run("Refits instantly while in fit mode", func(t *testing.T) {
		c, view := newTestController(t, 1)
		view.size = geom.Size{Width: 660, Height: 840}
		c.Resize()
		st := c.State()
		if !approx(st.Scale, 1) {
			t.Errorf("Expected refit scale 1, got %v", st.Scale)
		}
		if c.Animating() {
			t.Error("Expected instant refit, got animation")
		}
	})

	t.Run("Re-clamps without refitting when fit mode is off", func(t *testing.T) {
		c, view := newTestController(t, 1)
		c.state.Scale = 2
		c.state.Translate = geom.Point{X: 0, Y: 0}
		c.state.FitMode = false
		view.size = geom.Size{Width: 400, Height: 300}
		c.Resize()
		st := c.State()
		if st.Scale != 2 {
			t.Errorf("Expected scale to stay 2, got %v", st.Scale)
		}
		want := c.clampTranslate(geom.Point{X: 0, Y: 0}, 2)
		if st.Translate != want {
			t.Errorf("Expected translate %v, got %v", want, st.Translate)
		}
	})

	t.Run("Reads fit mode at fire time", func(t *testing.T) {
		c, view := newTestController(t, 1)
		// Leave fit mode after the hypothetical observer registration.
		c.HandleWheel(wheelZoomEvent(-50, geom.Point{X: 400, Y: 300}), time.Now())
		before := c.State().Scale
		view.size = geom.Size{Width: 1000, Height: 900}
		c.Resize()
		if got := c.State().Scale; got != before {
			t.Errorf("Expected resize to keep scale %v, got %v", before, got)
		}
	})
}

func TestSave(t *testing.T) {
	t.Run("Delegates to the callback", func(t *testing.T) {
		wantErr := errors.New("disk full")
		calls := 0
		c, _ := newTestController(t, 1, WithSaveFunc(func() error {
			calls++
			return wantErr
		}))
		if err := c.Save(); !errors.Is(err, wantErr) {
			t.Errorf("Expected %v, got %v", wantErr, err)
		}
		if calls != 1 {
			t.Errorf("Expected one save call, got %d", calls)
		}
	})

	t.Run("No-op without a callback", func(t *testing.T) {
		c, _ := newTestController(t, 1)
		if err := c.Save(); err != nil {
			t.Errorf("Expected nil, got %v", err)
		}
	})
}

func TestClose(t *testing.T) {
	c, _ := newTestController(t, 1)
	c.ZoomIn(time.Now())
	c.Close()
	if c.Animating() {
		t.Error("Expected Close to cancel the animation")
	}
	if c.Step(time.Now().Add(time.Second)) {
		t.Error("Expected no further frames after Close")
	}
}

func TestOptions(t *testing.T) {
	view := &testView{size: geom.Size{Width: 800, Height: 600}}
	c := New(view.Size,
		WithEdgePadding(10),
		WithPageTurnThreshold(40),
		WithPageTurnCooldown(300*time.Millisecond),
		WithZoomAnimationDuration(time.Second),
		WithZoomBounds(0.5, 2),
		WithZoomStep(1.5),
	)
	if c.cfg.edgePadding != 10 {
		t.Errorf("Expected edge padding 10, got %v", c.cfg.edgePadding)
	}
	if c.cfg.pageTurnThreshold != 40 {
		t.Errorf("Expected threshold 40, got %v", c.cfg.pageTurnThreshold)
	}
	if c.cfg.pageTurnCooldown != 300*time.Millisecond {
		t.Errorf("Expected cooldown 300ms, got %v", c.cfg.pageTurnCooldown)
	}
	if c.cfg.zoomAnimDuration != time.Second {
		t.Errorf("Expected animation duration 1s, got %v", c.cfg.zoomAnimDuration)
	}
	if c.cfg.minZoom != 0.5 || c.cfg.maxZoom != 2 {
		t.Errorf("Expected bounds [0.5, 2], got [%v, %v]", c.cfg.minZoom, c.cfg.maxZoom)
	}
	if c.cfg.zoomStep != 1.5 {
		t.Errorf("Expected zoom step 1.5, got %v", c.cfg.zoomStep)
	}
}
