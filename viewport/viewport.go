// Package viewport implements the view state controller for a paginated
// document viewer. A Controller owns the canonical scale/translate/page
// state, interprets wheel, pointer and keyboard input into pans, zooms
// and page turns, and drives animated transitions between view states.
//
// The controller is single-threaded and event-driven: the host delivers
// one input event or one animation frame at a time and reads the
// committed State each frame. It performs no I/O; the document and the
// save path are supplied by external collaborators.
package viewport

import (
	"time"

	"github.com/mkview/mkview/document"
	"github.com/mkview/mkview/geom"
	"github.com/mkview/mkview/observability"
)

// State is the committed view state read by the renderer each frame.
type State struct {
	// Scale is the zoom level, kept within the configured zoom bounds.
	Scale float64
	// Translate is the pixel offset of the document's top-left corner
	// within the viewport.
	Translate geom.Point
	// Page is the current 1-based page number, 0 for an empty document.
	Page int
	// FitMode reports whether the view tracks viewport-fit on resize.
	// Any manual zoom or pan clears it.
	FitMode bool
}

// accumulator debounces continuous scroll into page turns.
type accumulator struct {
	// pending is the signed sum of continuous deltaY since the last
	// committed pan or committed/rejected page turn.
	pending float64
	// lastChange is the time of the last page change.
	lastChange time.Time
}

// Controller owns and is the sole mutator of the view state.
type Controller struct {
	cfg  config
	log  observability.Logger
	size func() geom.Size

	doc   *document.Document
	state State
	accum accumulator
	drag  dragState
	anim  animation
}

// New creates a controller. size reports the current viewport dimensions
// and is read on demand, never cached, since the container may resize
// between events.
func New(size func() geom.Size, opts ...Option) *Controller {
	c := &Controller{
		cfg:  defaultConfig(),
		size: size,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.cfg.logger.With(observability.String("component", "viewport"))
	return c
}

// State returns a snapshot of the committed view state.
func (c *Controller) State() State { return c.state }

// Document returns the document currently viewed, possibly nil.
func (c *Controller) Document() *document.Document { return c.doc }

// SetDocument replaces the viewed document and resets the view to the
// fit state. It is called by the content pipeline whenever source
// content changes.
func (c *Controller) SetDocument(doc *document.Document) {
	c.cancelAnimation()
	c.drag = dragState{}
	c.accum = accumulator{}
	c.doc = doc
	c.state = State{Scale: 1, Page: doc.ClampPage(1), FitMode: true}
	c.applyFit(false, time.Time{})
	c.log.Info("document set",
		observability.Int("pages", doc.NumPages()),
		observability.Float64("scale", c.state.Scale))
}

// Resize is called when the container changes size. In fit mode the fit
// is recomputed and applied instantly, so continuous resizes do not
// jitter through animations; otherwise the translate is re-clamped to
// the new bounds at the unchanged scale.
func (c *Controller) Resize() {
	if c.doc.NumPages() == 0 {
		return
	}
	if c.state.FitMode {
		c.applyFit(false, time.Time{})
		return
	}
	c.state.Translate = geom.ClampTranslate(c.state.Translate, c.state.Scale,
		c.doc.PageSize(), c.size(), c.cfg.edgePadding)
}

// Save invokes the externally supplied save callback. Without one it is
// a no-op.
func (c *Controller) Save() error {
	if c.cfg.save == nil {
		return nil
	}
	return c.cfg.save()
}

// Close releases the controller: the drag ends and any in-flight
// animation is cancelled so a stale frame can never mutate state after
// teardown.
func (c *Controller) Close() {
	c.cancelAnimation()
	c.drag = dragState{}
}

func (c *Controller) clampScale(s float64) float64 {
	if s < c.cfg.minZoom {
		return c.cfg.minZoom
	}
	if s > c.cfg.maxZoom {
		return c.cfg.maxZoom
	}
	return s
}

func (c *Controller) clampTranslate(p geom.Point, scale float64) geom.Point {
	return geom.ClampTranslate(p, scale, c.doc.PageSize(), c.size(), c.cfg.edgePadding)
}
