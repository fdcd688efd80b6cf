package viewport

import (
	"time"

	"github.com/mkview/mkview/observability"
)

// Defaults for every tunable. They match the behavior the viewer was
// tuned with; hosts override them through the With options.
const (
	DefaultEdgePadding           = 24.0
	DefaultPageTurnThreshold     = 20.0
	DefaultPageTurnCooldown      = 150 * time.Millisecond
	DefaultZoomAnimationDuration = 200 * time.Millisecond
	DefaultMinZoom               = 0.1
	DefaultMaxZoom               = 4.0
	DefaultZoomStep              = 1.25
)

type config struct {
	edgePadding       float64
	pageTurnThreshold float64
	pageTurnCooldown  time.Duration
	zoomAnimDuration  time.Duration
	minZoom, maxZoom  float64
	zoomStep          float64
	save              func() error
	logger            observability.Logger
}

func defaultConfig() config {
	return config{
		edgePadding:       DefaultEdgePadding,
		pageTurnThreshold: DefaultPageTurnThreshold,
		pageTurnCooldown:  DefaultPageTurnCooldown,
		zoomAnimDuration:  DefaultZoomAnimationDuration,
		minZoom:           DefaultMinZoom,
		maxZoom:           DefaultMaxZoom,
		zoomStep:          DefaultZoomStep,
		logger:            observability.NopLogger{},
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithEdgePadding sets the grace margin in pixels permitted between a
// document edge and its clamped bound.
func WithEdgePadding(px float64) Option {
	return func(c *Controller) { c.cfg.edgePadding = px }
}

// WithPageTurnThreshold sets the accumulated continuous scroll delta
// required to trigger a page turn.
func WithPageTurnThreshold(delta float64) Option {
	return func(c *Controller) { c.cfg.pageTurnThreshold = delta }
}

// WithPageTurnCooldown sets the minimum time between consecutive page
// changes.
func WithPageTurnCooldown(d time.Duration) Option {
	return func(c *Controller) { c.cfg.pageTurnCooldown = d }
}

// WithZoomAnimationDuration sets the duration of animated zoom and fit
// transitions.
func WithZoomAnimationDuration(d time.Duration) Option {
	return func(c *Controller) { c.cfg.zoomAnimDuration = d }
}

// WithZoomBounds sets the allowed scale range.
func WithZoomBounds(min, max float64) Option {
	return func(c *Controller) {
		c.cfg.minZoom = min
		c.cfg.maxZoom = max
	}
}

// WithZoomStep sets the factor applied by ZoomIn and ZoomOut.
func WithZoomStep(factor float64) Option {
	return func(c *Controller) { c.cfg.zoomStep = factor }
}

// WithSaveFunc supplies the callback invoked by Save. Persistence is
// delegated entirely to it.
func WithSaveFunc(save func() error) Option {
	return func(c *Controller) { c.cfg.save = save }
}

// WithLogger supplies the logger used for gesture and state commit
// diagnostics.
func WithLogger(log observability.Logger) Option {
	return func(c *Controller) { c.cfg.logger = log }
}
