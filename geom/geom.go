// Package geom provides the pure viewport geometry used by the viewer:
// overflow detection, translate clamping and fit-to-viewport computation.
// All functions are stateless; dimensions are in pixels unless noted.
package geom

// Point is a 2D offset in pixels.
type Point struct {
	X, Y float64
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Area returns Width times Height.
func (s Size) Area() float64 { return s.Width * s.Height }

// Scale returns the size multiplied by f on both axes.
func (s Size) Scale(f float64) Size {
	return Size{Width: s.Width * f, Height: s.Height * f}
}

// Overflow reports, per direction, whether panning can still reveal
// hidden document content.
type Overflow struct {
	Up, Down, Left, Right bool
}

// Any reports whether panning is possible in any direction.
func (o Overflow) Any() bool { return o.Up || o.Down || o.Left || o.Right }

// ComputeOverflow reports the pan headroom of a document of unscaled size
// doc rendered at scale with top-left offset translate inside viewport.
// An axis overflows when the scaled document exceeds the viewport on that
// axis; a direction is pannable while the corresponding edge is still more
// than pad away from its clamped bound.
func ComputeOverflow(scale float64, translate Point, viewport, doc Size, pad float64) Overflow {
	scaled := doc.Scale(scale)
	overV := scaled.Height > viewport.Height
	overH := scaled.Width > viewport.Width
	return Overflow{
		Up:    overV && translate.Y < pad,
		Down:  overV && translate.Y > viewport.Height-scaled.Height-pad,
		Left:  overH && translate.X < pad,
		Right: overH && translate.X > viewport.Width-scaled.Width-pad,
	}
}

// ClampTranslate bounds a proposed translate. On an axis where the scaled
// document fits inside the viewport the result centers it; on an axis
// where it overflows, the near edge may recede at most pad into the
// viewport and the far edge may leave at most pad of visible gap.
// ClampTranslate is idempotent.
func ClampTranslate(translate Point, scale float64, doc, viewport Size, pad float64) Point {
	scaled := doc.Scale(scale)
	return Point{
		X: clampAxis(translate.X, scaled.Width, viewport.Width, pad),
		Y: clampAxis(translate.Y, scaled.Height, viewport.Height, pad),
	}
}

func clampAxis(v, docDim, viewDim, pad float64) float64 {
	if docDim <= viewDim {
		return (viewDim - docDim) / 2
	}
	if v > pad {
		v = pad
	}
	if lo := viewDim - docDim - pad; v < lo {
		v = lo
	}
	return v
}

// Fit computes the scale and translate that fit a document of unscaled
// size doc inside viewport with pad of margin on every side, centering
// the result. Upscaling is permitted. ok is false when the viewport has
// zero area, in which case callers leave their state unchanged.
func Fit(doc, viewport Size, pad float64) (scale float64, translate Point, ok bool) {
	if viewport.Area() == 0 || doc.Width == 0 || doc.Height == 0 {
		return 0, Point{}, false
	}
	scale = (viewport.Width - 2*pad) / doc.Width
	if s := (viewport.Height - 2*pad) / doc.Height; s < scale {
		scale = s
	}
	scaled := doc.Scale(scale)
	translate = Point{
		X: (viewport.Width - scaled.Width) / 2,
		Y: (viewport.Height - scaled.Height) / 2,
	}
	return scale, translate, true
}
