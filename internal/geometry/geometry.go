package geometry

// Point is a position in normalized unit-square coordinates.
//
// Both components are conventionally in [0, 1], with (0, 0) at the lower-left
// corner of the image and (1, 1) at the upper-right. Out-of-range values are
// valid inputs everywhere: quad expansion deliberately pushes corners outside
// the unit square, and Project simply places such points outside the target
// rectangle.
type Point struct {
	X float64 `json:"x"` // Horizontal fraction of image width (0 = left edge)
	Y float64 `json:"y"` // Vertical fraction of image height (0 = bottom edge)
}

// Rect is a normalized axis-aligned rectangle.
//
// The origin (X, Y) is the LOWER-left corner in the normalized convention,
// so Y+Height is the top edge. The full image is Rect{0, 0, 1, 1}.
type Rect struct {
	X      float64 `json:"x"`      // Left edge
	Y      float64 `json:"y"`      // Bottom edge
	Width  float64 `json:"width"`  // Horizontal extent
	Height float64 `json:"height"` // Vertical extent
}

// Quad is a quadrilateral described by four normalized corner points.
//
// Corner ordering and convexity are NOT validated: the corners are trusted
// in the order the recognition engine returned them. A quad with crossed or
// non-convex corners produces a self-intersecting overlay path, which is
// accepted behavior. Callers that construct quads by hand are responsible
// for ordering the corners correctly.
type Quad struct {
	TopLeft     Point `json:"top_left"`
	TopRight    Point `json:"top_right"`
	BottomLeft  Point `json:"bottom_left"`
	BottomRight Point `json:"bottom_right"`
}

// PixelPoint is a position in pixel space, relative to a target rectangle.
// The origin is at the upper-left corner and y increases downward.
type PixelPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PixelRect is the axis-aligned pixel-space rectangle a normalized shape is
// projected into, typically the bounds of the view or image being annotated.
type PixelRect struct {
	X      float64 `json:"x"`      // Left edge
	Y      float64 `json:"y"`      // Top edge
	Width  float64 `json:"width"`  // Horizontal extent
	Height float64 `json:"height"` // Vertical extent
}

// Project maps a normalized point into the given pixel rectangle.
//
// The normalized y axis increases upward while pixel y increases downward,
// so the y component is flipped:
//
//	px = r.X + p.X * r.Width
//	py = r.Y + (1 - p.Y) * r.Height
//
// This function is the ONLY place the forward conversion lives; every shape
// builder funnels each corner through it. It is total over all real inputs:
// points outside [0, 1] land outside the rectangle, never an error.
//
// For r.Width and r.Height > 0, the result lies within r exactly when both
// components of p are within [0, 1].
func Project(p Point, r PixelRect) PixelPoint {
	return PixelPoint{
		X: r.X + p.X*r.Width,
		Y: r.Y + (1-p.Y)*r.Height,
	}
}

// Unproject maps a pixel point back into normalized coordinates, inverting
// Project. The rectangle must have nonzero width and height; this is a
// documented precondition, not a checked one.
//
// Recognition adapters use Unproject to convert an engine's y-down pixel
// output into the internal normalized convention, so the vertical flip is
// applied in exactly one place on each side of the boundary.
func Unproject(p PixelPoint, r PixelRect) Point {
	return Point{
		X: (p.X - r.X) / r.Width,
		Y: 1 - (p.Y-r.Y)/r.Height,
	}
}

// Quad returns the rectangle's corners as a Quad.
func (r Rect) Quad() Quad {
	return Quad{
		TopLeft:     Point{X: r.X, Y: r.Y + r.Height},
		TopRight:    Point{X: r.X + r.Width, Y: r.Y + r.Height},
		BottomLeft:  Point{X: r.X, Y: r.Y},
		BottomRight: Point{X: r.X + r.Width, Y: r.Y},
	}
}

// Centroid returns the arithmetic mean of the four corners, computed
// independently per axis. It is the scaling origin for Expanded.
func (q Quad) Centroid() Point {
	return Point{
		X: (q.TopLeft.X + q.TopRight.X + q.BottomLeft.X + q.BottomRight.X) / 4,
		Y: (q.TopLeft.Y + q.TopRight.Y + q.BottomLeft.Y + q.BottomRight.Y) / 4,
	}
}

// Expanded returns a copy of the quad with every corner scaled away from the
// centroid by factor. A factor of 1.1 moves each corner 10% further out; a
// factor below 1 shrinks the quad; 1.0 is the identity.
//
// Scaling happens in NORMALIZED space, before any projection to pixels, so
// the expansion stays proportional to the text region regardless of the
// target rectangle's aspect ratio. This is deliberate: expanding after
// projection would grow wide targets more horizontally than vertically.
func (q Quad) Expanded(factor float64) Quad {
	c := q.Centroid()
	scale := func(p Point) Point {
		return Point{
			X: c.X + (p.X-c.X)*factor,
			Y: c.Y + (p.Y-c.Y)*factor,
		}
	}
	return Quad{
		TopLeft:     scale(q.TopLeft),
		TopRight:    scale(q.TopRight),
		BottomLeft:  scale(q.BottomLeft),
		BottomRight: scale(q.BottomRight),
	}
}

// Corners returns the corners in overlay drawing order:
// topLeft, topRight, bottomRight, bottomLeft.
func (q Quad) Corners() [4]Point {
	return [4]Point{q.TopLeft, q.TopRight, q.BottomRight, q.BottomLeft}
}
