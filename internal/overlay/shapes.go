package overlay

import (
	"math"

	"github.com/ironsheep/text-overlay-mcp/internal/geometry"
)

const (
	// DefaultCornerRadius is the corner radius, in pixel units, used by the
	// rounded-quad overlay when the caller does not specify one.
	DefaultCornerRadius = 10.0

	// DefaultExpansionFactor grows the expanded-quad overlay 10% outward
	// from the quad's centroid.
	DefaultExpansionFactor = 1.1
)

// BoundingBox builds the axis-aligned pixel rectangle enclosing a normalized
// rectangle projected into the target.
//
// The projection flips the vertical axis, so the rect's top edge in
// normalized space becomes the smaller pixel y. The returned path is the
// enclosing rectangle traced clockwise from its top-left pixel corner.
func BoundingBox(rect geometry.Rect, target geometry.PixelRect) Path {
	// Opposite corners are enough: the result is axis-aligned by definition.
	a := geometry.Project(geometry.Point{X: rect.X, Y: rect.Y + rect.Height}, target)
	b := geometry.Project(geometry.Point{X: rect.X + rect.Width, Y: rect.Y}, target)

	x1, x2 := math.Min(a.X, b.X), math.Max(a.X, b.X)
	y1, y2 := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)

	return Path{
		moveTo(geometry.PixelPoint{X: x1, Y: y1}),
		lineTo(geometry.PixelPoint{X: x2, Y: y1}),
		lineTo(geometry.PixelPoint{X: x2, Y: y2}),
		lineTo(geometry.PixelPoint{X: x1, Y: y2}),
		closePath(),
	}
}

// Quad builds the straight quadrilateral overlay: all four corners projected
// into the target and connected topLeft, topRight, bottomRight, bottomLeft,
// then closed.
//
// Corner ordering is not validated. If the engine returned crossed or
// non-convex corners the polygon self-intersects; that is accepted behavior,
// not something this builder corrects.
func Quad(q geometry.Quad, target geometry.PixelRect) Path {
	c := projectCorners(q, target)
	return Path{
		moveTo(c[0]),
		lineTo(c[1]),
		lineTo(c[2]),
		lineTo(c[3]),
		closePath(),
	}
}

// RoundedQuad builds a quadrilateral overlay with softened corners.
//
// Each edge is drawn as a straight segment that stops cornerRadius short of
// the corner, followed by a quadratic curve that uses the corner itself as
// the control point and lands cornerRadius past the corner on the next edge.
// With cornerRadius 0 the curves collapse and the corner positions match
// Quad exactly.
//
// This is an approximation, not a geometrically rigorous rounded polygon:
// a cornerRadius larger than half the shortest edge makes adjacent curves
// overlap and the outline visibly misbehave. Callers wanting correct-looking
// corners must keep the radius below half the shortest edge; the builder
// does not enforce it.
func RoundedQuad(q geometry.Quad, target geometry.PixelRect, cornerRadius float64) Path {
	c := projectCorners(q, target)

	path := make(Path, 0, 10)
	path = append(path, moveTo(pointToward(c[0], c[1], cornerRadius)))
	for i := 0; i < 4; i++ {
		corner := c[(i+1)%4]
		next := c[(i+2)%4]
		path = append(path,
			lineTo(pointToward(corner, c[i], cornerRadius)),
			quadTo(corner, pointToward(corner, next, cornerRadius)),
		)
	}
	path = append(path, closePath())
	return path
}

// ExpandedQuad builds a straight quadrilateral overlay grown outward from
// the quad's centroid by expansionFactor (1.1 = 10% outward).
//
// Expansion happens in normalized space BEFORE projection, so the margin
// stays proportional to the text region whatever the target rectangle's
// aspect ratio. With expansionFactor 1.0 the output is identical to Quad.
func ExpandedQuad(q geometry.Quad, target geometry.PixelRect, expansionFactor float64) Path {
	return Quad(q.Expanded(expansionFactor), target)
}

// projectCorners maps the quad corners into pixel space in drawing order:
// topLeft, topRight, bottomRight, bottomLeft.
func projectCorners(q geometry.Quad, target geometry.PixelRect) [4]geometry.PixelPoint {
	corners := q.Corners()
	var out [4]geometry.PixelPoint
	for i, p := range corners {
		out[i] = geometry.Project(p, target)
	}
	return out
}

// pointToward returns the point dist pixel units from `from` along the
// direction of `to`. When the two points coincide the direction is
// undefined and `from` is returned, which keeps degenerate quads producing
// degenerate (zero-size) paths instead of NaNs.
func pointToward(from, to geometry.PixelPoint, dist float64) geometry.PixelPoint {
	dx := to.X - from.X
	dy := to.Y - from.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return from
	}
	return geometry.PixelPoint{
		X: from.X + dx/length*dist,
		Y: from.Y + dy/length*dist,
	}
}
