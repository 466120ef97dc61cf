package overlay

import "github.com/ironsheep/text-overlay-mcp/internal/geometry"

// SegmentOp identifies the drawing operation of a path segment.
type SegmentOp string

const (
	// MoveTo starts a new subpath at the segment's To point.
	MoveTo SegmentOp = "move"

	// LineTo draws a straight line from the current point to To.
	LineTo SegmentOp = "line"

	// QuadTo draws a quadratic curve from the current point to To,
	// bending toward the Control point.
	QuadTo SegmentOp = "quad"

	// ClosePath connects the current point back to the subpath start.
	// To and Control are unused.
	ClosePath SegmentOp = "close"
)

// Segment is one drawing operation of a path.
type Segment struct {
	Op SegmentOp `json:"op"`

	// To is the segment end point. Unused for ClosePath.
	To geometry.PixelPoint `json:"to"`

	// Control is the quadratic control point. Only set for QuadTo.
	Control *geometry.PixelPoint `json:"control,omitempty"`
}

// Path is an ordered sequence of segments forming one closed shape in pixel
// coordinates, ready for an external rendering layer (or Annotate).
type Path []Segment

func moveTo(p geometry.PixelPoint) Segment { return Segment{Op: MoveTo, To: p} }
func lineTo(p geometry.PixelPoint) Segment { return Segment{Op: LineTo, To: p} }

func quadTo(control, to geometry.PixelPoint) Segment {
	c := control
	return Segment{Op: QuadTo, To: to, Control: &c}
}

func closePath() Segment { return Segment{Op: ClosePath} }
