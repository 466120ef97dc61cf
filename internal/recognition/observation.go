package recognition

import "github.com/ironsheep/text-overlay-mcp/internal/geometry"

// Observation is one detected text region in normalized image coordinates.
//
// Every observation carries an axis-aligned bounding rectangle. Engines that
// detect rotated or skewed text additionally expose the region's four corner
// points; Quad reports whether that capability is present. The two accessors
// are independent so overlay code can pick the richest geometry available
// without knowing which engine produced the observation.
type Observation interface {
	// BoundingBox returns the normalized axis-aligned rectangle covering
	// the region.
	BoundingBox() geometry.Rect

	// Quad returns the region's four corner points and true when the
	// engine provided corner geometry, or a zero Quad and false when only
	// the bounding rectangle is known.
	Quad() (geometry.Quad, bool)
}

// TextObservation is the concrete observation produced by the bundled
// engines: a text region with its recognized content and confidence.
type TextObservation struct {
	// Text is the recognized text content of the region.
	Text string `json:"text"`

	// Confidence is the engine's confidence in the recognition (0.0 to 1.0).
	Confidence float64 `json:"confidence"`

	// Box is the normalized bounding rectangle of the region.
	Box geometry.Rect `json:"box"`

	// Corners holds the region's quadrilateral when the engine reported
	// one; nil when only the bounding box is available.
	Corners *geometry.Quad `json:"corners,omitempty"`
}

// BoundingBox returns the normalized bounding rectangle.
func (o TextObservation) BoundingBox() geometry.Rect {
	return o.Box
}

// Quad returns the corner quadrilateral when present.
func (o TextObservation) Quad() (geometry.Quad, bool) {
	if o.Corners == nil {
		return geometry.Quad{}, false
	}
	return *o.Corners, true
}
