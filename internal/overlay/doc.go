// Package overlay builds renderable paths around recognized text regions
// and can rasterize them onto an image.
//
// # Shape Builders
//
// Four builders turn a normalized observation into a closed pixel-space path
// for a caller-supplied target rectangle:
//
//   - BoundingBox: the axis-aligned rectangle enclosing a normalized rect.
//     The simplest overlay.
//   - Quad: the four corners connected in order. Tracks rotated or skewed
//     text exactly as the engine reported it.
//   - RoundedQuad: like Quad, but each corner is replaced by a short straight
//     approach and a quadratic curve through the corner. The rounding is an
//     approximation; see RoundedQuad for its known limits.
//   - ExpandedQuad: the quad grown away from its centroid in normalized
//     space before projection, leaving a margin around the text.
//
// All builders are pure, stateless functions and are safe to call from any
// goroutine. They cannot fail: degenerate quads (zero area, collinear
// corners) produce degenerate paths rather than errors.
//
// # Annotation
//
// Annotate strokes a set of paths onto a copy of an image and returns it
// base64-encoded, in the same result shape the rest of the tool surface
// uses. Stroke colors come from an explicit hex value or from an
// auto-generated palette with one distinct hue per path.
package overlay
