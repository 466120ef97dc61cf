// Package geometry defines the coordinate types shared by the recognition
// and overlay packages, and the single projection between them.
//
// # Coordinate Spaces
//
// Two coordinate spaces exist in this project:
//
//   - Normalized space: positions expressed as fractions of image width and
//     height, independent of pixel resolution. The origin is at the LOWER-left
//     corner and y increases upward. Values are conventionally in [0, 1], but
//     all operations tolerate out-of-range values (quad expansion produces
//     them on purpose).
//
//   - Pixel space: positions in a target rectangle with the origin at the
//     upper-left corner and y increasing downward, matching Go's image
//     package and every rendering surface this project targets.
//
// # The One Flip
//
// Because the two spaces disagree about the direction of the y axis, every
// conversion involves a vertical flip. That flip lives in exactly two
// functions: Project (normalized -> pixel) and Unproject (pixel ->
// normalized). Recognition engines that report y-down pixel boxes convert
// through Unproject at the adapter boundary; overlay builders convert back
// through Project. No other code in this repository performs axis math, so
// the convention cannot drift between packages.
package geometry
