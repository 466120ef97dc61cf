package overlay

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// curveSteps is the number of straight spans a quadratic segment is
// flattened into when rasterizing. Overlay curves are at most a few tens of
// pixels long, so a fixed subdivision is plenty.
const curveSteps = 16

// Style controls how Annotate strokes paths onto an image.
type Style struct {
	// StrokeHex is the stroke color as "#RRGGBB" or "#RRGGBBAA".
	// When empty, each path gets a distinct color from an auto palette.
	StrokeHex string `json:"stroke_hex,omitempty"`

	// StrokeWidth is the stroke thickness in pixels. Values below 1 are
	// treated as 1.
	StrokeWidth int `json:"stroke_width,omitempty"`

	// Labels, when non-empty, is drawn next to the corresponding path
	// (index-aligned). Extra labels are ignored; missing ones are skipped.
	Labels []string `json:"labels,omitempty"`
}

// AnnotateResult contains the annotated image encoded as base64 PNG.
type AnnotateResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	ShapeCount  int    `json:"shape_count"`
}

// Annotate strokes the given paths onto a copy of img and returns the result
// as a base64-encoded PNG.
//
// Path coordinates are interpreted relative to the image's own pixel space,
// which is the common case: callers build paths with a target rectangle of
// (0, 0, width, height). Segments falling outside the image are clipped by
// the per-pixel bounds check, not an error.
func Annotate(img image.Image, paths []Path, style Style) (*AnnotateResult, error) {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, img, bounds.Min, draw.Src)

	width := style.StrokeWidth
	if width < 1 {
		width = 1
	}

	var fixedColor *color.RGBA
	if style.StrokeHex != "" {
		c, err := parseHexColor(style.StrokeHex)
		if err != nil {
			return nil, fmt.Errorf("invalid stroke color %q: %w", style.StrokeHex, err)
		}
		fixedColor = &c
	}

	for i, path := range paths {
		stroke := paletteColor(i, len(paths))
		if fixedColor != nil {
			stroke = *fixedColor
		}

		points := flatten(path)
		for j := 1; j < len(points); j++ {
			drawLine(out, points[j-1], points[j], stroke, width)
		}

		if i < len(style.Labels) && style.Labels[i] != "" && len(points) > 0 {
			drawLabel(out, int(points[0].x), int(points[0].y)-3, style.Labels[i], stroke)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode annotated image: %w", err)
	}

	return &AnnotateResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		ShapeCount:  len(paths),
	}, nil
}

type fpoint struct{ x, y float64 }

// flatten converts a path into a polyline. Quadratic segments are subdivided
// into curveSteps straight spans; close segments connect back to the subpath
// start.
func flatten(path Path) []fpoint {
	points := make([]fpoint, 0, len(path)+8)
	var start, current fpoint

	for _, seg := range path {
		switch seg.Op {
		case MoveTo:
			current = fpoint{seg.To.X, seg.To.Y}
			start = current
			points = append(points, current)
		case LineTo:
			current = fpoint{seg.To.X, seg.To.Y}
			points = append(points, current)
		case QuadTo:
			control := current
			if seg.Control != nil {
				control = fpoint{seg.Control.X, seg.Control.Y}
			}
			end := fpoint{seg.To.X, seg.To.Y}
			for s := 1; s <= curveSteps; s++ {
				t := float64(s) / curveSteps
				points = append(points, quadPoint(current, control, end, t))
			}
			current = end
		case ClosePath:
			points = append(points, start)
			current = start
		}
	}
	return points
}

// quadPoint evaluates a quadratic curve at parameter t in [0, 1].
func quadPoint(p0, c, p1 fpoint, t float64) fpoint {
	u := 1 - t
	return fpoint{
		x: u*u*p0.x + 2*u*t*c.x + t*t*p1.x,
		y: u*u*p0.y + 2*u*t*c.y + t*t*p1.y,
	}
}

// drawLine strokes a straight segment by uniform stepping, thickened by
// painting a width x width block at each step.
func drawLine(img *image.RGBA, a, b fpoint, c color.RGBA, width int) {
	steps := int(math.Max(math.Abs(b.x-a.x), math.Abs(b.y-a.y)))
	if steps == 0 {
		setBlock(img, int(math.Round(a.x)), int(math.Round(a.y)), c, width)
		return
	}
	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		x := int(math.Round(a.x + (b.x-a.x)*t))
		y := int(math.Round(a.y + (b.y-a.y)*t))
		setBlock(img, x, y, c, width)
	}
}

// setBlock paints a width x width block centered on (x, y), clipped to the
// image bounds.
func setBlock(img *image.RGBA, x, y int, c color.RGBA, width int) {
	bounds := img.Bounds()
	half := width / 2
	for dy := -half; dy <= half; dy++ {
		for dx := -half; dx <= half; dx++ {
			px, py := x+dx, y+dy
			if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
				img.Set(px, py, c)
			}
		}
	}
}

// paletteColor returns a stable, visually distinct stroke color for path i
// of n. Hues are spread evenly around the color wheel at high saturation so
// neighboring overlays remain distinguishable on busy photos.
func paletteColor(i, n int) color.RGBA {
	if n < 1 {
		n = 1
	}
	hue := float64(i%n) / float64(n) * 360.0
	r, g, b := colorful.Hsv(hue, 0.85, 0.95).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// drawLabel renders a text label at the given position using the fixed
// 7x13 basic font, with a dark backing box for legibility.
func drawLabel(img *image.RGBA, x, y int, text string, fg color.RGBA) {
	bounds := img.Bounds()
	labelWidth := len(text) * 7
	labelHeight := 13

	// Keep the label inside the image.
	if y-labelHeight < bounds.Min.Y {
		y = bounds.Min.Y + labelHeight
	}
	if x+labelWidth > bounds.Max.X {
		x = bounds.Max.X - labelWidth
	}
	if x < bounds.Min.X {
		x = bounds.Min.X
	}

	bg := color.RGBA{0, 0, 0, 180}
	for dy := -labelHeight; dy < 2; dy++ {
		for dx := -1; dx < labelWidth+1; dx++ {
			px, py := x+dx, y+dy
			if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
				img.Set(px, py, bg)
			}
		}
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}

// parseHexColor parses a hex color string like "#FF0000" or "#FF000080".
func parseHexColor(hex string) (color.RGBA, error) {
	if len(hex) == 0 {
		return color.RGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint8 = 0, 0, 0, 255

	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		r = uint8(val >> 16)
		g = uint8(val >> 8)
		b = uint8(val)
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		r = uint8(val >> 24)
		g = uint8(val >> 16)
		b = uint8(val >> 8)
		a = uint8(val)
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color length")
	}

	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}
