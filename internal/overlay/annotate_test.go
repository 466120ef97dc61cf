package overlay

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/ironsheep/text-overlay-mcp/internal/geometry"
)

// whiteImage creates a plain white test image.
func whiteImage(t *testing.T, width, height int) *image.RGBA {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}

// decodeResult decodes the base64 PNG payload of an AnnotateResult.
func decodeResult(t *testing.T, res *AnnotateResult) image.Image {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(res.ImageBase64)
	if err != nil {
		t.Fatalf("result is not valid base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("result is not valid PNG: %v", err)
	}
	return img
}

func TestAnnotate_StrokesBoundingBox(t *testing.T) {
	img := whiteImage(t, 100, 100)
	box := BoundingBox(geometry.Rect{X: 0.2, Y: 0.2, Width: 0.6, Height: 0.6},
		geometry.PixelRect{X: 0, Y: 0, Width: 100, Height: 100})

	res, err := Annotate(img, []Path{box}, Style{StrokeHex: "#FF0000"})
	if err != nil {
		t.Fatalf("Annotate failed: %v", err)
	}
	if res.Width != 100 || res.Height != 100 {
		t.Errorf("result dimensions %dx%d, want 100x100", res.Width, res.Height)
	}
	if res.ShapeCount != 1 {
		t.Errorf("ShapeCount = %d, want 1", res.ShapeCount)
	}
	if res.MimeType != "image/png" {
		t.Errorf("MimeType = %q", res.MimeType)
	}

	out := decodeResult(t, res)

	// The box spans x in [20, 80], y in [20, 80]; its top edge must be red.
	r, g, b, _ := out.At(50, 20).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("pixel on box edge = (%d, %d, %d), want red", r>>8, g>>8, b>>8)
	}

	// The interior stays untouched.
	r, g, b, _ = out.At(50, 50).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("interior pixel = (%d, %d, %d), want white", r>>8, g>>8, b>>8)
	}
}

func TestAnnotate_InvalidStrokeColor(t *testing.T) {
	img := whiteImage(t, 10, 10)
	_, err := Annotate(img, nil, Style{StrokeHex: "not-a-color"})
	if err == nil {
		t.Error("Annotate should reject an unparseable stroke color")
	}
}

func TestAnnotate_AutoPaletteDistinctColors(t *testing.T) {
	a := paletteColor(0, 3)
	b := paletteColor(1, 3)
	c := paletteColor(2, 3)
	if a == b || b == c || a == c {
		t.Errorf("palette colors not distinct: %v %v %v", a, b, c)
	}
}

func TestAnnotate_OutOfBoundsPathClipped(t *testing.T) {
	// An expanded quad of the full image pushes the path outside the
	// bounds; drawing must clip, not panic.
	img := whiteImage(t, 50, 50)
	path := ExpandedQuad(geometry.Rect{X: 0, Y: 0, Width: 1, Height: 1}.Quad(),
		geometry.PixelRect{X: 0, Y: 0, Width: 50, Height: 50}, 1.2)

	if _, err := Annotate(img, []Path{path}, Style{}); err != nil {
		t.Fatalf("Annotate failed on out-of-bounds path: %v", err)
	}
}

func TestAnnotate_Labels(t *testing.T) {
	img := whiteImage(t, 120, 60)
	box := BoundingBox(geometry.Rect{X: 0.1, Y: 0.1, Width: 0.8, Height: 0.6},
		geometry.PixelRect{X: 0, Y: 0, Width: 120, Height: 60})

	res, err := Annotate(img, []Path{box}, Style{
		StrokeHex: "#00FF00",
		Labels:    []string{"hello"},
	})
	if err != nil {
		t.Fatalf("Annotate with labels failed: %v", err)
	}

	// The label backing box darkens pixels near the path start; verify
	// at least one non-white pixel exists outside the stroke itself.
	out := decodeResult(t, res)
	found := false
	for y := 0; y < 25 && !found; y++ {
		for x := 0; x < 60 && !found; x++ {
			r, g, b, _ := out.At(x, y).RGBA()
			if r>>8 < 250 && g>>8 < 250 && b>>8 < 250 {
				found = true
			}
		}
	}
	if !found {
		t.Error("expected label pixels near the path start")
	}
}

func TestFlatten_CloseReturnsToStart(t *testing.T) {
	path := Quad(geometry.Rect{X: 0, Y: 0, Width: 1, Height: 1}.Quad(),
		geometry.PixelRect{X: 0, Y: 0, Width: 10, Height: 10})

	points := flatten(path)
	if len(points) < 5 {
		t.Fatalf("flattened path too short: %d points", len(points))
	}
	first, last := points[0], points[len(points)-1]
	if first != last {
		t.Errorf("closed path does not return to start: %v vs %v", first, last)
	}
}

func TestFlatten_QuadraticCurveSubdivided(t *testing.T) {
	path := RoundedQuad(geometry.Rect{X: 0, Y: 0, Width: 1, Height: 1}.Quad(),
		geometry.PixelRect{X: 0, Y: 0, Width: 100, Height: 100}, 10)

	points := flatten(path)
	// 1 move + 4 lines + 4 curves x curveSteps + close.
	want := 1 + 4 + 4*curveSteps + 1
	if len(points) != want {
		t.Errorf("flattened point count = %d, want %d", len(points), want)
	}
}
