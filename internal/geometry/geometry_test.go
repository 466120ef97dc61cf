package geometry

import (
	"math"
	"testing"
)

const epsilon = 1e-9

// almostEqual compares floats with a small tolerance for rounding error.
func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestProject_CornerMapping(t *testing.T) {
	r := PixelRect{X: 0, Y: 0, Width: 800, Height: 600}

	tests := []struct {
		name string
		p    Point
		want PixelPoint
	}{
		{"bottom-left origin", Point{0, 0}, PixelPoint{0, 600}},
		{"top-left", Point{0, 1}, PixelPoint{0, 0}},
		{"top-right", Point{1, 1}, PixelPoint{800, 0}},
		{"bottom-right", Point{1, 0}, PixelPoint{800, 600}},
		{"center", Point{0.5, 0.5}, PixelPoint{400, 300}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(tt.p, r)
			if !almostEqual(got.X, tt.want.X) || !almostEqual(got.Y, tt.want.Y) {
				t.Errorf("Project(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestProject_OffsetRect(t *testing.T) {
	r := PixelRect{X: 100, Y: 50, Width: 200, Height: 100}

	got := Project(Point{0, 1}, r)
	if !almostEqual(got.X, 100) || !almostEqual(got.Y, 50) {
		t.Errorf("top-left of offset rect = %v, want (100, 50)", got)
	}

	got = Project(Point{1, 0}, r)
	if !almostEqual(got.X, 300) || !almostEqual(got.Y, 150) {
		t.Errorf("bottom-right of offset rect = %v, want (300, 150)", got)
	}
}

// Points inside the unit square must land inside the target rectangle, and
// points outside must land outside.
func TestProject_BoundsContainment(t *testing.T) {
	r := PixelRect{X: 10, Y: 20, Width: 640, Height: 480}

	inside := func(pp PixelPoint) bool {
		return pp.X >= r.X && pp.X <= r.X+r.Width &&
			pp.Y >= r.Y && pp.Y <= r.Y+r.Height
	}

	inUnit := []Point{{0, 0}, {1, 1}, {0.25, 0.75}, {0.999, 0.001}}
	for _, p := range inUnit {
		if !inside(Project(p, r)) {
			t.Errorf("Project(%v) landed outside the target rect", p)
		}
	}

	outUnit := []Point{{-0.05, 0.5}, {1.05, 0.5}, {0.5, -0.05}, {0.5, 1.05}}
	for _, p := range outUnit {
		if inside(Project(p, r)) {
			t.Errorf("Project(%v) landed inside the target rect", p)
		}
	}
}

func TestProject_Unproject_RoundTrip(t *testing.T) {
	r := PixelRect{X: 33, Y: 7, Width: 123.5, Height: 456.25}

	points := []Point{
		{0.1, 0.2},
		{0.5, 0.5},
		{0.9, 0.95},
		{0.013, 0.987},
	}
	for _, p := range points {
		got := Unproject(Project(p, r), r)
		if !almostEqual(got.X, p.X) || !almostEqual(got.Y, p.Y) {
			t.Errorf("round trip of %v = %v", p, got)
		}
	}

	pixels := []PixelPoint{{40, 10}, {100, 100}, {33, 463.25}}
	for _, pp := range pixels {
		got := Project(Unproject(pp, r), r)
		if !almostEqual(got.X, pp.X) || !almostEqual(got.Y, pp.Y) {
			t.Errorf("pixel round trip of %v = %v", pp, got)
		}
	}
}

func TestRect_Quad(t *testing.T) {
	q := Rect{X: 0.1, Y: 0.2, Width: 0.5, Height: 0.25}.Quad()

	if q.BottomLeft != (Point{0.1, 0.2}) {
		t.Errorf("BottomLeft = %v", q.BottomLeft)
	}
	if q.TopLeft != (Point{0.1, 0.45}) {
		t.Errorf("TopLeft = %v", q.TopLeft)
	}
	if q.TopRight != (Point{0.6, 0.45}) {
		t.Errorf("TopRight = %v", q.TopRight)
	}
	if q.BottomRight != (Point{0.6, 0.2}) {
		t.Errorf("BottomRight = %v", q.BottomRight)
	}
}

func TestQuad_Centroid(t *testing.T) {
	q := Quad{
		TopLeft:     Point{0, 1},
		TopRight:    Point{1, 1},
		BottomLeft:  Point{0, 0},
		BottomRight: Point{1, 0},
	}
	c := q.Centroid()
	if !almostEqual(c.X, 0.5) || !almostEqual(c.Y, 0.5) {
		t.Errorf("unit square centroid = %v, want (0.5, 0.5)", c)
	}

	// Irregular quad: centroid is the per-axis mean of the corners.
	q = Quad{
		TopLeft:     Point{0.2, 0.8},
		TopRight:    Point{0.6, 0.9},
		BottomLeft:  Point{0.1, 0.3},
		BottomRight: Point{0.7, 0.2},
	}
	c = q.Centroid()
	if !almostEqual(c.X, 0.4) || !almostEqual(c.Y, 0.55) {
		t.Errorf("irregular quad centroid = %v, want (0.4, 0.55)", c)
	}
}

func TestQuad_Expanded_Identity(t *testing.T) {
	q := Quad{
		TopLeft:     Point{0.2, 0.8},
		TopRight:    Point{0.6, 0.9},
		BottomLeft:  Point{0.1, 0.3},
		BottomRight: Point{0.7, 0.2},
	}
	got := q.Expanded(1.0)
	if got != q {
		t.Errorf("Expanded(1.0) = %+v, want unchanged %+v", got, q)
	}
}

func TestQuad_Expanded_UnitSquare(t *testing.T) {
	q := Quad{
		TopLeft:     Point{0, 1},
		TopRight:    Point{1, 1},
		BottomLeft:  Point{0, 0},
		BottomRight: Point{1, 0},
	}
	got := q.Expanded(1.1)

	check := func(name string, p Point, wantX, wantY float64) {
		t.Helper()
		if !almostEqual(p.X, wantX) || !almostEqual(p.Y, wantY) {
			t.Errorf("%s = %v, want (%v, %v)", name, p, wantX, wantY)
		}
	}
	check("TopLeft", got.TopLeft, -0.05, 1.05)
	check("TopRight", got.TopRight, 1.05, 1.05)
	check("BottomLeft", got.BottomLeft, -0.05, -0.05)
	check("BottomRight", got.BottomRight, 1.05, -0.05)
}

func TestQuad_Expanded_Shrink(t *testing.T) {
	q := Quad{
		TopLeft:     Point{0, 1},
		TopRight:    Point{1, 1},
		BottomLeft:  Point{0, 0},
		BottomRight: Point{1, 0},
	}
	got := q.Expanded(0.5)
	if !almostEqual(got.TopLeft.X, 0.25) || !almostEqual(got.TopLeft.Y, 0.75) {
		t.Errorf("shrunk TopLeft = %v, want (0.25, 0.75)", got.TopLeft)
	}
}

func TestQuad_Expanded_Degenerate(t *testing.T) {
	// All corners collapsed to one point: the centroid is that point and
	// expansion is a no-op, not an error.
	p := Point{0.3, 0.7}
	q := Quad{TopLeft: p, TopRight: p, BottomLeft: p, BottomRight: p}
	got := q.Expanded(2.0)
	if got != q {
		t.Errorf("degenerate quad changed under expansion: %+v", got)
	}
}

func TestQuad_Corners_Order(t *testing.T) {
	q := Quad{
		TopLeft:     Point{0, 1},
		TopRight:    Point{1, 1},
		BottomLeft:  Point{0, 0},
		BottomRight: Point{1, 0},
	}
	c := q.Corners()
	want := [4]Point{{0, 1}, {1, 1}, {1, 0}, {0, 0}}
	if c != want {
		t.Errorf("Corners() = %v, want drawing order TL,TR,BR,BL", c)
	}
}
