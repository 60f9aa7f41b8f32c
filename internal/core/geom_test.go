package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestCircleIntersectsCircle(t *testing.T) {
	tests := []struct {
		name     string
		a        Vec2
		ra       float64
		b        Vec2
		rb       float64
		expected bool
	}{
		{"overlapping", V(0, 0), 5, V(6, 0), 5, true},
		{"touching (no overlap)", V(0, 0), 5, V(10, 0), 5, false},
		{"apart", V(0, 0), 5, V(20, 0), 5, false},
		{"concentric", V(3, 3), 1, V(3, 3), 2, true},
		{"diagonal overlap", V(0, 0), 5, V(6, 6), 5, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CircleIntersectsCircle(tc.a, tc.ra, tc.b, tc.rb); got != tc.expected {
				t.Errorf("CircleIntersectsCircle() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := CircleIntersectsCircle(tc.b, tc.rb, tc.a, tc.ra); got != tc.expected {
				t.Errorf("CircleIntersectsCircle() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestOrientedRectCorners(t *testing.T) {
	r := OrientedRect{X: 100, Y: 50, W: 10, H: 20, Origin: V(5, 10)}

	c := r.Corners()
	want := [4]Vec2{V(95, 40), V(105, 40), V(105, 60), V(95, 60)}
	for i := range want {
		if !approx(c[i].X, want[i].X) || !approx(c[i].Y, want[i].Y) {
			t.Errorf("corner %d = %v, expected %v", i, c[i], want[i])
		}
	}

	// Quarter turn about the pivot swaps the extents
	r.Rotation = 90
	c = r.Corners()
	if !approx(c[0].X, 110) || !approx(c[0].Y, 45) {
		t.Errorf("rotated top-left = %v, expected (110, 45)", c[0])
	}
}

func TestOrientedRectIntersectsCircle(t *testing.T) {
	// 80x20 blade pivoting at its left end
	blade := OrientedRect{X: 0, Y: 0, W: 80, H: 20}

	tests := []struct {
		name     string
		rotation float64
		pos      Vec2
		radius   float64
		expected bool
	}{
		{"touching top edge", 0, V(40, -5), 6, true},
		{"above top edge", 0, V(40, -10), 6, false},
		{"past far end", 0, V(90, 10), 5, false},
		{"reaching far end", 0, V(90, 10), 11, true},
		{"rotated down hits", 90, V(-10, 40), 11, true},
		{"rotated down misses old area", 90, V(40, 10), 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			blade.Rotation = tc.rotation
			if got := blade.IntersectsCircle(tc.pos, tc.radius); got != tc.expected {
				t.Errorf("IntersectsCircle(%v, %v) = %v, expected %v", tc.pos, tc.radius, got, tc.expected)
			}
		})
	}
}

func TestOrientedRectDegenerateEdge(t *testing.T) {
	// A zero-size rectangle collapses every edge to its pivot
	dot := OrientedRect{X: 10, Y: 10}
	if !dot.IntersectsCircle(V(13, 14), 5) {
		t.Error("circle reaching the pivot should intersect a degenerate rect")
	}
	if dot.IntersectsCircle(V(20, 20), 5) {
		t.Error("distant circle should not intersect a degenerate rect")
	}
}

func TestOrientedRectContainsPoint(t *testing.T) {
	r := OrientedRect{X: 0, Y: 0, W: 80, H: 20, Rotation: 90}
	if !r.ContainsPoint(V(-10, 40)) {
		t.Error("point inside rotated rect should be contained")
	}
	if r.ContainsPoint(V(40, 10)) {
		t.Error("point outside rotated rect should not be contained")
	}
}

func TestRoundToNearest(t *testing.T) {
	tests := []struct {
		x, a, b, expected float64
	}{
		{100, 0, 1280, 0},     // nearer to a
		{1200, 0, 1280, 1280}, // nearer to b
		{640, 0, 1280, 0},     // tie goes to a
		{-50, 0, 1280, -50},   // outside stays put
		{1300, 0, 1280, 1300}, // outside stays put
		{0, 0, 1280, 0},       // on the boundary stays put
		{300, 720, 0, 0},      // reversed reference values
		{500, 720, 0, 720},
	}

	for _, tc := range tests {
		if got := RoundToNearest(tc.x, tc.a, tc.b); got != tc.expected {
			t.Errorf("RoundToNearest(%v, %v, %v) = %v, expected %v", tc.x, tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestVecHelpers(t *testing.T) {
	if n := V(3, 4).Normalized(); !approx(n.X, 0.6) || !approx(n.Y, 0.8) {
		t.Errorf("Normalized() = %v, expected (0.6, 0.8)", n)
	}
	if n := (Vec2{}).Normalized(); n != (Vec2{}) {
		t.Errorf("zero vector should stay zero, got %v", n)
	}

	r := V(1, 0).Rotated(math.Pi / 2)
	if math.Abs(r.X) > eps || !approx(r.Y, 1) {
		t.Errorf("Rotated(pi/2) = %v, expected (0, 1)", r)
	}

	if a := V(0, 0).AngleTo(V(0, 10)); !approx(a, math.Pi/2) {
		t.Errorf("AngleTo() = %v, expected pi/2", a)
	}

	if got := Lerp(75, -1, 0.25); !approx(got, 56) {
		t.Errorf("Lerp(75, -1, 0.25) = %v, expected 56", got)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
