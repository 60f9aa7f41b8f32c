// Package core provides fundamental types and utilities for the survivor platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// V creates a vector from its components.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the vector length.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns the unit vector in the direction of v.
// The zero vector stays zero.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Rotated returns v rotated counter-clockwise by rad radians
// (clockwise on screen, since Y grows downward).
func (v Vec2) Rotated(rad float64) Vec2 {
	sin, cos := math.Sincos(rad)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Angle returns the direction of v in radians.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// AngleTo returns the angle in radians of the line from v to o.
func (v Vec2) AngleTo(o Vec2) float64 {
	return o.Sub(v).Angle()
}

// Distance returns the Euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) float64 {
	return o.Sub(v).Len()
}

// FromAngle returns the unit vector pointing at angle rad.
func FromAngle(rad float64) Vec2 {
	sin, cos := math.Sincos(rad)
	return Vec2{X: cos, Y: sin}
}

// Lerp interpolates linearly from a to b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// RoundToNearest snaps x to whichever of a and b is nearer when x lies strictly
// between them. Ties go to a. Values outside the open interval are returned as is.
func RoundToNearest(x, a, b float64) float64 {
	lo, hi := math.Min(a, b), math.Max(a, b)
	if x <= lo || x >= hi {
		return x
	}
	if math.Abs(x-b) < math.Abs(x-a) {
		return b
	}
	return a
}

// CircleIntersectsCircle reports whether two circles overlap.
// Touching circles do not intersect.
func CircleIntersectsCircle(posA Vec2, radiusA float64, posB Vec2, radiusB float64) bool {
	minDist := radiusA + radiusB
	d := posB.Sub(posA)
	return d.Dot(d) < minDist*minDist
}

// PointInCircle reports whether p lies within radius of center (inclusive).
func PointInCircle(p, center Vec2, radius float64) bool {
	d := p.Sub(center)
	return d.Dot(d) <= radius*radius
}

// OrientedRect is a rectangle rotated about a pivot.
// X and Y are the world position of the pivot, Origin is the pivot offset inside
// the unrotated rectangle and Rotation is in degrees.
type OrientedRect struct {
	X, Y     float64
	W, H     float64
	Origin   Vec2
	Rotation float64
}

// Anchor returns the world position of the pivot.
func (r OrientedRect) Anchor() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}

// Corners returns the four world-space corners in order
// top-left, top-right, bottom-right, bottom-left.
func (r OrientedRect) Corners() [4]Vec2 {
	local := [4]Vec2{
		{X: -r.Origin.X, Y: -r.Origin.Y},
		{X: r.W - r.Origin.X, Y: -r.Origin.Y},
		{X: r.W - r.Origin.X, Y: r.H - r.Origin.Y},
		{X: -r.Origin.X, Y: r.H - r.Origin.Y},
	}
	rad := Deg2Rad(r.Rotation)
	anchor := r.Anchor()
	var out [4]Vec2
	for i, c := range local {
		out[i] = c.Rotated(rad).Add(anchor)
	}
	return out
}

// IntersectsCircle reports whether the circle at position with the given radius
// touches any edge of the rectangle.
func (r OrientedRect) IntersectsCircle(position Vec2, radius float64) bool {
	corners := r.Corners()
	for i := range corners {
		a := corners[i]
		b := corners[(i+1)%len(corners)]
		if PointInCircle(ClosestPointOnSegment(a, b, position), position, radius) {
			return true
		}
	}
	return false
}

// ContainsPoint reports whether p lies inside the rectangle.
func (r OrientedRect) ContainsPoint(p Vec2) bool {
	local := p.Sub(r.Anchor()).Rotated(-Deg2Rad(r.Rotation)).Add(r.Origin)
	return local.X >= 0 && local.X <= r.W && local.Y >= 0 && local.Y <= r.H
}

// ClosestPointOnSegment returns the point on segment a-b nearest to p.
// A zero-length segment yields a.
func ClosestPointOnSegment(a, b, p Vec2) Vec2 {
	seg := b.Sub(a)
	lenSq := seg.Dot(seg)
	if lenSq == 0 {
		return a
	}
	t := ClampF(p.Sub(a).Dot(seg)/lenSq, 0, 1)
	return a.Add(seg.Scale(t))
}

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
