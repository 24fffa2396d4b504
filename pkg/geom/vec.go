// pkg/geom/vec.go
package geom

import "math"

// Vec2 is a point or direction in world space.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Neg returns the exact negation of v.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LenSq is Len squared, for comparisons.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector of v, or the zero vector when v has no length.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

func (v Vec2) DistSq(o Vec2) float64 {
	return v.Sub(o).LenSq()
}

// Angle is the heading of v in radians, measured from +X toward +Y.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Perp returns v rotated a quarter turn: (-Y, X).
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Rotate rotates v by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// FromAngle builds a vector of the given length pointing along angle.
func FromAngle(angle, length float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{X: cos * length, Y: sin * length}
}

// Direction returns the unit vector from `from` toward `to` and whether one exists.
func Direction(from, to Vec2) (Vec2, bool) {
	d := to.Sub(from)
	if d.IsZero() {
		return Vec2{}, false
	}
	return d.Normalize(), true
}
