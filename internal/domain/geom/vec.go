// Package geom provides the small point/vector types shared by the loop,
// camera and viewport.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec2 is a 2D point or vector
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D point or vector
type Vec3 struct {
	X, Y, Z float64
}

var (
	Zero2 = Vec2{}
	One2  = Vec2{1, 1}
	Zero3 = Vec3{}
	One3  = Vec3{1, 1, 1}
)

// V2 is shorthand for Vec2{x, y}
func V2(x, y float64) Vec2 { return Vec2{x, y} }

// V3 is shorthand for Vec3{x, y, z}
func V3(x, y, z float64) Vec3 { return Vec3{x, y, z} }

// At returns the i-th component. It panics when i is out of range.
func (v Vec2) At(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic("geom: Vec2 index out of range")
}

func (v Vec2) Add(o Vec2) Vec2          { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2          { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(o Vec2) Vec2          { return Vec2{v.X * o.X, v.Y * o.Y} }
func (v Vec2) Div(o Vec2) Vec2          { return Vec2{v.X / o.X, v.Y / o.Y} }
func (v Vec2) AddScalar(s float64) Vec2 { return Vec2{v.X + s, v.Y + s} }
func (v Vec2) Scale(s float64) Vec2     { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Neg() Vec2                { return Vec2{-v.X, -v.Y} }
func (v Vec2) Dot(o Vec2) float64       { return v.X*o.X + v.Y*o.Y }

// Len returns the magnitude of v
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// IsZero reports whether every component is zero
func (v Vec2) IsZero() bool {
	return v == Zero2
}

// Vec3 promotes v with the given z
func (v Vec2) Vec3(z float64) Vec3 {
	return Vec3{v.X, v.Y, z}
}

// At returns the i-th component. It panics when i is out of range.
func (v Vec3) At(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic("geom: Vec3 index out of range")
}

func (v Vec3) Add(o Vec3) Vec3          { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3          { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(o Vec3) Vec3          { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }
func (v Vec3) Div(o Vec3) Vec3          { return Vec3{v.X / o.X, v.Y / o.Y, v.Z / o.Z} }
func (v Vec3) AddScalar(s float64) Vec3 { return Vec3{v.X + s, v.Y + s, v.Z + s} }
func (v Vec3) Scale(s float64) Vec3     { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Neg() Vec3                { return Vec3{-v.X, -v.Y, -v.Z} }
func (v Vec3) Dot(o Vec3) float64       { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product v × o
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Len returns the magnitude of v
func (v Vec3) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// IsZero reports whether every component is zero
func (v Vec3) IsZero() bool {
	return v == Zero3
}

// XY drops the z component
func (v Vec3) XY() Vec2 {
	return Vec2{v.X, v.Y}
}

// Mgl converts v to a float32 mathgl vector
func (v Vec3) Mgl() mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// FromMgl converts a mathgl vector to Vec3
func FromMgl(m mgl32.Vec3) Vec3 {
	return Vec3{float64(m[0]), float64(m[1]), float64(m[2])}
}
