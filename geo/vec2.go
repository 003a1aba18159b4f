package geo

import (
	"fmt"

	"github.com/arl/gogeo/f32"
	"github.com/arl/math32"
)

// Vec2 is a 2 dimensions vector. It is made up of a slice of 32 bits
// floating points numbers.
//
// Depending on the context, a Vec2 can also represent a point in 2D space.
type Vec2 []float32

// NewVec2 allocates and returns a new Vec2 where each component has its zero
// value.
func NewVec2() Vec2 {
	return make(Vec2, 2)
}

// NewVec2From allocates and returns a new Vec2 that is the copy of v1.
func NewVec2From(v1 Vec2) Vec2 {
	return Vec2{v1[0], v1[1]}
}

// NewVec2XY allocates and returns Vec2{x, y}.
func NewVec2XY(x, y float32) Vec2 {
	return Vec2{x, y}
}

// X returns the X component of v.
func (v Vec2) X() float32 {
	return v[0]
}

// Y returns the Y component of v.
func (v Vec2) Y() float32 {
	return v[1]
}

// SetX sets the X component of v.
func (v Vec2) SetX(x float32) {
	v[0] = x
}

// SetY sets the Y component of v.
func (v Vec2) SetY(y float32) {
	v[1] = y
}

// Assign assigns the component of v1 to v. v and v1 must be different
// vectors.
func (v Vec2) Assign(v1 Vec2) {
	v[0] = v1[0]
	v[1] = v1[1]
}

// Add returns a new vector that is the result of v + v1.
func (v Vec2) Add(v1 Vec2) Vec2 {
	return Vec2{v[0] + v1[0], v[1] + v1[1]}
}

// Sub returns a new vector that is the result of v - v1.
func (v Vec2) Sub(v1 Vec2) Vec2 {
	return Vec2{v[0] - v1[0], v[1] - v1[1]}
}

// Scale returns a new vector that is the result of v * t.
func (v Vec2) Scale(t float32) Vec2 {
	return Vec2{v[0] * t, v[1] * t}
}

// Dist returns the distance between v and v1.
func (v Vec2) Dist(v1 Vec2) float32 {
	return math32.Sqrt(math32.Sqr(v[0]-v1[0]) + math32.Sqr(v[1]-v1[1]))
}

// Clamp returns a new vector with each component of v clamped to
// [low, high].
func (v Vec2) Clamp(low, high float32) Vec2 {
	return Vec2{f32.Clamp(v[0], low, high), f32.Clamp(v[1], low, high)}
}

// InRect reports whether v lies inside the axis-aligned rectangle spanned
// by min and max, bounds included.
func (v Vec2) InRect(min, max Vec2) bool {
	return f32.IsClamped(v[0], min[0], max[0]) && f32.IsClamped(v[1], min[1], max[1])
}

// Approx reports wether v and v1 are approximately equal, component-wise.
func (v Vec2) Approx(v1 Vec2) bool {
	return math32.Approx(v[0], v1[0]) && math32.Approx(v[1], v1[1])
}

// ApproxEpsilon reports wether v and v1 are approximately equal,
// component-wise, with a caller-provided tolerance.
func (v Vec2) ApproxEpsilon(v1 Vec2, eps float32) bool {
	return math32.ApproxEpsilon(v[0], v1[0], eps) &&
		math32.ApproxEpsilon(v[1], v1[1], eps)
}

// String returns a string representation of v like "(3,4)".
func (v Vec2) String() string {
	return fmt.Sprintf("(%g,%g)", v[0], v[1])
}
