package common

import "github.com/chewxy/math32"

// Add returns the component-wise sum v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v[0] + o[0], v[1] + o[1]}
}

// Sub returns the component-wise difference v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v[0] - o[0], v[1] - o[1]}
}

// Scale returns v multiplied by the scalar s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v[0] * s, v[1] * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float32 {
	return v[0]*o[0] + v[1]*o[1]
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float32 {
	return math32.Sqrt(v[0]*v[0] + v[1]*v[1])
}

// Normalize returns v scaled to unit length.
// A zero vector is returned unchanged rather than producing NaN components.
//
// Returns:
//   - Vec2: the unit vector pointing along v, or the zero vector
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v[0] / l, v[1] / l}
}

// Clamp restricts each component of v to the matching [lo, hi] component range.
//
// Parameters:
//   - lo: per-component lower bounds
//   - hi: per-component upper bounds
//
// Returns:
//   - Vec2: the clamped vector
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return Vec2{Clamp(v[0], lo[0], hi[0]), Clamp(v[1], lo[1], hi[1])}
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, val))
}

// Abs returns the absolute value of f.
func Abs(f float32) float32 {
	return math32.Abs(f)
}

// ApproxEqual reports whether a and b differ by no more than eps.
func ApproxEqual(a, b, eps float32) bool {
	return math32.Abs(a-b) <= eps
}
