// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

// Vec2 is a 2D float vector in screen space: x grows right, y grows down.
type Vec2 [2]float32

// Vec3 is an RGB colour triple with components in [0, 1].
type Vec3 [3]float32

// X returns the horizontal component.
func (v Vec2) X() float32 { return v[0] }

// Y returns the vertical component.
func (v Vec2) Y() float32 { return v[1] }

// White is the neutral tint applied to sprites that carry no colour of their own.
var White = Vec3{1, 1, 1}

// Quad is a flat-coloured axis-aligned rectangle handed to the renderer.
// It is the only draw primitive the renderer understands.
type Quad struct {
	// Position is the top-left corner in pixels.
	Position Vec2
	// Size is the width and height in pixels.
	Size Vec2
	// Color is the RGB fill colour.
	Color Vec3
}
