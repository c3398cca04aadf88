package game_object

import "github.com/Carmen-Shannon/oxy-breakout/common"

// GameObject is the base entity of the 2D simulation: an axis-aligned rectangle
// with a velocity and a handful of flags. Bricks, the paddle and power-ups are
// GameObjects; the ball embeds one.
//
// Removal is always signalled through Destroyed rather than deallocation so that
// collision and rendering can skip the object for the remainder of the frame.
type GameObject struct {
	// Position is the top-left corner in pixels.
	Position common.Vec2
	// Size is the width and height in pixels.
	Size common.Vec2
	// Velocity is in pixels per second.
	Velocity common.Vec2
	// Color is the RGB tint. Cosmetic only.
	Color common.Vec3
	// Rotation in radians. Cosmetic only.
	Rotation float32
	// Sprite is the texture key the renderer may use to look up an image.
	Sprite string
	// IsSolid marks an unbreakable object.
	IsSolid bool
	// Destroyed marks the object as removed.
	Destroyed bool
}

// NewGameObject creates a new GameObject configured with the given options.
// Objects default to a white tint, no velocity, and a zero size.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - *GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) *GameObject {
	obj := &GameObject{
		Color: common.White,
	}
	for _, option := range options {
		option(obj)
	}
	return obj
}

// Center returns the centre point of the object's rectangle.
func (g *GameObject) Center() common.Vec2 {
	return g.Position.Add(g.Size.Scale(0.5))
}

// HalfExtents returns half of the object's size.
func (g *GameObject) HalfExtents() common.Vec2 {
	return g.Size.Scale(0.5)
}

// Quad returns the flat-coloured rectangle the renderer draws for this object.
func (g *GameObject) Quad() common.Quad {
	return common.Quad{Position: g.Position, Size: g.Size, Color: g.Color}
}
