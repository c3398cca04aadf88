package game_object

import "github.com/Carmen-Shannon/oxy-breakout/common"

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*GameObject)

// WithPosition sets the top-left position of the GameObject.
//
// Parameters:
//   - x: the x position in pixels
//   - y: the y position in pixels
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the position
func WithPosition(x, y float32) GameObjectBuilderOption {
	return func(obj *GameObject) {
		obj.Position = common.Vec2{x, y}
	}
}

// WithSize sets the width and height of the GameObject.
//
// Parameters:
//   - w: the width in pixels
//   - h: the height in pixels
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the size
func WithSize(w, h float32) GameObjectBuilderOption {
	return func(obj *GameObject) {
		obj.Size = common.Vec2{w, h}
	}
}

// WithVelocity sets the initial velocity of the GameObject.
//
// Parameters:
//   - vx: the horizontal velocity in pixels per second
//   - vy: the vertical velocity in pixels per second
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the velocity
func WithVelocity(vx, vy float32) GameObjectBuilderOption {
	return func(obj *GameObject) {
		obj.Velocity = common.Vec2{vx, vy}
	}
}

// WithColor sets the RGB tint of the GameObject.
//
// Parameters:
//   - c: the colour, components in [0, 1]
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the colour
func WithColor(c common.Vec3) GameObjectBuilderOption {
	return func(obj *GameObject) {
		obj.Color = c
	}
}

// WithSprite sets the texture key the renderer may use for this object.
//
// Parameters:
//   - key: the texture key
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the sprite key
func WithSprite(key string) GameObjectBuilderOption {
	return func(obj *GameObject) {
		obj.Sprite = key
	}
}

// WithSolid marks the GameObject as unbreakable.
//
// Parameters:
//   - solid: true for an unbreakable object
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the IsSolid flag
func WithSolid(solid bool) GameObjectBuilderOption {
	return func(obj *GameObject) {
		obj.IsSolid = solid
	}
}
