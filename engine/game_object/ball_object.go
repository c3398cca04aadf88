package game_object

import "github.com/Carmen-Shannon/oxy-breakout/common"

// BallObject is a circular GameObject. Its Size is always (2·Radius, 2·Radius);
// change the radius through SetRadius to keep the two in step.
type BallObject struct {
	GameObject

	// Radius in pixels.
	Radius float32
	// Stuck balls ride along with the paddle and do not integrate velocity.
	Stuck bool
	// Sticky balls re-stick on the next paddle contact.
	Sticky bool
	// PassThrough balls do not bounce off breakable bricks.
	PassThrough bool
}

// NewBallObject creates a stuck ball at pos with the given radius and velocity.
//
// Parameters:
//   - pos: top-left position in pixels
//   - radius: ball radius in pixels
//   - velocity: launch velocity in pixels per second
//   - options: additional GameObject options (sprite, colour)
//
// Returns:
//   - *BallObject: the newly created ball
func NewBallObject(pos common.Vec2, radius float32, velocity common.Vec2, options ...GameObjectBuilderOption) *BallObject {
	b := &BallObject{
		GameObject: *NewGameObject(options...),
		Stuck:      true,
	}
	b.Position = pos
	b.Velocity = velocity
	b.SetRadius(radius)
	return b
}

// SetRadius updates the radius and the derived size together.
func (b *BallObject) SetRadius(radius float32) {
	b.Radius = radius
	b.Size = common.Vec2{radius * 2, radius * 2}
}

// Center returns the centre of the ball's circle.
func (b *BallObject) Center() common.Vec2 {
	return b.Position.Add(common.Vec2{b.Radius, b.Radius})
}

// Move advances the ball by Velocity·dt unless it is stuck, reflecting off the
// left, right and top edges of a play area windowWidth pixels wide. The bottom
// edge is left open; falling past it is the caller's failure condition.
//
// Parameters:
//   - windowWidth: width of the play area in pixels
//   - dt: elapsed time in seconds
//
// Returns:
//   - common.Vec2: the ball's position after the move
func (b *BallObject) Move(windowWidth, dt float32) common.Vec2 {
	if b.Stuck {
		return b.Position
	}

	b.Position = b.Position.Add(b.Velocity.Scale(dt))

	if b.Position[0] <= 0 {
		b.Velocity[0] = -b.Velocity[0]
		b.Position[0] = 0
	} else if b.Position[0]+b.Size[0] >= windowWidth {
		b.Velocity[0] = -b.Velocity[0]
		b.Position[0] = windowWidth - b.Size[0]
	}
	if b.Position[1] <= 0 {
		b.Velocity[1] = -b.Velocity[1]
		b.Position[1] = 0
	}

	return b.Position
}

// Reset places the ball at pos with the given velocity, sticks it to the paddle
// and clears any power-up state.
func (b *BallObject) Reset(pos, velocity common.Vec2) {
	b.Position = pos
	b.Velocity = velocity
	b.Stuck = true
	b.Sticky = false
	b.PassThrough = false
}
