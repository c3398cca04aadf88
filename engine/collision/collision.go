// Package collision implements the narrow-phase overlap tests used by the
// simulation: rectangle-vs-rectangle and circle-vs-rectangle, plus the
// classification of a collision vector into one of four compass directions.
package collision

import (
	"github.com/Carmen-Shannon/oxy-breakout/common"
	"github.com/Carmen-Shannon/oxy-breakout/engine/game_object"
)

// Direction is the side of a rectangle a circle struck, expressed as the
// compass direction of the collision vector.
type Direction int

const (
	// Up is the (0, 1) direction.
	Up Direction = iota
	// Right is the (1, 0) direction.
	Right
	// Down is the (0, -1) direction.
	Down
	// Left is the (-1, 0) direction.
	Left
)

// compass is iterated in Direction order; ties keep the first match.
var compass = [4]common.Vec2{
	Up:    {0, 1},
	Right: {1, 0},
	Down:  {0, -1},
	Left:  {-1, 0},
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// Horizontal reports whether d lies on the x axis.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// Collision is the result of a circle-vs-rectangle test.
type Collision struct {
	// Hit is true when the shapes overlap.
	Hit bool
	// Dir is the compass direction of Diff. Up when there is no hit.
	Dir Direction
	// Diff is the vector from the circle centre to the closest point on the rectangle.
	Diff common.Vec2
}

// VectorDirection returns the compass direction whose unit vector has the
// greatest dot product with the normalized target. Only a strictly greater dot
// product replaces the current best, so ties resolve to the earlier direction
// in Up, Right, Down, Left order and a zero vector resolves to Up.
//
// Parameters:
//   - target: the vector to classify
//
// Returns:
//   - Direction: the nearest axis-aligned direction
func VectorDirection(target common.Vec2) Direction {
	n := target.Normalize()
	best := Up
	var max float32
	for i, dir := range compass {
		if dot := n.Dot(dir); dot > max {
			max = dot
			best = Direction(i)
		}
	}
	return best
}

// CheckAABB reports whether two rectangles overlap. Touching edges count as
// overlap.
//
// Parameters:
//   - a: the first rectangle
//   - b: the second rectangle
//
// Returns:
//   - bool: true if the rectangles overlap on both axes
func CheckAABB(a, b *game_object.GameObject) bool {
	collisionX := a.Position[0]+a.Size[0] >= b.Position[0] &&
		b.Position[0]+b.Size[0] >= a.Position[0]
	collisionY := a.Position[1]+a.Size[1] >= b.Position[1] &&
		b.Position[1]+b.Size[1] >= a.Position[1]
	return collisionX && collisionY
}

// CheckBall tests the ball's circle against a rectangle. The vector from the
// rectangle's centre to the circle's centre is clamped to the rectangle's half
// extents to find the closest point; the shapes collide when that point lies
// within the radius, boundary included.
//
// Parameters:
//   - ball: the circle
//   - box: the rectangle
//
// Returns:
//   - Collision: the hit flag, direction, and circle-to-closest-point vector
func CheckBall(ball *game_object.BallObject, box *game_object.GameObject) Collision {
	center := ball.Center()

	half := box.HalfExtents()
	boxCenter := box.Position.Add(half)

	clamped := center.Sub(boxCenter).Clamp(half.Scale(-1), half)
	closest := boxCenter.Add(clamped)

	diff := closest.Sub(center)
	if diff.Len() <= ball.Radius {
		return Collision{Hit: true, Dir: VectorDirection(diff), Diff: diff}
	}
	return Collision{Dir: Up}
}
