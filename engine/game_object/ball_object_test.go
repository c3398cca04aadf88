package game_object

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-breakout/common"
	"github.com/stretchr/testify/assert"
)

func TestBallSizeFollowsRadius(t *testing.T) {
	b := NewBallObject(common.Vec2{}, 12.5, common.Vec2{})
	assert.Equal(t, common.Vec2{25, 25}, b.Size)

	b.SetRadius(4)
	assert.Equal(t, common.Vec2{8, 8}, b.Size)
}

func TestStuckBallDoesNotMove(t *testing.T) {
	b := NewBallObject(common.Vec2{10, 10}, 5, common.Vec2{100, -100})
	pos := b.Move(800, 1)
	assert.Equal(t, common.Vec2{10, 10}, pos)
}

func TestBallReflectsOffLeftEdge(t *testing.T) {
	b := NewBallObject(common.Vec2{5, 300}, 10, common.Vec2{-100, 40})
	b.Stuck = false

	pos := b.Move(800, 0.1)

	assert.Equal(t, float32(0), pos[0])
	assert.Equal(t, common.Vec2{100, 40}, b.Velocity)
}

func TestBallReflectsOffRightEdge(t *testing.T) {
	b := NewBallObject(common.Vec2{775, 300}, 10, common.Vec2{100, 40})
	b.Stuck = false

	pos := b.Move(800, 0.1)

	assert.Equal(t, float32(800-20), pos[0])
	assert.Equal(t, common.Vec2{-100, 40}, b.Velocity)
}

func TestBallReflectsOffTopEdge(t *testing.T) {
	b := NewBallObject(common.Vec2{400, 2}, 10, common.Vec2{30, -100})
	b.Stuck = false

	pos := b.Move(800, 0.1)

	assert.Equal(t, float32(0), pos[1])
	assert.Equal(t, common.Vec2{30, 100}, b.Velocity)
}

func TestBallFallsThroughBottom(t *testing.T) {
	b := NewBallObject(common.Vec2{400, 590}, 10, common.Vec2{0, 100})
	b.Stuck = false

	pos := b.Move(800, 1)

	assert.Equal(t, float32(690), pos[1])
	assert.Equal(t, common.Vec2{0, 100}, b.Velocity)
}

func TestBallReset(t *testing.T) {
	b := NewBallObject(common.Vec2{}, 10, common.Vec2{})
	b.Stuck, b.Sticky, b.PassThrough = false, true, true

	b.Reset(common.Vec2{1, 2}, common.Vec2{3, 4})

	assert.True(t, b.Stuck)
	assert.False(t, b.Sticky)
	assert.False(t, b.PassThrough)
	assert.Equal(t, common.Vec2{1, 2}, b.Position)
	assert.Equal(t, common.Vec2{3, 4}, b.Velocity)
}
