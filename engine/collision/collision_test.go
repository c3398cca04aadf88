package collision

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-breakout/common"
	"github.com/Carmen-Shannon/oxy-breakout/engine/game_object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorDirection(t *testing.T) {
	cases := []struct {
		name string
		in   common.Vec2
		want Direction
	}{
		{"up", common.Vec2{0.1, 5}, Up},
		{"right", common.Vec2{5, -0.1}, Right},
		{"down", common.Vec2{0.2, -3}, Down},
		{"left", common.Vec2{-4, 1}, Left},
		{"diagonal tie keeps first", common.Vec2{3, 3}, Up},
		{"lower diagonal tie keeps first", common.Vec2{2, -2}, Right},
		{"zero vector", common.Vec2{}, Up},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, VectorDirection(tc.in))
		})
	}
}

func TestCheckAABB(t *testing.T) {
	a := game_object.NewGameObject(game_object.WithPosition(0, 0), game_object.WithSize(10, 10))

	touching := game_object.NewGameObject(game_object.WithPosition(10, 10), game_object.WithSize(5, 5))
	assert.True(t, CheckAABB(a, touching), "touching corners overlap")

	apartX := game_object.NewGameObject(game_object.WithPosition(10.5, 0), game_object.WithSize(5, 5))
	assert.False(t, CheckAABB(a, apartX))

	apartY := game_object.NewGameObject(game_object.WithPosition(0, 11), game_object.WithSize(5, 5))
	assert.False(t, CheckAABB(a, apartY))

	inside := game_object.NewGameObject(game_object.WithPosition(2, 2), game_object.WithSize(1, 1))
	assert.True(t, CheckAABB(a, inside))
	assert.True(t, CheckAABB(inside, a))
}

func TestCheckBallBoundaryInclusive(t *testing.T) {
	box := game_object.NewGameObject(game_object.WithPosition(100, 100), game_object.WithSize(50, 20))

	// centre (125, 90): exactly one radius above the top edge
	ball := game_object.NewBallObject(common.Vec2{115, 80}, 10, common.Vec2{})
	c := CheckBall(ball, box)
	require.True(t, c.Hit)
	assert.Equal(t, Up, c.Dir)
	assert.Equal(t, common.Vec2{0, 10}, c.Diff)

	// centre (125, 89.5): half a pixel too far
	ball.Position = common.Vec2{115, 79.5}
	c = CheckBall(ball, box)
	assert.False(t, c.Hit)
	assert.Equal(t, Up, c.Dir)
	assert.Equal(t, common.Vec2{}, c.Diff)
}

func TestCheckBallSides(t *testing.T) {
	box := game_object.NewGameObject(game_object.WithPosition(100, 100), game_object.WithSize(50, 20))

	cases := []struct {
		name   string
		center common.Vec2
		want   Direction
	}{
		{"from above", common.Vec2{120, 95}, Up},
		{"from below", common.Vec2{120, 125}, Down},
		{"from the left", common.Vec2{95, 110}, Right},
		{"from the right", common.Vec2{155, 110}, Left},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ball := game_object.NewBallObject(tc.center.Sub(common.Vec2{6, 6}), 6, common.Vec2{})
			c := CheckBall(ball, box)
			require.True(t, c.Hit)
			assert.Equal(t, tc.want, c.Dir)
		})
	}
}
