package game

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-breakout/common"
	"github.com/Carmen-Shannon/oxy-breakout/game/level"
	"github.com/Carmen-Shannon/oxy-breakout/game/power_up"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testWidth  = 800
	testHeight = 600
)

type recorder struct {
	keys []string
}

func (r *recorder) record(key string) { r.keys = append(r.keys, key) }

func never(int) bool  { return false }
func always(int) bool { return true }

// grid builds a 5×10 level whose only brick is a tile at (0, 0), laid out over
// the top half of the play area so each cell is 80×60.
func grid(tile int) *level.GameLevel {
	tiles := make([][]int, 5)
	for i := range tiles {
		tiles[i] = make([]int, 10)
	}
	tiles[0][0] = tile
	return level.New("grid", tiles, testWidth, testHeight/2)
}

func newTestGame(t *testing.T, lvl *level.GameLevel, opts ...GameBuilderOption) (*Game, *recorder) {
	t.Helper()
	rec := &recorder{}
	opts = append([]GameBuilderOption{WithLevels(lvl), WithSoundSink(SoundFunc(rec.record)), WithChance(never)}, opts...)
	return NewGame(testWidth, testHeight, opts...), rec
}

func TestNewGamePlacesPaddleAndBall(t *testing.T) {
	g, _ := newTestGame(t, grid(2))

	assert.Equal(t, StateActive, g.State)
	assert.Equal(t, DefaultLives, g.Lives)
	assert.Equal(t, common.Vec2{350, 580}, g.Player.Position)
	assert.Equal(t, PlayerSize, g.Player.Size)
	assert.Equal(t, common.Vec2{387.5, 555}, g.Ball.Position)
	assert.Equal(t, InitialBallVelocity, g.Ball.Velocity)
	assert.True(t, g.Ball.Stuck)
}

func TestNewGameWithoutLevelsPanics(t *testing.T) {
	assert.Panics(t, func() { NewGame(testWidth, testHeight) })
}

func TestBallBreaksBrickAndBounces(t *testing.T) {
	g, rec := newTestGame(t, grid(2))
	g.Ball.Stuck = false
	g.Ball.Position = common.Vec2{27.5, 57.5}
	g.Ball.Velocity = common.Vec2{0, -200}

	g.doCollisions()

	brick := g.CurrentLevel().Bricks[0]
	assert.True(t, brick.Destroyed)
	assert.Equal(t, float32(200), g.Ball.Velocity[1])
	assert.Equal(t, float32(60), g.Ball.Position[1], "pushed out by the penetration depth")
	assert.Equal(t, []string{SoundBleepBrick}, rec.keys)
	// The reference game never increments destroyed_count; this one does, so IsComplete can use it.
	assert.Equal(t, 1, g.CurrentLevel().DestroyedCount)
	assert.Empty(t, g.PowerUps)
}

func TestBallBouncesOffBrickSide(t *testing.T) {
	g, _ := newTestGame(t, grid(2))
	g.Ball.Stuck = false
	g.Ball.Position = common.Vec2{77.5, 17.5}
	g.Ball.Velocity = common.Vec2{-100, 0}

	g.doCollisions()

	assert.Equal(t, common.Vec2{100, 0}, g.Ball.Velocity)
	assert.Equal(t, float32(80), g.Ball.Position[0])
}

func TestPassThroughBallKeepsGoing(t *testing.T) {
	g, rec := newTestGame(t, grid(2))
	g.Ball.Stuck = false
	g.Ball.PassThrough = true
	g.Ball.Position = common.Vec2{27.5, 57.5}
	g.Ball.Velocity = common.Vec2{0, -200}

	g.doCollisions()

	assert.True(t, g.CurrentLevel().Bricks[0].Destroyed)
	assert.Equal(t, common.Vec2{0, -200}, g.Ball.Velocity)
	assert.Equal(t, common.Vec2{27.5, 57.5}, g.Ball.Position)
	assert.Equal(t, []string{SoundBleepBrick}, rec.keys)
}

func TestSolidBrickShakesAndBounces(t *testing.T) {
	g, rec := newTestGame(t, grid(level.TileSolid))
	g.Ball.Stuck = false
	g.Ball.PassThrough = true
	g.Ball.Position = common.Vec2{27.5, 57.5}
	g.Ball.Velocity = common.Vec2{0, -200}

	g.doCollisions()

	assert.False(t, g.CurrentLevel().Bricks[0].Destroyed)
	assert.Equal(t, float32(200), g.Ball.Velocity[1], "pass-through never ignores solid bricks")
	assert.True(t, g.Effects.Shake)
	assert.Equal(t, float32(power_up.ShakeDuration), g.Effects.ShakeTime)
	assert.Equal(t, []string{SoundSolid}, rec.keys)
}

func TestDestroyedBrickSpawnsPowerUps(t *testing.T) {
	g, _ := newTestGame(t, grid(3), WithChance(always))
	g.Ball.Stuck = false
	g.Ball.Position = common.Vec2{27.5, 57.5}
	g.Ball.Velocity = common.Vec2{0, -200}

	g.doCollisions()

	require.Len(t, g.PowerUps, 6)
	for _, p := range g.PowerUps {
		assert.Equal(t, common.Vec2{0, 0}, p.Position)
		assert.False(t, p.Destroyed)
	}
}

func TestPaddleCenterBounce(t *testing.T) {
	g, rec := newTestGame(t, grid(2))
	g.Ball.Stuck = false
	g.Ball.Position = common.Vec2{387.5, 557.5}
	g.Ball.Velocity = common.Vec2{0, 350}

	g.doCollisions()

	assert.InDelta(t, 0, g.Ball.Velocity[0], 1e-3)
	assert.InDelta(t, -350, g.Ball.Velocity[1], 1e-3)
	assert.False(t, g.Ball.Stuck)
	assert.Equal(t, []string{SoundBleepPaddle}, rec.keys)
}

func TestPaddleEdgeBounceKeepsSpeed(t *testing.T) {
	g, _ := newTestGame(t, grid(2))
	g.Ball.Stuck = false
	g.Ball.Sticky = true
	g.Ball.Position = common.Vec2{437.5, 557.5}
	g.Ball.Velocity = common.Vec2{0, 350}

	g.doCollisions()

	assert.Greater(t, g.Ball.Velocity[0], float32(0))
	assert.Less(t, g.Ball.Velocity[1], float32(0))
	assert.True(t, common.ApproxEqual(350, g.Ball.Velocity.Len(), 1e-2), "paddle bounce keeps the speed")
	assert.True(t, g.Ball.Stuck, "sticky ball re-sticks")
}

func TestStuckBallIgnoresPaddle(t *testing.T) {
	g, rec := newTestGame(t, grid(2))
	g.Ball.Position = common.Vec2{387.5, 557.5}

	g.doCollisions()

	assert.Equal(t, InitialBallVelocity, g.Ball.Velocity)
	assert.Empty(t, rec.keys)
}

func TestPaddleCatchesPowerUp(t *testing.T) {
	g, rec := newTestGame(t, grid(2))
	g.PowerUps = append(g.PowerUps, power_up.New(power_up.TypePadSizeIncrease, common.Vec2{370, 570}))

	g.doCollisions()

	require.Len(t, g.PowerUps, 1)
	assert.True(t, g.PowerUps[0].Activated)
	assert.True(t, g.PowerUps[0].Destroyed)
	assert.Equal(t, float32(150), g.Player.Size[0])
	assert.Equal(t, []string{SoundPowerUp}, rec.keys)
}

func TestMissedPowerUpIsDestroyed(t *testing.T) {
	g, rec := newTestGame(t, grid(2))
	g.PowerUps = append(g.PowerUps, power_up.New(power_up.TypeChaos, common.Vec2{370, testHeight}))

	g.Update(0.016)

	assert.Empty(t, g.PowerUps)
	assert.False(t, g.Effects.Chaos)
	assert.Empty(t, rec.keys)
}

func TestUpdatePlayerMovesPaddleAndStuckBall(t *testing.T) {
	g, _ := newTestGame(t, grid(2))

	g.UpdatePlayer(ControllerState{Move: 1}, 0.1)
	assert.InDelta(t, 400, g.Player.Position[0], 1e-3)
	assert.InDelta(t, 437.5, g.Ball.Position[0], 1e-3)

	g.UpdatePlayer(ControllerState{Move: 1, MouseDelta: -30}, 0.1)
	assert.InDelta(t, 370, g.Player.Position[0], 1e-3, "mouse delta wins")

	g.UpdatePlayer(ControllerState{Move: -1}, 10)
	assert.Equal(t, float32(0), g.Player.Position[0])
	assert.InDelta(t, 37.5, g.Ball.Position[0], 1e-3, "ball follows the clamped move")

	g.UpdatePlayer(ControllerState{MouseDelta: 5000}, 0.1)
	assert.Equal(t, float32(testWidth-100), g.Player.Position[0])

	g.UpdatePlayer(ControllerState{Launch: true}, 0.1)
	assert.False(t, g.Ball.Stuck)

	x := g.Ball.Position[0]
	g.UpdatePlayer(ControllerState{Move: -1}, 0.1)
	assert.Equal(t, x, g.Ball.Position[0], "free ball does not follow the paddle")
}

func TestStepLaunchesAndMovesBall(t *testing.T) {
	g, _ := newTestGame(t, grid(2))

	g.Step(ControllerState{Launch: true}, 0.1)

	assert.False(t, g.Ball.Stuck)
	assert.InDelta(t, 397.5, g.Ball.Position[0], 1e-3)
	assert.InDelta(t, 520, g.Ball.Position[1], 1e-3)
}

func TestLosingBallCostsALife(t *testing.T) {
	two := level.New("two", [][]int{{2, 2}}, testWidth, testHeight/2)
	g, _ := newTestGame(t, two, WithLives(2))
	require.Equal(t, 2, g.Lives)
	g.CurrentLevel().Destroy(0)

	g.Ball.Stuck = false
	g.Ball.Position = common.Vec2{100, testHeight}
	g.Ball.Sticky = true
	g.Update(0)

	assert.Equal(t, 1, g.Lives)
	assert.Equal(t, StateActive, g.State)
	assert.True(t, g.Ball.Stuck)
	assert.False(t, g.Ball.Sticky)
	assert.Equal(t, common.Vec2{387.5, 555}, g.Ball.Position)
	assert.True(t, g.CurrentLevel().Bricks[0].Destroyed, "level kept while lives remain")

	g.Ball.Stuck = false
	g.Ball.Position = common.Vec2{100, testHeight + 10}
	g.Update(0)

	assert.Equal(t, 2, g.Lives)
	assert.Equal(t, StateMenu, g.State)
	assert.False(t, g.CurrentLevel().Bricks[0].Destroyed)
}

func TestClearingLevelWins(t *testing.T) {
	g, _ := newTestGame(t, grid(2))
	g.Ball.Stuck = false
	g.Ball.Position = common.Vec2{27.5, 57.5}
	g.Ball.Velocity = common.Vec2{0, -200}

	g.Update(0)

	assert.Equal(t, StateWin, g.State)
	assert.True(t, g.Effects.Chaos)
	assert.False(t, g.CurrentLevel().Bricks[0].Destroyed, "level reset for the next attempt")
	assert.True(t, g.Ball.Stuck)

	g.UpdatePlayer(ControllerState{Launch: true}, 0.016)
	assert.Equal(t, StateMenu, g.State)
	assert.False(t, g.Effects.Chaos)
}

func TestMenuCyclesLevels(t *testing.T) {
	g, _ := newTestGame(t, grid(2), WithLevels(grid(2), grid(3), grid(4)), WithState(StateMenu))

	g.UpdatePlayer(ControllerState{PrevLevel: true}, 0.016)
	assert.Equal(t, 2, g.Level)
	g.UpdatePlayer(ControllerState{NextLevel: true}, 0.016)
	assert.Equal(t, 0, g.Level)
	g.UpdatePlayer(ControllerState{NextLevel: true}, 0.016)
	assert.Equal(t, 1, g.Level)

	x := g.Player.Position[0]
	g.UpdatePlayer(ControllerState{Move: 1}, 0.1)
	assert.Equal(t, x, g.Player.Position[0], "paddle frozen in the menu")

	g.UpdatePlayer(ControllerState{Launch: true}, 0.016)
	assert.Equal(t, StateActive, g.State)
}

func TestReplaceLevel(t *testing.T) {
	g, _ := newTestGame(t, grid(2))
	next := grid(5)

	g.ReplaceLevel(0, next)
	assert.Same(t, next, g.CurrentLevel())
	assert.Panics(t, func() { g.ReplaceLevel(3, next) })
}

func TestObjectsDrawOrder(t *testing.T) {
	g, _ := newTestGame(t, grid(2))
	g.PowerUps = append(g.PowerUps, power_up.New(power_up.TypeSticky, common.Vec2{10, 10}))

	quads := g.Objects()
	require.Len(t, quads, 4)
	assert.Equal(t, g.CurrentLevel().Bricks[0].Quad(), quads[0])
	assert.Equal(t, g.Player.Quad(), quads[1])
	assert.Equal(t, g.PowerUps[0].Quad(), quads[2])
	assert.Equal(t, g.Ball.Quad(), quads[3])

	g.CurrentLevel().Destroy(0)
	assert.Len(t, g.Objects(), 3)
}
