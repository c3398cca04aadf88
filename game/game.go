// Package game is the Breakout orchestrator. It owns the paddle, the ball, the
// levels and the live power-ups, and advances them one frame at a time from the
// delta time and controller state supplied by the frame loop.
package game

import (
	"log/slog"

	"github.com/Carmen-Shannon/oxy-breakout/common"
	"github.com/Carmen-Shannon/oxy-breakout/engine/game_object"
	"github.com/Carmen-Shannon/oxy-breakout/game/level"
	"github.com/Carmen-Shannon/oxy-breakout/game/power_up"
)

// State is the top-level mode of the game.
type State int

const (
	// StateActive is normal play.
	StateActive State = iota
	// StateMenu waits for the player to pick a level and launch.
	StateMenu
	// StateWin is shown after a level is cleared.
	StateWin
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateMenu:
		return "menu"
	case StateWin:
		return "win"
	default:
		return "unknown"
	}
}

var (
	// PlayerSize is the paddle's size at the start of every life.
	PlayerSize = common.Vec2{100, 20}
	// InitialBallVelocity is the launch velocity of the ball.
	InitialBallVelocity = common.Vec2{100, -350}
)

const (
	// PlayerVelocity is the paddle's keyboard speed in pixels per second.
	PlayerVelocity = 500.0
	// BallRadius is the ball radius in pixels.
	BallRadius = 12.5
	// DefaultLives is the number of balls per level attempt.
	DefaultLives = 3
	// bounceStrength scales how far off-centre paddle hits deflect the ball.
	bounceStrength = 2.0
)

// Sprite keys for the player-controlled objects.
const (
	SpritePaddle = "paddle"
	SpriteBall   = "face"
)

// ControllerState is the player intent for one frame.
type ControllerState struct {
	// Move is the keyboard axis in [-1, 1]; negative moves left.
	Move float32
	// MouseDelta is the horizontal mouse movement in pixels since the last
	// frame. When non-zero it takes priority over Move.
	MouseDelta float32
	// Launch releases a stuck ball, or confirms in the menu and win screens.
	Launch bool
	// NextLevel and PrevLevel cycle the selected level in the menu.
	NextLevel bool
	PrevLevel bool
}

// Game is the complete simulation state. It is not safe for concurrent use;
// the frame loop is its only caller.
type Game struct {
	State  State
	Width  float32
	Height float32

	Player *game_object.GameObject
	Ball   *game_object.BallObject

	Levels []*level.GameLevel
	// Level is the index of the current level in Levels.
	Level int

	PowerUps []power_up.PowerUp
	Effects  power_up.Effects

	Lives    int
	MaxLives int

	playerVelocity float32
	sink           SoundSink
	chance         power_up.Chance

	quads []common.Quad
}

// NewGame creates a game over a width × height play area. At least one level
// must be supplied through WithLevels.
//
// Parameters:
//   - width: play area width in pixels
//   - height: play area height in pixels
//   - options: functional options to configure the game
//
// Returns:
//   - *Game: the game, with the paddle and ball in their starting positions
func NewGame(width, height float32, options ...GameBuilderOption) *Game {
	g := &Game{
		State:          StateActive,
		Width:          width,
		Height:         height,
		MaxLives:       DefaultLives,
		playerVelocity: PlayerVelocity,
		sink:           nopSink{},
		chance:         power_up.RandomChance,
	}
	for _, option := range options {
		option(g)
	}
	if len(g.Levels) == 0 {
		panic("game: no levels")
	}
	if g.Level < 0 || g.Level >= len(g.Levels) {
		panic("game: start level out of range")
	}
	g.Lives = g.MaxLives

	g.Player = game_object.NewGameObject(game_object.WithSprite(SpritePaddle))
	g.Ball = game_object.NewBallObject(common.Vec2{}, BallRadius, InitialBallVelocity, game_object.WithSprite(SpriteBall))
	g.ResetPlayer()
	return g
}

// CurrentLevel returns the level being played.
func (g *Game) CurrentLevel() *level.GameLevel {
	return g.Levels[g.Level]
}

// Step advances the game by one frame: input first, then simulation.
//
// Parameters:
//   - ctrl: the player intent for this frame
//   - dt: elapsed time in seconds
func (g *Game) Step(ctrl ControllerState, dt float32) {
	g.UpdatePlayer(ctrl, dt)
	g.Update(dt)
}

// UpdatePlayer applies the player's intent for the current state.
//
// Parameters:
//   - ctrl: the player intent for this frame
//   - dt: elapsed time in seconds
func (g *Game) UpdatePlayer(ctrl ControllerState, dt float32) {
	switch g.State {
	case StateActive:
		dx := ctrl.MouseDelta
		if dx == 0 {
			dx = ctrl.Move * g.playerVelocity * dt
		}
		g.movePlayer(dx)
		if ctrl.Launch {
			g.Ball.Stuck = false
		}
	case StateMenu:
		if ctrl.Launch {
			g.State = StateActive
			return
		}
		n := len(g.Levels)
		if ctrl.NextLevel {
			g.Level = (g.Level + 1) % n
		}
		if ctrl.PrevLevel {
			g.Level = (g.Level + n - 1) % n
		}
	case StateWin:
		if ctrl.Launch {
			g.Effects.Chaos = false
			g.State = StateMenu
		}
	}
}

// movePlayer shifts the paddle by dx, clamped to the play area, and carries a
// stuck ball along by the distance actually moved.
func (g *Game) movePlayer(dx float32) {
	if dx == 0 {
		return
	}
	x := g.Player.Position[0]
	nx := common.Clamp(x+dx, 0, g.Width-g.Player.Size[0])
	g.Player.Position[0] = nx
	if g.Ball.Stuck {
		g.Ball.Position[0] += nx - x
	}
}

// Update advances the simulation by dt seconds: ball motion, collisions,
// power-up timers, the shake timer, then the lost-ball and level-complete
// checks.
//
// Parameters:
//   - dt: elapsed time in seconds
func (g *Game) Update(dt float32) {
	g.Ball.Move(g.Width, dt)
	g.doCollisions()
	g.PowerUps = power_up.Update(g.PowerUps, dt, g.Player, g.Ball, &g.Effects)
	g.Effects.Tick(dt)

	if g.Ball.Position[1] >= g.Height {
		g.Lives--
		slog.Debug("[Game] ball lost", "lives", g.Lives)
		if g.Lives <= 0 {
			g.ResetLevel()
			g.State = StateMenu
		}
		g.ResetPlayer()
	}

	if g.State == StateActive && g.CurrentLevel().IsComplete() {
		slog.Info("[Game] level complete", "level", g.CurrentLevel().Name)
		g.ResetLevel()
		g.ResetPlayer()
		g.Effects.Chaos = true
		g.State = StateWin
	}
}

// ResetLevel revives the current level's bricks and restores the lives.
func (g *Game) ResetLevel() {
	g.CurrentLevel().Reset()
	g.Lives = g.MaxLives
}

// ResetPlayer returns the paddle and ball to their starting state and drops
// every power-up and post-processing effect.
func (g *Game) ResetPlayer() {
	g.Player.Size = PlayerSize
	g.Player.Position = common.Vec2{g.Width/2 - PlayerSize[0]/2, g.Height - PlayerSize[1]}
	g.Player.Color = common.White

	g.Ball.Reset(
		g.Player.Position.Add(common.Vec2{PlayerSize[0]/2 - g.Ball.Radius, -2 * g.Ball.Radius}),
		InitialBallVelocity,
	)
	g.Ball.Color = common.White

	g.Effects.Confuse = false
	g.Effects.Chaos = false
	g.PowerUps = g.PowerUps[:0]
}

// ReplaceLevel swaps the level at index i, typically after its file changed on
// disk. Replacing the current level discards its progress.
//
// Parameters:
//   - i: index into Levels
//   - lvl: the new level
func (g *Game) ReplaceLevel(i int, lvl *level.GameLevel) {
	if i < 0 || i >= len(g.Levels) {
		panic("game: level index out of range")
	}
	g.Levels[i] = lvl
}

// Objects returns the draw list for the current frame: live bricks, the paddle,
// falling power-ups and the ball, back to front. The slice is reused by the
// next call.
func (g *Game) Objects() []common.Quad {
	g.quads = g.quads[:0]
	for i := range g.CurrentLevel().Bricks {
		if b := &g.CurrentLevel().Bricks[i]; !b.Destroyed {
			g.quads = append(g.quads, b.Quad())
		}
	}
	g.quads = append(g.quads, g.Player.Quad())
	for i := range g.PowerUps {
		if p := &g.PowerUps[i]; !p.Destroyed {
			g.quads = append(g.quads, p.Quad())
		}
	}
	g.quads = append(g.quads, g.Ball.Quad())
	return g.quads
}
