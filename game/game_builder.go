package game

import (
	"github.com/Carmen-Shannon/oxy-breakout/game/level"
	"github.com/Carmen-Shannon/oxy-breakout/game/power_up"
)

// GameBuilderOption is a functional option for configuring a Game during construction.
type GameBuilderOption func(*Game)

// WithLevels sets the ordered level list.
//
// Parameters:
//   - levels: the levels, at least one
//
// Returns:
//   - GameBuilderOption: functional option to set the levels
func WithLevels(levels ...*level.GameLevel) GameBuilderOption {
	return func(g *Game) {
		g.Levels = levels
	}
}

// WithStartLevel sets the index of the level played first.
//
// Parameters:
//   - i: index into the level list
//
// Returns:
//   - GameBuilderOption: functional option to set the starting level
func WithStartLevel(i int) GameBuilderOption {
	return func(g *Game) {
		g.Level = i
	}
}

// WithState sets the initial game state. Games start in StateActive by default.
//
// Parameters:
//   - s: the initial state
//
// Returns:
//   - GameBuilderOption: functional option to set the state
func WithState(s State) GameBuilderOption {
	return func(g *Game) {
		g.State = s
	}
}

// WithLives sets how many balls the player gets per level attempt.
// Non-positive values keep the default.
//
// Parameters:
//   - lives: the number of lives
//
// Returns:
//   - GameBuilderOption: functional option to set the lives
func WithLives(lives int) GameBuilderOption {
	return func(g *Game) {
		if lives > 0 {
			g.MaxLives = lives
		}
	}
}

// WithPlayerVelocity sets the paddle's keyboard speed in pixels per second.
// Non-positive values keep the default.
//
// Parameters:
//   - v: the paddle speed
//
// Returns:
//   - GameBuilderOption: functional option to set the paddle speed
func WithPlayerVelocity(v float32) GameBuilderOption {
	return func(g *Game) {
		if v > 0 {
			g.playerVelocity = v
		}
	}
}

// WithSoundSink sets where sound events are sent. Without one, sounds are dropped.
//
// Parameters:
//   - sink: the sound sink
//
// Returns:
//   - GameBuilderOption: functional option to set the sound sink
func WithSoundSink(sink SoundSink) GameBuilderOption {
	return func(g *Game) {
		if sink != nil {
			g.sink = sink
		}
	}
}

// WithChance sets the trial function used for power-up spawns.
//
// Parameters:
//   - chance: the 1-in-n trial function
//
// Returns:
//   - GameBuilderOption: functional option to set the spawn trials
func WithChance(chance power_up.Chance) GameBuilderOption {
	return func(g *Game) {
		if chance != nil {
			g.chance = chance
		}
	}
}
