// Package power_up implements the temporary gameplay modifiers dropped by
// destroyed bricks: spawning, falling, pickup effects, timed expiry, and
// removal.
package power_up

import (
	"math/rand/v2"

	"github.com/Carmen-Shannon/oxy-breakout/common"
	"github.com/Carmen-Shannon/oxy-breakout/engine/game_object"
)

// Type identifies one of the six power-up kinds.
type Type int

const (
	// TypeSpeedUp multiplies the ball's velocity once.
	TypeSpeedUp Type = iota
	// TypeSticky makes the ball re-stick to the paddle on contact.
	TypeSticky
	// TypePassThrough lets the ball pass through breakable bricks.
	TypePassThrough
	// TypePadSizeIncrease widens the paddle permanently.
	TypePadSizeIncrease
	// TypeConfuse enables the confuse post-processing effect.
	TypeConfuse
	// TypeChaos enables the chaos post-processing effect.
	TypeChaos

	typeCount
)

var (
	// Size is the size of every falling power-up.
	Size = common.Vec2{60, 20}
	// Velocity is the constant fall velocity of every power-up.
	Velocity = common.Vec2{0, 150}
)

// Tuning for the effects applied on pickup.
const (
	SpeedUpFactor   = 1.2
	PadSizeIncrease = 50.0
)

// Tints applied while an effect is active.
var (
	StickyPaddleColor    = common.Vec3{1.0, 0.5, 1.0}
	PassThroughBallColor = common.Vec3{1.0, 0.5, 0.5}
)

type typeInfo struct {
	name     string
	sprite   string
	color    common.Vec3
	duration float32
	chance   int
}

var types = [typeCount]typeInfo{
	TypeSpeedUp:         {"speed", "powerup_speed", common.Vec3{0.5, 0.5, 1.0}, 0, 75},
	TypeSticky:          {"sticky", "powerup_sticky", common.Vec3{1.0, 0.5, 1.0}, 20, 75},
	TypePassThrough:     {"pass-through", "powerup_passthrough", common.Vec3{0.5, 1.0, 0.5}, 10, 75},
	TypePadSizeIncrease: {"pad-size-increase", "powerup_increase", common.Vec3{1.0, 0.6, 0.4}, 0, 75},
	TypeConfuse:         {"confuse", "powerup_confuse", common.Vec3{1.0, 0.3, 0.3}, 15, 15},
	TypeChaos:           {"chaos", "powerup_chaos", common.Vec3{0.9, 0.25, 0.25}, 15, 15},
}

// Types lists every power-up type in spawn-trial order.
func Types() []Type {
	return []Type{TypeSpeedUp, TypeSticky, TypePassThrough, TypePadSizeIncrease, TypeConfuse, TypeChaos}
}

func (t Type) String() string {
	if t < 0 || t >= typeCount {
		return "unknown"
	}
	return types[t].name
}

// Duration is the effect lifetime in seconds; zero means the effect is
// instantaneous or permanent.
func (t Type) Duration() float32 { return types[t].duration }

// Color is the tint of the falling power-up.
func (t Type) Color() common.Vec3 { return types[t].color }

// Sprite is the texture key of the falling power-up.
func (t Type) Sprite() string { return types[t].sprite }

// Chance is the N of the 1-in-N spawn trial for this type.
func (t Type) Chance() int { return types[t].chance }

// PowerUp is a falling pickup. Once caught it is both Destroyed and Activated
// until its Duration runs out.
type PowerUp struct {
	game_object.GameObject

	Type      Type
	Duration  float32
	Activated bool
}

// New creates a power-up of type t falling from position.
//
// Parameters:
//   - t: the power-up type
//   - position: spawn position, usually the destroyed brick's position
//
// Returns:
//   - PowerUp: the new power-up
func New(t Type, position common.Vec2) PowerUp {
	obj := game_object.NewGameObject(
		game_object.WithPosition(position[0], position[1]),
		game_object.WithSize(Size[0], Size[1]),
		game_object.WithVelocity(Velocity[0], Velocity[1]),
		game_object.WithColor(t.Color()),
		game_object.WithSprite(t.Sprite()),
	)
	return PowerUp{GameObject: *obj, Type: t, Duration: t.Duration()}
}

// Chance reports whether a 1-in-n trial succeeded.
type Chance func(n int) bool

// RandomChance is the default Chance backed by the global random source.
func RandomChance(n int) bool {
	return rand.IntN(n) == 0
}

// Spawn runs one independent trial per type and returns every power-up that
// succeeded, all at position. Zero, one or several may spawn together.
//
// Parameters:
//   - position: where the power-ups appear
//   - chance: the trial function
//
// Returns:
//   - []PowerUp: the spawned power-ups
func Spawn(position common.Vec2, chance Chance) []PowerUp {
	var spawned []PowerUp
	for _, t := range Types() {
		if chance(t.Chance()) {
			spawned = append(spawned, New(t, position))
		}
	}
	return spawned
}
