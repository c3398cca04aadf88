package power_up

import (
	"github.com/Carmen-Shannon/oxy-breakout/common"
	"github.com/Carmen-Shannon/oxy-breakout/engine/game_object"
)

// ShakeDuration is how long a solid-brick hit shakes the screen, in seconds.
const ShakeDuration = 0.05

// Effects are the post-processing signals the simulation raises for the
// renderer. The simulation only sets them; drawing them is the renderer's job.
type Effects struct {
	Confuse bool
	Chaos   bool
	Shake   bool
	// ShakeTime is the remaining shake time in seconds.
	ShakeTime float32
}

// StartShake begins a screen shake of ShakeDuration seconds.
func (e *Effects) StartShake() {
	e.ShakeTime = ShakeDuration
	e.Shake = true
}

// Tick counts the shake timer down and clears Shake when it runs out.
func (e *Effects) Tick(dt float32) {
	if e.ShakeTime > 0 {
		e.ShakeTime -= dt
		if e.ShakeTime <= 0 {
			e.Shake = false
		}
	}
}

// Apply applies the pickup effect of t. Confuse and Chaos exclude each other:
// neither is enabled while the other is already on.
//
// Parameters:
//   - t: the power-up type caught
//   - paddle: the player's paddle
//   - ball: the ball
//   - effects: the post-processing flags
func Apply(t Type, paddle *game_object.GameObject, ball *game_object.BallObject, effects *Effects) {
	switch t {
	case TypeSpeedUp:
		ball.Velocity = ball.Velocity.Scale(SpeedUpFactor)
	case TypeSticky:
		ball.Sticky = true
		paddle.Color = StickyPaddleColor
	case TypePassThrough:
		ball.PassThrough = true
		ball.Color = PassThroughBallColor
	case TypePadSizeIncrease:
		paddle.Size[0] += PadSizeIncrease
	case TypeConfuse:
		if !effects.Chaos {
			effects.Confuse = true
		}
	case TypeChaos:
		if !effects.Confuse {
			effects.Chaos = true
		}
	}
}

// revoke undoes the lasting part of t's effect.
func revoke(t Type, paddle *game_object.GameObject, ball *game_object.BallObject, effects *Effects) {
	switch t {
	case TypeSticky:
		ball.Sticky = false
		paddle.Color = common.White
	case TypePassThrough:
		ball.PassThrough = false
		ball.Color = common.White
	case TypeConfuse:
		effects.Confuse = false
	case TypeChaos:
		effects.Chaos = false
	}
}

// Update advances every power-up by one frame and returns the surviving
// collection, reusing the backing array.
//
// Each power-up falls by Velocity·dt. Activated power-ups lose dt of Duration;
// when it runs out the power-up deactivates, is marked destroyed, and if no
// other power-up of its type is still active its effect is revoked. Active
// counts per type are tallied before any expiry so overlapping same-type
// pickups keep the effect alive until the last one ends. Power-ups that are
// destroyed and not activated are dropped.
//
// Parameters:
//   - powerUps: the live power-ups
//   - dt: elapsed time in seconds
//   - paddle: the player's paddle
//   - ball: the ball
//   - effects: the post-processing flags
//
// Returns:
//   - []PowerUp: the power-ups still in play
func Update(powerUps []PowerUp, dt float32, paddle *game_object.GameObject, ball *game_object.BallObject, effects *Effects) []PowerUp {
	var active [typeCount]int
	for i := range powerUps {
		if powerUps[i].Activated {
			active[powerUps[i].Type]++
		}
	}

	for i := range powerUps {
		p := &powerUps[i]
		p.Position = p.Position.Add(p.Velocity.Scale(dt))
		if !p.Activated {
			continue
		}
		p.Duration -= dt
		if p.Duration <= 0 {
			p.Activated = false
			p.Destroyed = true
			active[p.Type]--
			if active[p.Type] == 0 {
				revoke(p.Type, paddle, ball, effects)
			}
		}
	}

	kept := powerUps[:0]
	for _, p := range powerUps {
		if p.Destroyed && !p.Activated {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

