package game

import (
	"github.com/Carmen-Shannon/oxy-breakout/common"
	"github.com/Carmen-Shannon/oxy-breakout/engine/collision"
	"github.com/Carmen-Shannon/oxy-breakout/game/power_up"
)

// doCollisions runs one frame's collision pass: every live brick in level
// order, the paddle once, the deferred power-up spawns, then the paddle against
// each falling power-up.
func (g *Game) doCollisions() {
	lvl := g.CurrentLevel()

	var spawnAt []common.Vec2
	for i := range lvl.Bricks {
		box := &lvl.Bricks[i]
		if box.Destroyed {
			continue
		}
		c := collision.CheckBall(g.Ball, box)
		if !c.Hit {
			continue
		}

		if !box.IsSolid {
			lvl.Destroy(i)
			spawnAt = append(spawnAt, box.Position)
			g.sink.Play(SoundBleepBrick)
		} else {
			g.Effects.StartShake()
			g.sink.Play(SoundSolid)
		}

		if g.Ball.PassThrough && !box.IsSolid {
			continue
		}
		g.bounce(c)
	}

	if !g.Ball.Stuck {
		if c := collision.CheckBall(g.Ball, g.Player); c.Hit {
			g.bouncePaddle()
		}
	}

	for _, pos := range spawnAt {
		g.PowerUps = append(g.PowerUps, power_up.Spawn(pos, g.chance)...)
	}

	for i := range g.PowerUps {
		p := &g.PowerUps[i]
		if p.Destroyed {
			continue
		}
		if p.Position[1] >= g.Height {
			p.Destroyed = true
			continue
		}
		if collision.CheckAABB(g.Player, &p.GameObject) {
			power_up.Apply(p.Type, g.Player, g.Ball, &g.Effects)
			p.Destroyed = true
			p.Activated = true
			g.sink.Play(SoundPowerUp)
		}
	}
}

// bounce reflects the ball off a brick along the collision axis and pushes it
// out by the penetration depth.
func (g *Game) bounce(c collision.Collision) {
	b := g.Ball
	if c.Dir.Horizontal() {
		b.Velocity[0] = -b.Velocity[0]
		pen := b.Radius - common.Abs(c.Diff[0])
		if c.Dir == collision.Left {
			b.Position[0] += pen
		} else {
			b.Position[0] -= pen
		}
		return
	}

	b.Velocity[1] = -b.Velocity[1]
	pen := b.Radius - common.Abs(c.Diff[1])
	if c.Dir == collision.Up {
		b.Position[1] -= pen
	} else {
		b.Position[1] += pen
	}
}

// bouncePaddle deflects the ball by where it struck the paddle, keeping its
// speed and always sending it upward.
func (g *Game) bouncePaddle() {
	b := g.Ball
	half := g.Player.Size[0] / 2
	centerBoard := g.Player.Position[0] + half
	percentage := (b.Position[0] + b.Radius - centerBoard) / half

	speed := b.Velocity.Len()
	v := common.Vec2{InitialBallVelocity[0] * percentage * bounceStrength, -common.Abs(b.Velocity[1])}
	b.Velocity = v.Normalize().Scale(speed)
	b.Velocity[1] = -common.Abs(b.Velocity[1])

	b.Stuck = b.Sticky
	g.sink.Play(SoundBleepPaddle)
}
