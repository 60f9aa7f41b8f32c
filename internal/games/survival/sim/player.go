package sim

import (
	"math"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
)

// Attacker is the enemy that last damaged the player, frozen at the moment of
// the hit so knockback has a direction even after the enemy dies.
type Attacker struct {
	ID       EnemyID
	Position core.Vec2
}

// Player is the controlled circle. It lives for the whole session; running out
// of hitpoints only moves it into the dead-but-rendering state.
type Player struct {
	Ball      Ball
	Level     int
	Gun       *Gun
	Sword     *Sword
	Equipped  WeaponKind
	KillCount int
	Damage    DamageSystem
	HitBy     *Attacker

	cfg config.PlayerConfig
}

// NewPlayer creates a player in the middle of the world holding the gun.
func NewPlayer(cfg config.SurvivalConfig) *Player {
	return &Player{
		Ball: Ball{
			Position: core.V(cfg.World.Width/2, cfg.World.Height/2),
			Speed:    cfg.Player.Speed,
			Radius:   cfg.Player.Radius,
			Color:    core.ColorWhite,
		},
		Gun:      NewGun(cfg.Gun),
		Sword:    NewSword(cfg.Sword),
		Equipped: WeaponGun,
		Damage: DamageSystem{
			Hitpoint: uint8(cfg.Player.Hitpoints),
			Cooldown: NewCooldown(cfg.Player.DamageCooldown),
		},
		cfg: cfg.Player,
	}
}

// SupposedToBeDead reports the dead-but-rendering state.
func (p *Player) SupposedToBeDead() bool {
	return p.Damage.Dead()
}

// SwitchWeapon cycles the equipped weapon. The sword is skipped until it has
// been unlocked through a level-up.
func (p *Player) SwitchWeapon() {
	next := WeaponGun
	if p.Equipped == WeaponGun {
		next = WeaponSword
	}
	if next == WeaponSword && p.Sword.Level == 0 {
		next = WeaponGun
	}
	p.Equipped = next
}

// EquippedRect returns the hitbox and color of the equipped weapon.
func (p *Player) EquippedRect() (core.OrientedRect, core.Color) {
	if p.Equipped == WeaponSword {
		return p.Sword.Rect, p.Sword.Color
	}
	return p.Gun.Rect, p.Gun.Color
}

// updateAim steers the aim direction toward the held aim keys.
// With a single key held the aim eases toward that cardinal direction;
// with several held each key nudges only its own axis, clamped to [-1, 1].
func (p *Player) updateAim(aim Directions, smoothing float64) {
	dir := &p.Ball.Direction
	held := 0
	for _, h := range []bool{aim.Up, aim.Down, aim.Left, aim.Right} {
		if h {
			held++
		}
	}
	combo := held > 1

	if aim.Up {
		if combo {
			dir.Y = core.Lerp(dir.Y, math.Max(dir.Y-1, -1), smoothing)
		} else {
			*dir = core.V(core.Lerp(dir.X, 0, smoothing), core.Lerp(dir.Y, -1, smoothing))
		}
	}
	if aim.Left {
		if combo {
			dir.X = core.Lerp(dir.X, math.Max(dir.X-1, -1), smoothing)
		} else {
			*dir = core.V(core.Lerp(dir.X, -1, smoothing), core.Lerp(dir.Y, 0, smoothing))
		}
	}
	if aim.Down {
		if combo {
			dir.Y = core.Lerp(dir.Y, math.Min(dir.Y+1, 1), smoothing)
		} else {
			*dir = core.V(core.Lerp(dir.X, 0, smoothing), core.Lerp(dir.Y, 1, smoothing))
		}
	}
	if aim.Right {
		if combo {
			dir.X = core.Lerp(dir.X, math.Min(dir.X+1, 1), smoothing)
		} else {
			*dir = core.V(core.Lerp(dir.X, 1, smoothing), core.Lerp(dir.Y, 0, smoothing))
		}
	}
}

// stunFactor scales movement by the remaining damage cooldown. It never drops
// below 1, so it only ever speeds the player up right after a hit.
func (p *Player) stunFactor() float64 {
	return math.Max(1, p.Damage.Cooldown.Value/p.cfg.StunDivisor)
}

// movementLocked reports whether knockback is still overriding movement input.
func (p *Player) movementLocked() bool {
	return p.Damage.Cooldown.Value >= p.cfg.InputLockAt
}

// takeHit applies one enemy contact. It returns false when the player was
// already out of hitpoints, which ends the session.
func (p *Player) takeHit(e Enemy) bool {
	if p.SupposedToBeDead() {
		return false
	}
	p.Damage.Hit(1)
	p.Damage.Cooldown.Reset()
	p.HitBy = &Attacker{ID: e.ID, Position: e.Ball.Position}
	return true
}

// knockback returns the push away from the last attacker for this frame and
// the camera shake range, both zero once the cooldown falls to KnockbackAt.
func (p *Player) knockback(dt, referenceFPS float64) (core.Vec2, int) {
	value := p.Damage.Cooldown.Value
	if value <= p.cfg.KnockbackAt || p.HitBy == nil {
		return core.Vec2{}, 0
	}
	toward := core.FromAngle(p.Ball.Position.AngleTo(p.HitBy.Position))
	push := toward.Scale(-value / p.cfg.KnockbackDivisor * referenceFPS * dt)
	shakeRange := int((value - p.cfg.KnockbackAt) * p.cfg.ShakeScale)
	return push, shakeRange
}
