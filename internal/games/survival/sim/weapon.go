package sim

import (
	"math"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
)

// WeaponKind selects one of the player's two weapons.
type WeaponKind int

const (
	WeaponGun WeaponKind = iota
	WeaponSword
)

// String returns the weapon name.
func (k WeaponKind) String() string {
	switch k {
	case WeaponGun:
		return "gun"
	case WeaponSword:
		return "sword"
	default:
		return "unknown"
	}
}

// weaponFrame carries the per-frame facts both weapons need.
type weaponFrame struct {
	dt        float64
	decayRate float64
	smoothing float64 // rotation lerp factor
	player    core.Vec2
	aimAngle  float64
	firing    bool // aim keys held
	equipped  bool
	boosted   bool // player is dead but still rendering
	world     config.WorldConfig
}

// Bullet is a gun projectile. It is owned by the gun; the enemy pass only
// flags HitEnemy in place.
type Bullet struct {
	Ball
	Bounces  int
	HitEnemy bool
}

// Gun fires bouncing bullets along the aim direction.
type Gun struct {
	Rect    core.OrientedRect
	Color   core.Color
	Offset  core.Vec2
	Level   int
	Reload  Cooldown
	Bullets []Bullet

	cfg config.GunConfig
}

// NewGun creates a level 1 gun with a ready reload.
func NewGun(cfg config.GunConfig) *Gun {
	return &Gun{
		Rect: core.OrientedRect{
			W:      cfg.Width,
			H:      cfg.Height,
			Origin: core.V(cfg.Origin.X, cfg.Origin.Y),
		},
		Color:  core.ColorGray,
		Offset: core.V(cfg.Offset.X, cfg.Offset.Y),
		Level:  1,
		Reload: NewCooldown(cfg.Reload),
		cfg:    cfg,
	}
}

// AddLevel raises the fire rate: the reload shrinks by LevelStep/level.
func (g *Gun) AddLevel() {
	g.Level++
	g.Reload.Cooldown -= g.cfg.LevelStep / float64(g.Level)
	if g.Reload.Cooldown < g.cfg.MinReload {
		g.Reload.Cooldown = g.cfg.MinReload
	}
	g.Reload.ResetTo(g.Reload.Value)
}

// update poses the gun, fires if allowed, decays the reload and advances bullets.
func (g *Gun) update(f weaponFrame) {
	g.pose(f)

	if f.firing && f.equipped && g.Reload.Ready() {
		g.fire()
		if f.boosted {
			g.Reload.ResetTo(g.Reload.Cooldown / g.cfg.DeadReloadDivisor)
		} else {
			g.Reload.Reset()
		}
	}
	g.Reload.Tick(f.dt, f.decayRate)

	g.updateBullets(f.dt, f.world)
}

// pose places the gun beside the player, kicked back by the remaining reload.
func (g *Gun) pose(f weaponFrame) {
	recoil := 0.0
	if g.Reload.Cooldown > 0 {
		recoil = g.cfg.Recoil * g.Reload.Value / g.Reload.Cooldown
	}
	offset := core.V(g.Offset.X-recoil, g.Offset.Y).Rotated(f.aimAngle)
	anchor := f.player.Add(offset)

	g.Rect.X, g.Rect.Y = anchor.X, anchor.Y
	g.Rect.Rotation = core.Lerp(g.Rect.Rotation, core.Rad2Deg(f.aimAngle)+90, f.smoothing)
}

// fire spawns a bullet at the gun anchor heading along the barrel.
func (g *Gun) fire() {
	heading := core.FromAngle(core.Deg2Rad(g.Rect.Rotation - 90))
	g.Bullets = append(g.Bullets, Bullet{
		Ball: Ball{
			Position:  g.Rect.Anchor(),
			Direction: heading.Normalized(),
			Speed:     g.cfg.BulletSpeed,
			Radius:    g.cfg.BulletRadius,
			Color:     core.ColorGold,
		},
	})
}

// updateBullets reflects bullets off the world walls, moves them and keeps the
// ones that have neither bounced too often nor hit an enemy.
func (g *Gun) updateBullets(dt float64, world config.WorldConfig) {
	survivors := make([]Bullet, 0, len(g.Bullets))
	for _, b := range g.Bullets {
		if b.Position.X <= 0 || b.Position.X >= world.Width {
			b.Direction.X = -b.Direction.X
			b.Bounces++
		}
		if b.Position.Y <= 0 || b.Position.Y >= world.Height {
			b.Direction.Y = -b.Direction.Y
			b.Bounces++
		}
		b.Position = b.Position.Add(b.Direction.Scale(b.Speed * dt))

		if b.Bounces <= g.cfg.MaxBounces && !b.HitEnemy {
			survivors = append(survivors, b)
		}
	}
	g.Bullets = survivors
}

// markHit flags the first unspent bullet overlapping the circle.
func (g *Gun) markHit(pos core.Vec2, radius float64) bool {
	for i := range g.Bullets {
		b := &g.Bullets[i]
		if b.HitEnemy {
			continue
		}
		if core.CircleIntersectsCircle(pos, radius, b.Position, b.Radius) {
			b.HitEnemy = true
			return true
		}
	}
	return false
}

// Sword swings an arc around the player. Damage only lands mid-swing.
type Sword struct {
	Rect          core.OrientedRect
	Color         core.Color
	Offset        core.Vec2
	Level         int
	Damage        float64
	Swinging      bool
	SwingProgress float64 // degrees

	cfg config.SwordConfig
}

// restSnap is how close the idle swing progress has to get to rest to settle.
const restSnap = 0.01

// NewSword creates a level 0 sword resting at its idle angle.
func NewSword(cfg config.SwordConfig) *Sword {
	return &Sword{
		Rect: core.OrientedRect{
			W: cfg.Width,
			H: cfg.Height,
		},
		Color:         core.ColorSilver,
		Offset:        core.V(cfg.Offset.X, cfg.Offset.Y),
		SwingProgress: cfg.RestAngle,
		cfg:           cfg,
	}
}

// Swing starts a swing.
func (s *Sword) Swing() {
	s.Swinging = true
}

// AddLevel raises the damage by 1/level.
func (s *Sword) AddLevel() {
	s.Level++
	s.Damage += 1.0 / float64(s.Level)
}

// CanHit reports whether the blade currently deals damage.
func (s *Sword) CanHit(equipped bool) bool {
	return equipped && s.Swinging
}

// HitDamage is the whole number of hitpoints one sword hit removes.
func (s *Sword) HitDamage() uint8 {
	d := math.Ceil(s.Damage)
	if d > math.MaxUint8 {
		return math.MaxUint8
	}
	return uint8(max(d, 0))
}

func (s *Sword) update(f weaponFrame) {
	s.advanceSwing()
	s.pose(f)
}

// advanceSwing runs the idle/swinging state machine.
func (s *Sword) advanceSwing() {
	if s.SwingProgress <= 0 {
		s.Swinging = false
	}

	switch {
	case s.Swinging:
		s.SwingProgress = core.Lerp(s.SwingProgress, s.cfg.SwingTarget, s.cfg.SwingSmoothing)
	case s.SwingProgress != s.cfg.RestAngle:
		s.SwingProgress = core.Lerp(s.SwingProgress, s.cfg.RestAngle, s.cfg.ReturnSmoothing)
		if math.Abs(s.SwingProgress-s.cfg.RestAngle) < restSnap {
			s.SwingProgress = s.cfg.RestAngle
		}
	}
}

// pose orbits the blade around the player, swept back by the swing progress.
func (s *Sword) pose(f weaponFrame) {
	progress := core.Deg2Rad(s.SwingProgress)
	offset := s.Offset.Rotated(f.aimAngle - math.Pi/2 + progress)
	anchor := f.player.Add(offset)

	s.Rect.X, s.Rect.Y = anchor.X, anchor.Y
	target := core.Rad2Deg(f.aimAngle - math.Pi/4)
	s.Rect.Rotation = core.Lerp(s.Rect.Rotation, target, f.smoothing) + s.SwingProgress
}
