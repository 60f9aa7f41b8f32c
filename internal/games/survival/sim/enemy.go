package sim

import (
	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
)

// minEnemyRadius keeps shrinking enemies drawable until they die.
const minEnemyRadius = 1.0

// EnemyID identifies an enemy for the lifetime of a session.
type EnemyID uint64

// Enemy is a seeking circle whose radius tracks its remaining toughness.
type Enemy struct {
	ID     EnemyID
	Ball   Ball
	Damage DamageSystem
}

// shrink reduces the radius as visual feedback for a hit.
func (e *Enemy) shrink(by float64) {
	e.Ball.Radius = max(e.Ball.Radius-by, minEnemyRadius)
}

// seek points the enemy at target and moves it.
func (e *Enemy) seek(target core.Vec2, dt float64) {
	e.Ball.Direction = core.FromAngle(e.Ball.Position.AngleTo(target))
	e.Ball.Position = e.Ball.Position.Add(e.Ball.Direction.Scale(e.Ball.Speed * dt))
}

// Spawner produces enemies on the boundary ring at a cooldown-gated cadence.
type Spawner struct {
	Cooldown Cooldown

	curve  config.EnemyCurve
	enemy  config.EnemyConfig
	cfg    config.SpawnerConfig
	world  config.WorldConfig
	nextID EnemyID
}

// NewSpawner creates a spawner that is ready to spawn on the first frame.
func NewSpawner(cfg config.SurvivalConfig) *Spawner {
	return &Spawner{
		Cooldown: NewCooldown(cfg.Spawner.Cooldown),
		curve:    config.NewEnemyCurve(cfg.Enemy),
		enemy:    cfg.Enemy,
		cfg:      cfg.Spawner,
		world:    cfg.World,
	}
}

// Curve returns the difficulty curve used for new enemies.
func (s *Spawner) Curve() config.EnemyCurve {
	return s.curve
}

// Update spawns an enemy when the cooldown is ready, then decays the cooldown.
// While boosted (player dead but rendering) the cooldown restarts at a fraction
// of its nominal value.
func (s *Spawner) Update(dt, decayRate float64, kills int, boosted bool, rng Random) (Enemy, bool) {
	var (
		spawned Enemy
		ok      bool
	)
	if s.Cooldown.Ready() {
		spawned, ok = s.NewEnemy(kills, rng), true
		if boosted {
			s.Cooldown.ResetTo(s.Cooldown.Cooldown / s.cfg.DeadDivisor)
		} else {
			s.Cooldown.Reset()
		}
	}
	s.Cooldown.Tick(dt, decayRate)
	return spawned, ok
}

// NewEnemy generates an enemy for the current kill count. Its position is drawn
// from a band around the world and snapped onto the nearest edge when it falls
// inside; its hitpoints are derived from the drawn radius.
func (s *Spawner) NewEnemy(kills int, rng Random) Enemy {
	w, h, margin := s.world.Width, s.world.Height, s.enemy.SpawnMargin

	x := core.RoundToNearest(rng.Float64()*(w+2*margin)-margin, 0, w)
	y := core.RoundToNearest(rng.Float64()*(h-2*margin)+margin, 0, h)
	radius := s.curve.SampleRadius(kills, rng.Float64())

	s.nextID++
	return Enemy{
		ID: s.nextID,
		Ball: Ball{
			Position: core.V(x, y),
			Speed:    s.enemy.Speed,
			Radius:   radius,
			Color:    core.ColorRed,
		},
		Damage: DamageSystem{
			Hitpoint: s.curve.Hitpoints(radius),
			Cooldown: NewCooldown(s.enemy.DamageCooldown),
		},
	}
}

// Accelerate permanently shortens the spawn cooldown after a level-up.
func (s *Spawner) Accelerate(level int) {
	s.Cooldown.Cooldown -= float64(level) / s.cfg.LevelDivisor
	if s.Cooldown.Cooldown < s.cfg.MinCooldown {
		s.Cooldown.Cooldown = s.cfg.MinCooldown
	}
	s.Cooldown.ResetTo(s.Cooldown.Value)
}
