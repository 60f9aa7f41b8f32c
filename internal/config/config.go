// Package config provides YAML-based game configuration loading and
// difficulty management for the survivor game.
package config

import (
	"errors"
	"fmt"
)

// SurvivalConfig contains all tunables for the survival simulation.
// Distances are world units, speeds are units per second and cooldowns are
// in cooldown units that decay at Timing.DecayRate per second.
type SurvivalConfig struct {
	World       WorldConfig       `yaml:"world"`
	Timing      TimingConfig      `yaml:"timing"`
	Player      PlayerConfig      `yaml:"player"`
	Gun         GunConfig         `yaml:"gun"`
	Sword       SwordConfig       `yaml:"sword"`
	Enemy       EnemyConfig       `yaml:"enemy"`
	Spawner     SpawnerConfig     `yaml:"spawner"`
	Progression ProgressionConfig `yaml:"progression"`
	Camera      CameraConfig      `yaml:"camera"`
}

// Vec is a 2D offset in YAML form.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// WorldConfig defines the play area. Bullets bounce off its walls.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TimingConfig defines frame-rate independent rates.
type TimingConfig struct {
	DecayRate         float64 `yaml:"decay_rate"`         // Cooldown units removed per second
	AimSmoothing      float64 `yaml:"aim_smoothing"`      // Per-frame lerp factor toward held aim
	RotationSmoothing float64 `yaml:"rotation_smoothing"` // Per-frame lerp factor for weapon rotation
	ReferenceFPS      float64 `yaml:"reference_fps"`      // Frame rate per-frame impulses were tuned at
}

// PlayerConfig defines the player circle and its damage response.
type PlayerConfig struct {
	Speed            float64 `yaml:"speed"`
	Radius           float64 `yaml:"radius"`
	Hitpoints        int     `yaml:"hitpoints"`
	DamageCooldown   float64 `yaml:"damage_cooldown"`
	StunDivisor      float64 `yaml:"stun_divisor"`      // Speed factor is max(1, cooldown/StunDivisor)
	InputLockAt      float64 `yaml:"input_lock_at"`     // Movement ignored while cooldown >= this
	KnockbackAt      float64 `yaml:"knockback_at"`      // Knockback and shake while cooldown > this
	KnockbackDivisor float64 `yaml:"knockback_divisor"` // Knockback impulse is cooldown/KnockbackDivisor
	ShakeScale       float64 `yaml:"shake_scale"`       // Shake range per cooldown unit above KnockbackAt
}

// GunConfig defines the projectile weapon.
type GunConfig struct {
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	Origin            Vec     `yaml:"origin"`
	Offset            Vec     `yaml:"offset"`
	Reload            float64 `yaml:"reload"`
	MinReload         float64 `yaml:"min_reload"`
	LevelStep         float64 `yaml:"level_step"` // Reload shrinks by LevelStep/level per level
	Recoil            float64 `yaml:"recoil"`
	DeadReloadDivisor float64 `yaml:"dead_reload_divisor"`
	BulletSpeed       float64 `yaml:"bullet_speed"`
	BulletRadius      float64 `yaml:"bullet_radius"`
	MaxBounces        int     `yaml:"max_bounces"`
}

// SwordConfig defines the melee weapon and its swing arc.
type SwordConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Offset          Vec     `yaml:"offset"`
	RestAngle       float64 `yaml:"rest_angle"`       // Swing progress while idle, degrees
	SwingTarget     float64 `yaml:"swing_target"`     // Progress the swing lerps toward, degrees
	SwingSmoothing  float64 `yaml:"swing_smoothing"`  // Per-frame lerp factor while swinging
	ReturnSmoothing float64 `yaml:"return_smoothing"` // Per-frame lerp factor back to rest
	ShrinkPerDamage float64 `yaml:"shrink_per_damage"`
}

// EnemyConfig defines enemy stats and the spawn difficulty curve.
type EnemyConfig struct {
	Speed            float64 `yaml:"speed"`
	MinSize          float64 `yaml:"min_size"`
	Interval         float64 `yaml:"interval"` // Radius per hitpoint
	KillsPerIncrease float64 `yaml:"kills_per_increase"`
	DamageCooldown   float64 `yaml:"damage_cooldown"`
	SpawnMargin      float64 `yaml:"spawn_margin"`
	HitShrink        float64 `yaml:"hit_shrink"`
}

// SpawnerConfig defines the enemy spawn cadence.
type SpawnerConfig struct {
	Cooldown     float64 `yaml:"cooldown"`
	MinCooldown  float64 `yaml:"min_cooldown"`
	LevelDivisor float64 `yaml:"level_divisor"` // Baseline shrinks by level/LevelDivisor per level-up
	DeadDivisor  float64 `yaml:"dead_divisor"`
}

// ProgressionConfig defines the level-up milestones.
type ProgressionConfig struct {
	KillsPerLevel int `yaml:"kills_per_level"`
}

// CameraConfig defines how the view follows the player.
type CameraConfig struct {
	Lookahead float64 `yaml:"lookahead"`
	Zoom      float64 `yaml:"zoom"`
}

// Validate checks that the configuration can drive a session.
// All problems are reported together.
func (c SurvivalConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	positive("timing.decay_rate", c.Timing.DecayRate)
	positive("timing.reference_fps", c.Timing.ReferenceFPS)
	positive("player.speed", c.Player.Speed)
	positive("player.radius", c.Player.Radius)
	positive("player.damage_cooldown", c.Player.DamageCooldown)
	positive("player.stun_divisor", c.Player.StunDivisor)
	positive("player.knockback_divisor", c.Player.KnockbackDivisor)
	positive("gun.reload", c.Gun.Reload)
	positive("gun.min_reload", c.Gun.MinReload)
	positive("gun.dead_reload_divisor", c.Gun.DeadReloadDivisor)
	positive("gun.bullet_speed", c.Gun.BulletSpeed)
	positive("gun.bullet_radius", c.Gun.BulletRadius)
	positive("enemy.speed", c.Enemy.Speed)
	positive("enemy.min_size", c.Enemy.MinSize)
	positive("enemy.interval", c.Enemy.Interval)
	positive("enemy.kills_per_increase", c.Enemy.KillsPerIncrease)
	positive("enemy.damage_cooldown", c.Enemy.DamageCooldown)
	positive("spawner.cooldown", c.Spawner.Cooldown)
	positive("spawner.min_cooldown", c.Spawner.MinCooldown)
	positive("spawner.level_divisor", c.Spawner.LevelDivisor)
	positive("spawner.dead_divisor", c.Spawner.DeadDivisor)

	if c.Player.Hitpoints < 1 || c.Player.Hitpoints > 255 {
		errs = append(errs, fmt.Errorf("player.hitpoints must be in [1, 255], got %d", c.Player.Hitpoints))
	}
	if c.Gun.MaxBounces < 0 {
		errs = append(errs, fmt.Errorf("gun.max_bounces must not be negative, got %d", c.Gun.MaxBounces))
	}
	if c.Progression.KillsPerLevel < 1 {
		errs = append(errs, fmt.Errorf("progression.kills_per_level must be at least 1, got %d", c.Progression.KillsPerLevel))
	}

	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset validates a preset name. The empty string means
// "leave the loaded config alone" and parses to the empty preset.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}
