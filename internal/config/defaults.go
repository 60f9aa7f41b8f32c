package config

import (
	_ "embed"
)

//go:embed defaults/survival.yaml
var defaultSurvivalYAML []byte

// DefaultSurvivalConfig returns the built-in survival configuration.
// It matches defaults/survival.yaml and is used when that fails to parse.
func DefaultSurvivalConfig() SurvivalConfig {
	return SurvivalConfig{
		World: WorldConfig{
			Width:  1280,
			Height: 720,
		},
		Timing: TimingConfig{
			DecayRate:         10,
			AimSmoothing:      0.35,
			RotationSmoothing: 0.5,
			ReferenceFPS:      60,
		},
		Player: PlayerConfig{
			Speed:            200,
			Radius:           24,
			Hitpoints:        5,
			DamageCooldown:   30,
			StunDivisor:      5,
			InputLockAt:      20,
			KnockbackAt:      20,
			KnockbackDivisor: 5,
			ShakeScale:       20,
		},
		Gun: GunConfig{
			Width:             10,
			Height:            20,
			Origin:            Vec{X: 5, Y: 10},
			Offset:            Vec{X: 20, Y: 20},
			Reload:            10,
			MinReload:         0.5,
			LevelStep:         5,
			Recoil:            5,
			DeadReloadDivisor: 5,
			BulletSpeed:       500,
			BulletRadius:      5,
			MaxBounces:        1,
		},
		Sword: SwordConfig{
			Width:           80,
			Height:          20,
			Offset:          Vec{X: 35, Y: 0},
			RestAngle:       75,
			SwingTarget:     -1,
			SwingSmoothing:  0.25,
			ReturnSmoothing: 0.5,
			ShrinkPerDamage: 4,
		},
		Enemy: EnemyConfig{
			Speed:            125,
			MinSize:          18,
			Interval:         4,
			KillsPerIncrease: 20,
			DamageCooldown:   2,
			SpawnMargin:      200,
			HitShrink:        4,
		},
		Spawner: SpawnerConfig{
			Cooldown:     20,
			MinCooldown:  1,
			LevelDivisor: 3.5,
			DeadDivisor:  2,
		},
		Progression: ProgressionConfig{
			KillsPerLevel: 20,
		},
		Camera: CameraConfig{
			Lookahead: 12.5,
			Zoom:      1.2,
		},
	}
}
