package config

import "math"

// HitpointEpsilon nudges a radius that sits exactly on an interval boundary
// into the next hitpoint, so the smallest enemy still needs one hit.
const HitpointEpsilon = 0.001

// EnemyCurve couples enemy size and toughness to the kill count.
// The largest possible spawn grows by one Interval every KillsPerIncrease kills,
// and hitpoints are read back from the sampled radius.
type EnemyCurve struct {
	MinSize          float64
	Interval         float64
	KillsPerIncrease float64
}

// NewEnemyCurve creates the curve described by an enemy config.
func NewEnemyCurve(cfg EnemyConfig) EnemyCurve {
	return EnemyCurve{
		MinSize:          cfg.MinSize,
		Interval:         cfg.Interval,
		KillsPerIncrease: cfg.KillsPerIncrease,
	}
}

// MaxRadius returns the upper bound of the spawn radius range for a kill count.
func (c EnemyCurve) MaxRadius(kills int) float64 {
	steps := 1.0 + float64(kills)/c.KillsPerIncrease
	return c.MinSize + c.Interval*steps
}

// SampleRadius maps a uniform draw u in [0, 1) onto [MinSize, MaxRadius(kills)].
func (c EnemyCurve) SampleRadius(kills int, u float64) float64 {
	return c.MinSize + u*(c.MaxRadius(kills)-c.MinSize)
}

// Hitpoints returns the hitpoints of an enemy spawned with the given radius:
// ceil((radius - MinSize) / Interval + HitpointEpsilon), saturating to [1, 255].
func (c EnemyCurve) Hitpoints(radius float64) uint8 {
	hp := math.Ceil((radius-c.MinSize)/c.Interval + HitpointEpsilon)
	if hp < 1 {
		return 1
	}
	if hp > math.MaxUint8 {
		return math.MaxUint8
	}
	return uint8(hp)
}
