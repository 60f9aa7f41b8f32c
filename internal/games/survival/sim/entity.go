// Package sim is the survival simulation core: a player circle with a gun and a
// sword fighting seeking enemy circles, stepped once per rendered frame.
//
// Everything here is pure game logic. The session owns all mutable state and is
// advanced by Session.Step; presentation reads it through Session.View.
package sim

import (
	"math"

	"github.com/vovakirdan/tui-survivor/internal/core"
)

// Ball is a moving circle: the player, enemies and bullets are all balls.
// Direction doubles as the aim vector for the player.
type Ball struct {
	Position  core.Vec2
	Direction core.Vec2
	Speed     float64
	Radius    float64
	Color     core.Color
}

// Cooldown is a countdown gating a repeatable action.
// Value stays within [0, Cooldown].
type Cooldown struct {
	Cooldown float64 // Reset value
	Value    float64 // Remaining, ready at 0
}

// NewCooldown returns a ready cooldown that resets to max.
func NewCooldown(max float64) Cooldown {
	return Cooldown{Cooldown: max}
}

// Tick decays the cooldown by rate*dt, flooring at 0.
func (c *Cooldown) Tick(dt, rate float64) {
	c.Value = c.clamp(c.Value - rate*dt)
}

// Ready reports whether the gated action may fire.
func (c Cooldown) Ready() bool {
	return c.Value <= 0
}

// Reset restarts the countdown from its max.
func (c *Cooldown) Reset() {
	c.Value = c.clamp(c.Cooldown)
}

// ResetTo restarts the countdown from v, clamped to the valid range.
func (c *Cooldown) ResetTo(v float64) {
	c.Value = c.clamp(v)
}

func (c Cooldown) clamp(v float64) float64 {
	return core.ClampF(v, 0, math.Max(c.Cooldown, 0))
}

// DamageSystem tracks hitpoints and the invulnerability window after a hit.
type DamageSystem struct {
	Hitpoint uint8
	Cooldown Cooldown
}

// Hit removes n hitpoints, saturating at 0.
func (d *DamageSystem) Hit(n uint8) {
	if n >= d.Hitpoint {
		d.Hitpoint = 0
		return
	}
	d.Hitpoint -= n
}

// Heal adds n hitpoints, saturating at 255.
func (d *DamageSystem) Heal(n uint8) {
	if d.Hitpoint > math.MaxUint8-n {
		d.Hitpoint = math.MaxUint8
		return
	}
	d.Hitpoint += n
}

// Dead reports whether no hitpoints remain.
func (d DamageSystem) Dead() bool {
	return d.Hitpoint == 0
}

// Directions is the held state of four directional keys.
type Directions struct {
	Up, Down, Left, Right bool
}

// Any reports whether any direction is held.
func (d Directions) Any() bool {
	return d.Up || d.Down || d.Left || d.Right
}

// Vector returns the raw intent vector, not normalized.
func (d Directions) Vector() core.Vec2 {
	var v core.Vec2
	if d.Up {
		v.Y--
	}
	if d.Down {
		v.Y++
	}
	if d.Left {
		v.X--
	}
	if d.Right {
		v.X++
	}
	return v
}

// Input is everything the simulation reads from the player for one frame.
// Move and Aim are held states; the rest are edge-triggered.
type Input struct {
	Move        Directions
	Aim         Directions
	Swing       bool
	Switch      bool
	ChooseGun   bool
	ChooseSword bool
}

// Random is the session's source of uniform draws in [0, 1).
// *rand.Rand satisfies it.
type Random interface {
	Float64() float64
}

// randIntRange returns a uniform integer in [-r, r].
func randIntRange(rng Random, r int) int {
	if r <= 0 {
		return 0
	}
	n := int(math.Floor(rng.Float64() * float64(2*r+1)))
	return min(n, 2*r) - r
}
