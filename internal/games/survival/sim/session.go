package sim

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
)

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseEnded
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PhaseEnded {
		return "ended"
	}
	return "running"
}

// EventKind classifies what happened during a step.
type EventKind int

const (
	EventEnemySpawned EventKind = iota
	EventEnemyKilled
	EventPlayerHit
	EventLevelUp
	EventSupposedToBeDead
	EventSessionEnded
)

// Event is one notable thing a step did.
type Event struct {
	Kind     EventKind
	Enemy    EnemyID
	Weapon   WeaponKind // EventLevelUp only
	Level    int
	Kills    int
	Hitpoint uint8
}

// StepResult reports the outcome of one frame.
type StepResult struct {
	Shake  int
	Events []Event
}

// Has reports whether an event of kind k occurred.
func (r StepResult) Has(k EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == k {
			return true
		}
	}
	return false
}

// Session owns all mutable game state and advances it one frame at a time.
// It is not safe for concurrent use.
type Session struct {
	Player  *Player
	Enemies []Enemy
	Spawner *Spawner
	Prompt  Prompt
	Camera  Camera
	Shake   int
	Phase   Phase
	Elapsed float64 // seconds simulated

	cfg    config.SurvivalConfig
	rng    Random
	logger *log.Logger
}

// NewSession creates a session with the player in the middle of the world.
// A nil logger discards everything.
func NewSession(cfg config.SurvivalConfig, rng Random, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := NewPlayer(cfg)
	return &Session{
		Player:  player,
		Spawner: NewSpawner(cfg),
		Camera:  NewCamera(cfg.Camera, player.Ball.Position),
		cfg:     cfg,
		rng:     rng,
		logger:  logger,
	}
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.SurvivalConfig {
	return s.cfg
}

// Ended reports whether the session reached its terminal state.
func (s *Session) Ended() bool {
	return s.Phase == PhaseEnded
}

// Step advances the simulation by dt seconds. Once the session has ended it
// does nothing.
func (s *Session) Step(in Input, dt float64) StepResult {
	var res StepResult
	if s.Ended() {
		return res
	}
	s.Elapsed += dt
	p := s.Player

	if s.Prompt.Appear {
		switch {
		case in.ChooseGun:
			s.applyChoice(WeaponGun, &res)
		case in.ChooseSword:
			s.applyChoice(WeaponSword, &res)
		}
	}

	if in.Switch {
		p.SwitchWeapon()
	}
	if in.Swing {
		p.Sword.Swing()
	}

	if in.Aim.Any() {
		p.updateAim(in.Aim, s.cfg.Timing.AimSmoothing)
	}

	s.updateWeapons(in, dt)
	s.updateEnemies(dt, &res)
	if !s.updatePlayer(in, dt, &res) {
		return res
	}

	s.Prompt.Check(p.KillCount, s.cfg.Progression.KillsPerLevel, p.Gun, p.Sword)
	s.Camera.follow(p.Ball, s.Shake)

	res.Shake = s.Shake
	return res
}

func (s *Session) updateWeapons(in Input, dt float64) {
	p := s.Player
	f := weaponFrame{
		dt:        dt,
		decayRate: s.cfg.Timing.DecayRate,
		smoothing: s.cfg.Timing.RotationSmoothing,
		player:    p.Ball.Position,
		aimAngle:  p.Ball.Direction.Angle(),
		firing:    in.Aim.Any(),
		boosted:   p.SupposedToBeDead(),
		world:     s.cfg.World,
	}

	f.equipped = p.Equipped == WeaponGun
	p.Gun.update(f)

	f.equipped = p.Equipped == WeaponSword
	p.Sword.update(f)
}

// updateEnemies spawns, resolves weapon hits, moves and culls enemies.
// Bullets are flagged in place; the gun drops them on its next update.
func (s *Session) updateEnemies(dt float64, res *StepResult) {
	p := s.Player
	decay := s.cfg.Timing.DecayRate

	if e, ok := s.Spawner.Update(dt, decay, p.KillCount, p.SupposedToBeDead(), s.rng); ok {
		s.Enemies = append(s.Enemies, e)
		res.Events = append(res.Events, Event{Kind: EventEnemySpawned, Enemy: e.ID, Hitpoint: e.Damage.Hitpoint})
		s.logger.Debug("enemy spawned", "id", e.ID, "radius", e.Ball.Radius, "hp", e.Damage.Hitpoint)
	}

	swordLive := p.Sword.CanHit(p.Equipped == WeaponSword)
	survivors := make([]Enemy, 0, len(s.Enemies))
	for _, e := range s.Enemies {
		e.Damage.Cooldown.Tick(dt, decay)

		if e.Damage.Cooldown.Ready() {
			switch {
			case p.Gun.markHit(e.Ball.Position, e.Ball.Radius):
				e.Damage.Hit(1)
				e.Damage.Cooldown.Reset()
				e.shrink(s.cfg.Enemy.HitShrink)
			case swordLive && p.Sword.Rect.IntersectsCircle(e.Ball.Position, e.Ball.Radius):
				e.Damage.Hit(p.Sword.HitDamage())
				e.Damage.Cooldown.Reset()
				e.shrink(s.cfg.Sword.ShrinkPerDamage * p.Sword.Damage)
			}
		}

		e.seek(p.Ball.Position, dt)

		if e.Damage.Dead() {
			p.KillCount++
			s.Prompt.HasChosen = false
			res.Events = append(res.Events, Event{Kind: EventEnemyKilled, Enemy: e.ID, Kills: p.KillCount})
			s.logger.Debug("enemy killed", "id", e.ID, "kills", p.KillCount)
			continue
		}
		survivors = append(survivors, e)
	}
	s.Enemies = survivors
}

// updatePlayer moves the player and applies enemy contact. It returns false
// when the contact ended the session.
func (s *Session) updatePlayer(in Input, dt float64, res *StepResult) bool {
	p := s.Player
	wasDead := p.SupposedToBeDead()

	var move core.Vec2
	if !p.movementLocked() {
		move = in.Move.Vector().Normalized().Scale(p.Ball.Speed * dt * p.stunFactor())
	}

	p.Damage.Cooldown.Tick(dt, s.cfg.Timing.DecayRate)
	if p.Damage.Cooldown.Ready() {
		for _, e := range s.Enemies {
			if !core.CircleIntersectsCircle(p.Ball.Position, p.Ball.Radius, e.Ball.Position, e.Ball.Radius) {
				continue
			}
			if !p.takeHit(e) {
				s.end(res)
				return false
			}
			res.Events = append(res.Events, Event{Kind: EventPlayerHit, Enemy: e.ID, Hitpoint: p.Damage.Hitpoint})
			s.logger.Info("player hit", "by", e.ID, "hp", p.Damage.Hitpoint)
			break
		}
	}

	if !wasDead && p.SupposedToBeDead() {
		res.Events = append(res.Events, Event{Kind: EventSupposedToBeDead, Kills: p.KillCount})
		s.logger.Warn("player is supposed to be dead", "kills", p.KillCount, "level", p.Level)
	}

	push, shakeRange := p.knockback(dt, s.cfg.Timing.ReferenceFPS)
	s.Shake = randIntRange(s.rng, shakeRange)

	p.Ball.Position = p.Ball.Position.Add(move).Add(push)
	return true
}

// applyChoice upgrades the chosen weapon and trades it for faster spawns.
func (s *Session) applyChoice(kind WeaponKind, res *StepResult) {
	p := s.Player
	level := 0
	switch kind {
	case WeaponGun:
		p.Gun.AddLevel()
		level = p.Gun.Level
	case WeaponSword:
		p.Sword.AddLevel()
		level = p.Sword.Level
	}
	p.Damage.Heal(1)
	p.Level++
	s.Spawner.Accelerate(p.Level)
	s.Prompt.Close()

	res.Events = append(res.Events, Event{Kind: EventLevelUp, Weapon: kind, Level: level, Kills: p.KillCount})
	s.logger.Info("level up", "weapon", kind, "weapon_level", level, "player_level", p.Level,
		"spawn_cooldown", s.Spawner.Cooldown.Cooldown)
}

func (s *Session) end(res *StepResult) {
	s.Phase = PhaseEnded
	res.Events = append(res.Events, Event{Kind: EventSessionEnded, Kills: s.Player.KillCount})
	s.logger.Warn("session ended", "kills", s.Player.KillCount, "level", s.Player.Level, "elapsed", s.Elapsed)
}
