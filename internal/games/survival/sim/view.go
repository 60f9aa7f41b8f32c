package sim

import "github.com/vovakirdan/tui-survivor/internal/core"

// View is a read-only snapshot of everything a renderer draws for one frame.
type View struct {
	World core.Vec2

	Player      Ball
	Hitpoint    uint8
	KillCount   int
	Level       int
	Alive       bool
	Equipped    WeaponKind
	GunLevel    int
	SwordLevel  int
	Weapon      core.OrientedRect
	WeaponColor core.Color

	Bullets []Ball
	Enemies []EnemyView

	Prompt Prompt
	Camera core.Vec2
	Zoom   float64
	Shake  int
	Phase  Phase
}

// EnemyView is the drawable part of an enemy.
type EnemyView struct {
	ID       EnemyID
	Ball     Ball
	Hitpoint uint8
}

// View copies the current state. Mutating the result never affects the session.
func (s *Session) View() View {
	p := s.Player
	weapon, color := p.EquippedRect()

	bullets := make([]Ball, len(p.Gun.Bullets))
	for i, b := range p.Gun.Bullets {
		bullets[i] = b.Ball
	}
	enemies := make([]EnemyView, len(s.Enemies))
	for i, e := range s.Enemies {
		enemies[i] = EnemyView{ID: e.ID, Ball: e.Ball, Hitpoint: e.Damage.Hitpoint}
	}

	return View{
		World:       core.V(s.cfg.World.Width, s.cfg.World.Height),
		Player:      p.Ball,
		Hitpoint:    p.Damage.Hitpoint,
		KillCount:   p.KillCount,
		Level:       p.Level,
		Alive:       !p.SupposedToBeDead(),
		Equipped:    p.Equipped,
		GunLevel:    p.Gun.Level,
		SwordLevel:  p.Sword.Level,
		Weapon:      weapon,
		WeaponColor: color,
		Bullets:     bullets,
		Enemies:     enemies,
		Prompt:      s.Prompt,
		Camera:      s.Camera.Target,
		Zoom:        s.Camera.Zoom,
		Shake:       s.Shake,
		Phase:       s.Phase,
	}
}
