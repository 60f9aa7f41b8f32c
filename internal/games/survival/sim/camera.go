package sim

import (
	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
)

// Camera trails a point slightly ahead of the player's aim.
type Camera struct {
	Target core.Vec2
	Zoom   float64

	cfg config.CameraConfig
}

// NewCamera creates a camera already centered on at.
func NewCamera(cfg config.CameraConfig, at core.Vec2) Camera {
	return Camera{Target: at, Zoom: cfg.Zoom, cfg: cfg}
}

// follow eases the target toward the lookahead point, offset by the shake.
func (c *Camera) follow(player Ball, shake int) {
	look := player.Position.Add(player.Direction.Scale(c.cfg.Lookahead))
	t := c.cfg.Lookahead / 100
	s := float64(shake)
	c.Target = core.V(
		core.Lerp(c.Target.X, look.X+s, t),
		core.Lerp(c.Target.Y, look.Y+s, t),
	)
}
