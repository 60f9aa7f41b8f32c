package survival

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-survivor/internal/core"
	"github.com/vovakirdan/tui-survivor/internal/games/survival/sim"
	"github.com/vovakirdan/tui-survivor/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345})
	return g
}

func frameOf(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatal("survival should register itself")
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.Title() != "Orbit Survival" {
		t.Errorf("Title = %q", g.Title())
	}
}

func TestToSimInput(t *testing.T) {
	in := toSimInput(frameOf(core.ActionMoveLeft, core.ActionAimUp, core.ActionSwing, core.ActionChooseSecond))
	want := sim.Input{
		Move:        sim.Directions{Left: true},
		Aim:         sim.Directions{Up: true},
		Swing:       true,
		ChooseSword: true,
	}
	if in != want {
		t.Errorf("toSimInput = %+v, expected %+v", in, want)
	}
}

func TestStepMovesPlayer(t *testing.T) {
	g := newTestGame(t)
	start := g.View().Player.Position

	for i := 0; i < 30; i++ {
		g.Step(frameOf(core.ActionMoveRight))
	}

	moved := g.View().Player.Position.Sub(start)
	if moved.X < 99 || moved.X > 101 {
		t.Errorf("moved %v in half a second, expected about 100 right", moved)
	}
	if g.Elapsed().Seconds() < 0.49 || g.Elapsed().Seconds() > 0.51 {
		t.Errorf("Elapsed = %v, expected 0.5s", g.Elapsed())
	}
}

func TestPauseFreezesSession(t *testing.T) {
	g := newTestGame(t)

	g.Step(frameOf(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("pause should toggle on")
	}
	before := g.View().Player.Position
	g.Step(frameOf(core.ActionMoveRight))
	if g.View().Player.Position != before {
		t.Error("paused game should not move")
	}

	g.Step(frameOf(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestGameOverState(t *testing.T) {
	g := newTestGame(t)
	p := g.session.Player
	p.Damage.Hitpoint = 0
	g.session.Enemies = []sim.Enemy{{
		ID:     1,
		Ball:   sim.Ball{Position: p.Ball.Position, Speed: 125, Radius: 20},
		Damage: sim.DamageSystem{Hitpoint: 3, Cooldown: sim.NewCooldown(2)},
	}}

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Fatal("contact at 0 hitpoints should end the game")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("ended game should render the game over box")
	}
}

func TestRenderHUDAndPlayer(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	for _, want := range []string{"HP 5", "Kills 0", "Lv 0", "[Gun L1]"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q should contain %q", hud, want)
		}
	}
	if got := screen.Get(40, 12); got != PlayerChar {
		t.Errorf("screen center = %q, expected the player", got)
	}
	if strings.Contains(screen.String(), DeadBanner) {
		t.Error("living player should not get the dead banner")
	}
}

func TestRenderDeadBannerAndPrompt(t *testing.T) {
	g := newTestGame(t)
	p := g.session.Player
	p.Damage.Hitpoint = 0
	g.session.Prompt.Open(p.Gun, p.Sword)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, DeadBanner) {
		t.Error("dead-but-rendering player should get the banner")
	}
	for _, want := range []string{"[1] Gun: upgrade to level 2", "[2] Sword: get new weapon"} {
		if !strings.Contains(out, want) {
			t.Errorf("prompt should show %q", want)
		}
	}
}

func TestRenderWalls(t *testing.T) {
	g := newTestGame(t)
	// Park the camera on the top-left corner so both walls are in view.
	g.session.Camera.Target = core.V(0, 0)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []rune{WallHoriz, WallVert} {
		if !strings.ContainsRune(out, want) {
			t.Errorf("walls near the corner should include %q", want)
		}
	}
}

func TestLoadConfigAppliesPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survival.yaml")
	if err := os.WriteFile(path, []byte("player:\n  speed: 150\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	SetDifficultyPreset("hard")
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	})

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Player.Speed != 150 || cfg.Player.Hitpoints != 3 {
		t.Errorf("speed=%v hitpoints=%d, expected 150 and 3", cfg.Player.Speed, cfg.Player.Hitpoints)
	}

	g := newTestGame(t)
	if g.View().Hitpoint != 3 {
		t.Errorf("Reset should use the loaded config, hitpoints=%d", g.View().Hitpoint)
	}
}
