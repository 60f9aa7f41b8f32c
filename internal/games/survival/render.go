package survival

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-survivor/internal/core"
	"github.com/vovakirdan/tui-survivor/internal/games/survival/sim"
)

// Visual characters for rendering
const (
	PlayerChar = '█'
	EnemyChar  = '▓'
	BulletChar = '•'
	WeaponChar = '▒'
	WallHoriz  = '─'
	WallVert   = '│'
	WallCorner = '+'
)

// DeadBanner is shown while the player is out of hitpoints but still playing.
const DeadBanner = "YOU ARE SUPPOSED TO BE DEAD."

// hudRows is the number of rows reserved above the play area.
const hudRows = 1

// projection maps world units onto screen cells around the camera.
// The visible world area is the world size divided by the zoom, stretched
// independently on each axis to fill the play area.
type projection struct {
	cam        core.Vec2
	sx, sy     float64 // cells per world unit
	cols, rows int
	top        int
}

func newProjection(v sim.View, w, h int) projection {
	rows := max(h-hudRows, 1)
	zoom := v.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return projection{
		cam:  v.Camera,
		sx:   float64(w) * zoom / v.World.X,
		sy:   float64(rows) * zoom / v.World.Y,
		cols: w,
		rows: rows,
		top:  hudRows,
	}
}

// toCell returns the cell containing world point pt.
func (p projection) toCell(pt core.Vec2) (int, int) {
	x := math.Floor((pt.X-p.cam.X)*p.sx + float64(p.cols)/2)
	y := math.Floor((pt.Y-p.cam.Y)*p.sy + float64(p.rows)/2)
	return int(x), int(y) + p.top
}

// toWorld returns the world point at the center of a cell.
func (p projection) toWorld(col, row int) core.Vec2 {
	return core.V(
		(float64(col)+0.5-float64(p.cols)/2)/p.sx+p.cam.X,
		(float64(row-p.top)+0.5-float64(p.rows)/2)/p.sy+p.cam.Y,
	)
}

func (p projection) visible(col, row int) bool {
	return col >= 0 && col < p.cols && row >= p.top && row < p.top+p.rows
}

// Render draws the current session to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	v := g.session.View()
	proj := newProjection(v, dst.Width(), dst.Height())

	drawWalls(dst, proj, v.World)
	for _, e := range v.Enemies {
		drawEnemy(dst, proj, e)
	}
	for _, b := range v.Bullets {
		col, row := proj.toCell(b.Position)
		if proj.visible(col, row) {
			dst.SetColored(col, row, BulletChar, b.Color)
		}
	}
	drawCircle(dst, proj, v.Player.Position, v.Player.Radius, PlayerChar, g.playerColor(v))
	drawWeapon(dst, proj, v.Weapon, v.WeaponColor)

	g.drawHUD(dst, v)

	if !v.Alive && v.Phase == sim.PhaseRunning {
		dst.DrawTextCentered(hudRows+1, DeadBanner, core.ColorBrightRed)
	}
	if v.Prompt.Appear {
		drawPrompt(dst, v.Prompt)
	}

	switch {
	case v.Phase == sim.PhaseEnded:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Kills: %d  Level: %d", v.KillCount, v.Level))
	case g.paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// playerColor blinks after a hit and greys out once out of hitpoints.
func (g *Game) playerColor(v sim.View) core.Color {
	switch {
	case !v.Alive:
		return core.ColorGray
	case g.flash > 0 && g.flash%4 < 2:
		return core.ColorBrightRed
	default:
		return v.Player.Color
	}
}

// drawWalls outlines the world bounds. Cells whose span crosses a wall
// get the wall glyph.
func drawWalls(dst *core.Screen, proj projection, world core.Vec2) {
	halfW, halfH := 0.5/proj.sx, 0.5/proj.sy
	crosses := func(c, half, edge float64) bool {
		return c-half <= edge && edge < c+half
	}

	for row := proj.top; row < proj.top+proj.rows; row++ {
		for col := 0; col < proj.cols; col++ {
			c := proj.toWorld(col, row)
			inX := c.X+halfW >= 0 && c.X-halfW <= world.X
			inY := c.Y+halfH >= 0 && c.Y-halfH <= world.Y
			vert := inY && (crosses(c.X, halfW, 0) || crosses(c.X, halfW, world.X))
			horiz := inX && (crosses(c.Y, halfH, 0) || crosses(c.Y, halfH, world.Y))

			switch {
			case vert && horiz:
				dst.SetColored(col, row, WallCorner, core.ColorGray)
			case vert:
				dst.SetColored(col, row, WallVert, core.ColorGray)
			case horiz:
				dst.SetColored(col, row, WallHoriz, core.ColorGray)
			}
		}
	}
}

// drawCircle fills every cell whose center lies inside the circle. Circles
// smaller than a cell still get their center cell.
func drawCircle(dst *core.Screen, proj projection, center core.Vec2, radius float64, ch rune, color core.Color) {
	c0, r0 := proj.toCell(center.Sub(core.V(radius, radius)))
	c1, r1 := proj.toCell(center.Add(core.V(radius, radius)))

	drawn := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if !proj.visible(col, row) {
				continue
			}
			if core.PointInCircle(proj.toWorld(col, row), center, radius) {
				dst.SetColored(col, row, ch, color)
				drawn = true
			}
		}
	}
	if !drawn {
		if col, row := proj.toCell(center); proj.visible(col, row) {
			dst.SetColored(col, row, ch, color)
		}
	}
}

// drawEnemy draws an enemy with its remaining hitpoints at the center.
func drawEnemy(dst *core.Screen, proj projection, e sim.EnemyView) {
	drawCircle(dst, proj, e.Ball.Position, e.Ball.Radius, EnemyChar, e.Ball.Color)

	col, row := proj.toCell(e.Ball.Position)
	if !proj.visible(col, row) {
		return
	}
	label := '+'
	if e.Hitpoint < 10 {
		label = rune('0' + e.Hitpoint)
	}
	dst.SetColored(col, row, label, core.ColorBrightWhite)
}

// drawWeapon fills the cells covered by the weapon rectangle.
func drawWeapon(dst *core.Screen, proj projection, rect core.OrientedRect, color core.Color) {
	corners := rect.Corners()
	minC, minR := math.MaxInt, math.MaxInt
	maxC, maxR := math.MinInt, math.MinInt
	for _, c := range corners {
		col, row := proj.toCell(c)
		minC, maxC = min(minC, col), max(maxC, col)
		minR, maxR = min(minR, row), max(maxR, row)
	}

	drawn := false
	for row := minR; row <= maxR; row++ {
		for col := minC; col <= maxC; col++ {
			if proj.visible(col, row) && rect.ContainsPoint(proj.toWorld(col, row)) {
				dst.SetColored(col, row, WeaponChar, color)
				drawn = true
			}
		}
	}
	if !drawn {
		if col, row := proj.toCell(rect.Anchor()); proj.visible(col, row) {
			dst.SetColored(col, row, WeaponChar, color)
		}
	}
}

// drawHUD renders the status line.
func (g *Game) drawHUD(dst *core.Screen, v sim.View) {
	weapon := fmt.Sprintf("Gun L%d", v.GunLevel)
	if v.Equipped == sim.WeaponSword {
		weapon = fmt.Sprintf("Sword L%d", v.SwordLevel)
	}
	hud := fmt.Sprintf(" HP %d  Kills %d  Lv %d  [%s]", v.Hitpoint, v.KillCount, v.Level, weapon)

	color := core.ColorWhite
	if !v.Alive {
		color = core.ColorBrightRed
	}
	dst.DrawTextColored(0, 0, hud, color)
}

// drawPrompt shows the two level-up choices near the top of the play area.
func drawPrompt(dst *core.Screen, p sim.Prompt) {
	title := "LEVEL UP"
	boxW := max(len(title), len(p.Text[0]), len(p.Text[1])) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := hudRows + 2

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, 5), core.ColorYellow)
	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY, title, core.ColorBrightYellow)
	dst.DrawTextColored(boxX+2, boxY+1, p.Text[0], core.ColorGold)
	dst.DrawTextColored(boxX+2, boxY+3, p.Text[1], core.ColorSilver)
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)
	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawTextColored(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorWhite)
}
