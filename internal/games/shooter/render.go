package shooter

import (
	"fmt"
	"math"
	"strings"

	"github.com/woodriveer/duduInSpace-sub000/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar     = '▲'
	ShotChar       = '|'
	TurretShotChar = '¦'
	TurretChar     = 'z'
	BossChar       = '█'
	HazardChar     = '*'
	ParticleChar   = '·'
)

// hudRows is the number of rows reserved for the HUD.
const hudRows = 1

// viewport maps y-up world coordinates to terminal cells below the HUD.
type viewport struct {
	sx, sy float64
	worldH float64
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	return viewport{
		sx:     float64(dst.Width()) / worldW,
		sy:     float64(dst.Height()-hudRows) / worldH,
		worldH: worldH,
	}
}

func (v viewport) point(x, y float64) (int, int) {
	return int(x * v.sx), hudRows + int((v.worldH-y)*v.sy)
}

func (v viewport) rect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X * v.sx))
	x1 := int(math.Ceil(b.Right() * v.sx))
	y0 := hudRows + int(math.Floor((v.worldH-b.Top())*v.sy))
	y1 := hudRows + int(math.Ceil((v.worldH-b.Y)*v.sy))
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

// enemyColor returns the color of an enemy type.
func enemyColor(t EnemyType) core.Color {
	switch t {
	case EnemyAsteroid:
		return core.ColorGray
	case EnemyUFO:
		return core.ColorBrightGreen
	case EnemySpaceShip:
		return core.ColorBrightMagenta
	default:
		return core.ColorWhite
	}
}

// powerUpColor returns the color of a power-up kind.
func powerUpColor(k PowerUpKind) core.Color {
	switch k {
	case PowerRepair:
		return core.ColorBrightGreen
	case PowerRapidFire:
		return core.ColorBrightYellow
	case PowerPierce:
		return core.ColorBrightBlue
	case PowerZBot:
		return core.ColorBrightCyan
	default:
		return core.ColorWhite
	}
}

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		dst.DrawTextCentered(dst.Height()/2-1, "Configuration error")
		dst.DrawTextCentered(dst.Height()/2+1, truncate(g.err.Error(), dst.Width()-2))
		return
	}

	if g.screenTooSmall || g.world == nil {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	w := g.world
	worldW, worldH := w.Size()
	vp := newViewport(dst, worldW, worldH)

	g.renderHUD(dst)

	for _, pu := range w.PowerUps() {
		if pu.Visible {
			x, y := vp.point(pu.X, pu.Y)
			dst.SetColored(x, y, pu.Kind.Glyph(), powerUpColor(pu.Kind))
		}
	}

	for _, e := range w.Enemies() {
		dst.DrawRectColored(vp.rect(e.Bounds), e.Type.Glyph(), enemyColor(e.Type))
	}

	if b := w.Boss(); b != nil {
		dst.DrawRectColored(vp.rect(b.Bounds), BossChar, core.ColorRed)
		for _, h := range b.Hazards() {
			dst.DrawRectColored(vp.rect(h.Bounds), HazardChar, core.ColorOrange)
		}
		renderExplosions(dst, vp, b.Explosions())
	}

	for _, p := range w.Projectiles() {
		x, y := vp.point(p.X, p.Y)
		dst.SetColored(x, y, ShotChar, core.ColorBrightYellow)
	}
	for _, p := range w.TurretShots() {
		x, y := vp.point(p.X, p.Y)
		dst.SetColored(x, y, TurretShotChar, core.ColorBrightCyan)
	}

	renderExplosions(dst, vp, w.Explosions())

	if t := w.Turret(); t.Active() {
		x, y := vp.point(t.X, t.Y)
		dst.SetColored(x, y, TurretChar, core.ColorBrightCyan)
	}

	pl := w.Player()
	dst.DrawRectColored(vp.rect(pl.Bounds), PlayerChar, core.ColorBrightCyan)

	for _, d := range w.DamageNumbers() {
		x, y := vp.point(d.X, d.Y)
		dst.DrawTextColored(x, y, fmt.Sprint(d.Value), d.Color)
	}

	g.renderOverlay(dst)
}

func renderExplosions(dst *core.Screen, vp viewport, list []*Explosion) {
	for _, e := range list {
		for _, pt := range e.Particles {
			if pt.Life > 0 {
				x, y := vp.point(pt.X, pt.Y)
				dst.SetColored(x, y, ParticleChar, core.ColorOrange)
			}
		}
	}
}

// renderHUD draws score, health, level and boss health on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	w := g.world
	stats := w.Stats()
	pl := w.Player()

	left := fmt.Sprintf("Score: %d  HP: %d/%d", stats.Score, pl.Health, pl.MaxHealth)
	dst.DrawText(1, 0, left)

	var center string
	if b := w.Boss(); b != nil {
		center = fmt.Sprintf("BOSS %d/%d", b.Health, b.MaxHealth)
		dst.DrawTextColored((dst.Width()-len(center))/2, 0, center, core.ColorBrightRed)
	} else {
		prog := w.Progression()
		center = fmt.Sprintf("Kills %d/%d", prog.Kills(), prog.Threshold())
		dst.DrawTextCentered(0, center)
	}

	right := fmt.Sprintf("Lv %d  XP %d/%d", w.Level().Number, stats.CurrentXP, stats.XPToNextLevel)
	dst.DrawText(dst.Width()-len(right)-1, 0, right)

	if fx := effectsString(w.Effects(), w.Turret()); fx != "" {
		dst.DrawTextColored(1, dst.Height()-1, fx, core.ColorBrightYellow)
	}
}

// effectsString lists active timed power-ups.
func effectsString(fx Effects, t *Turret) string {
	var parts []string
	if fx.RapidLeft > 0 {
		parts = append(parts, fmt.Sprintf("RAPID %.0fs", math.Ceil(fx.RapidLeft)))
	}
	if fx.PierceLeft > 0 {
		parts = append(parts, fmt.Sprintf("PIERCE %.0fs", math.Ceil(fx.PierceLeft)))
	}
	if t.Active() {
		parts = append(parts, fmt.Sprintf("ZBOT %.0fs", math.Ceil(t.TTL)))
	}
	return strings.Join(parts, " ")
}

func (g *Game) renderOverlay(dst *core.Screen) {
	stats := g.world.Stats()
	switch g.state {
	case StatePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  R restart", stats.Score)
		if g.mode == ModeCampaign {
			subtitle += "  |  Enter retry level"
		}
		drawCenteredBox(dst, "GAME OVER", subtitle)
	case StateWon:
		drawCenteredBox(dst, "YOU SAVED THE GALAXY!", fmt.Sprintf("Final Score: %d  |  R restart", stats.Score))
	case StatePlaying:
		if g.world.Progression().IsLevelCompleting() {
			drawCenteredBox(dst, fmt.Sprintf("LEVEL %d CLEAR", g.world.Level().Number), fmt.Sprintf("Coins: %d", stats.Coins))
		}
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Min(core.Max(len(title), len(subtitle))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
