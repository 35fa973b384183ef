package jumper

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tilt-jumper/internal/core"
)

// Visual characters for rendering
const (
	PlatformChar = '▀'
	GroundChar   = '▓'
	CoinChar     = 'o'
	BodyChar     = '●'
)

// viewport maps world coordinates of the camera window onto screen cells.
// Row 0 is reserved for the HUD.
type viewport struct {
	cols, rows int
	worldW     float64
	worldH     float64
	top        float64 // World Y at the top edge of the view
}

func (g *Game) viewport(dst *core.Screen) viewport {
	return viewport{
		cols:   dst.Width(),
		rows:   max(dst.Height()-1, 1),
		worldW: g.cfg.World.Width,
		worldH: g.cfg.World.Height,
		top:    g.cameraY + g.cfg.World.Height/2,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x / v.worldW * float64(v.cols)))
}

func (v viewport) row(y float64) int {
	return 1 + int(math.Floor((v.top-y)/v.worldH*float64(v.rows)))
}

// span returns the first and last column covered by [x, right), at least one cell wide.
func (v viewport) span(x, right float64) (int, int) {
	from, to := v.col(x), v.col(right)-1
	if to < from {
		to = from
	}
	return from, to
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	v := g.viewport(dst)

	for _, p := range g.world.Platforms() {
		ch, color := PlatformChar, core.ColorGreen
		if p.Ground {
			ch, color = GroundChar, core.ColorGray
		}
		y := v.row(p.Top())
		from, to := v.span(p.X, p.Right())
		for x := from; x <= to; x++ {
			dst.SetColored(x, y, ch, color)
		}
	}

	for _, c := range g.world.Coins() {
		if c.Pending() {
			dst.SetColored(v.col(c.X), v.row(c.Y), CoinChar, core.ColorBrightYellow)
		}
	}

	body := g.body.Rect()
	bodyColor := core.ColorBrightCyan
	if g.phase == PhaseGameOver {
		bodyColor = core.ColorRed
	}
	from, to := v.span(body.X, body.Right())
	by := v.row(body.CenterY())
	for x := from; x <= to; x++ {
		dst.SetColored(x, by, BodyChar, bodyColor)
	}

	g.drawHUD(dst)

	switch g.phase {
	case PhaseStart:
		g.drawCenteredMessage(dst, "TILT JUMPER",
			fmt.Sprintf("Collect %d coins  |  Tap to start", g.cfg.Goal.TargetCoins))
	case PhaseWin:
		g.drawCenteredMessage(dst, "YOU WIN!",
			fmt.Sprintf("Time: %.1f s  |  Tap to restart", g.elapsed))
	case PhaseGameOver:
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Coins: %d/%d  |  Tap to restart", g.coins, g.cfg.Goal.TargetCoins))
	}
}

// drawHUD writes counters and a steering gauge on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	ground := g.cfg.Platforms.GroundY + g.cfg.Platforms.GroundHeight
	text := fmt.Sprintf(" Coins: %d/%d  Height: %.0f  Time: %.1fs ",
		g.coins, g.cfg.Goal.TargetCoins, g.bestY-ground, g.elapsed)
	dst.DrawTextColored(0, 0, text, core.ColorWhite)

	const gauge = 11
	x0 := dst.Width() - gauge - 1
	if x0 <= len(text) {
		return
	}
	for i := 0; i < gauge; i++ {
		dst.SetColored(x0+i, 0, '─', core.ColorGray)
	}
	pos := int(math.Round((g.steering.Value() + 1) / 2 * float64(gauge-1)))
	dst.SetColored(x0+pos, 0, '┃', core.ColorYellow)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewCellRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	titleX := box.X + (boxW-len([]rune(title)))/2
	dst.DrawTextColored(titleX, box.Y+1, title, core.ColorBrightYellow)

	subtitleX := box.X + (boxW-len([]rune(subtitle)))/2
	dst.DrawTextColored(subtitleX, box.Y+3, subtitle, core.ColorWhite)
}
