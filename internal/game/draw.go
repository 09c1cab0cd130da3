package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/curve-morph/internal/config"
)

const focalLength = 900.0

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawParticles(screen)
	g.drawStatus(screen)
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	// Slowly breathing dark tint.
	r := uint8(8 + 6*math.Sin(g.colorPhase*2))
	b := uint8(14 + 8*math.Sin(g.colorPhase*3+1))
	screen.Fill(color.RGBA{R: r, G: 10, B: b, A: 255})
}

func (g *Game) drawParticles(screen *ebiten.Image) {
	positions := g.eng.Positions()
	seeds := g.eng.Seeds()

	spread := g.sig.Spread.Current
	scale := g.sig.Scale.Current
	rot := g.sig.Rotation.Current + g.spin
	sinR, cosR := math.Sincos(rot)

	centerX := float64(config.WindowWidth) / 2
	centerY := float64(config.WindowHeight) / 2
	baseHue := float64(g.eng.Current())*36 + g.colorPhase*360

	for i := 0; i < g.eng.Count(); i++ {
		x := positions[3*i]
		y := positions[3*i+1]
		z := positions[3*i+2]

		// Spread pushes each particle outward by its own fixed amount.
		d := 1 + (spread-1)*seeds[i]
		x, y, z = x*d, y*d, z*d

		// Rotate the field around the vertical axis.
		xr := x*cosR + z*sinR
		zr := -x*sinR + z*cosR

		persp := focalLength / (focalLength - zr)
		if persp <= 0 || persp > 8 {
			continue // behind or too close to the camera plane
		}
		sx := int(centerX + xr*scale*persp)
		sy := int(centerY - y*scale*persp)
		if sx < 0 || sx >= config.WindowWidth || sy < 0 || sy >= config.WindowHeight {
			continue
		}

		hue := baseHue + seeds[i]*40
		depth := clamp01(0.55 + zr/600)
		r, gr, b := hsvToRgb(hue, 0.7, 0.35+0.65*depth)
		screen.Set(sx, sy, color.RGBA{R: r, G: gr, B: b, A: 255})
	}
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	drive := "mouse"
	switch {
	case g.audio != nil:
		drive = "audio"
	case g.stopTrace != nil:
		drive = "trace"
	}
	auto := "off"
	if g.eng.AutoSwitch() {
		auto = "on"
	}
	line := fmt.Sprintf("%s | auto %s | %d particles | drive %s | settled %3.0f%%",
		g.eng.Current(), auto, g.eng.Count(), drive, g.eng.Progress(1.0)*100)
	if g.status != "" {
		line += " | " + g.status
	}
	if g.lastErr != nil {
		line += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, line, 12, 12)
	ebitenutil.DebugPrintAt(screen,
		"1-9,0 curve  N next  A auto  [ ] count  , . sensitivity  G trace  M music  S stop  Q quit",
		12, config.WindowHeight-24)
}
