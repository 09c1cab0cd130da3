// Package game is the ebiten shell around the particle engine: it runs the
// per-frame tick, routes key/mouse input to engine setters, feeds the gesture
// mailbox from whichever source is active, and draws the point cloud.
package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/curve-morph/internal/config"
	"github.com/iburimskiy/curve-morph/internal/curves"
	"github.com/iburimskiy/curve-morph/internal/engine"
	"github.com/iburimskiy/curve-morph/internal/gesture"
)

const particleCountStep = 5000

type Game struct {
	eng    *engine.Engine
	sig    *engine.Signals
	mapper *gesture.Mapper
	box    *gesture.Mailbox

	hand      mouseHand // synthetic fallback source
	stopTrace func()    // non-nil while a recorded trace is playing
	audio     *audioDrive

	// viz
	spin       float64
	colorPhase float64

	// input edge detection
	prevKey map[ebiten.Key]bool

	status  string
	lastErr error
}

func NewGame() (*Game, error) {
	eng, err := engine.New(config.DefaultParticleCount, time.Now())
	if err != nil {
		return nil, err
	}
	return &Game{
		eng:     eng,
		sig:     engine.NewSignals(),
		mapper:  gesture.NewMapper(),
		box:     &gesture.Mailbox{},
		prevKey: map[ebiten.Key]bool{},
	}, nil
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	now := time.Now()

	// Direct curve selection on digit keys; 1..9 then 0 for the tenth.
	for i := 0; i < curves.NumCurves; i++ {
		key := ebiten.Key0 + ebiten.Key((i+1)%10)
		if justPressed(key) {
			g.selectCurve(i, now)
		}
	}
	if justPressed(ebiten.KeyN) {
		id := g.eng.SelectNextCurve(now)
		g.status = "-> " + id.String()
	}
	if justPressed(ebiten.KeyA) {
		g.eng.SetAutoSwitch(!g.eng.AutoSwitch())
	}
	if justPressed(ebiten.KeyBracketLeft) {
		g.changeParticleCount(-particleCountStep)
	}
	if justPressed(ebiten.KeyBracketRight) {
		g.changeParticleCount(particleCountStep)
	}
	if justPressed(ebiten.KeyComma) {
		g.changeSensitivity(-1)
	}
	if justPressed(ebiten.KeyPeriod) {
		g.changeSensitivity(1)
	}
	if justPressed(ebiten.KeyG) {
		if err := g.openTraceDialog(); err != nil {
			g.lastErr = err
		}
	}
	if justPressed(ebiten.KeyM) {
		if err := g.openAudioDialog(); err != nil {
			g.lastErr = err
		}
	}
	if justPressed(ebiten.KeyS) {
		g.stopDrives()
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.eng.Tick(now)

	// Drive priority: audio, then recorded trace, then the synthetic mouse
	// hand. The mailbox always holds the latest frame from whoever produces.
	switch {
	case g.audio != nil:
		g.audio.apply(g.sig)
	default:
		if g.stopTrace == nil {
			g.box.Publish(g.hand.frame())
		}
		g.mapper.Apply(g.box.Latest(), g.sig)
	}
	g.sig.Step()

	g.hand.tilt += ebitenWheelY() * 0.05
	g.spin += config.IdleSpinSpeed
	g.colorPhase += config.ColorShiftSpeed

	return nil
}

func ebitenWheelY() float64 {
	_, wy := ebiten.Wheel()
	return wy
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

func (g *Game) selectCurve(i int, now time.Time) {
	id, err := g.eng.SelectCurve(i, now)
	if err != nil {
		// Bad index: keep the tick loop alive, just surface it.
		g.lastErr = err
		return
	}
	g.status = "-> " + id.String()
}

func (g *Game) changeParticleCount(delta int) {
	n := g.eng.Count() + delta
	if n < particleCountStep {
		n = particleCountStep
	}
	if n > config.MaxParticleCount {
		n = config.MaxParticleCount
	}
	if err := g.eng.SetParticleCount(n); err != nil {
		g.lastErr = err
		return
	}
	g.status = fmt.Sprintf("%d particles", n)
}

func (g *Game) changeSensitivity(dir float64) {
	s := g.mapper.Sensitivity() + dir*0.5
	if err := g.mapper.SetSensitivity(s); err != nil {
		g.lastErr = err
		return
	}
	g.status = fmt.Sprintf("sensitivity %.1f", s)
}

// stopDrives ends trace playback and audio, returning control to the
// synthetic mouse hand.
func (g *Game) stopDrives() {
	if g.stopTrace != nil {
		g.stopTrace()
		g.stopTrace = nil
	}
	if g.audio != nil {
		g.audio.stop()
		g.audio = nil
	}
	g.status = "drives stopped"
}

func (g *Game) openTraceDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Gesture Trace"),
		zenity.FileFilters{{
			Name:     "Gesture trace",
			Patterns: []string{"*.json"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	g.stopDrives()
	stop, err := gesture.Replay(filename, g.box)
	if err != nil {
		return err
	}
	g.stopTrace = stop
	g.status = "playing trace"
	return nil
}

func (g *Game) openAudioDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Audio File"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	g.stopDrives()
	drive, err := startAudio(filename)
	if err != nil {
		return err
	}
	g.audio = drive
	g.status = "audio drive"
	return nil
}
