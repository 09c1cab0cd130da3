package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/curve-morph/internal/config"
	"github.com/iburimskiy/curve-morph/internal/gesture"
)

// mouseHand synthesizes a plausible 21-landmark hand from mouse state so the
// whole gesture path runs without a camera: cursor x curls/extends the
// fingers, cursor y moves the palm closer, the wheel tilts it.
type mouseHand struct {
	tilt float64
}

// frame builds the synthetic landmark frame for the current mouse state.
func (h *mouseHand) frame() *gesture.Frame {
	mx, my := ebiten.CursorPosition()
	nx := clamp01(float64(mx) / config.WindowWidth)
	ny := clamp01(float64(my) / config.WindowHeight)

	// Cursor left..right: fist..open. Cursor top..bottom: near..far.
	curl := 0.15 + 0.85*nx
	palm := 0.10 + 0.14*(1-ny)

	wristPt := gesture.Point{X: 0.5, Y: 0.62}
	pts := make([]gesture.Point, gesture.FrameSize)
	pts[0] = wristPt

	along := func(angle, dist float64) gesture.Point {
		return gesture.Point{
			X: clamp01(wristPt.X + math.Sin(angle)*dist),
			Y: clamp01(wristPt.Y - math.Cos(angle)*dist),
		}
	}

	// Five fingers fanned around the tilt direction, four joints each
	// (indices 1-4 thumb, 5-8 index, 9-12 middle, 13-16 ring, 17-20 pinky).
	// Tips land at 2*base*curl so measured openness tracks the cursor. The
	// thumb's base joint is its second slot; the other fingers lead with
	// their base, matching the tracker's topology.
	for f := 0; f < 5; f++ {
		angle := h.tilt + (float64(f)-2)*0.18
		base := palm
		if f != 2 {
			base = palm * 0.92 // middle finger defines palm height
		}
		tip := 2 * base * curl
		first := 1 + 4*f
		if f == 0 {
			pts[first] = along(angle, base*0.6)
			pts[first+1] = along(angle, base)
			pts[first+2] = along(angle, base+(tip-base)*0.5)
			pts[first+3] = along(angle, tip)
			continue
		}
		pts[first] = along(angle, base)
		pts[first+1] = along(angle, base+(tip-base)*0.33)
		pts[first+2] = along(angle, base+(tip-base)*0.66)
		pts[first+3] = along(angle, tip)
	}

	frame, err := gesture.NewFrame(pts)
	if err != nil {
		return nil // clamped geometry should never get here
	}
	return frame
}
