package gesture

import (
	"math"

	"github.com/iburimskiy/curve-morph/internal/config"
)

// (tip, base) landmark pairs per finger, thumb first.
var fingerPairs = [5][2]int{
	{thumbTip, thumbBase},
	{indexTip, indexBase},
	{middleTip, middleBase},
	{ringTip, ringBase},
	{pinkyTip, pinkyBase},
}

// Openness measures how extended the hand is, in [0,1]. Each finger
// contributes min(tipDist/(2*baseDist), 1) where distances are taken from the
// wrist; a fully extended finger puts its tip about twice as far out as its
// base joint.
func Openness(f *Frame) float64 {
	w := f[wrist]
	sum := 0.0
	for _, pair := range fingerPairs {
		tipDist := w.distTo(f[pair[0]])
		baseDist := w.distTo(f[pair[1]])
		if baseDist == 0 {
			if tipDist > 0 {
				sum += 1
			}
			continue
		}
		sum += math.Min(tipDist/(2*baseDist), 1)
	}
	return sum / 5
}

// PalmDistance estimates how close the hand is to the camera from apparent
// palm size, normalized to [0,1] by a fixed calibration of the expected size
// range. Palm size is the mean of palm width (index base to pinky base) and
// palm height (wrist to middle base).
func PalmDistance(f *Frame) float64 {
	width := f[indexBase].distTo(f[pinkyBase])
	height := f[wrist].distTo(f[middleBase])
	palm := (width + height) / 2
	return clamp01((palm - config.PalmMin) / config.PalmRange)
}

// Rotation is the palm tilt in radians, measured from the wrist-to-middle-base
// vector against "up" in image space (y grows downward), in (-pi, pi].
func Rotation(f *Frame) float64 {
	dx := f[middleBase].X - f[wrist].X
	dy := f[middleBase].Y - f[wrist].Y
	return math.Atan2(dx, -dy)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
