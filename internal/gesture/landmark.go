// Package gesture turns tracked hand landmarks into the smoothed control
// targets that drive the particle field: finger openness to spread, palm size
// to scale, palm tilt to rotation.
package gesture

import (
	"errors"
	"fmt"
	"math"
)

// FrameSize is the number of landmarks per tracked hand (MediaPipe hand
// topology: wrist 0, then four joints per finger).
const FrameSize = 21

// Landmark indices used by the feature extractors.
const (
	wrist     = 0
	thumbTip  = 4
	indexTip  = 8
	middleTip = 12
	ringTip   = 16
	pinkyTip  = 20

	thumbBase  = 2
	indexBase  = 5
	middleBase = 9
	ringBase   = 13
	pinkyBase  = 17
)

var ErrInvalidFrame = errors.New("invalid landmark frame")

// Point is a single landmark in normalized [0,1]x[0,1] image space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) distTo(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Frame is one sample of a tracked hand.
type Frame [FrameSize]Point

// NewFrame validates a raw landmark slice from the tracker. Wrong length or
// coordinates outside normalized image space are rejected; callers treat a
// rejected frame as "no hand" rather than propagating.
func NewFrame(pts []Point) (*Frame, error) {
	if len(pts) != FrameSize {
		return nil, fmt.Errorf("%w: got %d landmarks, want %d", ErrInvalidFrame, len(pts), FrameSize)
	}
	var f Frame
	for i, p := range pts {
		if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 || math.IsNaN(p.X) || math.IsNaN(p.Y) {
			return nil, fmt.Errorf("%w: landmark %d at (%v, %v) outside [0,1]", ErrInvalidFrame, i, p.X, p.Y)
		}
		f[i] = p
	}
	return &f, nil
}
