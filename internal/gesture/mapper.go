package gesture

import (
	"fmt"
	"math"

	"github.com/iburimskiy/curve-morph/internal/config"
	"github.com/iburimskiy/curve-morph/internal/engine"
)

// Target signal ranges.
const (
	spreadMin  = 0.2
	spreadSpan = 3.8
	scaleMin   = 0.3
	scaleSpan  = 2.0

	rotationGain = 0.3
)

// TargetSpread maps a normalized response in [0,1] into the spread target
// range. Shared by every drive source so targets stay in range regardless of
// where they come from.
func TargetSpread(f float64) float64 { return spreadMin + f*spreadSpan }

// TargetScale maps a normalized response in [0,1] into the scale target range.
func TargetScale(f float64) float64 { return scaleMin + f*scaleSpan }

// Mapper converts extracted hand features into control signal targets. The
// power-law response f^(1/sensitivity) keeps small gestures responsive while
// compressing near saturation, so sensitivity acts as one intuitive knob.
type Mapper struct {
	sensitivity float64
}

func NewMapper() *Mapper {
	return &Mapper{sensitivity: config.DefaultSensitivity}
}

func (m *Mapper) Sensitivity() float64 { return m.sensitivity }

func (m *Mapper) SetSensitivity(s float64) error {
	if s <= 0 || math.IsNaN(s) {
		return fmt.Errorf("%w: sensitivity %v must be positive", ErrInvalidFrame, s)
	}
	m.sensitivity = s
	return nil
}

// Apply sets the signal targets from one landmark frame. A nil frame means no
// hand is tracked; targets return to rest so the field never sticks at the
// last seen pose.
func (m *Mapper) Apply(f *Frame, sig *engine.Signals) {
	if f == nil {
		sig.Rest()
		return
	}
	openness := math.Pow(Openness(f), 1/m.sensitivity)
	sig.Spread.Target = TargetSpread(openness)

	// Distance gets a gentler exponent so depth changes read at half the
	// sensitivity of finger spread.
	dist := math.Pow(PalmDistance(f), 1/(0.5*m.sensitivity))
	sig.Scale.Target = TargetScale(dist)

	sig.Rotation.Target = Rotation(f) * m.sensitivity * rotationGain
}
