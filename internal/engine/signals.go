package engine

import "github.com/iburimskiy/curve-morph/internal/config"

// Signals are the three smoothed scalars the renderer reads every frame:
// per-particle displacement spread, overall scale, and field rotation.
// Targets are set by whichever drive source is active; Current values follow
// at each signal's rate.
type Signals struct {
	Spread   Smoother
	Scale    Smoother
	Rotation Smoother
}

func NewSignals() *Signals {
	s := &Signals{
		Spread:   Smoother{Rate: config.SpreadRate},
		Scale:    Smoother{Rate: config.ScaleRate},
		Rotation: Smoother{Rate: config.RotationRate},
	}
	s.Spread.Reset(config.RestSpread)
	s.Scale.Reset(config.RestScale)
	s.Rotation.Reset(config.RestRotation)
	return s
}

// Step advances all three smoothers by one frame.
func (s *Signals) Step() {
	s.Spread.Step()
	s.Scale.Step()
	s.Rotation.Step()
}

// Rest retargets all signals to their neutral values. Used when no hand is
// tracked so the field drifts back instead of freezing mid-gesture.
func (s *Signals) Rest() {
	s.Spread.Target = config.RestSpread
	s.Scale.Target = config.RestScale
	s.Rotation.Target = config.RestRotation
}
