package engine

import "math"

// Smoother relaxes Current toward Target by a fixed fraction per step
// (one-pole exponential filter). It never reaches Target exactly; callers
// judge arrival with Settled.
type Smoother struct {
	Current float64
	Target  float64
	Rate    float64
}

func (s *Smoother) Step() {
	s.Current += (s.Target - s.Current) * s.Rate
}

// Reset snaps both sides to v, ending any in-flight relaxation.
func (s *Smoother) Reset(v float64) {
	s.Current = v
	s.Target = v
}

func (s *Smoother) Settled(eps float64) bool {
	return math.Abs(s.Target-s.Current) < eps
}
