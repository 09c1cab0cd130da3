// Package engine owns the live particle buffer and morphs it toward the
// selected curve. Every particle converges at its own fixed rate, so a curve
// switch settles as a staggered wave rather than one synchronized slide.
package engine

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/iburimskiy/curve-morph/internal/config"
	"github.com/iburimskiy/curve-morph/internal/curves"
)

// Engine holds the precomputed position buffer for every curve plus the live
// buffer the renderer draws. All methods are called from the render tick
// goroutine only.
type Engine struct {
	count   int
	buffers [curves.NumCurves][]float64

	positions []float64 // live, mutated every Tick
	target    []float64 // read-only alias into buffers

	current curves.CurveID

	// Parallel per-particle scalars, fixed until the count changes. seeds
	// feed the renderer's per-particle displacement; delays stagger the
	// transition speed.
	seeds  []float64
	delays []float64

	lastSwitch time.Time
	autoSwitch bool
	interval   time.Duration
}

// New precomputes all ten curve buffers at the given particle count and
// starts settled on the first curve.
func New(count int, now time.Time) (*Engine, error) {
	e := &Engine{
		autoSwitch: true,
		interval:   config.DefaultSwitchInterval,
		lastSwitch: now,
	}
	if err := e.rebuild(count); err != nil {
		return nil, err
	}
	return e, nil
}

// rebuild regenerates every curve buffer and the per-particle scalars for a
// new count. Everything is built aside and installed at the end so a failure
// leaves the engine on its previous buffer set.
func (e *Engine) rebuild(count int) error {
	if count < 0 || count > config.MaxParticleCount {
		return fmt.Errorf("%w: particle count %d out of range [0, %d]",
			curves.ErrInvalidArgument, count, config.MaxParticleCount)
	}
	var bufs [curves.NumCurves][]float64
	for id := curves.CurveID(0); id < curves.NumCurves; id++ {
		buf, err := curves.Generate(id, count)
		if err != nil {
			return err
		}
		bufs[id] = buf
	}
	seeds := make([]float64, count)
	delays := make([]float64, count)
	for i := range seeds {
		seeds[i] = rand.Float64()
		delays[i] = rand.Float64()
	}

	e.count = count
	e.buffers = bufs
	e.seeds = seeds
	e.delays = delays
	e.target = e.buffers[e.current]
	e.positions = make([]float64, len(e.target))
	copy(e.positions, e.target) // no transition after a rebuild
	return nil
}

// SelectCurve retargets the live buffer at curve index i and returns its
// display identity. The live positions are untouched; they converge toward
// the new target over subsequent ticks. An out-of-range index is an error and
// leaves all state unchanged.
func (e *Engine) SelectCurve(i int, now time.Time) (curves.CurveID, error) {
	id := curves.CurveID(i)
	if !id.Valid() {
		return e.current, fmt.Errorf("%w: curve index %d out of range [0, %d)",
			curves.ErrInvalidArgument, i, curves.NumCurves)
	}
	e.current = id
	e.target = e.buffers[id]
	e.lastSwitch = now
	return id, nil
}

// SelectNextCurve advances to the following curve in cyclic order.
func (e *Engine) SelectNextCurve(now time.Time) curves.CurveID {
	id, _ := e.SelectCurve(int(e.current.Next()), now)
	return id
}

// Tick advances the live buffer one frame: auto-switch if the interval has
// elapsed, then nudge every particle toward its target at its own rate.
func (e *Engine) Tick(now time.Time) {
	if e.autoSwitch && now.Sub(e.lastSwitch) >= e.interval {
		e.SelectNextCurve(now)
	}
	for i := 0; i < e.count; i++ {
		speed := config.TransitionRateBase + e.delays[i]*config.TransitionRateSpan
		base := 3 * i
		e.positions[base] += (e.target[base] - e.positions[base]) * speed
		e.positions[base+1] += (e.target[base+1] - e.positions[base+1]) * speed
		e.positions[base+2] += (e.target[base+2] - e.positions[base+2]) * speed
	}
}

// SetParticleCount regenerates all curve buffers at count particles. The live
// buffer restarts settled on the currently selected curve.
func (e *Engine) SetParticleCount(count int) error {
	if count == e.count {
		return nil
	}
	return e.rebuild(count)
}

func (e *Engine) SetAutoSwitch(on bool) { e.autoSwitch = on }
func (e *Engine) AutoSwitch() bool      { return e.autoSwitch }

func (e *Engine) SetSwitchInterval(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%w: switch interval %v must be positive",
			curves.ErrInvalidArgument, d)
	}
	e.interval = d
	return nil
}

func (e *Engine) Count() int              { return e.count }
func (e *Engine) Current() curves.CurveID { return e.current }

// Positions returns the live buffer. The renderer reads it in place; it is
// rewritten on every Tick and replaced wholesale on a count change.
func (e *Engine) Positions() []float64 { return e.positions }

// Seeds returns the per-particle random scalars in [0,1) used for
// displacement effects. Stable across curve switches.
func (e *Engine) Seeds() []float64 { return e.seeds }

// Transitioning reports whether any particle is still farther than eps from
// its target on some axis. Convergence is asymptotic, so this is the
// threshold judgment, not an exact comparison.
func (e *Engine) Transitioning(eps float64) bool {
	for i, p := range e.positions {
		if math.Abs(e.target[i]-p) > eps {
			return true
		}
	}
	return false
}

// Progress returns the fraction of particles within eps of their target on
// all three axes.
func (e *Engine) Progress(eps float64) float64 {
	if e.count == 0 {
		return 1
	}
	settled := 0
	for i := 0; i < e.count; i++ {
		base := 3 * i
		if math.Abs(e.target[base]-e.positions[base]) <= eps &&
			math.Abs(e.target[base+1]-e.positions[base+1]) <= eps &&
			math.Abs(e.target[base+2]-e.positions[base+2]) <= eps {
			settled++
		}
	}
	return float64(settled) / float64(e.count)
}
