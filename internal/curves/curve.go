// Package curves generates particle position buffers for the ten parametric
// curve families the visualizer morphs between. Buffers are flat []float64
// slices of length 3*count, particle i at offsets 3i..3i+2, all axes scaled
// by Scale.
package curves

import (
	"errors"
	"fmt"
)

// CurveID identifies one of the ten curve families. The declaration order is
// the cyclic "next curve" order.
type CurveID int

const (
	Lissajous CurveID = iota
	Heart
	Butterfly
	Archimedean
	Catenary
	Lemniscate
	Rose
	TorusKnot
	Lorenz
	Galaxy

	NumCurves = 10
)

var ErrInvalidArgument = errors.New("invalid argument")

var curveNames = [NumCurves]string{
	"Lissajous",
	"Heart",
	"Butterfly",
	"Archimedean Spiral",
	"Catenary",
	"Lemniscate",
	"Rose",
	"Torus Knot",
	"Lorenz Attractor",
	"Galaxy",
}

func (id CurveID) Valid() bool { return id >= 0 && id < NumCurves }

func (id CurveID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("CurveID(%d)", int(id))
	}
	return curveNames[id]
}

// Next returns the curve following id in cyclic order.
func (id CurveID) Next() CurveID {
	return (id + 1) % NumCurves
}
