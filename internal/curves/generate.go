package curves

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/iburimskiy/curve-morph/internal/config"
)

// Lorenz system constants.
const (
	lorenzSigma = 10.0
	lorenzRho   = 28.0
	lorenzBeta  = 8.0 / 3.0
	lorenzStep  = 0.005
	lorenzSteps = 5000
)

const galaxyArms = 4

// Generate evaluates the curve family id at count parameter samples and
// returns a flat buffer of 3*count coordinates. Randomness (auxiliary angles,
// per-axis noise, galaxy arm assignment) comes from the process-wide source,
// so two calls produce equivalent but not identical buffers.
func Generate(id CurveID, count int) ([]float64, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("%w: unknown curve id %d", ErrInvalidArgument, int(id))
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: negative particle count %d", ErrInvalidArgument, count)
	}
	buf := make([]float64, 3*count)
	if count == 0 {
		return buf, nil
	}

	switch id {
	case Lorenz:
		generateLorenz(buf, count)
	case Galaxy:
		generateGalaxy(buf, count)
	default:
		for i := 0; i < count; i++ {
			t := float64(i) / float64(count) * 2 * math.Pi
			t2 := rand.Float64() * 2 * math.Pi
			x, y, z := pointAt(id, t, t2)
			emit(buf, i, x, y, z)
		}
	}
	return buf, nil
}

// emit writes point i, applying independent per-axis multiplicative noise in
// [-CurveNoise, CurveNoise] and the global scale.
func emit(buf []float64, i int, x, y, z float64) {
	buf[3*i] = x * noisy() * config.CurveScale
	buf[3*i+1] = y * noisy() * config.CurveScale
	buf[3*i+2] = z * noisy() * config.CurveScale
}

func noisy() float64 {
	return 1 + (rand.Float64()*2-1)*config.CurveNoise
}

func pointAt(id CurveID, t, t2 float64) (x, y, z float64) {
	switch id {
	case Lissajous:
		// Frequency ratios 3:4:5, phase offset pi/2 on x, half-amplitude z.
		x = math.Sin(3*t + math.Pi/2)
		y = math.Sin(4 * t)
		z = 0.5 * math.Sin(5*t)
	case Heart:
		x = 16 * math.Pow(math.Sin(t), 3) * 0.08
		y = (13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)) * 0.08
		z = math.Sin(t2) * math.Sin(t) * 0.3
	case Butterfly:
		th := 6 * t
		r := math.Exp(math.Cos(th)) - 2*math.Cos(4*th) - math.Pow(math.Sin(th/12), 5)
		x = math.Sin(th) * r * 0.3
		y = math.Cos(th) * r * 0.3
		z = 0.3 * math.Sin(3*t)
	case Archimedean:
		th := 4 * t
		r := 0.1 + 0.05*th
		x = r * math.Cos(th)
		y = r * math.Sin(th)
		z = 0.1 * th
	case Catenary:
		// Catenoid: the catenary profile cosh swept around the vertical axis,
		// azimuth taken from the independent angle t2.
		u := t - math.Pi
		r := math.Cosh(0.5*u) * 0.3
		x = r * math.Cos(t2)
		y = u * 0.3
		z = r * math.Sin(t2)
	case Lemniscate:
		d := 1 + math.Sin(t)*math.Sin(t)
		x = math.Cos(t) / d
		y = math.Sin(t) * math.Cos(t) / d
		z = 0.3 * math.Sin(t2) / d
	case Rose:
		r := math.Cos(5 * t)
		x = r * math.Cos(t)
		y = r * math.Sin(t)
		z = 0.3 * math.Sin(5*t/2)
	case TorusKnot:
		// (p=3, q=7) knot.
		r := 0.5 + 0.3*math.Cos(7*t)
		x = r * math.Cos(3*t)
		y = r * math.Sin(3*t)
		z = 0.3 * math.Sin(7*t)
	}
	return x, y, z
}

// generateLorenz integrates the Lorenz system once by explicit Euler from a
// fixed initial condition and assigns particle i the trajectory state after
// floor(lorenzSteps*i/count) steps. The step index is monotone in i, so one
// forward pass covers every particle.
func generateLorenz(buf []float64, count int) {
	x, y, z := 0.1, 0.0, 0.0
	step := 0
	for i := 0; i < count; i++ {
		want := lorenzSteps * i / count
		for step < want {
			dx := lorenzSigma * (y - x)
			dy := x*(lorenzRho-z) - y
			dz := x*y - lorenzBeta*z
			x += dx * lorenzStep
			y += dy * lorenzStep
			z += dz * lorenzStep
			step++
		}
		emit(buf, i, x*0.03, y*0.03, (z-25)*0.03)
	}
}

// generateGalaxy scatters particles over four spiral arms. The sqrt on the
// radial draw biases particles toward the core; vertical scatter thins out
// with distance.
func generateGalaxy(buf []float64, count int) {
	for i := 0; i < count; i++ {
		arm := rand.Intn(galaxyArms)
		d := math.Sqrt(rand.Float64())
		angle := float64(arm)*(2*math.Pi/galaxyArms) + 4*d + (rand.Float64()*2-1)*0.15
		x := d * math.Cos(angle)
		y := d * math.Sin(angle)
		z := (rand.Float64()*2 - 1) * 0.3 * (1 - d)
		emit(buf, i, x, y, z)
	}
}
