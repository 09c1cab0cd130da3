package curves

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allIDs() []CurveID {
	ids := make([]CurveID, NumCurves)
	for i := range ids {
		ids[i] = CurveID(i)
	}
	return ids
}

func TestGenerateLengthAndFinite(t *testing.T) {
	for _, id := range allIDs() {
		for _, count := range []int{1, 7, 256} {
			buf, err := Generate(id, count)
			require.NoError(t, err, "%s count=%d", id, count)
			require.Len(t, buf, 3*count, "%s count=%d", id, count)
			for i, v := range buf {
				require.False(t, math.IsNaN(v) || math.IsInf(v, 0),
					"%s count=%d: non-finite value at %d", id, count, i)
			}
		}
	}
}

func TestGenerateCountZero(t *testing.T) {
	for _, id := range allIDs() {
		buf, err := Generate(id, 0)
		require.NoError(t, err)
		require.NotNil(t, buf)
		assert.Empty(t, buf)
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name  string
		id    CurveID
		count int
	}{
		{"negative id", CurveID(-1), 10},
		{"id past range", CurveID(NumCurves), 10},
		{"negative count", Lissajous, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(tt.id, tt.count)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

// Loose per-axis bounds derived from each family's closed form at scale 150
// with 5% multiplicative noise. Catches regressions in constants without
// pinning the random terms.
func TestBoundingBoxes(t *testing.T) {
	tests := []struct {
		id         CurveID
		mx, my, mz float64
	}{
		{Lissajous, 157.5, 157.5, 78.75},
		{Heart, 202, 220, 47.25},
		{Butterfly, 272, 272, 47.25},
		{Archimedean, 214, 214, 396},
		{Catenary, 119, 149, 119},
		{Lemniscate, 157.5, 78.75, 47.25},
		{Rose, 157.5, 157.5, 47.25},
		{TorusKnot, 126.1, 126.1, 47.25},
		{Lorenz, 140, 160, 140},
		{Galaxy, 157.5, 157.5, 47.25},
	}
	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			buf, err := Generate(tt.id, 2000)
			require.NoError(t, err)
			for i := 0; i < 2000; i++ {
				assert.LessOrEqual(t, math.Abs(buf[3*i]), tt.mx, "x at %d", i)
				assert.LessOrEqual(t, math.Abs(buf[3*i+1]), tt.my, "y at %d", i)
				assert.LessOrEqual(t, math.Abs(buf[3*i+2]), tt.mz, "z at %d", i)
			}
		})
	}
}

func TestLorenzFirstParticle(t *testing.T) {
	// count=1 means zero integration steps: the output is the initial
	// condition (0.1, 0, 0) through the 0.03 scale, -25 z offset, and the
	// global scale, up to 5% noise.
	buf, err := Generate(Lorenz, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.1*0.03*150, buf[0], 0.1*0.03*150*0.06)
	assert.Zero(t, buf[1])
	assert.InDelta(t, -25*0.03*150, buf[2], 25*0.03*150*0.06)
}

func TestGalaxyRadialBias(t *testing.T) {
	// Radial distance is sqrt(uniform), so the mean planar radius should sit
	// near 2/3 of the full extent.
	buf, err := Generate(Galaxy, 5000)
	require.NoError(t, err)
	sum := 0.0
	for i := 0; i < 5000; i++ {
		sum += math.Hypot(buf[3*i], buf[3*i+1])
	}
	mean := sum / 5000
	assert.InDelta(t, 100, mean, 12)
}

func TestCurveIDNext(t *testing.T) {
	id := Lissajous
	seen := map[CurveID]bool{}
	for i := 0; i < NumCurves; i++ {
		seen[id] = true
		id = id.Next()
	}
	assert.Equal(t, Lissajous, id, "Next should wrap to the first curve")
	assert.Len(t, seen, NumCurves, "Next should visit every curve")
}

func TestCurveIDString(t *testing.T) {
	assert.Equal(t, "Lorenz Attractor", Lorenz.String())
	assert.Equal(t, "CurveID(12)", CurveID(12).String())
}
