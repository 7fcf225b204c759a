package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-cubic-spline/internal/testutil"
	"gonum.org/v1/gonum/mat"
)

// denseNaturalC solves the natural spline system for c with a general dense
// LU solve. It shares no code with the tridiagonal sweep.
func denseNaturalC(t *testing.T, y []float64) []float64 {
	t.Helper()
	n := len(y)
	A := mat.NewDense(n, n, nil)
	rhs := mat.NewVecDense(n, nil)

	A.Set(0, 0, 1)
	A.Set(n-1, n-1, 1)
	for i := 1; i < n-1; i++ {
		A.Set(i, i-1, 1)
		A.Set(i, i, 4)
		A.Set(i, i+1, 1)
		rhs.SetVec(i, 3*(y[i-1]-2*y[i]+y[i+1]))
	}

	var c mat.VecDense
	require.NoError(t, c.SolveVec(A, rhs))
	return mat.Col(nil, 0, &c)
}

// TestNaturalCubic_Reference tests coefficients for the four-point dataset.
func TestNaturalCubic_Reference(t *testing.T) {
	a, b, c, d := NaturalCubic(testutil.ReferenceSamples())

	assert.Equal(t, []float64{2.7, 6, 5, 6.5}, a)
	testutil.AssertSliceInDelta(t, []float64{0, -3.94, 2.86, 0}, c, 1e-12)
	testutil.AssertSliceInDelta(t, []float64{-197.0 / 150, 6.8 / 3, -2.86 / 3, 0}, d, 1e-12)
	testutil.AssertSliceInDelta(t, []float64{346.0 / 75, 0.67333333333333333, -0.40666666666666667, 0}, b, 1e-12)
}

// recurrenceNaturalCubic builds the coefficients with the classic
// append-per-knot loops, one statement per step. c gets its trailing zero
// appended up front so c[ndata] is readable.
func recurrenceNaturalCubic(y []float64) (a, b, c, d []float64) {
	ndata := len(y) - 1

	for i := 0; i <= ndata; i++ {
		a = append(a, y[i])
	}

	for i := 0; i <= ndata; i++ {
		if i == 0 || i == ndata {
			c = append(c, 0.0)
		} else {
			c = append(c, 3.0*(a[i-1]-float64(2.0*a[i])+a[i+1]))
		}
	}

	var w []float64
	for i := 0; i < ndata; i++ {
		if i == 0 {
			w = append(w, 0.0)
		} else {
			tmp := 4.0 - w[i-1]
			c[i] = (c[i] - c[i-1]) / tmp
			w = append(w, 1.0/tmp)
		}
	}

	for i := ndata - 1; i > 0; i-- {
		c[i] = c[i] - float64(c[i+1]*w[i])
	}

	for i := 0; i <= ndata; i++ {
		if i == ndata {
			d = append(d, 0.0)
			b = append(b, 0.0)
		} else {
			d = append(d, (c[i+1]-c[i])/3.0)
			b = append(b, a[i+1]-a[i]-c[i]-d[i])
		}
	}

	return a, b, c, d
}

// TestNaturalCubic_MatchesRecurrenceBitExact tests that the solver reproduces
// the plain recurrence bit for bit, not just within a tolerance.
func TestNaturalCubic_MatchesRecurrenceBitExact(t *testing.T) {
	chirp := make([]float64, 97)
	for k := range chirp {
		chirp[k] = math.Sin(float64(k*k)/7) * (1 + float64(k)/10)
	}

	tests := []struct {
		name string
		y    []float64
	}{
		{"Reference", testutil.ReferenceSamples()},
		{"Single", []float64{5}},
		{"Two", []float64{1, 3}},
		{"Three", []float64{-1, 4, 0.5}},
		{"Sine", testutil.SineSamples(256, 9.3)},
		{"Chirp", chirp},
		{"Mixed magnitudes", []float64{1e12, -3e11, 2.5, 7e10, -3, 1e-9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wantA, wantB, wantC, wantD := recurrenceNaturalCubic(tt.y)
			a, b, c, d := NaturalCubic(tt.y)

			testutil.AssertBitEqual(t, wantA, a, "a")
			testutil.AssertBitEqual(t, wantB, b, "b")
			testutil.AssertBitEqual(t, wantC, c, "c")
			testutil.AssertBitEqual(t, wantD, d, "d")
		})
	}
}

// TestNaturalCubic_Lengths tests that all coefficient slices match the input length.
func TestNaturalCubic_Lengths(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 4, 17, 100} {
		y := testutil.SineSamples(n, 9)
		a, b, c, d := NaturalCubic(y)
		assert.Len(t, a, n, "a length for n=%d", n)
		assert.Len(t, b, n, "b length for n=%d", n)
		assert.Len(t, c, n, "c length for n=%d", n)
		assert.Len(t, d, n, "d length for n=%d", n)
	}
}

// TestNaturalCubic_Invariants tests the structural invariants on assorted inputs.
func TestNaturalCubic_Invariants(t *testing.T) {
	inputs := map[string][]float64{
		"two points":   {1, 3},
		"three points": {0, 1, 0},
		"reference":    testutil.ReferenceSamples(),
		"sine":         testutil.SineSamples(64, 12.5),
		"step":         {0, 0, 0, 1, 1, 1},
		"negative":     {-4, -1, -7, -2, -9},
	}

	for name, y := range inputs {
		t.Run(name, func(t *testing.T) {
			a, b, c, d := NaturalCubic(y)
			last := len(y) - 1

			testutil.AssertBitEqual(t, y, a)
			assert.Zero(t, b[last], "b at last knot")
			assert.Zero(t, c[last], "c at last knot")
			assert.Zero(t, d[last], "d at last knot")
			assert.Zero(t, c[0], "c at first knot")
			testutil.AssertNoNaNOrInf(t, b)
			testutil.AssertNoNaNOrInf(t, c)
			testutil.AssertNoNaNOrInf(t, d)
		})
	}
}

// TestNaturalCubic_SingleSample tests the degenerate constant spline.
func TestNaturalCubic_SingleSample(t *testing.T) {
	a, b, c, d := NaturalCubic([]float64{5})
	assert.Equal(t, []float64{5}, a)
	assert.Equal(t, []float64{0}, b)
	assert.Equal(t, []float64{0}, c)
	assert.Equal(t, []float64{0}, d)
}

// TestNaturalCubic_TwoSamples tests that two samples produce a straight line.
func TestNaturalCubic_TwoSamples(t *testing.T) {
	a, b, c, d := NaturalCubic([]float64{1, 3})
	assert.Equal(t, []float64{1, 3}, a)
	assert.Equal(t, []float64{2, 0}, b)
	assert.Equal(t, []float64{0, 0}, c)
	assert.Equal(t, []float64{0, 0}, d)
}

// TestNaturalCubic_LinearData tests that collinear samples have no curvature.
func TestNaturalCubic_LinearData(t *testing.T) {
	y := make([]float64, 20)
	for i := range y {
		y[i] = 0.5*float64(i) - 3
	}
	_, b, c, d := NaturalCubic(y)
	for i := range len(y) - 1 {
		assert.InDelta(t, 0.5, b[i], 1e-12, "slope at knot %d", i)
		assert.InDelta(t, 0.0, c[i], 1e-12, "curvature at knot %d", i)
		assert.InDelta(t, 0.0, d[i], 1e-12, "jerk at knot %d", i)
	}
}

// TestNaturalCubic_DoesNotAliasInput tests that a is a copy of y.
func TestNaturalCubic_DoesNotAliasInput(t *testing.T) {
	y := []float64{1, 2, 3}
	a, _, _, _ := NaturalCubic(y)
	y[0] = 100
	assert.InDelta(t, 1.0, a[0], 0)
}

// TestNaturalCubic_MatchesDenseSolve cross-checks the sweep against gonum.
func TestNaturalCubic_MatchesDenseSolve(t *testing.T) {
	inputs := map[string][]float64{
		"reference": testutil.ReferenceSamples(),
		"sine":      testutil.SineSamples(40, 7.3),
		"ramp":      {0, 1, 4, 9, 16, 25, 36},
		"spiky":     {0, 10, -10, 10, -10, 10, 0},
	}

	for name, y := range inputs {
		t.Run(name, func(t *testing.T) {
			_, _, c, _ := NaturalCubic(y)
			testutil.AssertSliceInDelta(t, denseNaturalC(t, y), c, testutil.OracleTolerance)
		})
	}
}

// TestNaturalCubic_Continuity tests C0, C1 and C2 continuity at interior knots.
func TestNaturalCubic_Continuity(t *testing.T) {
	y := []float64{3, -1, 4, 1, -5, 9, 2, 6}
	a, b, c, d := NaturalCubic(y)

	for j := 1; j < len(y)-1; j++ {
		i := j - 1
		value := a[i] + b[i] + c[i] + d[i]
		slope := b[i] + 2*c[i] + 3*d[i]
		curvature := 2*c[i] + 6*d[i]

		assert.InDelta(t, a[j], value, testutil.ContinuityTolerance, "value at knot %d", j)
		assert.InDelta(t, b[j], slope, testutil.ContinuityTolerance, "slope at knot %d", j)
		assert.InDelta(t, 2*c[j], curvature, testutil.ContinuityTolerance, "curvature at knot %d", j)
	}

	// Natural boundary at the right end of the last real segment.
	last := len(y) - 2
	assert.InDelta(t, 0.0, 2*c[last]+6*d[last], testutil.ContinuityTolerance)
}

// TestNaturalCubic_NonFinitePropagates tests that NaN samples do not panic.
func TestNaturalCubic_NonFinitePropagates(t *testing.T) {
	a, _, c, _ := NaturalCubic([]float64{0, math.NaN(), 1, 2})
	assert.True(t, math.IsNaN(a[1]))
	assert.True(t, math.IsNaN(c[1]))
}

// TestHorner tests Horner evaluation against the expanded polynomial.
func TestHorner(t *testing.T) {
	tests := []struct {
		name       string
		a, b, c, d float64
		dt         float64
		expected   float64
	}{
		{"Zero offset", 2.5, 1, 1, 1, 0, 2.5},
		{"Unit offset", 1, 2, 3, 4, 1, 10},
		{"Half offset", 1, 2, 3, 4, 0.5, 1 + 1 + 0.75 + 0.5},
		{"Negative offset", 1, 2, 3, 4, -1, 1 - 2 + 3 - 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Horner(tt.a, tt.b, tt.c, tt.d, tt.dt), 1e-12)
		})
	}
}

// BenchmarkNaturalCubic benchmarks coefficient construction for 4096 samples.
func BenchmarkNaturalCubic(b *testing.B) {
	y := testutil.SineSamples(4096, 37)
	for b.Loop() {
		_, _, _, _ = NaturalCubic(y)
	}
}
