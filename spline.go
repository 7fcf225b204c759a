package spline

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-cubic-spline/internal/mathutil"
)

// Common errors returned by the spline package.
var (
	// ErrInvalidInput indicates an unusable sample sequence or query.
	ErrInvalidInput = errors.New("invalid spline input")

	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid spline configuration")
)

// Spline is a natural cubic spline through samples placed at the integer
// positions 0, 1, ..., n-1.
//
// A Spline is immutable once constructed. It exposes no mutating methods and
// owns all of its coefficient storage, so any number of goroutines may
// evaluate the same instance concurrently.
type Spline struct {
	a []float64
	b []float64
	c []float64
	d []float64
}

// Segment holds the cubic coefficients of the piece starting at one knot:
//
//	value(t) = A + B*dt + C*dt² + D*dt³,  dt = t - knot
type Segment struct {
	A, B, C, D float64
}

// New builds a natural cubic spline through samples.
//
// Samples are assumed to be spaced exactly one unit apart: samples[i] is the
// value at position i. Non-uniform spacing is not supported and cannot be
// emulated by rescaling the result afterwards.
//
// The samples are copied; the caller may reuse the slice. A single sample
// produces a constant function. An empty slice returns [ErrInvalidInput].
// Non-finite samples are accepted and propagate into the curve.
func New(samples []float64) (*Spline, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: at least one sample is required", ErrInvalidInput)
	}

	a, b, c, d := mathutil.NaturalCubic(samples)
	return &Spline{a: a, b: b, c: c, d: d}, nil
}

// MustNew is like New but panics on error.
// It is intended for package-level literals and tests.
func MustNew(samples []float64) *Spline {
	s, err := New(samples)
	if err != nil {
		panic(err)
	}
	return s
}

// Evaluate returns the spline value at position t.
//
// The segment is chosen as floor(t), clamped to [0, n-1]:
//   - t < 0 extrapolates the first cubic with a negative offset
//   - t >= n-1 returns the last sample, the curve is flat past the last knot
//
// +Inf therefore returns the last sample rather than NaN.
//
// Evaluate accepts every float64. NaN yields NaN. A single-sample spline
// returns that sample for every t.
func (s *Spline) Evaluate(t float64) float64 {
	last := len(s.a) - 1

	var j int
	switch {
	case last == 0:
		return s.a[0]
	case math.IsNaN(t):
		return math.NaN()
	case t >= float64(last):
		// b, c and d are zero at the last knot.
		return s.a[last]
	case t < 0:
		j = 0
	default:
		j = int(math.Floor(t))
	}

	dt := t - float64(j)
	return mathutil.Horner(s.a[j], s.b[j], s.c[j], s.d[j], dt)
}

// EvaluateChecked is like Evaluate but rejects NaN and infinite positions
// with [ErrInvalidInput].
func (s *Spline) EvaluateChecked(t float64) (float64, error) {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return 0, fmt.Errorf("%w: position %v is not finite", ErrInvalidInput, t)
	}
	return s.Evaluate(t), nil
}

// EvaluateInto evaluates the spline at every position in ts and stores the
// results in dst, growing it when its capacity is too small.
// It returns the slice holding exactly len(ts) values.
func (s *Spline) EvaluateInto(dst, ts []float64) []float64 {
	if cap(dst) < len(ts) {
		dst = make([]float64, len(ts))
	}
	dst = dst[:len(ts)]
	for i, t := range ts {
		dst[i] = s.Evaluate(t)
	}
	return dst
}

// Len returns the number of samples the spline was built from.
func (s *Spline) Len() int {
	return len(s.a)
}

// Segments returns the number of cubic pieces between knots (Len()-1).
func (s *Spline) Segments() int {
	return len(s.a) - 1
}

// Samples returns a copy of the samples the spline interpolates.
func (s *Spline) Samples() []float64 {
	out := make([]float64, len(s.a))
	copy(out, s.a)
	return out
}

// Segment returns the coefficients of the piece starting at knot j.
// Knot Len()-1 is valid and always has B = C = D = 0.
func (s *Spline) Segment(j int) (Segment, error) {
	if j < 0 || j >= len(s.a) {
		return Segment{}, fmt.Errorf("%w: knot %d out of range [0, %d]", ErrInvalidInput, j, len(s.a)-1)
	}
	return Segment{A: s.a[j], B: s.b[j], C: s.c[j], D: s.d[j]}, nil
}
