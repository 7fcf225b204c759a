package spline

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Point is one evaluated (position, value) pair.
type Point struct {
	X, Y float64
}

// Sweep evaluates the spline from `from` to `to` inclusive, advancing the
// position by step after each point.
//
// Positions accumulate (x += step) rather than being computed as from+i*step,
// so the produced abscissas match a plain stepping loop, including its
// rounding drift:
//
//	points, err := s.Sweep(0, 3.2, 0.1)
//	for _, p := range points {
//	    fmt.Printf("%.1f %.4f\n", p.X, p.Y)
//	}
//
// A step too small to move the position at float64 precision returns
// [ErrInvalidInput].
func (s *Spline) Sweep(from, to, step float64) ([]Point, error) {
	if !isFinite(from) || !isFinite(to) {
		return nil, fmt.Errorf("%w: sweep bounds must be finite", ErrInvalidInput)
	}
	if !isFinite(step) || step <= 0 {
		return nil, fmt.Errorf("%w: sweep step must be positive, got %v", ErrInvalidInput, step)
	}
	if to < from {
		return nil, fmt.Errorf("%w: sweep end %v is before start %v", ErrInvalidInput, to, from)
	}

	estimate := (to-from)/step + 1
	if estimate > maxSweepPoints {
		return nil, fmt.Errorf("%w: sweep would produce more than %d points", ErrInvalidInput, maxSweepPoints)
	}

	points := make([]Point, 0, int(estimate)+1)
	for x := from; x <= to; {
		if len(points) >= maxSweepPoints {
			return nil, fmt.Errorf("%w: sweep would produce more than %d points", ErrInvalidInput, maxSweepPoints)
		}
		points = append(points, Point{X: x, Y: s.Evaluate(x)})

		next := x + step
		if next == x {
			return nil, fmt.Errorf("%w: sweep step %v is below the float64 resolution at %v", ErrInvalidInput, step, x)
		}
		x = next
	}
	return points, nil
}

// Sample evaluates the spline at count evenly spaced positions covering
// [from, to], both ends included.
func (s *Spline) Sample(from, to float64, count int) ([]Point, error) {
	if !isFinite(from) || !isFinite(to) {
		return nil, fmt.Errorf("%w: sample bounds must be finite", ErrInvalidInput)
	}
	if count < minSampleCount {
		return nil, fmt.Errorf("%w: sample count must be at least %d, got %d", ErrInvalidInput, minSampleCount, count)
	}

	xs := floats.Span(make([]float64, count), from, to)
	points := make([]Point, count)
	for i, x := range xs {
		points[i] = Point{X: x, Y: s.Evaluate(x)}
	}
	return points, nil
}

// Interpolate is a convenience function that builds a spline through samples
// and evaluates it at every position in ts.
//
// Example:
//
//	ys, err := spline.Interpolate([]float64{2.7, 6, 5, 6.5}, []float64{0.5, 1.5, 2.5})
//	if err != nil {
//	    log.Fatal(err)
//	}
func Interpolate(samples, ts []float64) ([]float64, error) {
	s, err := New(samples)
	if err != nil {
		return nil, err
	}
	return s.EvaluateInto(nil, ts), nil
}

// Resample changes the sampling density of a uniformly sampled signal by
// evaluating its natural spline at positions k/ratio.
//
// ratio > 1 produces more points (upsampling), ratio < 1 fewer. The output
// covers the same span as the input: floor((n-1)*ratio)+1 points, the first
// equal to samples[0]. The spline is not band-limited; downsampling a signal
// with content above the new Nyquist rate will alias.
func Resample(samples []float64, ratio float64) ([]float64, error) {
	if !isFinite(ratio) || ratio <= 0 {
		return nil, fmt.Errorf("%w: resampling ratio must be positive and finite, got %v", ErrInvalidInput, ratio)
	}
	s, err := New(samples)
	if err != nil {
		return nil, err
	}

	span := math.Floor(float64(s.Segments()) * ratio)
	if span >= maxSweepPoints {
		return nil, fmt.Errorf("%w: resampling would produce more than %d points", ErrInvalidInput, maxSweepPoints)
	}

	outLen := int(span) + 1
	out := make([]float64, outLen)
	for k := range out {
		out[k] = s.Evaluate(float64(k) / ratio)
	}
	return out, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
