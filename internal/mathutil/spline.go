// Package mathutil provides the numeric kernels behind spline construction.
package mathutil

// NaturalCubic computes natural cubic spline coefficients for samples taken
// at the integer positions 0, 1, ..., len(y)-1.
//
// The returned slices all have length len(y). For knot j the segment
// polynomial is
//
//	a[j] + b[j]*dt + c[j]*dt² + d[j]*dt³,  dt = t - j
//
// The second-derivative coefficients c come from a Thomas-style sweep over the
// fixed (1, 4, 1) tridiagonal system that unit spacing produces:
//   - Forward elimination stores 1/pivot in a working slice w
//   - Back substitution runs from the last interior knot down to knot 1
//   - c[0] and c[len(y)-1] stay zero (natural boundary)
//
// The final knot carries b = c = d = 0; it only serves clamped evaluation.
//
// Products are wrapped in explicit float64 conversions. The conversion forces
// rounding of the product and prevents the compiler from contracting it into
// a fused multiply-add, so coefficients are bit-identical on every GOARCH.
//
// A single sample yields one constant segment. An empty y yields empty slices.
func NaturalCubic(y []float64) (a, b, c, d []float64) {
	n := len(y)
	a = make([]float64, n)
	b = make([]float64, n)
	c = make([]float64, n)
	d = make([]float64, n)
	copy(a, y)

	ndata := n - 1
	if ndata < 1 {
		return a, b, c, d
	}

	// Right-hand side; c[0] and c[ndata] remain zero.
	for i := 1; i < ndata; i++ {
		c[i] = splineRHSScale * (a[i-1] - float64(splineRHSCenter*a[i]) + a[i+1])
	}

	// Forward elimination
	w := make([]float64, ndata)
	for i := 1; i < ndata; i++ {
		tmp := splineDiagonal - w[i-1]
		c[i] = (c[i] - c[i-1]) / tmp
		w[i] = 1.0 / tmp
	}

	// Back substitution
	for i := ndata - 1; i > 0; i-- {
		c[i] -= float64(c[i+1] * w[i])
	}

	for i := range ndata {
		d[i] = (c[i+1] - c[i]) / splineCubicFactor
		b[i] = a[i+1] - a[i] - c[i] - d[i]
	}

	return a, b, c, d
}

// Horner evaluates a + dt*(b + dt*(c + dt*d)) with every product rounded
// separately.
func Horner(a, b, c, d, dt float64) float64 {
	return a + float64(dt*(b+float64(dt*(c+float64(dt*d)))))
}
