package mathutil

// Natural cubic spline system constants for unit knot spacing.
//
// With h = 1 the continuity conditions reduce to the tridiagonal system
//
//	c[i-1] + 4*c[i] + c[i+1] = 3*(a[i-1] - 2*a[i] + a[i+1])
//
// so the diagonal and right-hand-side factors are fixed.
const (
	splineDiagonal    = 4.0 // Main diagonal of the tridiagonal system
	splineRHSScale    = 3.0 // Right-hand-side scale factor
	splineRHSCenter   = 2.0 // Weight of the center sample in the second difference
	splineCubicFactor = 3.0 // Divisor turning c differences into d
)
