package spline

// Derivative helpers for tests.
// This file uses the _test.go suffix so it's only included in test builds.

// ExportedSlope returns the first derivative of seg at offset dt.
func ExportedSlope(seg Segment, dt float64) float64 {
	return seg.B + 2*seg.C*dt + 3*seg.D*dt*dt
}

// ExportedCurvature returns the second derivative of seg at offset dt.
func ExportedCurvature(seg Segment, dt float64) float64 {
	return 2*seg.C + 6*seg.D*dt
}

// ExportedValue returns seg evaluated at offset dt without clamping.
func ExportedValue(seg Segment, dt float64) float64 {
	return seg.A + seg.B*dt + seg.C*dt*dt + seg.D*dt*dt*dt
}
