package spline

// Parallel evaluation defaults
const (
	defaultChunkSize = 4096 // Positions per work item in EvaluateParallel
	minParallelSize  = 2    // Below this many chunks, evaluation stays on the caller's goroutine
)

// Sampling limits
const (
	minSampleCount = 2       // Sample needs both endpoints
	maxSweepPoints = 1 << 26 // Upper bound on points produced by Sweep
)
