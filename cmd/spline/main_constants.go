package main

// Default command-line flag values
const (
	defaultStep      = 0.1 // Step between evaluated positions
	defaultOvershoot = 0.2 // How far past the last knot the default range extends
	defaultColumn    = "0" // First CSV column
)

// defaultSamples is the dataset plotted when no input is given.
var defaultSamples = []string{"2.7", "6", "5", "6.5"}

const plotTitle = "natural cubic spline"
