// Package render draws interpolated curves with gonum/plot.
package render

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Default figure geometry
const (
	defaultWidthInches  = 6.0
	defaultHeightInches = 4.0
	sampleGlyphRadius   = 4.0 // points
)

// ErrNothingToPlot is returned when both the samples and the curve are empty.
var ErrNothingToPlot = errors.New("nothing to plot")

// Options configures a rendered figure. Zero values select defaults.
type Options struct {
	Title  string
	Width  vg.Length
	Height vg.Length
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = defaultWidthInches * vg.Inch
	}
	if o.Height <= 0 {
		o.Height = defaultHeightInches * vg.Inch
	}
	return o
}

// Plot renders the input samples as crosses at x = 0, 1, ... and the
// interpolated curve as a line, then saves the figure to path.
// The output format follows the file extension (png, svg, pdf, ...).
func Plot(path string, samples []float64, curve plotter.XYs, opts Options) error {
	if len(samples) == 0 && len(curve) == 0 {
		return ErrNothingToPlot
	}
	opts = opts.withDefaults()

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "t"
	p.Y.Label.Text = "value"
	p.Add(plotter.NewGrid())

	if len(samples) > 0 {
		truth, err := plotter.NewScatter(SampleXYs(samples))
		if err != nil {
			return fmt.Errorf("failed to build sample series: %w", err)
		}
		truth.GlyphStyle.Shape = draw.CrossGlyph{}
		truth.GlyphStyle.Color = color.RGBA{B: 255, A: 255}
		truth.GlyphStyle.Radius = vg.Points(sampleGlyphRadius)
		p.Add(truth)
		p.Legend.Add("samples", truth)
	}

	if len(curve) > 0 {
		line, err := plotter.NewLine(curve)
		if err != nil {
			return fmt.Errorf("failed to build curve series: %w", err)
		}
		line.LineStyle.Color = color.RGBA{R: 255, A: 255}
		p.Add(line)
		p.Legend.Add("interpolation", line)
	}

	if err := p.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}

// SampleXYs places samples at their integer positions.
func SampleXYs(samples []float64) plotter.XYs {
	xys := make(plotter.XYs, len(samples))
	for i, y := range samples {
		xys[i] = plotter.XY{X: float64(i), Y: y}
	}
	return xys
}
