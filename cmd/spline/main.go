// Command spline fits a natural cubic spline through uniformly spaced samples
// and evaluates it over a range, printing x,y pairs and optionally plotting
// the curve.
//
// Usage:
//
//	spline                                      # reference dataset, print pairs
//	spline --samples 1,4,2,8,5 --output out.png # plot a custom dataset
//	spline --input course.csv --column x --step 0.05 --print
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"
	spline "github.com/tphakala/go-cubic-spline"
	"github.com/tphakala/go-cubic-spline/internal/render"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "spline: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	loggerLevel := logger.LevelInfo
	pflag.Var(&loggerLevel, "log-level", "Log level")
	samplesFlag := pflag.StringSlice("samples", defaultSamples, "Comma-separated sample values at positions 0, 1, 2, ...")
	input := pflag.String("input", "", "CSV file to read samples from (overrides --samples)")
	column := pflag.String("column", defaultColumn, "CSV column: header name or zero-based index")
	from := pflag.Float64("from", 0, "First evaluated position")
	to := pflag.Float64("to", 0, "Last evaluated position (default: last sample index + 0.2)")
	step := pflag.Float64("step", defaultStep, "Distance between evaluated positions")
	output := pflag.String("output", "", "Write a plot to this file; format follows the extension (png, svg, pdf)")
	printPoints := pflag.Bool("print", false, "Print x,y pairs to stdout (implied when --output is empty)")
	pflag.Parse()

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	samples, err := loadSamples(ctx, *input, *column, *samplesFlag)
	if err != nil {
		return err
	}

	s, err := spline.New(samples)
	if err != nil {
		return err
	}
	logger.Debugf(ctx, "built spline with %d samples, %d segments", s.Len(), s.Segments())

	end := *to
	if !pflag.CommandLine.Changed("to") {
		end = defaultEnd(s.Len())
	}

	points, err := s.Sweep(*from, end, *step)
	if err != nil {
		return err
	}
	logger.Debugf(ctx, "evaluated %d points in [%g, %g] step %g", len(points), *from, end, *step)

	if *printPoints || *output == "" {
		if err := writePoints(os.Stdout, points); err != nil {
			return fmt.Errorf("failed to print points: %w", err)
		}
	}

	if *output != "" {
		if err := render.Plot(*output, samples, curveXYs(points), render.Options{Title: plotTitle}); err != nil {
			return err
		}
		logger.Infof(ctx, "wrote plot to %s", *output)
	}

	return nil
}

func loadSamples(ctx context.Context, input, column string, values []string) ([]float64, error) {
	if input == "" {
		return parseSamples(values)
	}

	logger.Debugf(ctx, "reading column %q from %s", column, input)
	samples, err := loadCSVColumn(input, column)
	if err != nil {
		return nil, err
	}
	logger.Infof(ctx, "read %d samples from %s", len(samples), input)
	return samples, nil
}
