package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	spline "github.com/tphakala/go-cubic-spline"
	"gonum.org/v1/plot/plotter"
)

var errColumnNotFound = errors.New("column not found")

// parseSamples converts flag values to floats.
func parseSamples(values []string) ([]float64, error) {
	samples := make([]float64, 0, len(values))
	for i, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("sample %d (%q): %w", i, v, err)
		}
		samples = append(samples, f)
	}
	return samples, nil
}

// loadCSVColumn reads one column of a CSV file.
func loadCSVColumn(path, column string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return readCSVColumn(f, column)
}

// readCSVColumn selects a column by zero-based index or by header name.
// With an index, a first row whose cell is not numeric is treated as a header.
func readCSVColumn(r io.Reader, column string) ([]float64, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	index, err := strconv.Atoi(column)
	byName := err != nil
	rows := records
	if byName {
		index = -1
		for i, name := range records[0] {
			if strings.TrimSpace(name) == column {
				index = i
				break
			}
		}
		if index < 0 {
			return nil, fmt.Errorf("%w: %q", errColumnNotFound, column)
		}
		rows = records[1:]
	} else if len(records[0]) > index && index >= 0 {
		if _, err := strconv.ParseFloat(strings.TrimSpace(records[0][index]), 64); err != nil {
			rows = records[1:]
		}
	}

	samples := make([]float64, 0, len(rows))
	for i, row := range rows {
		if index < 0 || index >= len(row) {
			return nil, fmt.Errorf("%w: row %d has %d columns", errColumnNotFound, i, len(row))
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(row[index]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		samples = append(samples, f)
	}
	return samples, nil
}

// defaultEnd returns the end of the default evaluation range.
func defaultEnd(n int) float64 {
	return float64(n-1) + defaultOvershoot
}

// curveXYs converts evaluated points for plotting.
func curveXYs(points []spline.Point) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, p := range points {
		xys[i] = plotter.XY{X: p.X, Y: p.Y}
	}
	return xys
}

// writePoints prints one "x,y" line per point.
func writePoints(w io.Writer, points []spline.Point) error {
	for _, p := range points {
		if _, err := fmt.Fprintf(w, "%g,%g\n", p.X, p.Y); err != nil {
			return err
		}
	}
	return nil
}
