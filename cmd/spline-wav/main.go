// Command spline-wav resamples WAV audio files by evaluating a natural cubic
// spline through each channel.
//
// Usage:
//
//	spline-wav --rate 48 input.wav output.wav
//	spline-wav --rate 96 --parallel=false music.wav music_hires.wav
//
// Spline resampling is smooth but not band-limited: it suits upsampling and
// control signals. Downsampling content above the new Nyquist rate aliases.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"
	"github.com/tphakala/go-cubic-spline/internal/wavio"
)

const (
	// CLI defaults
	defaultRateKHz  = 48.0
	minRequiredArgs = 2

	// Conversion constants
	kHzToHz = 1000
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "spline-wav: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	loggerLevel := logger.LevelInfo
	pflag.Var(&loggerLevel, "log-level", "Log level")
	rateKHz := pflag.Float64("rate", defaultRateKHz, "Target sample rate in kHz (e.g., 16, 44.1, 48, 96)")
	parallel := pflag.Bool("parallel", true, "Resample channels concurrently")
	workers := pflag.Int("workers", runtime.GOMAXPROCS(0), "Maximum channels resampled at once")
	pflag.Parse()

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	args := pflag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}
	inputPath, outputPath := args[0], args[1]

	targetRate, err := targetRateHz(*rateKHz)
	if err != nil {
		return err
	}

	logger.Debugf(ctx, "input: %s", inputPath)
	logger.Debugf(ctx, "output: %s", outputPath)
	logger.Debugf(ctx, "target rate: %d Hz, parallel: %v (%d workers)", targetRate, *parallel, *workers)

	start := time.Now()
	stats, err := convert(ctx, inputPath, outputPath, targetRate, *parallel, *workers)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Resampled %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %d Hz -> %d Hz (%d channels, %d-bit)\n",
		stats.inputRate, stats.outputRate, stats.channels, stats.bitDepth)
	fmt.Printf("  %d samples -> %d samples\n", stats.inputSamples, stats.outputSamples)
	fmt.Printf("  Duration: %.2fs\n", elapsed.Seconds())

	return nil
}

func convert(ctx context.Context, inputPath, outputPath string, targetRate int, parallel bool, workers int) (*resampleStats, error) {
	in, err := wavio.Read(inputPath)
	if err != nil {
		return nil, err
	}
	logger.Infof(ctx, "input format: %d Hz, %d channels, %d-bit", in.SampleRate, len(in.Channels), in.BitDepth)

	out, err := resampleAudio(ctx, in, targetRate, parallel, workers)
	if err != nil {
		return nil, err
	}

	if err := wavio.Write(outputPath, out); err != nil {
		return nil, err
	}

	return &resampleStats{
		inputRate:     in.SampleRate,
		outputRate:    out.SampleRate,
		channels:      len(out.Channels),
		bitDepth:      out.BitDepth,
		inputSamples:  in.Frames(),
		outputSamples: out.Frames(),
	}, nil
}
