package main

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/hashicorp/go-multierror"
	"github.com/remeh/sizedwaitgroup"
	spline "github.com/tphakala/go-cubic-spline"
	"github.com/tphakala/go-cubic-spline/internal/wavio"
)

// resampleStats summarises one conversion.
type resampleStats struct {
	inputRate     int
	outputRate    int
	channels      int
	bitDepth      int
	inputSamples  int
	outputSamples int
}

// resampleChannels resamples every channel with its own spline.
// With parallel set, channels run concurrently, at most workers at a time.
// All channel failures are reported together.
func resampleChannels(ctx context.Context, channels [][]float64, ratio float64, parallel bool, workers int) ([][]float64, error) {
	out := make([][]float64, len(channels))

	if !parallel || len(channels) <= 1 {
		for ch := range channels {
			resampled, err := spline.Resample(channels[ch], ratio)
			if err != nil {
				return nil, fmt.Errorf("channel %d: %w", ch, err)
			}
			out[ch] = resampled
		}
		return out, nil
	}

	var (
		mu   sync.Mutex
		mErr *multierror.Error
	)
	swg := sizedwaitgroup.New(max(workers, 1))
	for ch := range channels {
		swg.Add()
		go func(channel int) {
			defer swg.Done()
			logger.Tracef(ctx, "resampling channel %d", channel)

			resampled, err := spline.Resample(channels[channel], ratio)
			if err != nil {
				mu.Lock()
				mErr = multierror.Append(mErr, fmt.Errorf("channel %d: %w", channel, err))
				mu.Unlock()
				return
			}
			out[channel] = resampled
		}(ch)
	}
	swg.Wait()

	if err := mErr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return out, nil
}

// resampleAudio converts a decoded file to targetRate.
func resampleAudio(ctx context.Context, in *wavio.Audio, targetRate int, parallel bool, workers int) (*wavio.Audio, error) {
	if targetRate <= 0 {
		return nil, fmt.Errorf("target rate must be positive, got %d", targetRate)
	}
	if in.Frames() == 0 {
		return nil, fmt.Errorf("input has no samples")
	}

	ratio := float64(targetRate) / float64(in.SampleRate)
	logger.Debugf(ctx, "ratio %.6f (%d Hz -> %d Hz)", ratio, in.SampleRate, targetRate)

	channels, err := resampleChannels(ctx, in.Channels, ratio, parallel, workers)
	if err != nil {
		return nil, err
	}

	return &wavio.Audio{
		SampleRate: targetRate,
		BitDepth:   in.BitDepth,
		Channels:   channels,
	}, nil
}

// targetRateHz converts a kHz flag value to Hz.
func targetRateHz(rateKHz float64) (int, error) {
	if math.IsNaN(rateKHz) || rateKHz <= 0 {
		return 0, fmt.Errorf("rate must be positive, got %v kHz", rateKHz)
	}
	return int(math.Round(rateKHz * kHzToHz)), nil
}
