// Package wavio reads and writes PCM WAV files as planar, normalised float64
// channels.
package wavio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/tphakala/simd/f64"
)

// Sample format constants
const (
	wavFormatPCM    = 1 // WAVE_FORMAT_PCM
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32
)

var (
	// ErrInvalidWAV indicates the input is not a readable WAV stream.
	ErrInvalidWAV = errors.New("invalid WAV file")

	// ErrUnsupportedFormat indicates a WAV encoding this package does not handle.
	ErrUnsupportedFormat = errors.New("unsupported WAV format")

	// ErrInvalidAudio indicates inconsistent in-memory audio.
	ErrInvalidAudio = errors.New("invalid audio data")
)

// Audio is a decoded WAV file. Channels are planar and scaled to [-1, 1].
type Audio struct {
	SampleRate int
	BitDepth   int
	Channels   [][]float64
}

// Frames returns the number of samples per channel.
func (a *Audio) Frames() int {
	if len(a.Channels) == 0 {
		return 0
	}
	return len(a.Channels[0])
}

// Validate checks if the audio can be encoded.
func (a *Audio) Validate() error {
	if a.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive", ErrInvalidAudio)
	}
	if len(a.Channels) == 0 {
		return fmt.Errorf("%w: no channels", ErrInvalidAudio)
	}
	for ch := range a.Channels {
		if len(a.Channels[ch]) != len(a.Channels[0]) {
			return fmt.Errorf("%w: channel %d has %d frames, channel 0 has %d",
				ErrInvalidAudio, ch, len(a.Channels[ch]), len(a.Channels[0]))
		}
	}
	if _, err := fullScale(a.BitDepth); err != nil {
		return err
	}
	return nil
}

// fullScale returns the largest positive integer sample for a bit depth.
func fullScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitsPerSample16, bitsPerSample24, bitsPerSample32:
		return float64(int64(1)<<(bitDepth-1)) - 1, nil
	default:
		return 0, fmt.Errorf("%w: %d-bit samples", ErrUnsupportedFormat, bitDepth)
	}
}

// Read opens and decodes a WAV file.
func Read(path string) (*Audio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode reads an entire PCM WAV stream.
func Decode(r io.ReadSeeker) (*Audio, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, ErrInvalidWAV
	}
	if decoder.WavAudioFormat != wavFormatPCM {
		return nil, fmt.Errorf("%w: audio format %d (only PCM is supported)", ErrUnsupportedFormat, decoder.WavAudioFormat)
	}

	bitDepth := int(decoder.BitDepth)
	scale, err := fullScale(bitDepth)
	if err != nil {
		return nil, err
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWAV, err)
	}

	numChannels := buf.Format.NumChannels
	if numChannels < 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidWAV, numChannels)
	}

	frames := len(buf.Data) / numChannels
	channels := make([][]float64, numChannels)
	for ch := range channels {
		channels[ch] = make([]float64, frames)
		for i := range frames {
			channels[ch][i] = float64(buf.Data[i*numChannels+ch])
		}
		f64.Scale(channels[ch], channels[ch], 1/scale)
	}

	return &Audio{
		SampleRate: buf.Format.SampleRate,
		BitDepth:   bitDepth,
		Channels:   channels,
	}, nil
}

// Write encodes a to a new WAV file at path.
func Write(path string, a *Audio) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := Encode(f, a); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Encode writes a as interleaved integer PCM. Values outside [-1, 1] are
// clipped.
func Encode(w io.WriteSeeker, a *Audio) error {
	if err := a.Validate(); err != nil {
		return err
	}
	scale, _ := fullScale(a.BitDepth)

	numChannels := len(a.Channels)
	frames := a.Frames()
	data := make([]int, frames*numChannels)
	scaled := make([]float64, frames)
	for ch, samples := range a.Channels {
		f64.Scale(scaled, samples, scale)
		for i, v := range scaled {
			data[i*numChannels+ch] = quantize(v, scale)
		}
	}

	encoder := wav.NewEncoder(w, a.SampleRate, a.BitDepth, numChannels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  a.SampleRate,
		},
		Data:           data,
		SourceBitDepth: a.BitDepth,
	}
	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV: %w", err)
	}
	return nil
}

// quantize rounds and clips a scaled sample to the integer range.
func quantize(v, scale float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v > scale:
		return int(scale)
	case v < -scale-1:
		return int(-scale - 1)
	default:
		return int(math.Round(v))
	}
}
