package speech

import (
	"fmt"
	"os"
	"time"

	"github.com/go-audio/wav"
)

// AudioFile is a decoded PCM WAV file mixed down to mono and held in memory.
// It is read sequentially in frames, like a microphone stream.
type AudioFile struct {
	samples     []int
	sampleRate  int
	sampleWidth int
	pos         int
}

// OpenAudioFile decodes the PCM WAV at path.
func OpenAudioFile(path string) (*AudioFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audio file: %w", err)
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return nil, fmt.Errorf("audio file %s is not a valid PCM WAV", path)
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decode audio file: %w", err)
	}

	channels := int(d.NumChans)
	if channels < 1 {
		channels = 1
	}

	return &AudioFile{
		samples:     mixDown(buf.Data, channels),
		sampleRate:  int(d.SampleRate),
		sampleWidth: int(d.BitDepth) / 8,
	}, nil
}

// NewAudioFile wraps mono samples already in memory.
func NewAudioFile(samples []int, sampleRate, sampleWidth int) *AudioFile {
	return &AudioFile{
		samples:     samples,
		sampleRate:  sampleRate,
		sampleWidth: sampleWidth,
	}
}

func mixDown(data []int, channels int) []int {
	if channels == 1 {
		return data
	}

	frames := len(data) / channels
	mono := make([]int, frames)
	for i := 0; i < frames; i++ {
		sum := 0
		for c := 0; c < channels; c++ {
			sum += data[i*channels+c]
		}
		mono[i] = sum / channels
	}
	return mono
}

func (a *AudioFile) SampleRate() int {
	return a.sampleRate
}

// SampleWidth is the sample size in bytes.
func (a *AudioFile) SampleWidth() int {
	return a.sampleWidth
}

// Read returns up to frames samples from the current position.
// An empty slice means the stream is exhausted.
func (a *AudioFile) Read(frames int) []int {
	if a.pos >= len(a.samples) {
		return nil
	}

	end := a.pos + frames
	if end > len(a.samples) {
		end = len(a.samples)
	}

	chunk := a.samples[a.pos:end]
	a.pos = end
	return chunk
}

func (a *AudioFile) Rewind() {
	a.pos = 0
}

func (a *AudioFile) Position() int {
	return a.pos
}

func (a *AudioFile) Duration() time.Duration {
	if a.sampleRate == 0 {
		return 0
	}
	return time.Duration(len(a.samples)) * time.Second / time.Duration(a.sampleRate)
}
