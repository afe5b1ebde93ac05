package speech

import (
	"math"
	"time"
)

const (
	chunkFrames            = 1024
	initialEnergyThreshold = 300.0
	// energy threshold damping per second of audio
	dynamicEnergyDamping = 0.15
	dynamicEnergyRatio   = 1.5
)

// AdjustForAmbientNoise samples up to duration of src and returns the
// energy threshold that separates speech from the noise floor. The
// source is rewound afterwards so recording sees the whole stream.
func AdjustForAmbientNoise(src *AudioFile, duration time.Duration) float64 {
	threshold := initialEnergyThreshold
	if src.SampleRate() == 0 {
		return threshold
	}

	secondsPerBuffer := float64(chunkFrames) / float64(src.SampleRate())
	damping := math.Pow(dynamicEnergyDamping, secondsPerBuffer)

	elapsed := 0.0
	for {
		elapsed += secondsPerBuffer
		if elapsed > duration.Seconds() {
			break
		}

		chunk := src.Read(chunkFrames)
		if len(chunk) == 0 {
			break
		}

		target := rms(chunk) * dynamicEnergyRatio
		threshold = threshold*damping + target*(1-damping)
	}

	src.Rewind()
	return threshold
}

func rms(samples []int) float64 {
	if len(samples) == 0 {
		return 0
	}

	var sum float64
	for _, s := range samples {
		v := float64(s)
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(samples)))
}
