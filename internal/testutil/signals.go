// Package testutil provides deterministic source material and assertion
// helpers shared by the package tests.
package testutil

import (
	"math"
	"math/rand"
)

// SineSource generates a deterministic sine wave to granulate in tests.
func SineSource(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// NoiseSource generates white noise with a fixed seed for reproducibility.
func NoiseSource(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position, handy for
// tracking where a single grain lands in the output.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Ramp generates a linear ramp from 0 to amplitude. Each sample value
// encodes its own source position, which makes extraction offsets visible.
func Ramp(amplitude float64, length int) []float64 {
	out := make([]float64, length)
	if length < 2 {
		return out
	}
	for i := range out {
		out[i] = amplitude * float64(i) / float64(length-1)
	}
	return out
}

// Peak returns the largest absolute sample value.
func Peak(data []float64) float64 {
	peak := 0.0
	for _, v := range data {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak
}

// IsSilent reports whether every sample is exactly zero.
func IsSilent(data []float64) bool {
	for _, v := range data {
		if v != 0 {
			return false
		}
	}
	return true
}
