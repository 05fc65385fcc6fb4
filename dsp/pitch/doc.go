// Package pitch provides optional per-grain pitch shifting. The engine
// applies a Processor to each freshly extracted grain when one is
// configured; by default none is, and grains play at native pitch.
//
// Included processors:
//   - ResamplingShifter: Hermite resampling; changes grain length.
//   - SpectralShifter: FFT bin shifting; preserves grain length.
package pitch
