package granulator

import (
	"github.com/splitmoong/synthesis/dsp/grain"
	"github.com/splitmoong/synthesis/dsp/pitch"
	"github.com/splitmoong/synthesis/dsp/window"
)

// Defaults shared with the surrounding application.
const (
	// DefaultSampleRate is assumed by callers that synthesize their own
	// source material.
	DefaultSampleRate = 44100
	// DefaultBufferSize is a typical real-time callback frame count.
	DefaultBufferSize = 1024
)

// Config collects construction-time engine settings. Runtime parameters
// live in Params; Config holds what must not change while running.
type Config struct {
	// GrainCapacity bounds the number of simultaneously sounding grains.
	// When the pool is full, excess grains within a buffer are dropped.
	GrainCapacity int
	// Seed initializes the scheduling random generator, making grain
	// placement reproducible for a given parameter and call sequence.
	Seed int64
	// Window selects the grain taper.
	Window window.Type
	// Pitch, when non-nil, is applied to every extracted grain whose
	// pitch-shift parameter is nonzero. Nil leaves grains at native pitch.
	Pitch pitch.Processor
}

// DefaultConfig returns the standard engine configuration.
func DefaultConfig() Config {
	return Config{
		GrainCapacity: grain.DefaultPoolCapacity,
		Seed:          1,
		Window:        window.TypeHann,
	}
}

// Option mutates a Config.
type Option func(*Config)

// WithGrainCapacity sets the active-grain pool capacity.
func WithGrainCapacity(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.GrainCapacity = n
		}
	}
}

// WithSeed sets the scheduling random seed.
func WithSeed(seed int64) Option {
	return func(cfg *Config) {
		cfg.Seed = seed
	}
}

// WithWindowType sets the grain taper window.
func WithWindowType(t window.Type) Option {
	return func(cfg *Config) {
		cfg.Window = t
	}
}

// WithPitchProcessor installs a per-grain pitch shifter.
func WithPitchProcessor(p pitch.Processor) Option {
	return func(cfg *Config) {
		cfg.Pitch = p
	}
}
