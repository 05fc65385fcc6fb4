package granulator

import (
	"math"
	"sync"

	"github.com/splitmoong/synthesis/dsp/core"
)

// Parameter bounds. Setters clamp silently instead of rejecting input, so
// a control surface can pass raw values straight through.
const (
	MinGrainLengthPercentage = 1
	MaxGrainLengthPercentage = 100

	MinStartPositionPercentage = 0
	MaxStartPositionPercentage = 100

	MinGrainDensity = 1

	MinPitchShiftSemitones = -24.0
	MaxPitchShiftSemitones = 24.0
)

// Params holds one consistent set of granulation parameters.
type Params struct {
	// GrainLengthPercentage is the grain (and loop) length as a
	// percentage of the total source length, 1-100.
	GrainLengthPercentage int
	// GrainDensity is the target spawn rate in grains per second, >= 1.
	GrainDensity int
	// PitchShiftSemitones is the per-grain pitch offset. It only takes
	// effect when the engine is configured with a pitch processor.
	PitchShiftSemitones float64
	// StartPositionPercentage is the loop start as a percentage of the
	// total source length, 0-100.
	StartPositionPercentage int
}

// DefaultParams returns the engine defaults: half-length grains, ten
// grains per second, no pitch shift, loop from the beginning.
func DefaultParams() Params {
	return Params{
		GrainLengthPercentage:   50,
		GrainDensity:            10,
		PitchShiftSemitones:     0,
		StartPositionPercentage: 0,
	}
}

// Clamped returns a copy with every field forced into its valid range.
func (p Params) Clamped() Params {
	p.GrainLengthPercentage = core.ClampInt(p.GrainLengthPercentage,
		MinGrainLengthPercentage, MaxGrainLengthPercentage)
	p.StartPositionPercentage = core.ClampInt(p.StartPositionPercentage,
		MinStartPositionPercentage, MaxStartPositionPercentage)

	if p.GrainDensity < MinGrainDensity {
		p.GrainDensity = MinGrainDensity
	}

	if math.IsNaN(p.PitchShiftSemitones) {
		p.PitchShiftSemitones = 0
	}
	p.PitchShiftSemitones = core.Clamp(p.PitchShiftSemitones,
		MinPitchShiftSemitones, MaxPitchShiftSemitones)

	return p
}

// Store holds the current parameters behind a mutex so the control thread
// can mutate them while the audio thread reads consistent snapshots.
// Writes are last-write-wins with no acknowledgment.
type Store struct {
	mu     sync.Mutex
	params Params
}

// NewStore returns a Store seeded with p (clamped).
func NewStore(p Params) *Store {
	return &Store{params: p.Clamped()}
}

// Snapshot returns a copy of all parameters for use during one
// buffer-generation pass, so scheduling never observes a value mutating
// mid-computation.
func (s *Store) Snapshot() Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

// SetGrainLengthPercentage sets the grain length percentage, clamped to 1-100.
func (s *Store) SetGrainLengthPercentage(pct int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params.GrainLengthPercentage = core.ClampInt(pct,
		MinGrainLengthPercentage, MaxGrainLengthPercentage)
}

// SetGrainDensity sets the grain density in grains per second, floored at 1.
func (s *Store) SetGrainDensity(density int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if density < MinGrainDensity {
		density = MinGrainDensity
	}
	s.params.GrainDensity = density
}

// SetPitchShift sets the pitch shift in semitones, clamped to the
// supported range. NaN is treated as no shift.
func (s *Store) SetPitchShift(semitones float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if math.IsNaN(semitones) {
		semitones = 0
	}
	s.params.PitchShiftSemitones = core.Clamp(semitones,
		MinPitchShiftSemitones, MaxPitchShiftSemitones)
}

// SetStartPositionPercentage sets the loop start percentage, clamped to 0-100.
func (s *Store) SetStartPositionPercentage(pct int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params.StartPositionPercentage = core.ClampInt(pct,
		MinStartPositionPercentage, MaxStartPositionPercentage)
}
