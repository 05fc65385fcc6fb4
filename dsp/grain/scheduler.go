package grain

import "math/rand"

// Scheduler decides how many grains a buffer request spawns and where each
// one reads from. Placement randomness comes from an explicit seeded
// generator so scheduling is reproducible. Not safe for concurrent use.
type Scheduler struct {
	rng *rand.Rand
}

// NewScheduler returns a Scheduler seeded deterministically.
func NewScheduler(seed int64) *Scheduler {
	return &Scheduler{rng: rand.New(rand.NewSource(seed))}
}

// AdvancePlayhead moves the loop-relative playhead forward by numFrames,
// wrapped modulo duration. Duration values below one are treated as one.
func (s *Scheduler) AdvancePlayhead(playhead, numFrames, duration int) int {
	if duration < 1 {
		duration = 1
	}

	playhead = (playhead + numFrames) % duration
	if playhead < 0 {
		playhead += duration
	}
	return playhead
}

// TriggerCount returns how many grains to spawn for a request of numFrames.
// The count follows density*numFrames/sampleRate; when that truncates to
// zero but one grain interval still fits inside the buffer, a single grain
// is forced so low densities remain audible at small buffer sizes.
func (s *Scheduler) TriggerCount(density, numFrames, sampleRate int) int {
	if density <= 0 || sampleRate <= 0 || numFrames <= 0 {
		return 0
	}

	count := density * numFrames / sampleRate
	if count == 0 && float64(sampleRate)/float64(density) <= float64(numFrames) {
		count = 1
	}
	return count
}

// SourceStart returns the source index a new grain reads from: the loop
// start plus the playhead anchor plus an independent uniform deviation in
// [-grainLength/2, +grainLength/2]. The result may be negative or beyond
// the source end; extraction resolves that by wrapping.
func (s *Scheduler) SourceStart(r Region, playhead, grainLength int) int {
	return r.Start + playhead + s.deviation(grainLength)
}

func (s *Scheduler) deviation(grainLength int) int {
	radius := grainLength / 2
	if radius <= 0 {
		return 0
	}
	return s.rng.Intn(2*radius+1) - radius
}
