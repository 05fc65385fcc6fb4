package granulator

import (
	"sync"

	"github.com/splitmoong/synthesis/dsp/core"
	"github.com/splitmoong/synthesis/dsp/grain"
)

// Engine is the granular synthesis engine. Construct with New, feed it a
// source via SetAudioSource, and pull audio with GenerateBuffer or
// RenderBuffer. Parameter setters may be called concurrently from a
// control thread; see the package documentation for the locking model.
type Engine struct {
	cfg       Config
	store     *Store
	sched     *grain.Scheduler
	extractor *grain.Extractor

	mu         sync.Mutex
	source     []float64
	sampleRate int
	playhead   int
	generation uint64
	mixer      *grain.Mixer // nil while stolen by an in-flight render
}

// New creates an engine with the given options applied to DefaultConfig.
func New(opts ...Option) *Engine {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &Engine{
		cfg:       cfg,
		store:     NewStore(DefaultParams()),
		sched:     grain.NewScheduler(cfg.Seed),
		extractor: grain.NewExtractor(cfg.Window),
		mixer:     grain.NewMixer(cfg.GrainCapacity),
	}
}

// SetAudioSource replaces the current source wholesale. The engine takes
// ownership of samples; the caller must not mutate the slice afterwards.
// The playhead resets to zero and every active grain is cleared, so no
// grain ever references a source that no longer exists.
func (e *Engine) SetAudioSource(samples []float64, sampleRate int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.source = samples
	e.sampleRate = sampleRate
	e.playhead = 0
	e.generation++
	if e.mixer != nil {
		e.mixer.Clear()
	}
}

// ClearAudioSource removes the source; subsequent buffers are silent.
func (e *Engine) ClearAudioSource() {
	e.SetAudioSource(nil, 0)
}

// SetGrainLengthPercentage sets the grain length percentage, clamped to 1-100.
func (e *Engine) SetGrainLengthPercentage(pct int) {
	e.store.SetGrainLengthPercentage(pct)
}

// SetGrainDensity sets the grain density in grains per second, floored at 1.
func (e *Engine) SetGrainDensity(density int) {
	e.store.SetGrainDensity(density)
}

// SetPitchShift sets the per-grain pitch shift in semitones, clamped.
// Without a configured pitch processor the value is stored but has no
// audible effect.
func (e *Engine) SetPitchShift(semitones float64) {
	e.store.SetPitchShift(semitones)
}

// SetStartPositionPercentage sets the loop start percentage, clamped to
// 0-100, and resets the playhead to the new loop start.
func (e *Engine) SetStartPositionPercentage(pct int) {
	e.store.SetStartPositionPercentage(pct)

	e.mu.Lock()
	e.playhead = 0
	e.mu.Unlock()
}

// Params returns a snapshot of the current parameters.
func (e *Engine) Params() Params {
	return e.store.Snapshot()
}

// SampleRate returns the sample rate of the current source, or zero when
// no source is loaded.
func (e *Engine) SampleRate() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sampleRate
}

// CurrentLoopRegion returns the active loop range in samples, derived from
// the source length and the start/length parameters. Returns (0, 0) when
// no usable source is loaded.
func (e *Engine) CurrentLoopRegion() (startSample, endSample int) {
	e.mu.Lock()
	total := len(e.source)
	rate := e.sampleRate
	e.mu.Unlock()

	if total == 0 || rate <= 0 {
		return 0, 0
	}

	p := e.store.Snapshot()
	r := grain.ComputeRegion(total, p.StartPositionPercentage, p.GrainLengthPercentage)
	return r.Start, r.End
}

// Playhead returns the loop-relative playhead position in samples.
func (e *Engine) Playhead() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.playhead
}

// ActiveGrains returns the number of currently sounding grains.
func (e *Engine) ActiveGrains() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.mixer == nil {
		return 0
	}
	return e.mixer.Active()
}

// GenerateBuffer returns numFrames of granulated audio. With no source
// loaded (or a degenerate one) it returns numFrames of silence rather
// than failing. Non-positive frame counts yield an empty buffer.
func (e *Engine) GenerateBuffer(numFrames int) []float64 {
	if numFrames <= 0 {
		return []float64{}
	}

	out := make([]float64, numFrames)
	e.RenderBuffer(out)
	return out
}

// RenderBuffer fills dst with granulated audio. It is the allocation-free
// variant of GenerateBuffer for callers that reuse buffers.
func (e *Engine) RenderBuffer(dst []float64) {
	if len(dst) == 0 {
		return
	}

	e.mu.Lock()
	src := e.source
	rate := e.sampleRate
	playhead := e.playhead
	gen := e.generation
	m := e.mixer
	e.mixer = nil
	e.mu.Unlock()

	if m == nil {
		// A second concurrent render; only one consumer is supported.
		core.Zero(dst)
		return
	}

	params := e.store.Snapshot()

	if len(src) == 0 || rate <= 0 {
		m.Clear()
		core.Zero(dst)
		e.writeback(m, gen, 0)
		return
	}

	total := len(src)
	region := grain.ComputeRegion(total, params.StartPositionPercentage, params.GrainLengthPercentage)
	grainLen := grain.Length(total, params.GrainLengthPercentage)

	// Advance before scheduling so grains in this buffer anchor to the
	// new loop position, shifting the texture continuously.
	playhead = e.sched.AdvancePlayhead(playhead, len(dst), region.Duration())

	for i, n := 0, e.sched.TriggerCount(params.GrainDensity, len(dst), rate); i < n; i++ {
		start := e.sched.SourceStart(region, playhead, grainLen)

		g := m.Acquire(grainLen)
		if g == nil {
			break
		}

		e.extractor.ExtractInto(g.Samples, src, start)

		if e.cfg.Pitch != nil && params.PitchShiftSemitones != 0 {
			g.Samples = e.cfg.Pitch.Process(g.Samples, params.PitchShiftSemitones)
		}
	}

	m.Render(dst)
	e.writeback(m, gen, playhead)
}

// writeback returns the mixer and, provided no source swap happened during
// the computation, commits the advanced playhead. After a swap the
// computed state refers to a source that is gone, so the pool is cleared
// and the reset playhead stands.
func (e *Engine) writeback(m *grain.Mixer, gen uint64, playhead int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.generation == gen {
		e.playhead = playhead
	} else {
		m.Clear()
	}
	e.mixer = m
}
