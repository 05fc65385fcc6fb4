package grain

import "testing"

func TestAdvancePlayheadWraps(t *testing.T) {
	s := NewScheduler(1)

	tests := []struct {
		name      string
		playhead  int
		numFrames int
		duration  int
		want      int
	}{
		{name: "no wrap", playhead: 0, numFrames: 512, duration: 1024, want: 512},
		{name: "exact wrap", playhead: 512, numFrames: 512, duration: 1024, want: 0},
		{name: "wrap past", playhead: 1000, numFrames: 100, duration: 1024, want: 76},
		{name: "degenerate duration", playhead: 5, numFrames: 3, duration: 0, want: 0},
		{name: "stale playhead past duration", playhead: 5000, numFrames: 10, duration: 1024, want: 914},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.AdvancePlayhead(tt.playhead, tt.numFrames, tt.duration)
			if got != tt.want {
				t.Fatalf("AdvancePlayhead(%d, %d, %d) = %d, want %d",
					tt.playhead, tt.numFrames, tt.duration, got, tt.want)
			}
			if got < 0 || got >= maxInt(tt.duration, 1) {
				t.Fatalf("playhead %d outside [0, %d)", got, maxInt(tt.duration, 1))
			}
		})
	}
}

func TestTriggerCount(t *testing.T) {
	s := NewScheduler(1)

	tests := []struct {
		name       string
		density    int
		numFrames  int
		sampleRate int
		want       int
	}{
		{name: "density two small buffer", density: 2, numFrames: 1024, sampleRate: 44100, want: 0},
		{name: "density fifty forces one", density: 50, numFrames: 1024, sampleRate: 44100, want: 1},
		{name: "high density", density: 100, numFrames: 44100, sampleRate: 44100, want: 100},
		{name: "interval exactly fits", density: 50, numFrames: 882, sampleRate: 44100, want: 1},
		{name: "zero density", density: 0, numFrames: 1024, sampleRate: 44100, want: 0},
		{name: "zero frames", density: 50, numFrames: 0, sampleRate: 44100, want: 0},
		{name: "invalid rate", density: 50, numFrames: 1024, sampleRate: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.TriggerCount(tt.density, tt.numFrames, tt.sampleRate)
			if got != tt.want {
				t.Fatalf("TriggerCount(%d, %d, %d) = %d, want %d",
					tt.density, tt.numFrames, tt.sampleRate, got, tt.want)
			}
		})
	}
}

func TestSourceStartDeviationBounds(t *testing.T) {
	s := NewScheduler(42)
	r := Region{Start: 1000, End: 3000}

	const (
		playhead    = 500
		grainLength = 200
	)
	radius := grainLength / 2
	anchor := r.Start + playhead

	sawLow, sawHigh := false, false
	for i := 0; i < 2000; i++ {
		start := s.SourceStart(r, playhead, grainLength)
		if start < anchor-radius || start > anchor+radius {
			t.Fatalf("start %d outside [%d, %d]", start, anchor-radius, anchor+radius)
		}
		if start < anchor {
			sawLow = true
		}
		if start > anchor {
			sawHigh = true
		}
	}

	if !sawLow || !sawHigh {
		t.Fatal("expected deviations on both sides of the anchor")
	}
}

func TestSourceStartSingleSampleGrain(t *testing.T) {
	s := NewScheduler(7)
	r := Region{Start: 10, End: 20}

	for i := 0; i < 50; i++ {
		if got := s.SourceStart(r, 3, 1); got != 13 {
			t.Fatalf("SourceStart = %d, want 13 (no deviation for radius 0)", got)
		}
	}
}

func TestSchedulerDeterministicBySeed(t *testing.T) {
	a := NewScheduler(99)
	b := NewScheduler(99)
	r := Region{Start: 0, End: 10000}

	for i := 0; i < 100; i++ {
		sa := a.SourceStart(r, 100, 1000)
		sb := b.SourceStart(r, 100, 1000)
		if sa != sb {
			t.Fatalf("draw %d diverged: %d vs %d", i, sa, sb)
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
