package grain

import "testing"

func TestComputeRegion(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		startPct  int
		lengthPct int
		wantStart int
		wantEnd   int
	}{
		{name: "full source", total: 44100, startPct: 0, lengthPct: 100, wantStart: 0, wantEnd: 44100},
		{name: "half from start", total: 44100, startPct: 0, lengthPct: 50, wantStart: 0, wantEnd: 22050},
		{name: "offset start", total: 1000, startPct: 25, lengthPct: 50, wantStart: 250, wantEnd: 750},
		{name: "end clipped", total: 1000, startPct: 90, lengthPct: 50, wantStart: 900, wantEnd: 1000},
		{name: "start at 100 clamps inside", total: 1000, startPct: 100, lengthPct: 10, wantStart: 999, wantEnd: 1000},
		{name: "tiny source", total: 1, startPct: 0, lengthPct: 100, wantStart: 0, wantEnd: 1},
		{name: "zero length pct floors to one sample", total: 1000, startPct: 0, lengthPct: 0, wantStart: 0, wantEnd: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ComputeRegion(tt.total, tt.startPct, tt.lengthPct)
			if r.Start != tt.wantStart || r.End != tt.wantEnd {
				t.Fatalf("ComputeRegion(%d, %d, %d) = {%d, %d}, want {%d, %d}",
					tt.total, tt.startPct, tt.lengthPct, r.Start, r.End, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestComputeRegionEmptySource(t *testing.T) {
	r := ComputeRegion(0, 50, 50)
	if r.Start != 0 || r.End != 0 {
		t.Fatalf("expected zero region, got {%d, %d}", r.Start, r.End)
	}
	if r.Duration() != 1 {
		t.Fatalf("Duration() = %d, want 1", r.Duration())
	}
}

func TestLengthAlwaysPositive(t *testing.T) {
	for _, pct := range []int{1, 10, 50, 100} {
		for _, total := range []int{1, 2, 99, 44100} {
			if got := Length(total, pct); got < 1 {
				t.Fatalf("Length(%d, %d) = %d, want >= 1", total, pct, got)
			}
		}
	}

	if got := Length(44100, 50); got != 22050 {
		t.Fatalf("Length(44100, 50) = %d, want 22050", got)
	}
}

func TestDurationNeverBelowOne(t *testing.T) {
	r := Region{Start: 10, End: 10}
	if r.Duration() != 1 {
		t.Fatalf("Duration() = %d, want 1", r.Duration())
	}
}
