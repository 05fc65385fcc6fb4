package grain

import (
	"math"
	"testing"
)

func fillGrain(m *Mixer, values []float64) *Grain {
	g := m.Acquire(len(values))
	if g != nil {
		copy(g.Samples, values)
	}
	return g
}

func TestRenderEmptyPoolIsSilent(t *testing.T) {
	m := NewMixer(8)
	dst := []float64{1, 2, 3, 4}

	m.Render(dst)
	for i, v := range dst {
		if v != 0 {
			t.Fatalf("dst[%d] = %v, want 0", i, v)
		}
	}
}

func TestRenderNormalizesPeakToOne(t *testing.T) {
	m := NewMixer(8)
	fillGrain(m, []float64{0.1, 0.4, 0.2, 0.1})

	dst := make([]float64, 4)
	m.Render(dst)

	peak := 0.0
	for _, v := range dst {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	if math.Abs(peak-1) > 1e-12 {
		t.Fatalf("peak = %v, want 1", peak)
	}
	// Relative shape preserved: 0.4 maps to 1, 0.1 maps to 0.25.
	if math.Abs(dst[0]-0.25) > 1e-12 {
		t.Fatalf("dst[0] = %v, want 0.25", dst[0])
	}
}

func TestRenderSumsOverlappingGrains(t *testing.T) {
	m := NewMixer(8)
	fillGrain(m, []float64{0.2, 0.2})
	fillGrain(m, []float64{0.2, -0.2, 0.4})

	dst := make([]float64, 4)
	m.Render(dst)

	// Pre-normalization sums: 0.4, 0.0, 0.4, 0.0 — peak 0.4.
	want := []float64{1, 0, 1, 0}
	for i := range want {
		if math.Abs(dst[i]-want[i]) > 1e-12 {
			t.Fatalf("dst = %v, want %v", dst, want)
		}
	}
}

func TestGrainLifecycleAcrossBuffers(t *testing.T) {
	m := NewMixer(8)
	g := fillGrain(m, []float64{0.5, 0.5, 0.5, 0.5, 0.5})

	dst := make([]float64, 2)

	m.Render(dst)
	if g.Cursor != 2 || m.Active() != 1 {
		t.Fatalf("after first buffer: cursor=%d active=%d", g.Cursor, m.Active())
	}

	m.Render(dst)
	if g.Cursor != 4 || m.Active() != 1 {
		t.Fatalf("after second buffer: cursor=%d active=%d", g.Cursor, m.Active())
	}

	// Final sample mixed; grain must be dropped, never resurrected.
	m.Render(dst)
	if m.Active() != 0 {
		t.Fatalf("active = %d, want 0", m.Active())
	}
	if dst[0] == 0 {
		t.Fatal("expected the grain tail in the final buffer")
	}

	m.Render(dst)
	if dst[0] != 0 || dst[1] != 0 {
		t.Fatalf("expected silence after grain finished, got %v", dst)
	}
}

func TestRenderSubEpsilonPeakYieldsExactZeros(t *testing.T) {
	m := NewMixer(8)
	fillGrain(m, []float64{1e-12, -1e-12})

	dst := make([]float64, 2)
	m.Render(dst)
	if dst[0] != 0 || dst[1] != 0 {
		t.Fatalf("expected exact zeros, got %v", dst)
	}
}

func TestClearDropsActiveGrains(t *testing.T) {
	m := NewMixer(8)
	fillGrain(m, []float64{0.5, 0.5})
	fillGrain(m, []float64{0.5, 0.5})

	m.Clear()
	if m.Active() != 0 {
		t.Fatalf("active = %d, want 0", m.Active())
	}

	dst := make([]float64, 2)
	m.Render(dst)
	if dst[0] != 0 || dst[1] != 0 {
		t.Fatalf("expected silence after Clear, got %v", dst)
	}
}

func TestAcquireExhaustion(t *testing.T) {
	m := NewMixer(2)

	if m.Acquire(4) == nil || m.Acquire(4) == nil {
		t.Fatal("expected two successful acquisitions")
	}
	if m.Acquire(4) != nil {
		t.Fatal("expected nil once pool is exhausted")
	}

	// Draining the pool frees slots for reuse.
	dst := make([]float64, 16)
	m.Render(dst)
	if m.Acquire(4) == nil {
		t.Fatal("expected acquisition after slots were recycled")
	}
}

func BenchmarkRender(b *testing.B) {
	m := NewMixer(64)
	dst := make([]float64, 1024)

	grainData := make([]float64, 4096)
	for i := range grainData {
		grainData[i] = math.Sin(float64(i) * 0.01)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if m.Active() < 32 {
			fillGrain(m, grainData)
		}
		m.Render(dst)
	}
}
