package grain

// Grain is one windowed slice of source audio. Samples holds the fully
// prepared (extracted and windowed) data; Cursor is the next sample to be
// mixed. A grain is finished once Cursor reaches the end of Samples and is
// never re-entered.
type Grain struct {
	Samples []float64
	Cursor  int
}

// Remaining returns how many samples are left to mix.
func (g *Grain) Remaining() int {
	return len(g.Samples) - g.Cursor
}

// Done reports whether the grain has been fully mixed.
func (g *Grain) Done() bool {
	return g.Cursor >= len(g.Samples)
}
