package window

// Envelope memoizes window coefficients by length. Grain lengths change only
// when the source or the length parameter changes, so after warm-up every
// grain reuses a cached coefficient slice and windowing allocates nothing.
//
// Cached slices are shared; callers must not mutate them. Envelope is not
// safe for concurrent use — each engine owns one and uses it from the
// generation path only.
type Envelope struct {
	typ   Type
	cache map[int][]float64
}

// NewEnvelope returns an Envelope producing windows of the given type.
func NewEnvelope(t Type) *Envelope {
	return &Envelope{
		typ:   t,
		cache: make(map[int][]float64),
	}
}

// Coefficients returns the window of the given length, generating and
// caching it on first use. Returns nil for non-positive lengths.
func (e *Envelope) Coefficients(length int) []float64 {
	if length <= 0 {
		return nil
	}

	if coeffs, ok := e.cache[length]; ok {
		return coeffs
	}

	coeffs := Generate(e.typ, length)
	e.cache[length] = coeffs

	return coeffs
}

// ApplyTo windows buf in place using the cached coefficients for its length.
func (e *Envelope) ApplyTo(buf []float64) {
	coeffs := e.Coefficients(len(buf))
	if coeffs == nil {
		return
	}

	_ = ApplyCoefficientsInPlace(buf, coeffs)
}

// Reset drops all cached coefficients.
func (e *Envelope) Reset() {
	e.cache = make(map[int][]float64)
}
