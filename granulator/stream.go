package granulator

import (
	"encoding/binary"
	"math"

	"github.com/splitmoong/synthesis/dsp/buffer"
	"github.com/splitmoong/synthesis/dsp/core"
)

// Stream adapts an Engine to io.Reader for pull-model playback backends,
// rendering mono signed 16-bit little-endian PCM on demand. Render blocks
// are drawn from a buffer pool sized by the backend's requests, so
// steady-state reads do not allocate.
//
// Stream inherits the engine's single-consumer rule: use one Stream per
// engine and do not mix Stream reads with direct GenerateBuffer calls.
type Stream struct {
	engine *Engine
	gain   float64
	blocks *buffer.Pool
}

// NewStream returns a Stream over e with a linear gain applied to every
// sample before quantization. Use core.DBToLinear to derive gain from
// decibels.
func NewStream(e *Engine, gain float64) *Stream {
	return &Stream{
		engine: e,
		gain:   gain,
		blocks: buffer.NewPool(),
	}
}

// Read fills p with rendered PCM. It always consumes a whole number of
// frames; with an odd-length p the trailing byte is left untouched.
func (s *Stream) Read(p []byte) (int, error) {
	frames := len(p) / 2
	if frames == 0 {
		return 0, nil
	}

	block := s.blocks.Get(frames)
	defer s.blocks.Put(block)

	samples := block.Samples()
	s.engine.RenderBuffer(samples)

	for i, v := range samples {
		scaled := core.Clamp(v*s.gain, -1, 1)
		sample := int16(math.Round(scaled * 32767))
		binary.LittleEndian.PutUint16(p[2*i:], uint16(sample))
	}
	return frames * 2, nil
}
