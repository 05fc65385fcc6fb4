// Package granulator exposes the real-time granular synthesis engine. It
// turns a static mono sample into a continuous stream of audio by slicing
// it into short overlapping grains, randomizing their placement within the
// loop region, windowing them, and mixing them into fixed-size buffers on
// demand.
//
// The engine is driven synchronously by a real-time audio callback via
// GenerateBuffer or RenderBuffer while parameter setters are called from a
// separate control thread. Generation copies the state it needs under a
// short critical section, does all windowing and mixing arithmetic outside
// any lock, and writes the grain pool and playhead back under a second
// short critical section, so the audio thread's worst-case stall is two
// small copies. One concurrent generator is supported.
package granulator
