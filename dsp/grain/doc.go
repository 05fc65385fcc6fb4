// Package grain implements the granular synthesis core: loop region
// derivation, grain scheduling, windowed wrap-around extraction, and
// mixing of the active grain pool into output buffers.
package grain
