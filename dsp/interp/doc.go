// Package interp provides fractional interpolation primitives used for
// grain resampling.
package interp
