// Package buffer provides a reusable float64 buffer type and pool for
// allocation-friendly mixing. The granulator's accumulator and scratch
// buffers live here so the generation hot path reuses memory instead of
// allocating per request.
package buffer
