// Package buffer provides a reusable float64 sample buffer and pool for
// allocation-light render loops. The engine accepts raw []float64 slices;
// Buffer is an optional convenience for callers that need to size and
// reuse scratch memory across audio callbacks.
package buffer
