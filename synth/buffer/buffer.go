package buffer

import "github.com/cwbudde/algo-synth/synth/core"

// Buffer wraps a float64 sample slice with reuse-friendly semantics.
// Render functions accept raw []float64; use Samples() to bridge.
type Buffer struct {
	samples []float64
}

// New returns a zero-filled Buffer of the given length.
func New(length int) *Buffer {
	if length < 0 {
		length = 0
	}
	return &Buffer{samples: make([]float64, length)}
}

// Samples returns the underlying slice.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Resize sets the length to n, reusing existing capacity when possible.
// Elements beyond the previous length are zeroed; growing past capacity
// discards prior contents.
func (b *Buffer) Resize(n int) {
	oldLen := len(b.samples)
	b.samples = core.EnsureLen(b.samples, n)
	if n > oldLen {
		core.Zero(b.samples[oldLen:])
	}
}

// Zero sets all samples to 0.
func (b *Buffer) Zero() {
	core.Zero(b.samples)
}
