package testutil

import "math"

// Goertzel is a single-bin DFT analyzer used by tests to measure how much
// energy a rendered signal carries at one target frequency. The block
// length sets the frequency resolution; for the short blocks used in
// tests a few hundred samples is plenty to separate semitones.
type Goertzel struct {
	coeff  float64
	s0, s1 float64
}

// NewGoertzel creates an analyzer for frequency at sampleRate.
func NewGoertzel(frequency, sampleRate float64) *Goertzel {
	return &Goertzel{coeff: 2 * math.Cos(2*math.Pi*frequency/sampleRate)}
}

// ProcessBlock accumulates a block of samples.
func (g *Goertzel) ProcessBlock(input []float64) {
	s0, s1 := g.s0, g.s1
	coeff := g.coeff
	for _, x := range input {
		s := x + coeff*s0 - s1
		s1 = s0
		s0 = s
	}
	g.s0, g.s1 = s0, s1
}

// Power returns the squared magnitude of the frequency component over all
// samples processed so far.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// TonePower measures the power of a single frequency in one shot.
func TonePower(input []float64, frequency, sampleRate float64) float64 {
	g := NewGoertzel(frequency, sampleRate)
	g.ProcessBlock(input)
	return g.Power()
}
