package synth

import (
	"math"

	"github.com/cwbudde/algo-synth/synth/core"
)

const (
	// MinNote and MaxNote bound the MIDI note range.
	MinNote = 0
	MaxNote = 127

	a4Freq = 440.0
	twoPi  = 2 * math.Pi
)

// NoteToFreq converts a MIDI note number to its frequency in Hz.
// Note 69 (A4) maps to 440 Hz; each octave doubles the frequency.
func NoteToFreq(note int) float64 {
	return (a4Freq / 32.0) * pow2((float64(note)-9.0)/12.0)
}

// Sample returns the instantaneous sine amplitude for note at time t
// (seconds). Pure and stateless; the result is in [-1, 1].
func Sample(t float64, note int) float64 {
	return math.Sin(twoPi * t * NoteToFreq(note))
}

// ClampNote limits a note number to [MinNote, MaxNote].
func ClampNote(note int) int {
	return core.ClampInt(note, MinNote, MaxNote)
}
