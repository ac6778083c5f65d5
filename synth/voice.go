package synth

import "github.com/cwbudde/algo-synth/synth/core"

// Voice is one active or releasing note. Voices are owned exclusively by
// a Pool; no other component may retain one across render calls.
type Voice struct {
	note       int
	pressedAt  float64
	releasedAt float64
	active     bool
	attack     float64 // snapshotted at note-on
	release    float64 // snapshotted at note-off
}

func newVoice(note int, t, attack float64) Voice {
	return Voice{
		note:      note,
		pressedAt: t,
		active:    true,
		attack:    attack,
	}
}

// Note returns the MIDI note number this voice is sounding.
func (v *Voice) Note() int { return v.note }

// Active reports whether the voice is between note-on and note-off.
// A voice that never receives a note-off sustains at full gain; that is
// intended behavior, not a leak.
func (v *Voice) Active() bool { return v.active }

// releaseAt transitions the voice to releasing at time t.
func (v *Voice) releaseAt(t, release float64) {
	v.active = false
	v.releasedAt = t
	v.release = release
}

// AttackGain is 0 at the instant the note starts and ramps linearly to 1
// over the attack time, holding 1 thereafter.
func (v *Voice) AttackGain(t float64) float64 {
	return core.Clamp((t-v.pressedAt)/v.attack, 0, 1)
}

// ReleaseGain is 1 while the voice is active; once released it ramps
// linearly from 1 to 0 over the release time and floors at 0.
func (v *Voice) ReleaseGain(t float64) float64 {
	if v.active {
		return 1
	}
	return core.Clamp(1-(t-v.releasedAt)/v.release, 0, 1)
}

// AmplitudeAt returns the envelope-shaped oscillator sample for this
// voice at the global time t.
func (v *Voice) AmplitudeAt(t float64) float64 {
	return Sample(t, v.note) * v.AttackGain(t) * v.ReleaseGain(t)
}

// IsDead reports whether the voice has fully decayed. Dead voices must
// never contribute to output; Pool.Prune removes them.
func (v *Voice) IsDead(t float64) bool {
	return !v.active && v.ReleaseGain(t) <= 0
}
