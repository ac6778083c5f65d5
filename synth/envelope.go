package synth

// minEnvelopeSeconds floors attack and release times. The floor keeps the
// envelope division away from zero and avoids instantaneous level jumps
// that would click.
const minEnvelopeSeconds = 0.001

// Envelope holds linear attack and release times in seconds.
//
// Attack is the time a newly pressed voice takes to ramp from silence to
// full amplitude; Release is the time a released voice takes to ramp back
// to silence. A voice snapshots Attack at note-on and Release at note-off,
// so changing the envelope never reshapes a voice mid-ramp.
type Envelope struct {
	Attack  float64
	Release float64
}

// DefaultEnvelope returns a click-free general purpose envelope.
func DefaultEnvelope() Envelope {
	return Envelope{Attack: 0.01, Release: 0.1}
}

// clamped returns a copy with both times floored to minEnvelopeSeconds.
func (e Envelope) clamped() Envelope {
	if e.Attack < minEnvelopeSeconds {
		e.Attack = minEnvelopeSeconds
	}
	if e.Release < minEnvelopeSeconds {
		e.Release = minEnvelopeSeconds
	}
	return e
}
