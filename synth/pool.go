package synth

// Mode selects the polyphony policy of a Pool.
type Mode int

const (
	// ModePoly gives each pitch its own voice.
	ModePoly Mode = iota
	// ModeMono allows at most one sounding voice. Note-ons arriving while
	// a note is still pressed are ignored; an accepted note-on drops any
	// still-releasing voice.
	ModeMono
)

// maxVoices is one voice per MIDI pitch; the one-voice-per-pitch rule
// makes this the hard polyphony ceiling.
const maxVoices = MaxNote + 1

// Pool tracks all active and releasing voices and applies the polyphony
// policy. All methods must be called from the render goroutine; the pool
// performs no locking of its own.
//
// Duplicate-note handling is a linear scan over the voice slice. Voice
// counts are bounded by maxVoices, so the scan stays cheap and the slice
// never reallocates after construction.
type Pool struct {
	mode   Mode
	env    Envelope
	voices []Voice
}

// NewPool creates an empty pool with the given polyphony mode and the
// default envelope.
func NewPool(mode Mode) *Pool {
	return &Pool{
		mode:   mode,
		env:    DefaultEnvelope(),
		voices: make([]Voice, 0, maxVoices),
	}
}

// SetEnvelope sets the attack/release times applied to voices created or
// released after this call. Times below the minimum floor are clamped.
// Voices already mid-envelope keep the times they snapshotted.
func (p *Pool) SetEnvelope(env Envelope) {
	p.env = env.clamped()
}

// Envelope returns the pool's current (clamped) envelope settings.
func (p *Pool) Envelope() Envelope { return p.env }

// Mode returns the current polyphony mode.
func (p *Pool) Mode() Mode { return p.mode }

// SetMode switches the polyphony policy. The pool is cleared so the new
// policy starts from a consistent state.
func (p *Pool) SetMode(mode Mode) {
	if mode == p.mode {
		return
	}
	p.mode = mode
	p.KillAll()
}

// Len returns the current voice count, including releasing voices.
func (p *Pool) Len() int { return len(p.voices) }

// NoteOn starts a voice for note at time t. Out-of-range notes are
// clamped. In poly mode an existing voice for the same pitch is replaced,
// never duplicated. In mono mode the event is ignored while any note is
// still pressed.
func (p *Pool) NoteOn(note int, t float64) {
	note = ClampNote(note)

	if p.mode == ModeMono {
		if p.holding() {
			return
		}
		// At most one sounding voice: the new note displaces anything
		// still releasing.
		p.voices = p.voices[:0]
		p.voices = append(p.voices, newVoice(note, t, p.env.Attack))
		return
	}

	p.removeNote(note)
	p.voices = append(p.voices, newVoice(note, t, p.env.Attack))
}

// NoteOff releases the active voice for note at time t. A note-off with
// no matching active voice is a no-op: late or duplicate note-offs are
// normal in live event streams, not errors.
func (p *Pool) NoteOff(note int, t float64) {
	note = ClampNote(note)
	for i := range p.voices {
		v := &p.voices[i]
		if v.note == note && v.active {
			v.releaseAt(t, p.env.Release)
			return
		}
	}
}

// MixAt returns the mixed sample of all voices at time t, normalized by
// the voice count so output level stays bounded as polyphony grows.
// Returns 0 for an empty pool.
func (p *Pool) MixAt(t float64) float64 {
	n := len(p.voices)
	if n == 0 {
		return 0
	}

	sum := 0.0
	for i := range p.voices {
		sum += p.voices[i].AmplitudeAt(t)
	}

	return sum / float64(n)
}

// Prune removes every voice that is dead at time t and keeps every live
// one. The engine calls this once per rendered buffer with the buffer's
// end time so dead voices never affect the next buffer's mix divisor.
func (p *Pool) Prune(t float64) {
	write := 0
	for i := range p.voices {
		if p.voices[i].IsDead(t) {
			continue
		}
		p.voices[write] = p.voices[i]
		write++
	}
	p.voices = p.voices[:write]
}

// KillAll drops every voice unconditionally. Intended for host-initiated
// panic or reset; takes effect immediately, without release ramps.
func (p *Pool) KillAll() {
	p.voices = p.voices[:0]
}

// holding reports whether any voice is still pressed.
func (p *Pool) holding() bool {
	for i := range p.voices {
		if p.voices[i].active {
			return true
		}
	}
	return false
}

// removeNote drops the voice for note, if any. One voice per pitch is an
// invariant, so at most one removal happens.
func (p *Pool) removeNote(note int) {
	for i := range p.voices {
		if p.voices[i].note == note {
			p.voices = append(p.voices[:i], p.voices[i+1:]...)
			return
		}
	}
}
