// Package event defines the parsed note-event boundary between a host
// and the synth engine, plus a bounded hand-off queue for hosts that
// deliver events outside the render goroutine.
package event

// Kind discriminates note events.
type Kind int

const (
	// NoteOn starts a note.
	NoteOn Kind = iota
	// NoteOff releases a note.
	NoteOff
)

// String returns the event kind name.
func (k Kind) String() string {
	switch k {
	case NoteOn:
		return "note-on"
	case NoteOff:
		return "note-off"
	default:
		return "unknown"
	}
}

// Event is one already-parsed note event. Time is expressed in the
// engine's global clock (seconds).
type Event struct {
	Kind  Kind
	Pitch int
	Time  float64
}

// MIDI channel-voice status nibbles.
const (
	statusNoteOff = 0x80
	statusNoteOn  = 0x90
	statusMask    = 0xF0
)

// FromRaw decodes a raw 3-byte MIDI channel message into an Event stamped
// with time t. ok is false for anything other than note-on/note-off.
// A note-on with velocity 0 decodes as a note-off, as many keyboards send.
func FromRaw(data [3]byte, t float64) (ev Event, ok bool) {
	pitch := int(data[1])

	switch data[0] & statusMask {
	case statusNoteOn:
		if data[2] == 0 {
			return Event{Kind: NoteOff, Pitch: pitch, Time: t}, true
		}
		return Event{Kind: NoteOn, Pitch: pitch, Time: t}, true
	case statusNoteOff:
		return Event{Kind: NoteOff, Pitch: pitch, Time: t}, true
	default:
		return Event{}, false
	}
}
