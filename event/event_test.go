package event

import "testing"

func TestFromRaw(t *testing.T) {
	tests := []struct {
		name string
		data [3]byte
		want Event
		ok   bool
	}{
		{name: "note on", data: [3]byte{0x90, 69, 100}, want: Event{Kind: NoteOn, Pitch: 69}, ok: true},
		{name: "note on channel 3", data: [3]byte{0x93, 60, 1}, want: Event{Kind: NoteOn, Pitch: 60}, ok: true},
		{name: "note off", data: [3]byte{0x80, 69, 0}, want: Event{Kind: NoteOff, Pitch: 69}, ok: true},
		{name: "velocity zero is note off", data: [3]byte{0x90, 42, 0}, want: Event{Kind: NoteOff, Pitch: 42}, ok: true},
		{name: "control change ignored", data: [3]byte{0xB0, 64, 127}, ok: false},
		{name: "pitch bend ignored", data: [3]byte{0xE0, 0, 64}, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromRaw(tt.data, 1.5)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if got.Kind != tt.want.Kind || got.Pitch != tt.want.Pitch {
				t.Fatalf("FromRaw() = %+v, want kind %v pitch %d", got, tt.want.Kind, tt.want.Pitch)
			}
			if got.Time != 1.5 {
				t.Fatalf("Time = %v, want 1.5", got.Time)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if NoteOn.String() != "note-on" || NoteOff.String() != "note-off" {
		t.Fatal("unexpected Kind names")
	}
	if Kind(99).String() != "unknown" {
		t.Fatal("unexpected name for invalid kind")
	}
}
