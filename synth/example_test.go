package synth_test

import (
	"fmt"

	"github.com/cwbudde/algo-synth/synth"
)

func ExampleNoteToFreq() {
	fmt.Printf("%.0f\n", synth.NoteToFreq(69))
	fmt.Printf("%.0f\n", synth.NoteToFreq(81))

	// Output:
	// 440
	// 880
}

func ExampleEngine() {
	e, err := synth.New(
		synth.WithSampleRate(44100),
		synth.WithEnvelope(synth.Envelope{Attack: 0.01, Release: 0.01}),
	)
	if err != nil {
		panic(err)
	}

	out := make([]float64, 441)

	e.NoteOn(69)
	e.Render(out)
	fmt.Printf("t=%.3fs voices=%d\n", e.Now(), e.Pool().Len())

	e.NoteOff(69)
	e.Render(out)
	e.Render(out[:1]) // release complete; the decayed voice is pruned
	fmt.Printf("t=%.3fs voices=%d\n", e.Now(), e.Pool().Len())

	// Output:
	// t=0.010s voices=1
	// t=0.020s voices=0
}
