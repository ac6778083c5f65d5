// Command synthplay plays the algo-synth voice engine through the system
// audio output.
//
// Usage:
//
//	synthplay [flags]
//
// Without -midi it plays a short built-in demo sequence and exits. With
// -midi it connects to the first available MIDI input and plays live
// notes until interrupted.
//
// Examples:
//
//	synthplay
//	synthplay -attack 0.05 -release 0.5
//	synthplay -mode mono -midi
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/cwbudde/algo-synth/event"
	"github.com/cwbudde/algo-synth/synth"
	"github.com/cwbudde/algo-synth/synth/buffer"
	"github.com/cwbudde/algo-synth/synth/core"
)

var logger = slog.Default()

// initLogger configures the shared slog logger and routes the stdlib log
// package through the same handler.
func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger = slog.New(h)
	slog.SetDefault(logger)
}

// step is one entry of the built-in demo sequence.
type step struct {
	at    float64
	pitch int
	on    bool
}

// demoSequence returns a short pentatonic arpeggio with a closing chord.
func demoSequence() []step {
	notes := []int{57, 60, 64, 69, 76, 69, 64, 60}

	var steps []step
	t := 0.1
	for _, n := range notes {
		steps = append(steps,
			step{at: t, pitch: n, on: true},
			step{at: t + 0.22, pitch: n, on: false},
		)
		t += 0.25
	}
	for _, n := range []int{57, 64, 69} {
		steps = append(steps, step{at: t, pitch: n, on: true})
	}
	for _, n := range []int{57, 64, 69} {
		steps = append(steps, step{at: t + 1.2, pitch: n, on: false})
	}
	return steps
}

// player streams the engine to oto. Read runs on the audio goroutine;
// events cross over through the bounded queue, so every engine call stays
// on that single goroutine.
type player struct {
	engine *synth.Engine
	queue  *event.Queue
	pool   *buffer.Pool
	gain   float64
	seq    []step
	next   int
}

func (p *player) Read(b []byte) (int, error) {
	frames := len(b) / 4

	buf := p.pool.Get(frames)
	defer p.pool.Put(buf)

	p.drainEvents()
	p.stepSequence()

	dst := buf.Samples()
	p.engine.Render(dst)

	for i, v := range dst {
		f := float32(core.Clamp(v*p.gain, -1, 1))
		binary.LittleEndian.PutUint32(b[4*i:], math.Float32bits(f))
	}

	return frames * 4, nil
}

// drainEvents applies all pending live events before the buffer renders,
// so note timestamps land on the engine clock between buffers.
func (p *player) drainEvents() {
	for {
		ev, ok := p.queue.Pop()
		if !ok {
			return
		}
		switch ev.Kind {
		case event.NoteOn:
			p.engine.NoteOn(ev.Pitch)
		case event.NoteOff:
			p.engine.NoteOff(ev.Pitch)
		}
	}
}

// stepSequence fires demo steps that are due at the current clock.
func (p *player) stepSequence() {
	now := p.engine.Now()
	for p.next < len(p.seq) && p.seq[p.next].at <= now {
		s := p.seq[p.next]
		if s.on {
			p.engine.NoteOn(s.pitch)
		} else {
			p.engine.NoteOff(s.pitch)
		}
		p.next++
	}
}

func run() error {
	rate := flag.Float64("rate", 44100, "sample rate in Hz")
	attack := flag.Float64("attack", 0.01, "attack time in seconds")
	release := flag.Float64("release", 0.1, "release time in seconds")
	mode := flag.String("mode", "poly", "polyphony mode: poly or mono")
	gainDB := flag.Float64("gain", -6, "output gain in dB")
	useMIDI := flag.Bool("midi", false, "play live from the first MIDI input")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	initLogger(*debug)

	poolMode := synth.ModePoly
	switch *mode {
	case "poly":
	case "mono":
		poolMode = synth.ModeMono
	default:
		return fmt.Errorf("unknown mode %q (want poly or mono)", *mode)
	}

	engine, err := synth.New(
		synth.WithSampleRate(*rate),
		synth.WithMode(poolMode),
		synth.WithEnvelope(synth.Envelope{Attack: *attack, Release: *release}),
	)
	if err != nil {
		return err
	}

	p := &player{
		engine: engine,
		queue:  event.NewQueue(event.DefaultQueueCapacity),
		pool:   buffer.NewPool(),
		gain:   core.DBToLinear(*gainDB),
	}
	if !*useMIDI {
		p.seq = demoSequence()
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   int(*rate),
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return fmt.Errorf("audio context: %w", err)
	}
	<-ready

	out := ctx.NewPlayer(p)
	out.Play()
	defer out.Close()

	logger.Info("playing", "rate", *rate, "mode", *mode, "attack", *attack, "release", *release)

	if *useMIDI {
		stop, err := listenMIDI(p.queue)
		if err != nil {
			return err
		}
		defer stop()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt)
		<-sig
		engine.KillAll()
		return nil
	}

	last := p.seq[len(p.seq)-1].at
	time.Sleep(time.Duration((last + *release + 0.5) * float64(time.Second)))
	return nil
}

func main() {
	if err := run(); err != nil {
		logger.Error("synthplay failed", "err", err)
		os.Exit(1)
	}
}
