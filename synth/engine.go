package synth

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-synth/event"
	"github.com/cwbudde/algo-synth/synth/buffer"
	"github.com/cwbudde/algo-synth/synth/core"
)

// Config holds engine construction settings.
type Config struct {
	SampleRate float64
	Mode       Mode
	Envelope   Envelope
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		SampleRate: 44100,
		Mode:       ModePoly,
		Envelope:   DefaultEnvelope(),
	}
}

// WithSampleRate sets the render sample rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		cfg.SampleRate = sampleRate
	}
}

// WithMode sets the polyphony mode.
func WithMode(mode Mode) Option {
	return func(cfg *Config) {
		cfg.Mode = mode
	}
}

// WithEnvelope sets the initial attack/release envelope.
func WithEnvelope(env Envelope) Option {
	return func(cfg *Config) {
		cfg.Envelope = env
	}
}

// Engine drives the per-sample render loop over a voice pool. It owns the
// global clock: a running sum of rendered time that advances exactly once
// per buffer and is never reset, so drift is bounded only by the float64
// accumulator.
//
// The engine holds no hidden global state; construct one per synth
// instance and route every call through it from a single goroutine.
type Engine struct {
	sampleRate float64
	time       float64
	pool       *Pool
	scratch    *buffer.Buffer // per-voice block workspace
	wide       *buffer.Buffer // float64 staging for Render32
}

// New creates an Engine. The sample rate is validated here, never on the
// render path.
func New(opts ...Option) (*Engine, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.SampleRate <= 0 || math.IsNaN(cfg.SampleRate) || math.IsInf(cfg.SampleRate, 0) {
		return nil, fmt.Errorf("synth: sample rate must be > 0: %v", cfg.SampleRate)
	}

	pool := NewPool(cfg.Mode)
	pool.SetEnvelope(cfg.Envelope)

	return &Engine{
		sampleRate: cfg.SampleRate,
		pool:       pool,
		scratch:    buffer.New(0),
		wide:       buffer.New(0),
	}, nil
}

// SampleRate returns the configured sample rate in Hz.
func (e *Engine) SampleRate() float64 { return e.sampleRate }

// Now returns the global clock in seconds: the total duration rendered so
// far. Voice timestamps live on this clock.
func (e *Engine) Now() float64 { return e.time }

// Pool returns the engine's voice pool.
func (e *Engine) Pool() *Pool { return e.pool }

// SetEnvelope updates the attack/release envelope for voices created or
// released after this call.
func (e *Engine) SetEnvelope(env Envelope) { e.pool.SetEnvelope(env) }

// NoteOn starts a note stamped with the engine's current clock.
func (e *Engine) NoteOn(note int) { e.pool.NoteOn(note, e.time) }

// NoteOff releases a note stamped with the engine's current clock.
func (e *Engine) NoteOff(note int) { e.pool.NoteOff(note, e.time) }

// Apply dispatches an already-parsed event carrying its own timestamp.
// The timestamp must be on the engine's clock; hosts that do not track it
// should use NoteOn/NoteOff instead.
func (e *Engine) Apply(ev event.Event) {
	switch ev.Kind {
	case event.NoteOn:
		e.pool.NoteOn(ev.Pitch, ev.Time)
	case event.NoteOff:
		e.pool.NoteOff(ev.Pitch, ev.Time)
	}
}

// KillAll silences the engine immediately by dropping every voice.
// The clock keeps running.
func (e *Engine) KillAll() { e.pool.KillAll() }

// Render fills dst with mixed samples starting at the current clock, then
// advances the clock by len(dst)/SampleRate and prunes decayed voices.
// The render path cannot fail: invalid configuration is rejected in New
// and out-of-range events are clamped on entry.
func (e *Engine) Render(dst []float64) {
	n := len(dst)
	if n == 0 {
		return
	}

	dt := 1.0 / e.sampleRate
	if e.pool.Len() == 0 {
		core.Zero(dst)
	} else {
		e.renderBlock(dst, dt)
	}

	e.time += float64(n) * dt
	e.pool.Prune(e.time)
}

// renderBlock accumulates one block per voice and normalizes once.
// Events land only between buffers, so voice membership is constant for
// the whole block and the result matches the per-sample MixAt sum up to
// floating-point summation order.
func (e *Engine) renderBlock(dst []float64, dt float64) {
	core.Zero(dst)
	e.scratch.Resize(len(dst))
	tmp := e.scratch.Samples()

	voices := e.pool.voices
	for i := range voices {
		v := &voices[i]
		for j := range tmp {
			tmp[j] = v.AmplitudeAt(e.time + float64(j)*dt)
		}
		vecmath.AddBlockInPlace(dst, tmp)
	}

	vecmath.ScaleBlockInPlace(dst, 1/float64(len(voices)))
}

// Render32 renders into a float32 buffer. The engine mixes in float64
// throughout; narrowing happens only at this boundary. Envelope tails
// are flushed so no denormal float32 reaches the audio device.
func (e *Engine) Render32(dst []float32) {
	e.wide.Resize(len(dst))
	staging := e.wide.Samples()
	e.Render(staging)
	for i, v := range staging {
		dst[i] = float32(core.FlushDenormals(v))
	}
}
