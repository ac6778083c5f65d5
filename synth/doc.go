// Package synth implements a polyphonic sine voice engine: note-on and
// note-off events enter, a continuous audio signal leaves. Each sounding
// note is a Voice with a linear attack/release envelope; a Pool tracks
// voice lifecycle and polyphony policy; an Engine drives the per-sample
// render loop over output buffers against a monotonic global clock.
//
// The engine is single-threaded by design: all event delivery and all
// rendering must happen on the same goroutine. Hosts that receive events
// elsewhere hand them off through an event.Queue before the render call.
package synth
