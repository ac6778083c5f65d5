package main

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"github.com/cwbudde/algo-synth/event"
)

// listenMIDI opens the first available MIDI input and forwards note
// messages into the queue. The returned stop function closes the
// listener, the port, and the driver.
func listenMIDI(q *event.Queue) (stop func(), err error) {
	drv, err := rtmididrv.New()
	if err != nil {
		return nil, fmt.Errorf("rtmididrv: %w", err)
	}

	ins, err := drv.Ins()
	if err != nil {
		drv.Close()
		return nil, fmt.Errorf("midi inputs: %w", err)
	}
	if len(ins) == 0 {
		drv.Close()
		return nil, fmt.Errorf("no midi inputs available")
	}

	in := ins[0]
	if err := in.Open(); err != nil {
		drv.Close()
		return nil, fmt.Errorf("open %q: %w", in.String(), err)
	}

	stopListen, err := midi.ListenTo(in, func(msg midi.Message, _ int32) {
		var ch, key, vel uint8
		if msg.GetNoteStart(&ch, &key, &vel) {
			q.Push(event.Event{Kind: event.NoteOn, Pitch: int(key)})
		} else if msg.GetNoteEnd(&ch, &key) {
			q.Push(event.Event{Kind: event.NoteOff, Pitch: int(key)})
		}
	}, midi.HandleError(func(listenErr error) {
		logger.Warn("midi listener error", "device", in.String(), "err", listenErr)
	}))
	if err != nil {
		closeIn(in)
		drv.Close()
		return nil, fmt.Errorf("listen %q: %w", in.String(), err)
	}

	logger.Info("midi connected", "device", in.String())

	return func() {
		stopListen()
		closeIn(in)
		drv.Close()
	}, nil
}

func closeIn(in drivers.In) {
	if err := in.Close(); err != nil {
		logger.Warn("midi close failed", "err", err)
	}
}
