// This file is part of gochip8.
//
// gochip8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gochip8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gochip8.  If not, see <https://www.gnu.org/licenses/>.

package audio

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ToneState is the state of a Tone.
type ToneState int

// List of valid ToneState values.
const (
	Idle ToneState = iota
	Sounding
)

func (s ToneState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Sounding:
		return "sounding"
	}
	return "unknown"
}

// Tone is an edge triggered beep. The waveform is enqueued on the sink once
// on the transition from Idle to Sounding.
type Tone struct {
	sink Sink
	wf   Waveform

	sounding atomic.Bool
}

// NewTone is the preferred method of initialisation for the Tone type.
func NewTone(sink Sink, wf Waveform) (*Tone, error) {
	if sink == nil {
		return nil, errors.New("audio: no sink")
	}
	return &Tone{
		sink: sink,
		wf:   wf,
	}, nil
}

func (t *Tone) String() string {
	return fmt.Sprintf("%s (%s)", t.State(), t.wf)
}

// Waveform returns the waveform played by the tone.
func (t *Tone) Waveform() Waveform {
	return t.wf
}

// State returns the current state of the tone.
func (t *Tone) State() ToneState {
	if t.sounding.Load() {
		return Sounding
	}
	return Idle
}

// StartBeep enqueues the waveform and starts playback if the tone is Idle.
// If the sink has finished playing the previous waveform the tone is
// considered Idle. Has no effect if the tone is Sounding.
//
// If the sink rejects the waveform the tone remains Idle.
func (t *Tone) StartBeep() error {
	if t.sink.Empty() {
		t.sounding.Store(false)
	}

	if !t.sounding.CompareAndSwap(false, true) {
		return nil
	}

	if err := t.sink.Enqueue(t.wf); err != nil {
		t.sounding.Store(false)
		return fmt.Errorf("audio: %w", err)
	}
	t.sink.Play()

	return nil
}

// StopBeep silences the sink and discards anything still queued. The tone is
// Idle afterwards, whatever its previous state.
func (t *Tone) StopBeep() {
	t.sink.Pause()
	t.sink.Clear()
	t.sounding.Store(false)
}
