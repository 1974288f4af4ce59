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

package audio_test

import (
	"errors"
	"testing"

	"github.com/hsdiniz/gochip8/audio"
	"github.com/hsdiniz/gochip8/test"
)

// captureSink records what is asked of it. the queue is only emptied by
// Clear() or by calling finish()
type captureSink struct {
	enqueued int
	queued   int
	playing  bool
	fail     error
}

func (snk *captureSink) Enqueue(_ audio.Waveform) error {
	if snk.fail != nil {
		return snk.fail
	}
	snk.enqueued++
	snk.queued++
	return nil
}

func (snk *captureSink) Play() {
	snk.playing = true
}

func (snk *captureSink) Pause() {
	snk.playing = false
}

func (snk *captureSink) Clear() {
	snk.queued = 0
}

func (snk *captureSink) Empty() bool {
	return snk.queued == 0
}

// simulate the sink playing everything in its queue
func (snk *captureSink) finish() {
	snk.queued = 0
}

func TestNoSink(t *testing.T) {
	_, err := audio.NewTone(nil, audio.DefaultWaveform())
	test.ExpectFailure(t, err)
}

func TestStartBeepIsEdgeTriggered(t *testing.T) {
	snk := &captureSink{}
	tone, err := audio.NewTone(snk, audio.DefaultWaveform())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tone.State(), audio.Idle)

	test.ExpectSuccess(t, tone.StartBeep())
	test.ExpectEquality(t, tone.State(), audio.Sounding)
	test.ExpectSuccess(t, snk.playing)

	// the sink is still playing so this has no effect
	test.ExpectSuccess(t, tone.StartBeep())
	test.ExpectEquality(t, snk.enqueued, 1)
	test.ExpectEquality(t, tone.State(), audio.Sounding)
}

func TestStopThenStart(t *testing.T) {
	snk := &captureSink{}
	tone, err := audio.NewTone(snk, audio.DefaultWaveform())
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, tone.StartBeep())
	tone.StopBeep()
	test.ExpectEquality(t, tone.State(), audio.Idle)
	test.ExpectFailure(t, snk.playing)
	test.ExpectSuccess(t, snk.Empty())

	test.ExpectSuccess(t, tone.StartBeep())
	test.ExpectEquality(t, snk.enqueued, 2)
	test.ExpectEquality(t, snk.queued, 1)
	test.ExpectEquality(t, tone.State(), audio.Sounding)
}

func TestStopWhenIdle(t *testing.T) {
	snk := &captureSink{}
	tone, err := audio.NewTone(snk, audio.DefaultWaveform())
	test.DemandSuccess(t, err)

	tone.StopBeep()
	tone.StopBeep()
	test.ExpectEquality(t, tone.State(), audio.Idle)
	test.ExpectEquality(t, snk.enqueued, 0)
}

func TestCompletionAllowsRetrigger(t *testing.T) {
	snk := &captureSink{}
	tone, err := audio.NewTone(snk, audio.DefaultWaveform())
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, tone.StartBeep())
	snk.finish()

	// the tone has played out so a new one is queued
	test.ExpectSuccess(t, tone.StartBeep())
	test.ExpectEquality(t, snk.enqueued, 2)
	test.ExpectEquality(t, tone.State(), audio.Sounding)
}

func TestEnqueueFailure(t *testing.T) {
	errFull := errors.New("queue full")
	snk := &captureSink{fail: errFull}
	tone, err := audio.NewTone(snk, audio.DefaultWaveform())
	test.DemandSuccess(t, err)

	err = tone.StartBeep()
	test.ExpectSuccess(t, errors.Is(err, errFull))
	test.ExpectEquality(t, tone.State(), audio.Idle)
	test.ExpectFailure(t, snk.playing)

	// recovery once the sink accepts waveforms again
	snk.fail = nil
	test.ExpectSuccess(t, tone.StartBeep())
	test.ExpectEquality(t, snk.enqueued, 1)
	test.ExpectEquality(t, tone.State(), audio.Sounding)
}

func TestToneStateString(t *testing.T) {
	test.ExpectEquality(t, audio.Idle.String(), "idle")
	test.ExpectEquality(t, audio.Sounding.String(), "sounding")
}
