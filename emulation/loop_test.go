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

package emulation_test

import (
	"errors"
	"testing"

	"github.com/hsdiniz/gochip8/audio"
	"github.com/hsdiniz/gochip8/display"
	"github.com/hsdiniz/gochip8/emulation"
	"github.com/hsdiniz/gochip8/hardware"
	"github.com/hsdiniz/gochip8/test"
)

// beeper that counts calls
type countingBeeper struct {
	starts int
	stops  int
}

func (b *countingBeeper) StartBeep() error {
	b.starts++
	return nil
}

func (b *countingBeeper) StopBeep() {
	b.stops++
}

// engine that advances the program counter by one instruction every step
type counterEngine struct {
	steps int
	fail  error
}

func (e *counterEngine) Step(st *hardware.State) error {
	if e.fail != nil {
		return e.fail
	}
	e.steps++
	return st.SetProgramCounter(st.ProgramCounter() + 2)
}

func newRenderer(t *testing.T, limit int) (*display.Renderer, *display.Headless) {
	t.Helper()
	prefs := display.DefaultPreferences()
	test.DemandSuccess(t, prefs.Scale.Set(1))
	hl := display.NewHeadless(limit)
	r, err := display.NewRenderer(hl, prefs)
	test.DemandSuccess(t, err)
	return r, hl
}

func TestNewLoop(t *testing.T) {
	r, _ := newRenderer(t, 0)
	_, err := emulation.NewLoop(nil, r, nil, nil)
	test.ExpectFailure(t, err)
	_, err = emulation.NewLoop(hardware.NewState(), nil, nil, nil)
	test.ExpectFailure(t, err)

	l, err := emulation.NewLoop(hardware.NewState(), r, nil, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, l.State(), emulation.EmulatorStart)
}

func TestTimersAndBeep(t *testing.T) {
	r, hl := newRenderer(t, 0)
	st := hardware.NewState()
	st.SetDelayTimer(10)
	st.SetSoundTimer(3)

	bpr := &countingBeeper{}
	l, err := emulation.NewLoop(st, r, bpr, nil)
	test.DemandSuccess(t, err)

	// the sound timer is 2 after the first tick and 1 after the second
	test.DemandSuccess(t, l.Frame())
	test.DemandSuccess(t, l.Frame())
	test.ExpectEquality(t, bpr.starts, 2)
	test.ExpectEquality(t, bpr.stops, 0)

	// the sound timer reaches zero
	test.DemandSuccess(t, l.Frame())
	test.ExpectEquality(t, st.SoundTimer(), uint8(0))
	test.ExpectEquality(t, bpr.starts, 2)
	test.ExpectEquality(t, bpr.stops, 1)

	test.ExpectEquality(t, st.DelayTimer(), uint8(7))
	test.ExpectEquality(t, hl.Frames(), 3)
	test.ExpectEquality(t, l.Frames(), 3)
}

func TestToneStopsWithTimer(t *testing.T) {
	r, _ := newRenderer(t, 0)
	st := hardware.NewState()
	st.SetSoundTimer(5)

	snk := &queueSink{}
	tone, err := audio.NewTone(snk, audio.DefaultWaveform())
	test.DemandSuccess(t, err)

	l, err := emulation.NewLoop(st, r, tone, nil)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, l.RunFrames(3))
	test.ExpectEquality(t, snk.enqueued, 1)

	// RunFrames() stops the beep when it ends
	test.ExpectEquality(t, tone.State(), audio.Idle)

	test.DemandSuccess(t, l.RunFrames(1))
	test.ExpectEquality(t, tone.State(), audio.Idle)
	test.ExpectEquality(t, snk.enqueued, 2)

	test.DemandSuccess(t, l.RunFrames(10))
	test.ExpectEquality(t, st.SoundTimer(), uint8(0))
	test.ExpectEquality(t, tone.State(), audio.Idle)
	test.ExpectSuccess(t, snk.Empty())
}

type queueSink struct {
	enqueued int
	queued   int
}

func (snk *queueSink) Enqueue(_ audio.Waveform) error {
	snk.enqueued++
	snk.queued++
	return nil
}

func (snk *queueSink) Play()  {}
func (snk *queueSink) Pause() {}
func (snk *queueSink) Clear() { snk.queued = 0 }

func (snk *queueSink) Empty() bool {
	return snk.queued == 0
}

func TestEngine(t *testing.T) {
	r, _ := newRenderer(t, 0)
	st := hardware.NewState()

	eng := &counterEngine{}
	l, err := emulation.NewLoop(st, r, nil, eng)
	test.DemandSuccess(t, err)
	l.SetInstructionsPerFrame(4)
	l.SetInstructionsPerFrame(0)

	test.DemandSuccess(t, l.RunFrames(3))
	test.ExpectEquality(t, eng.steps, 12)
	test.ExpectEquality(t, st.ProgramCounter(), uint16(0x200+24))
	test.ExpectEquality(t, l.State(), emulation.Ending)
}

func TestEngineFault(t *testing.T) {
	r, hl := newRenderer(t, 0)
	st := hardware.NewState()

	errFault := errors.New("illegal instruction")
	eng := &counterEngine{fail: errFault}
	l, err := emulation.NewLoop(st, r, nil, eng)
	test.DemandSuccess(t, err)

	err = l.RunFrames(5)
	test.ExpectSuccess(t, errors.Is(err, errFault))
	test.ExpectEquality(t, hl.Frames(), 0)
}

func TestEngineStateFault(t *testing.T) {
	r, _ := newRenderer(t, 0)
	st := hardware.NewState()
	test.DemandSuccess(t, st.SetProgramCounter(0xffe))

	// the engine tries to move the program counter beyond memory
	l, err := emulation.NewLoop(st, r, nil, &counterEngine{})
	test.DemandSuccess(t, err)

	err = l.Frame()
	test.ExpectSuccess(t, errors.Is(err, hardware.ErrProgramCounterOutOfBounds))
	test.ExpectEquality(t, st.ProgramCounter(), uint16(0xffe))
}

func TestRunUntilClosed(t *testing.T) {
	r, hl := newRenderer(t, 5)
	st := hardware.NewState()

	l, err := emulation.NewLoop(st, r, nil, nil)
	test.DemandSuccess(t, err)
	l.Limiter().Active = false

	test.DemandSuccess(t, l.Run())
	test.ExpectEquality(t, hl.Frames(), 5)
	test.ExpectEquality(t, l.State(), emulation.Ending)
}

func TestRenderFault(t *testing.T) {
	r, hl := newRenderer(t, 0)
	st := hardware.NewState()

	l, err := emulation.NewLoop(st, r, nil, nil)
	test.DemandSuccess(t, err)

	// presenting to a closed surface fails but IsOpen() is checked first
	hl.Close()
	test.DemandSuccess(t, l.RunFrames(1))
	test.ExpectEquality(t, l.Frames(), 0)

	err = l.Frame()
	test.ExpectSuccess(t, errors.Is(err, display.ErrSurfaceClosed))
}
