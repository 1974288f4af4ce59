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

package emulation

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/hsdiniz/gochip8/emulation/limiter"
	"github.com/hsdiniz/gochip8/hardware"
	"github.com/hsdiniz/gochip8/hardware/specification"
	"github.com/hsdiniz/gochip8/logger"
)

// DefaultInstructionsPerFrame is the number of engine steps between timer
// ticks. At 60 frames per second this is 600 instructions per second.
const DefaultInstructionsPerFrame = 10

// Loop is the driving loop. The Loop and everything it is given must be used
// from a single goroutine.
type Loop struct {
	state  *hardware.State
	disp   Display
	beeper Beeper
	engine Engine

	lmtr *limiter.Limiter

	instructionsPerFrame int

	frames int

	emulationState atomic.Int32
}

// NewLoop is the preferred method of initialisation for the Loop type. The
// beeper and the engine can be nil.
func NewLoop(st *hardware.State, disp Display, beeper Beeper, engine Engine) (*Loop, error) {
	if st == nil {
		return nil, errors.New("emulation: no machine state")
	}
	if disp == nil {
		return nil, errors.New("emulation: no display")
	}

	l := &Loop{
		state:                st,
		disp:                 disp,
		beeper:               beeper,
		engine:               engine,
		lmtr:                 limiter.NewLimiter(specification.TimerFrequency),
		instructionsPerFrame: DefaultInstructionsPerFrame,
	}
	l.emulationState.Store(int32(EmulatorStart))

	return l, nil
}

func (l *Loop) String() string {
	return fmt.Sprintf("%s: frame %d: %s", l.State(), l.frames, l.state)
}

// SetInstructionsPerFrame sets the number of engine steps for every frame.
// Values less than one are ignored.
func (l *Loop) SetInstructionsPerFrame(n int) {
	if n < 1 {
		return
	}
	l.instructionsPerFrame = n
}

// Limiter returns the frame limiter used by Run().
func (l *Loop) Limiter() *limiter.Limiter {
	return l.lmtr
}

// Frames returns the number of frames completed.
func (l *Loop) Frames() int {
	return l.frames
}

// State returns the current emulation state. Safe to call from any goroutine.
func (l *Loop) State() State {
	return State(l.emulationState.Load())
}

func (l *Loop) setState(s State) {
	l.emulationState.Store(int32(s))
	logger.Logf(logger.Allow, "emulation", "%s", s)
}

// Frame runs one frame of the emulation.
func (l *Loop) Frame() error {
	if l.engine != nil {
		for i := 0; i < l.instructionsPerFrame; i++ {
			if err := l.engine.Step(l.state); err != nil {
				logger.Logf(logger.Allow, "emulation", "engine: %v", err)
				return fmt.Errorf("emulation: %w", err)
			}
		}
	}

	l.state.TickTimers()

	if err := l.disp.Render(l.state); err != nil {
		return fmt.Errorf("emulation: %w", err)
	}

	if l.beeper != nil {
		if l.state.SoundTimer() > 0 {
			// a failure to beep is not a reason to stop the emulation
			if err := l.beeper.StartBeep(); err != nil {
				logger.Log(logger.Allow, "emulation", err)
			}
		} else {
			l.beeper.StopBeep()
		}
	}

	l.frames++

	return nil
}

// RunFrames runs up to n frames without pacing. It returns early if the
// display is closed.
func (l *Loop) RunFrames(n int) error {
	l.setState(Running)
	defer l.end()

	for i := 0; i < n && l.disp.IsOpen(); i++ {
		if err := l.Frame(); err != nil {
			return err
		}
	}

	return nil
}

// Run the emulation at the limiter rate until the display is no longer open.
func (l *Loop) Run() error {
	l.setState(Running)
	defer l.end()

	for l.disp.IsOpen() {
		if err := l.Frame(); err != nil {
			return err
		}
		l.lmtr.CheckFrame()
		l.lmtr.MeasureActual()
	}

	return nil
}

func (l *Loop) end() {
	if l.beeper != nil {
		l.beeper.StopBeep()
	}
	l.setState(Ending)
}
