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

// Package emulation drives the CHIP-8 machine state once per frame: it steps
// an optional instruction engine, ticks the timers, renders the framebuffer
// and starts or stops the beep according to the sound timer.
package emulation

import (
	"github.com/hsdiniz/gochip8/display"
	"github.com/hsdiniz/gochip8/hardware"
)

// Engine executes instructions against the machine state. An Engine should
// execute exactly one instruction for every call to Step().
type Engine interface {
	Step(st *hardware.State) error
}

// Display is the part of the display.Renderer used by the Loop.
type Display interface {
	Render(fb display.Framebuffer) error
	IsOpen() bool
}

// Beeper is the part of the audio.Tone used by the Loop.
type Beeper interface {
	StartBeep() error
	StopBeep()
}

// State indicates the emulation's state.
type State int

// List of possible emulation states.
//
// Values are ordered so that order comparisons are meaningful.
const (
	EmulatorStart State = iota
	Running
	Ending
)

func (s State) String() string {
	switch s {
	case EmulatorStart:
		return "start"
	case Running:
		return "running"
	case Ending:
		return "ending"
	}
	return "unknown"
}
