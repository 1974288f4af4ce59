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

// Package specification lists the fixed dimensions of the CHIP-8 machine.
// Every bounds check in the hardware package is made against one of these
// values.
package specification

// Memory layout.
const (
	// MemorySize is the number of 8-bit cells in memory. Valid addresses are
	// 0x000 to 0xfff.
	MemorySize = 4096

	// ProgramStart is the address where programs are loaded and therefore the
	// initial value of the program counter.
	ProgramStart = 0x200

	// InstructionSize is the number of bytes in every instruction.
	InstructionSize = 2

	// ProgramCounterTop is the highest value the program counter may take.
	// An instruction fetched from this address occupies the last two cells
	// of memory.
	ProgramCounterTop = MemorySize - InstructionSize
)

// Register file and stack.
const (
	NumRegisters = 16
	StackDepth   = 16
)

// Display and keyboard.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
	NumPixels     = DisplayWidth * DisplayHeight
	NumKeys       = 16
)

// TimerFrequency is the rate, in Hz, at which the delay and sound timers are
// decremented.
const TimerFrequency = 60
