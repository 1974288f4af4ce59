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

// Package hardware is the architectural state of the CHIP-8 machine: program
// counter, address register, general purpose registers, call stack, memory,
// framebuffer, keyboard matrix and the delay and sound timers.
//
// The State type is mutated only through its guarded operations. Every
// indexed or range limited operation returns an error that wraps one of the
// sentinel errors in this package. An operation that fails never changes the
// state:
//
//	err := st.WriteMemory(0x1000, 0xff)
//	if errors.Is(err, hardware.ErrInvalidMemoryAccess) {
//		...
//	}
//
// The package does not decode or execute instructions. An instruction engine
// drives the state by calling the guarded operations and decides for itself
// how to react to an error.
//
// No operation in the package performs I/O or logs. Timers are advanced with
// TickTimers(), which the driving loop should call at
// specification.TimerFrequency.
package hardware
