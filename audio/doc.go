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

// Package audio implements the beep of the CHIP-8 machine.
//
// The Tone type is a two state machine (Idle and Sounding) that is driven by
// StartBeep() and StopBeep(). Repeated calls to StartBeep() while a tone is
// sounding have no effect, so the caller can call it every frame for as long
// as the sound timer is active. Once the Sink has played the entire tone the
// next StartBeep() will queue a new one.
//
// The Tone does not know anything about the machine's timers. Deciding when
// to start and stop the beep is the responsibility of the caller.
//
// Sinks are provided by the sdlaudio and wavwriter packages.
package audio
