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

// Package timer implements the 8-bit countdown timers of the CHIP-8. The
// value of a timer decreases by one on every tick until it reaches zero,
// where it stays until it is set again.
package timer

import "fmt"

// Timer is an 8-bit saturating countdown timer.
type Timer struct {
	label string
	value uint8
}

// NewTimer is the preferred method of initialisation for the Timer type. The
// label is only used by String().
func NewTimer(label string) *Timer {
	return &Timer{label: label}
}

func (tmr Timer) String() string {
	return fmt.Sprintf("%s=%03d", tmr.label, tmr.value)
}

// Set the timer value. Any 8-bit value is valid.
func (tmr *Timer) Set(value uint8) {
	tmr.value = value
}

// Value returns the current timer value.
func (tmr *Timer) Value() uint8 {
	return tmr.value
}

// Active returns true if the timer value is not zero.
func (tmr *Timer) Active() bool {
	return tmr.value > 0
}

// Tick decreases the timer value by one. The value never goes below zero.
func (tmr *Timer) Tick() {
	if tmr.value > 0 {
		tmr.value--
	}
}
