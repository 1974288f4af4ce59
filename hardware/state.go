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

package hardware

import (
	"fmt"
	"strings"

	"github.com/hsdiniz/gochip8/hardware/bounded"
	"github.com/hsdiniz/gochip8/hardware/specification"
	"github.com/hsdiniz/gochip8/hardware/timer"
)

// State is the complete architectural state of one CHIP-8 machine. It is
// owned by a single caller and is not safe for concurrent use.
type State struct {
	pc uint16
	i  uint16

	registers *bounded.Array[uint8]
	stack     *bounded.Stack[uint16]
	memory    *bounded.Array[uint8]
	display   *bounded.Array[uint8]
	keys      *bounded.Array[bool]

	delay *timer.Timer
	sound *timer.Timer
}

// pixels are either on or off
func pixelValue(v uint8) error {
	if v > 1 {
		return fmt.Errorf("%w: %d", ErrInvalidPixelValue, v)
	}
	return nil
}

// NewState is the preferred method of initialisation for the State type. All
// fields are zero except the program counter, which is set to
// specification.ProgramStart.
func NewState() *State {
	st := &State{
		registers: bounded.NewArray[uint8](specification.NumRegisters, ErrInvalidRegisterAccess, nil),
		stack:     bounded.NewStack[uint16](specification.StackDepth, ErrStackOverflow, ErrStackUnderflow, ErrInvalidStackAccess),
		memory:    bounded.NewArray[uint8](specification.MemorySize, ErrInvalidMemoryAccess, nil),
		display:   bounded.NewArray[uint8](specification.NumPixels, ErrInvalidPixelAccess, pixelValue),
		keys:      bounded.NewArray[bool](specification.NumKeys, ErrInvalidKeyAccess, nil),
		delay:     timer.NewTimer("DT"),
		sound:     timer.NewTimer("ST"),
	}
	st.pc = specification.ProgramStart
	return st
}

// Reset returns the state to the condition it was in after NewState().
func (st *State) Reset() {
	st.pc = specification.ProgramStart
	st.i = 0
	st.registers.Reset()
	st.stack.Reset()
	st.memory.Reset()
	st.display.Reset()
	st.keys.Reset()
	st.delay.Set(0)
	st.sound.Set(0)
}

// Snapshot creates a deep copy of the state.
func (st *State) Snapshot() *State {
	n := *st
	n.registers = st.registers.Snapshot()
	n.stack = st.stack.Snapshot()
	n.memory = st.memory.Snapshot()
	n.display = st.display.Snapshot()
	n.keys = st.keys.Snapshot()
	d := *st.delay
	n.delay = &d
	s := *st.sound
	n.sound = &s
	return &n
}

// String returns a one line summary of the processor registers.
func (st *State) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=%04x I=%04x SP=%02d", st.pc, st.i, st.stack.Pointer()))
	for i, v := range st.registers.Copy() {
		s.WriteString(fmt.Sprintf(" V%X=%02x", i, v))
	}
	s.WriteString(fmt.Sprintf(" %s %s", st.delay, st.sound))
	return s.String()
}

// PushStack pushes a return address onto the call stack.
func (st *State) PushStack(value uint16) error {
	return st.stack.Push(value)
}

// PopStack removes the most recent return address from the call stack and
// returns it.
func (st *State) PopStack() (uint16, error) {
	return st.stack.Pop()
}

// PeekStack returns the return address in stack slot idx. Only slots below
// the stack pointer can be peeked.
func (st *State) PeekStack(idx int) (uint16, error) {
	return st.stack.Peek(idx)
}

// StackPointer returns the number of entries on the call stack.
func (st *State) StackPointer() int {
	return st.stack.Pointer()
}

// ProgramCounter returns the address of the next instruction.
func (st *State) ProgramCounter() uint16 {
	return st.pc
}

// SetProgramCounter sets the address of the next instruction. The address
// must leave room for a complete instruction to be fetched.
func (st *State) SetProgramCounter(value uint16) error {
	if value > specification.ProgramCounterTop {
		return fmt.Errorf("%w: %#04x", ErrProgramCounterOutOfBounds, value)
	}
	st.pc = value
	return nil
}

// AddressRegister returns the value of the I register.
func (st *State) AddressRegister() uint16 {
	return st.i
}

// SetAddressRegister sets the I register. The value must be a valid memory
// address.
func (st *State) SetAddressRegister(value uint16) error {
	if value >= specification.MemorySize {
		return fmt.Errorf("%w: %#04x", ErrAddressRegisterOutOfBounds, value)
	}
	st.i = value
	return nil
}

// ReadMemory returns the value at memory address.
func (st *State) ReadMemory(address uint16) (uint8, error) {
	return st.memory.Read(int(address))
}

// WriteMemory sets the value at memory address.
func (st *State) WriteMemory(address uint16, value uint8) error {
	return st.memory.Write(int(address), value)
}

// ReadRegister returns the value of register Vidx.
func (st *State) ReadRegister(idx int) (uint8, error) {
	return st.registers.Read(idx)
}

// WriteRegister sets the value of register Vidx.
func (st *State) WriteRegister(idx int, value uint8) error {
	return st.registers.Write(idx, value)
}

// ReadPixel returns the value of the pixel at idx. The framebuffer is row
// major so idx is y*DisplayWidth+x.
func (st *State) ReadPixel(idx int) (uint8, error) {
	return st.display.Read(idx)
}

// WritePixel sets the pixel at idx. The value must be 0 or 1.
func (st *State) WritePixel(idx int, value uint8) error {
	return st.display.Write(idx, value)
}

// ReadKey returns true if key idx is pressed.
func (st *State) ReadKey(idx int) (bool, error) {
	return st.keys.Read(idx)
}

// WriteKey sets the pressed state of key idx.
func (st *State) WriteKey(idx int, pressed bool) error {
	return st.keys.Write(idx, pressed)
}

// DelayTimer returns the value of the delay timer.
func (st *State) DelayTimer() uint8 {
	return st.delay.Value()
}

// SetDelayTimer sets the value of the delay timer.
func (st *State) SetDelayTimer(value uint8) {
	st.delay.Set(value)
}

// SoundTimer returns the value of the sound timer. A non-zero value means a
// tone should be sounding.
func (st *State) SoundTimer() uint8 {
	return st.sound.Value()
}

// SetSoundTimer sets the value of the sound timer.
func (st *State) SetSoundTimer(value uint8) {
	st.sound.Set(value)
}

// TickTimers decreases both timers by one. Neither timer goes below zero.
func (st *State) TickTimers() {
	st.delay.Tick()
	st.sound.Tick()
}
