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

package bounded

import "fmt"

// Stack is a bounded LIFO built on an Array. The pointer is the index of the
// next free slot and is always in the range 0 to depth inclusive.
type Stack[T any] struct {
	slots *Array[T]
	ptr   int

	overflowErr  error
	underflowErr error
}

// NewStack is the preferred method of initialisation for the Stack type.
// The accessErr argument is used by Peek() when the slot requested is not in
// use.
func NewStack[T any](depth int, overflowErr, underflowErr, accessErr error) *Stack[T] {
	return &Stack[T]{
		slots:        NewArray[T](depth, accessErr, nil),
		overflowErr:  overflowErr,
		underflowErr: underflowErr,
	}
}

// Pointer returns the number of entries on the stack.
func (s *Stack[T]) Pointer() int {
	return s.ptr
}

// Depth returns the maximum number of entries.
func (s *Stack[T]) Depth() int {
	return s.slots.Len()
}

// Push value onto the stack. Fails without change if the stack is full.
func (s *Stack[T]) Push(value T) error {
	if s.ptr >= s.slots.Len() {
		return fmt.Errorf("%w: depth %d", s.overflowErr, s.slots.Len())
	}
	if err := s.slots.Write(s.ptr, value); err != nil {
		return err
	}
	s.ptr++
	return nil
}

// Pop the most recent value from the stack. Fails without change if the
// stack is empty.
func (s *Stack[T]) Pop() (T, error) {
	if s.ptr == 0 {
		var zero T
		return zero, fmt.Errorf("%w: pointer %d", s.underflowErr, s.ptr)
	}
	s.ptr--
	return s.slots.Read(s.ptr)
}

// Peek returns the value in slot idx. Only slots below the pointer can be
// peeked.
func (s *Stack[T]) Peek(idx int) (T, error) {
	if idx < 0 || idx >= s.ptr {
		var zero T
		return zero, fmt.Errorf("%w: slot %d (pointer %d)", s.slots.accessErr, idx, s.ptr)
	}
	return s.slots.Read(idx)
}

// Reset empties the stack and zeroes the slots.
func (s *Stack[T]) Reset() {
	s.slots.Reset()
	s.ptr = 0
}

// Snapshot creates a deep copy of the stack.
func (s *Stack[T]) Snapshot() *Stack[T] {
	n := *s
	n.slots = s.slots.Snapshot()
	return &n
}
