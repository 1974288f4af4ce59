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

import (
	"fmt"
)

// Constraint is called with the value of every write. A non-nil error rejects
// the write.
type Constraint[T any] func(T) error

// Array is a fixed size mapping from an integer index to a value of type T.
type Array[T any] struct {
	cells []T

	// returned (wrapped) when an index is outside of the domain
	accessErr error

	// optional value constraint. nil if any value of T is acceptable
	constraint Constraint[T]
}

// NewArray is the preferred method of initialisation for the Array type. The
// accessErr value is the sentinel error wrapped by every out of range access.
// The constraint function can be nil.
func NewArray[T any](size int, accessErr error, constraint Constraint[T]) *Array[T] {
	if size < 0 {
		size = 0
	}
	return &Array[T]{
		cells:      make([]T, size),
		accessErr:  accessErr,
		constraint: constraint,
	}
}

// Len returns the size of the domain.
func (a *Array[T]) Len() int {
	return len(a.cells)
}

func (a *Array[T]) check(idx int) error {
	if idx < 0 || idx >= len(a.cells) {
		return fmt.Errorf("%w: index %d (domain %d)", a.accessErr, idx, len(a.cells))
	}
	return nil
}

// Read the value at index.
func (a *Array[T]) Read(idx int) (T, error) {
	if err := a.check(idx); err != nil {
		var zero T
		return zero, err
	}
	return a.cells[idx], nil
}

// Write the value at index. The index is checked before the value and the
// array is unchanged if either check fails.
func (a *Array[T]) Write(idx int, value T) error {
	if err := a.check(idx); err != nil {
		return err
	}
	if a.constraint != nil {
		if err := a.constraint(value); err != nil {
			return err
		}
	}
	a.cells[idx] = value
	return nil
}

// Reset every cell to the zero value of T.
func (a *Array[T]) Reset() {
	var zero T
	for i := range a.cells {
		a.cells[i] = zero
	}
}

// Snapshot creates a deep copy of the array.
func (a *Array[T]) Snapshot() *Array[T] {
	n := *a
	n.cells = make([]T, len(a.cells))
	copy(n.cells, a.cells)
	return &n
}

// Copy returns a copy of the underlying cells.
func (a *Array[T]) Copy() []T {
	c := make([]T, len(a.cells))
	copy(c, a.cells)
	return c
}
