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

import "errors"

// Sentinel errors returned (wrapped) by State operations. Test for them with
// errors.Is().
var (
	ErrStackOverflow              = errors.New("stack overflow")
	ErrStackUnderflow             = errors.New("stack underflow")
	ErrInvalidStackAccess         = errors.New("invalid stack access")
	ErrProgramCounterOutOfBounds  = errors.New("program counter out of bounds")
	ErrAddressRegisterOutOfBounds = errors.New("address register out of bounds")
	ErrInvalidMemoryAccess        = errors.New("invalid memory access")
	ErrInvalidRegisterAccess      = errors.New("invalid register access")
	ErrInvalidPixelAccess         = errors.New("invalid pixel access")
	ErrInvalidPixelValue          = errors.New("invalid pixel value")
	ErrInvalidKeyAccess           = errors.New("invalid key access")
)
