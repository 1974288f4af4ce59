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

// Package bounded implements fixed size mappings from an index to a value.
// Every access is checked against the size of the domain and every write can
// optionally be checked against a value constraint. A failing access never
// panics and never changes the contents of the mapping.
//
// The Array type is the basis for every indexed area of the CHIP-8 machine
// (memory, registers, framebuffer and keyboard). The Stack type adds a depth
// pointer to an Array and is used for the call stack.
package bounded
