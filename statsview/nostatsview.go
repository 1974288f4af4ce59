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

//go:build !statsview

package statsview

import "io"

// Address is the default address of the stats server.
const Address = ""

// Launch is a stub for builds without the statsview build tag.
func Launch(_ io.Writer, _ string) {
}

// Stop is a stub for builds without the statsview build tag.
func Stop() {
}

// Available returns false for builds without the statsview build tag.
func Available() bool {
	return false
}
