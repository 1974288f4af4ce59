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

package display

// Framebuffer is the read side of the machine's display memory. Pixels are
// indexed in row major order and have the value 0 or 1.
type Framebuffer interface {
	ReadPixel(idx int) (uint8, error)
}

// Surface is where a rendered frame is presented.
type Surface interface {
	// Present the device image. Pixels are RGBA, four bytes per pixel, in
	// row major order. The slice is only valid for the duration of the call.
	Present(pixels []uint8, width int, height int) error

	// IsOpen returns false once the surface can no longer be presented to.
	IsOpen() bool

	// QuitRequested returns true if the user has asked to quit.
	QuitRequested() bool
}
