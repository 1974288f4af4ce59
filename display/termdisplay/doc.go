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

// Package termdisplay implements the display.Surface interface for ANSI
// terminals that support 24-bit colour.
//
// Two rows of logical pixels are drawn with every line of text, using the
// upper half block character with the foreground colour for the upper pixel
// and the background colour for the lower pixel. The full display therefore
// needs a terminal of at least 64 columns and 16 lines.
//
// If the input file is a terminal it is put into raw mode so that key presses
// are seen immediately. Pressing 'q' or the escape key requests a quit.
package termdisplay
