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

// Package display turns the 1-bit CHIP-8 framebuffer into a scaled colour
// image and hands it to a Surface for presentation.
//
// The Renderer reads the framebuffer through the Framebuffer interface, which
// is satisfied by *hardware.State. Each logical pixel becomes a block of
// S x S device pixels, where S is the scale factor from the display
// Preferences. The scale factor and colours are fixed when the Renderer is
// created.
//
// Surfaces are provided by the sdldisplay and termdisplay packages. The
// Headless type in this package is a Surface that keeps the most recent frame
// in memory, which is useful for testing and for running without a window.
package display
