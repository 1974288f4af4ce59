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

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
)

// Sentinel errors returned by Headless.
var (
	ErrSurfaceClosed = errors.New("display: surface is closed")
	ErrNoFrame       = errors.New("display: no frame has been presented")
)

// Headless is a Surface that keeps the most recently presented frame in
// memory.
type Headless struct {
	pixels []uint8
	width  int
	height int

	frames int
	digest [sha1.Size]byte

	// quit is requested once this many frames have been presented. a value
	// of zero means no limit
	limit int

	closed bool
}

// NewHeadless is the preferred method of initialisation for the Headless
// type. A limit of zero means the surface never requests a quit.
func NewHeadless(limit int) *Headless {
	return &Headless{
		limit: limit,
	}
}

func (h *Headless) String() string {
	return fmt.Sprintf("frame %d: %s", h.frames, h.Hash())
}

// Present implements the Surface interface.
func (h *Headless) Present(pixels []uint8, width int, height int) error {
	if h.closed {
		return ErrSurfaceClosed
	}
	if width <= 0 || height <= 0 || len(pixels) != width*height*4 {
		return fmt.Errorf("display: %d bytes is not a %dx%d image", len(pixels), width, height)
	}

	if cap(h.pixels) < len(pixels) {
		h.pixels = make([]uint8, len(pixels))
	}
	h.pixels = h.pixels[:len(pixels)]
	copy(h.pixels, pixels)

	h.width = width
	h.height = height
	h.frames++
	h.digest = sha1.Sum(h.pixels)

	return nil
}

// IsOpen implements the Surface interface.
func (h *Headless) IsOpen() bool {
	return !h.closed
}

// QuitRequested implements the Surface interface.
func (h *Headless) QuitRequested() bool {
	return h.limit > 0 && h.frames >= h.limit
}

// Close the surface. Subsequent calls to Present() will fail.
func (h *Headless) Close() {
	h.closed = true
}

// Frames returns the number of frames presented.
func (h *Headless) Frames() int {
	return h.frames
}

// Hash returns the SHA-1 digest of the most recent frame as a hex string.
func (h *Headless) Hash() string {
	return fmt.Sprintf("%x", h.digest)
}

// Image returns a copy of the most recent frame.
func (h *Headless) Image() (*image.RGBA, error) {
	if h.frames == 0 {
		return nil, ErrNoFrame
	}
	img := image.NewRGBA(image.Rect(0, 0, h.width, h.height))
	copy(img.Pix, h.pixels)
	return img, nil
}

// SavePNG encodes the most recent frame as a PNG image.
func (h *Headless) SavePNG(w io.Writer) error {
	img, err := h.Image()
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}
