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

package sdldisplay

import (
	"fmt"

	"github.com/hsdiniz/gochip8/hardware/specification"
	"github.com/hsdiniz/gochip8/logger"
	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

// Surface is an SDL window with a streaming texture that is updated with
// every presented frame.
type Surface struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// dimensions of the texture
	width  int32
	height int32

	open bool
	quit bool
}

// NewSurface is the preferred method of initialisation for the Surface type.
// The window is sized to fit the display at the given scale. SDL video must
// already have been initialised.
func NewSurface(title string, scale int) (*Surface, error) {
	srf := &Surface{}

	w := int32(specification.DisplayWidth * scale)
	h := int32(specification.DisplayHeight * scale)

	var err error

	srf.window, err = sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		w, h,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, fmt.Errorf("sdldisplay: %w", err)
	}

	srf.renderer, err = sdl.CreateRenderer(srf.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		srf.window.Destroy()
		return nil, fmt.Errorf("sdldisplay: %w", err)
	}

	srf.open = true

	logger.Logf(logger.Allow, "sdldisplay", "window opened (%dx%d)", w, h)

	return srf, nil
}

// Destroy releases all SDL resources. The surface is no longer open.
func (srf *Surface) Destroy() {
	if srf.texture != nil {
		srf.texture.Destroy()
		srf.texture = nil
	}
	if srf.renderer != nil {
		srf.renderer.Destroy()
		srf.renderer = nil
	}
	if srf.window != nil {
		srf.window.Destroy()
		srf.window = nil
	}
	srf.open = false
}

// the texture is recreated if the dimensions of the presented image change
func (srf *Surface) prepareTexture(width int32, height int32) error {
	if srf.texture != nil && srf.width == width && srf.height == height {
		return nil
	}

	if srf.texture != nil {
		srf.texture.Destroy()
		srf.texture = nil
	}

	var err error

	// ABGR8888 is the byte order R, G, B, A on little-endian machines, which
	// is the same as image.RGBA
	srf.texture, err = srf.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		width, height)
	if err != nil {
		return err
	}

	srf.width = width
	srf.height = height

	return nil
}

// Present implements the display.Surface interface.
func (srf *Surface) Present(pixels []uint8, width int, height int) error {
	if !srf.open {
		return fmt.Errorf("sdldisplay: window is closed")
	}

	if err := srf.prepareTexture(int32(width), int32(height)); err != nil {
		return fmt.Errorf("sdldisplay: %w", err)
	}

	buf, pitch, err := srf.texture.Lock(nil)
	if err != nil {
		return fmt.Errorf("sdldisplay: %w", err)
	}

	// texture rows may be padded
	row := width * pixelDepth
	for y := 0; y < height; y++ {
		copy(buf[y*pitch:y*pitch+row], pixels[y*row:(y+1)*row])
	}
	srf.texture.Unlock()

	if err := srf.renderer.Clear(); err != nil {
		return fmt.Errorf("sdldisplay: %w", err)
	}
	if err := srf.renderer.Copy(srf.texture, nil, nil); err != nil {
		return fmt.Errorf("sdldisplay: %w", err)
	}
	srf.renderer.Present()

	srf.service()

	return nil
}

// service pending SDL events. window close and the escape key both count as
// a quit request.
func (srf *Surface) service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			srf.quit = true
		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_CLOSE {
				srf.quit = true
			}
		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE {
				srf.quit = true
			}
		}
	}
}

// IsOpen implements the display.Surface interface.
func (srf *Surface) IsOpen() bool {
	return srf.open
}

// QuitRequested implements the display.Surface interface.
func (srf *Surface) QuitRequested() bool {
	return srf.quit
}
