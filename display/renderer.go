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
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/hsdiniz/gochip8/hardware/specification"
	"golang.org/x/image/draw"
)

// Renderer converts the framebuffer into a device image and presents it.
type Renderer struct {
	surface Surface

	scale int
	fg    color.RGBA
	bg    color.RGBA

	// one pixel per framebuffer cell
	logical *image.RGBA

	// the logical image scaled up by the scale factor
	device *image.RGBA
}

// NewRenderer is the preferred method of initialisation for the Renderer
// type. If prefs is nil the default preferences are used. The values in prefs
// are read once and later changes do not affect the Renderer.
func NewRenderer(surface Surface, prefs *Preferences) (*Renderer, error) {
	if surface == nil {
		return nil, errors.New("display: no surface")
	}
	if prefs == nil {
		prefs = DefaultPreferences()
	}

	r := &Renderer{
		surface: surface,
		scale:   prefs.Scale.Get().(int),
	}

	var err error
	r.fg, err = ParseColour(prefs.Foreground.String())
	if err != nil {
		return nil, err
	}
	r.bg, err = ParseColour(prefs.Background.String())
	if err != nil {
		return nil, err
	}

	r.logical = image.NewRGBA(image.Rect(0, 0, specification.DisplayWidth, specification.DisplayHeight))
	r.device = image.NewRGBA(image.Rect(0, 0, specification.DisplayWidth*r.scale, specification.DisplayHeight*r.scale))

	return r, nil
}

// Scale returns the scale factor of the Renderer.
func (r *Renderer) Scale() int {
	return r.scale
}

// Device returns the device image as it was last presented. The image should
// not be modified.
func (r *Renderer) Device() *image.RGBA {
	return r.device
}

// Render the framebuffer and present the result to the surface in one call.
func (r *Renderer) Render(fb Framebuffer) error {
	for y := 0; y < specification.DisplayHeight; y++ {
		for x := 0; x < specification.DisplayWidth; x++ {
			v, err := fb.ReadPixel(y*specification.DisplayWidth + x)
			if err != nil {
				return fmt.Errorf("display: %w", err)
			}
			if v == 0 {
				r.logical.SetRGBA(x, y, r.bg)
			} else {
				r.logical.SetRGBA(x, y, r.fg)
			}
		}
	}

	// nearest neighbour scaling with an integer scale factor replicates each
	// logical pixel exactly
	draw.NearestNeighbor.Scale(r.device, r.device.Bounds(), r.logical, r.logical.Bounds(), draw.Src, nil)

	b := r.device.Bounds()
	if err := r.surface.Present(r.device.Pix, b.Dx(), b.Dy()); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// IsOpen returns true while the surface is open and no quit has been
// requested.
func (r *Renderer) IsOpen() bool {
	return r.surface.IsOpen() && !r.surface.QuitRequested()
}
