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

package display_test

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	"github.com/hsdiniz/gochip8/display"
	"github.com/hsdiniz/gochip8/test"
)

func TestHeadlessDigest(t *testing.T) {
	hl := display.NewHeadless(0)

	_, err := hl.Image()
	test.ExpectSuccess(t, errors.Is(err, display.ErrNoFrame))

	a := make([]uint8, 2*2*4)
	test.DemandSuccess(t, hl.Present(a, 2, 2))
	ha := hl.Hash()

	b := make([]uint8, 2*2*4)
	b[0] = 0xff
	test.DemandSuccess(t, hl.Present(b, 2, 2))
	test.ExpectInequality(t, hl.Hash(), ha)

	// the same frame produces the same digest
	test.DemandSuccess(t, hl.Present(a, 2, 2))
	test.ExpectEquality(t, hl.Hash(), ha)
	test.ExpectEquality(t, hl.Frames(), 3)

	// the frame is copied
	a[0] = 0xff
	img, err := hl.Image()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Pix[0], uint8(0))
}

func TestHeadlessBadFrame(t *testing.T) {
	hl := display.NewHeadless(0)
	test.ExpectFailure(t, hl.Present(make([]uint8, 10), 2, 2))
	test.ExpectFailure(t, hl.Present(nil, 0, 0))
	test.ExpectEquality(t, hl.Frames(), 0)
}

func TestHeadlessPNG(t *testing.T) {
	hl := display.NewHeadless(0)

	var buf bytes.Buffer
	test.ExpectSuccess(t, errors.Is(hl.SavePNG(&buf), display.ErrNoFrame))

	pix := make([]uint8, 3*2*4)
	for i := range pix {
		pix[i] = 0xff
	}
	pix[0] = 0x10
	test.DemandSuccess(t, hl.Present(pix, 3, 2))
	test.DemandSuccess(t, hl.SavePNG(&buf))

	img, err := png.Decode(&buf)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 3)
	test.ExpectEquality(t, img.Bounds().Dy(), 2)
	r, _, _, _ := img.At(0, 0).RGBA()
	test.ExpectEquality(t, r>>8, uint32(0x10))
}
