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

package termdisplay

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/hsdiniz/gochip8/hardware/specification"
	"github.com/hsdiniz/gochip8/logger"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ANSI sequences
const (
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	resetAttr   = "\x1b[0m"
	halfBlock   = "▀"
)

// key codes that request a quit
const (
	keyQuit   = 'q'
	keyEscape = 0x1b
)

const pixelDepth = 4

// Surface draws frames to a terminal.
type Surface struct {
	input  *os.File
	output *bufio.Writer

	// the terminal attributes before raw mode was entered. only valid if
	// raw is true
	raw     bool
	canAttr unix.Termios

	open bool
	quit atomic.Bool
}

// NewSurface is the preferred method of initialisation for the Surface type.
// The input file can be nil, in which case quit is never requested.
func NewSurface(input *os.File, output io.Writer) (*Surface, error) {
	if output == nil {
		return nil, fmt.Errorf("termdisplay: no output")
	}

	srf := &Surface{
		input:  input,
		output: bufio.NewWriter(output),
		open:   true,
	}

	if input != nil {
		if term.IsTerminal(int(input.Fd())) {
			if err := srf.rawMode(); err != nil {
				return nil, err
			}
		}
		go srf.readInput()
	}

	srf.output.WriteString(clearScreen)
	srf.output.WriteString(hideCursor)
	if err := srf.output.Flush(); err != nil {
		srf.CleanUp()
		return nil, fmt.Errorf("termdisplay: %w", err)
	}

	return srf, nil
}

func (srf *Surface) rawMode() error {
	fd := srf.input.Fd()
	if err := termios.Tcgetattr(fd, &srf.canAttr); err != nil {
		return fmt.Errorf("termdisplay: %w", err)
	}

	rawAttr := srf.canAttr
	termios.Cfmakeraw(&rawAttr)
	if err := termios.Tcsetattr(fd, termios.TCSANOW, &rawAttr); err != nil {
		return fmt.Errorf("termdisplay: %w", err)
	}

	srf.raw = true
	logger.Log(logger.Allow, "termdisplay", "terminal in raw mode")

	return nil
}

// readInput runs in its own goroutine until the input is closed.
func (srf *Surface) readInput() {
	b := make([]byte, 1)
	for {
		n, err := srf.input.Read(b)
		if n > 0 && (b[0] == keyQuit || b[0] == keyEscape) {
			srf.quit.Store(true)
		}
		if err != nil {
			return
		}
	}
}

// CleanUp restores the terminal to the condition it was in before
// NewSurface() was called. The surface is no longer open.
func (srf *Surface) CleanUp() {
	if !srf.open {
		return
	}
	srf.open = false

	srf.output.WriteString(resetAttr)
	srf.output.WriteString(showCursor)
	srf.output.WriteString("\r\n")
	srf.output.Flush()

	if srf.raw {
		termios.Tcsetattr(srf.input.Fd(), termios.TCSANOW, &srf.canAttr)
		srf.raw = false
	}
}

func (srf *Surface) setColours(upper []uint8, lower []uint8) {
	fmt.Fprintf(srf.output, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm",
		upper[0], upper[1], upper[2],
		lower[0], lower[1], lower[2])
}

// Present implements the display.Surface interface.
func (srf *Surface) Present(pixels []uint8, width int, height int) error {
	if !srf.open {
		return fmt.Errorf("termdisplay: surface is closed")
	}

	scale := width / specification.DisplayWidth
	if scale < 1 || width != specification.DisplayWidth*scale || height != specification.DisplayHeight*scale ||
		len(pixels) != width*height*pixelDepth {
		return fmt.Errorf("termdisplay: %dx%d is not a scaled display image", width, height)
	}

	// one device pixel is sampled for every logical pixel
	at := func(x, y int) []uint8 {
		i := (y*scale*width + x*scale) * pixelDepth
		return pixels[i : i+pixelDepth]
	}

	srf.output.WriteString(cursorHome)

	for y := 0; y < specification.DisplayHeight; y += 2 {
		var prevUpper, prevLower []uint8
		for x := 0; x < specification.DisplayWidth; x++ {
			upper := at(x, y)
			lower := at(x, y+1)
			if prevUpper == nil || !sameColour(upper, prevUpper) || !sameColour(lower, prevLower) {
				srf.setColours(upper, lower)
			}
			srf.output.WriteString(halfBlock)
			prevUpper = upper
			prevLower = lower
		}
		srf.output.WriteString(resetAttr)
		srf.output.WriteString("\r\n")
	}

	if err := srf.output.Flush(); err != nil {
		return fmt.Errorf("termdisplay: %w", err)
	}

	return nil
}

func sameColour(a []uint8, b []uint8) bool {
	return a[0] == b[0] && a[1] == b[1] && a[2] == b[2]
}

// IsOpen implements the display.Surface interface.
func (srf *Surface) IsOpen() bool {
	return srf.open
}

// QuitRequested implements the display.Surface interface.
func (srf *Surface) QuitRequested() bool {
	return srf.quit.Load()
}
