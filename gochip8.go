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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/bradleyjkemp/memviz"
	"github.com/hsdiniz/gochip8/audio"
	"github.com/hsdiniz/gochip8/audio/sdlaudio"
	"github.com/hsdiniz/gochip8/audio/wavwriter"
	"github.com/hsdiniz/gochip8/display"
	"github.com/hsdiniz/gochip8/display/sdldisplay"
	"github.com/hsdiniz/gochip8/display/termdisplay"
	"github.com/hsdiniz/gochip8/emulation"
	"github.com/hsdiniz/gochip8/hardware"
	"github.com/hsdiniz/gochip8/hardware/specification"
	"github.com/hsdiniz/gochip8/logger"
	"github.com/hsdiniz/gochip8/modalflag"
	"github.com/hsdiniz/gochip8/performance"
	"github.com/hsdiniz/gochip8/prefs"
	"github.com/hsdiniz/gochip8/statsview"
	"github.com/hsdiniz/gochip8/version"
	"github.com/veandco/go-sdl2/sdl"
)

// the value of the sound timer in TONE mode. two seconds at the timer
// frequency
const toneDuration = 2 * specification.TimerFrequency

// SDL requires that window and audio functions are called from the main
// thread.
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])

	if err := launch(md, os.Stdout); err != nil {
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}
}

// session wraps the renderer so that the loop ends on an interrupt signal or
// once a frame limit has been reached.
type session struct {
	emulation.Display

	interrupted atomic.Bool

	limit  int
	frames int
}

func (s *session) Render(fb display.Framebuffer) error {
	s.frames++
	return s.Display.Render(fb)
}

func (s *session) IsOpen() bool {
	if s.interrupted.Load() {
		return false
	}
	if s.limit > 0 && s.frames >= s.limit {
		return false
	}
	return s.Display.IsOpen()
}

// draws a checkerboard pattern into the framebuffer
func checkerboard(st *hardware.State) error {
	for y := 0; y < specification.DisplayHeight; y++ {
		for x := 0; x < specification.DisplayWidth; x++ {
			if (x+y)%2 == 0 {
				if err := st.WritePixel(y*specification.DisplayWidth+x, 1); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func launch(md *modalflag.Modes, output io.Writer) error {
	surface := md.AddString("surface", "sdl", "display surface: sdl, term or headless")
	frames := md.AddInt("frames", 0, "number of frames to run (0 runs until quit)")
	pngFile := md.AddString("png", "", "save the final frame to a PNG file (headless surface only)")
	wavFile := md.AddString("wav", "", "record audio to a WAV file instead of playing it")
	mute := md.AddBool("mute", false, "no audio")
	cmdPrefs := md.AddString("prefs", "", "preferences for this session, eg. \"display.scale::10; audio.frequency::880\"")
	memvizFile := md.AddString("memviz", "", "write a graphviz dump of the final machine state")
	echo := md.AddBool("log", false, "echo log to stdout")
	profile := md.AddString("profile", "none", "run performance check with profiling: cpu, mem, trace, all (comma separated)")
	showVersion := md.AddBool("version", false, "print version information and exit")

	var stats *string
	if statsview.Available() {
		stats = md.AddString("statsview", "", fmt.Sprintf("run stats server on address (use \"default\" for %s)", statsview.Address))
	}

	md.AddSubModes("CHECKERBOARD", "TONE")
	md.AdditionalHelp("CHECKERBOARD draws a checkerboard and displays it until quit.\n" +
		"TONE sounds the beep for two seconds.")

	switch p, err := md.Parse(); p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	if *showVersion {
		fmt.Fprintln(output, version.String())
		return nil
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(md.RemainingArgs(), " "))
	}

	if *echo {
		logger.SetEcho(output)
		defer logger.SetEcho(nil)
	}

	if stats != nil && *stats != "" {
		addr := *stats
		if addr == "default" {
			addr = statsview.Address
		}
		statsview.Launch(output, addr)
		defer statsview.Stop()
	}

	if *cmdPrefs != "" {
		prefs.PushCommandLineStack(*cmdPrefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "gochip8", "unused preferences: %s", unused)
			}
		}()
	}

	dispPrefs, err := display.NewPreferences()
	if err != nil {
		return err
	}
	audPrefs, err := audio.NewPreferences()
	if err != nil {
		return err
	}

	st := hardware.NewState()
	switch md.Mode() {
	case "CHECKERBOARD":
		if err := checkerboard(st); err != nil {
			return err
		}
	case "TONE":
		st.SetSoundTimer(toneDuration)
	}

	useSDLAudio := !*mute && *wavFile == ""

	var sdlFlags uint32
	if *surface == "sdl" {
		sdlFlags |= uint32(sdl.INIT_VIDEO)
	}
	if useSDLAudio {
		sdlFlags |= uint32(sdl.INIT_AUDIO)
	}
	if sdlFlags != 0 {
		if err := sdl.Init(sdlFlags); err != nil {
			return fmt.Errorf("sdl: %w", err)
		}
		defer sdl.Quit()
	}

	var srf display.Surface
	var headless *display.Headless

	switch *surface {
	case "sdl":
		s, err := sdldisplay.NewSurface(version.String(), dispPrefs.Scale.Get().(int))
		if err != nil {
			return err
		}
		defer s.Destroy()
		srf = s
	case "term":
		s, err := termdisplay.NewSurface(os.Stdin, output)
		if err != nil {
			return err
		}
		defer s.CleanUp()
		srf = s
	case "headless":
		headless = display.NewHeadless(0)
		srf = headless
	default:
		return fmt.Errorf("unknown surface: %s", *surface)
	}

	rnd, err := display.NewRenderer(srf, dispPrefs)
	if err != nil {
		return err
	}

	var beeper emulation.Beeper
	if !*mute {
		wf, err := audPrefs.Waveform()
		if err != nil {
			return err
		}

		var snk audio.Sink
		if *wavFile != "" {
			w, err := wavwriter.NewSink(*wavFile, nil)
			if err != nil {
				return err
			}
			defer func() {
				if err := w.Close(); err != nil {
					logger.Log(logger.Allow, "gochip8", err)
				}
			}()
			snk = w
		} else {
			s, err := sdlaudio.NewSink()
			if err != nil {
				return err
			}
			defer s.Close()
			snk = s
		}

		tone, err := audio.NewTone(snk, wf)
		if err != nil {
			return err
		}
		beeper = tone
	}

	sess := &session{
		Display: rnd,
		limit:   *frames,
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer func() {
		signal.Stop(intChan)
		close(intChan)
	}()
	go func() {
		if _, ok := <-intChan; ok {
			sess.interrupted.Store(true)
		}
	}()

	loop, err := emulation.NewLoop(st, sess, beeper, nil)
	if err != nil {
		return err
	}
	defer loop.Limiter().Stop()

	logger.Logf(logger.Allow, "gochip8", "%s mode on %s surface", md.Mode(), *surface)

	if err := performance.RunProfiler(prf, version.ApplicationName, loop.Run); err != nil {
		return err
	}

	logger.Logf(logger.Allow, "gochip8", "%d frames (%.2f fps)", loop.Frames(), loop.Limiter().Measured.Load().(float32))

	if *pngFile != "" {
		if headless == nil {
			return fmt.Errorf("-png requires the headless surface")
		}
		if err := savePNG(headless, *pngFile); err != nil {
			return err
		}
	}

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return err
		}
		memviz.Map(f, st)
		if err := f.Close(); err != nil {
			return err
		}
	}

	return nil
}

func savePNG(headless *display.Headless, filename string) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	if err := headless.SavePNG(f); err != nil {
		return err
	}

	logger.Logf(logger.Allow, "gochip8", "final frame saved to %s", filename)

	return nil
}
