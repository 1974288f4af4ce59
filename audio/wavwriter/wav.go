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

package wavwriter

import (
	"fmt"
	"os"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hsdiniz/gochip8/audio"
	"github.com/hsdiniz/gochip8/logger"
)

// SampleFreq is the sample rate of the WAV file.
const SampleFreq = 44100

// the bit depth of the WAV file
const bitDepth = 16

// wav format code for uncompressed PCM
const pcmFormat = 1

// Sink implements the audio.Sink interface.
type Sink struct {
	filename string
	now      func() time.Time

	// samples waiting to be played
	queue []float64

	// samples that have been played
	played []float64

	playing bool

	// the time from which playback of the queue is measured and the number
	// of samples played since then
	anchor      time.Time
	sinceAnchor int
}

// NewSink is the preferred method of initialisation for the Sink type. The
// now function is the clock against which playback is emulated. If it is
// nil, time.Now is used.
func NewSink(filename string, now func() time.Time) (*Sink, error) {
	if filename == "" {
		return nil, fmt.Errorf("wavwriter: no filename")
	}
	if now == nil {
		now = time.Now
	}
	return &Sink{
		filename: filename,
		now:      now,
	}, nil
}

// consume samples from the queue that are due to have been played
func (snk *Sink) advance() {
	if !snk.playing {
		return
	}

	due := int(snk.now().Sub(snk.anchor).Seconds()*SampleFreq) - snk.sinceAnchor
	if due <= 0 {
		return
	}
	if due > len(snk.queue) {
		due = len(snk.queue)
	}

	snk.played = append(snk.played, snk.queue[:due]...)
	snk.queue = snk.queue[due:]
	snk.sinceAnchor += due
}

func (snk *Sink) reanchor() {
	snk.anchor = snk.now()
	snk.sinceAnchor = 0
}

// Enqueue implements the audio.Sink interface.
func (snk *Sink) Enqueue(wf audio.Waveform) error {
	snk.advance()

	// a device with nothing to play starts playing new data as soon as it
	// arrives
	if len(snk.queue) == 0 {
		snk.reanchor()
	}

	snk.queue = append(snk.queue, audio.Synthesise(wf, SampleFreq)...)

	return nil
}

// Play implements the audio.Sink interface.
func (snk *Sink) Play() {
	if snk.playing {
		return
	}
	snk.playing = true
	snk.reanchor()
}

// Pause implements the audio.Sink interface.
func (snk *Sink) Pause() {
	snk.advance()
	snk.playing = false
}

// Clear implements the audio.Sink interface.
func (snk *Sink) Clear() {
	snk.advance()
	snk.queue = snk.queue[:0]
}

// Empty implements the audio.Sink interface.
func (snk *Sink) Empty() bool {
	snk.advance()
	return len(snk.queue) == 0
}

// Played returns the number of samples played so far.
func (snk *Sink) Played() int {
	snk.advance()
	return len(snk.played)
}

// Close writes the played audio to the WAV file.
func (snk *Sink) Close() (rerr error) {
	snk.advance()

	f, err := os.Create(snk.filename)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	enc := wav.NewEncoder(f, SampleFreq, bitDepth, 1, pcmFormat)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  SampleFreq,
		},
		Data:           audio.Quantise16(snk.played),
		SourceBitDepth: bitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing %d samples to %s", len(snk.played), snk.filename)

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	return nil
}
