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

package sdlaudio

import (
	"fmt"

	"github.com/hsdiniz/gochip8/audio"
	"github.com/hsdiniz/gochip8/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// the requested sample frequency. SDL will convert to whatever the hardware
// supports
const sampleFreq = 44100

// the size of the device buffer in samples. the value is not critical because
// whole waveforms are queued in one go
const bufferLength = 512

// Sink outputs sound using SDL.
type Sink struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// quantised waveforms are cached. the waveform rarely changes once the
	// program has started
	cacheKey audio.Waveform
	cache    []uint8
}

// NewSink is the preferred method of initialisation for the Sink type. The
// device starts paused.
func NewSink() (*Sink, error) {
	snk := &Sink{}

	spec := &sdl.AudioSpec{
		Freq:     sampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error
	var actualSpec sdl.AudioSpec

	snk.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, fmt.Errorf("sdlaudio: %w", err)
	}
	snk.spec = actualSpec

	logger.Logf(logger.Allow, "sdlaudio", "frequency: %d samples/sec", snk.spec.Freq)
	logger.Logf(logger.Allow, "sdlaudio", "format: %d", snk.spec.Format)
	logger.Logf(logger.Allow, "sdlaudio", "channels: %d", snk.spec.Channels)
	logger.Logf(logger.Allow, "sdlaudio", "buffer size: %d samples", snk.spec.Samples)

	sdl.PauseAudioDevice(snk.id, true)

	return snk, nil
}

// Close the audio device.
func (snk *Sink) Close() {
	sdl.CloseAudioDevice(snk.id)
}

// Enqueue implements the audio.Sink interface.
func (snk *Sink) Enqueue(wf audio.Waveform) error {
	if snk.cache == nil || wf != snk.cacheKey {
		snk.cache = audio.Quantise8(audio.Synthesise(wf, int(snk.spec.Freq)), snk.spec.Silence)
		snk.cacheKey = wf
	}

	if err := sdl.QueueAudio(snk.id, snk.cache); err != nil {
		return fmt.Errorf("sdlaudio: %w", err)
	}

	return nil
}

// Play implements the audio.Sink interface.
func (snk *Sink) Play() {
	sdl.PauseAudioDevice(snk.id, false)
}

// Pause implements the audio.Sink interface.
func (snk *Sink) Pause() {
	sdl.PauseAudioDevice(snk.id, true)
}

// Clear implements the audio.Sink interface.
func (snk *Sink) Clear() {
	sdl.ClearQueuedAudio(snk.id)
}

// Empty implements the audio.Sink interface.
func (snk *Sink) Empty() bool {
	return sdl.GetQueuedAudioSize(snk.id) == 0
}
