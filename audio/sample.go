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

package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/hsdiniz/gochip8/logger"
)

// ErrUnsupportedSample is returned by LoadSample for files that are not WAV
// or MP3 files.
var ErrUnsupportedSample = errors.New("audio: unsupported sample format")

// Sample is mono PCM data loaded from a file. Values are in the range [-1, 1].
type Sample struct {
	Name       string
	SampleRate float64
	Data       []float64
}

func (smp *Sample) String() string {
	return fmt.Sprintf("%s (%.0fHz, %d samples)", smp.Name, smp.SampleRate, len(smp.Data))
}

// LoadSample reads a WAV or MP3 file. Only the first channel of a multi
// channel file is used.
func LoadSample(filename string) (*Sample, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	defer f.Close()

	smp := &Sample{
		Name: filepath.Base(filename),
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		err = smp.decodeWAV(f)
	case ".mp3":
		err = smp.decodeMP3(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSample, filename)
	}
	if err != nil {
		return nil, err
	}

	if len(smp.Data) == 0 || smp.SampleRate <= 0 {
		return nil, fmt.Errorf("audio: %s: no audio data", smp.Name)
	}

	logger.Logf(logger.Allow, "audio", "loaded sample %s", smp)

	return smp, nil
}

func (smp *Sample) decodeWAV(r io.ReadSeeker) error {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return fmt.Errorf("audio: wav: not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return fmt.Errorf("audio: wav: %w", err)
	}
	fbuf := buf.AsFloatBuffer()

	if dec.BitDepth == 0 {
		return fmt.Errorf("audio: wav: unknown bit depth")
	}

	// integer samples are scaled by the bit depth of the file. 8bit samples
	// are unsigned and centred on 128
	scale := float64(int(1) << (dec.BitDepth - 1))
	var bias float64
	if dec.BitDepth == 8 {
		bias = scale
	}

	chans := int(dec.NumChans)
	if chans < 1 {
		chans = 1
	}

	smp.Data = make([]float64, 0, len(fbuf.Data)/chans)
	for i := 0; i < len(fbuf.Data); i += chans {
		smp.Data = append(smp.Data, (fbuf.Data[i]-bias)/scale)
	}
	smp.SampleRate = float64(dec.SampleRate)

	return nil
}

// pcmStream is a stream of 16bit little endian stereo PCM data.
type pcmStream interface {
	io.Reader
	SampleRate() int
}

func (smp *Sample) decodeMP3(r io.Reader) error {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return fmt.Errorf("audio: mp3: %w", err)
	}
	if err := smp.readStereo16(dec); err != nil {
		return fmt.Errorf("audio: mp3: %w", err)
	}
	return nil
}

// readStereo16 keeps the left channel of the stream. frames split across
// reads are carried over to the next read.
func (smp *Sample) readStereo16(stream pcmStream) error {
	const frameSize = 4

	chunk := make([]byte, 4096)
	var carry int
	for {
		n, err := stream.Read(chunk[carry:])
		n += carry

		end := n - n%frameSize
		for i := 0; i < end; i += frameSize {
			v := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
			smp.Data = append(smp.Data, float64(v)/32768)
		}
		carry = copy(chunk, chunk[end:n])

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
	}
	smp.SampleRate = float64(stream.SampleRate())

	return nil
}
