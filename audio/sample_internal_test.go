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
	"io"
	"testing"

	"github.com/hsdiniz/gochip8/test"
)

// stereoStream serves 16bit stereo PCM data a few bytes at a time so that
// frames are split across reads.
type stereoStream struct {
	data  []byte
	step  int
	rate  int
	fault error
}

func (s *stereoStream) Read(p []byte) (int, error) {
	n := s.step
	if n > len(s.data) {
		n = len(s.data)
	}
	if n > len(p) {
		n = len(p)
	}
	copy(p, s.data[:n])
	s.data = s.data[n:]
	if len(s.data) == 0 {
		if s.fault != nil {
			return n, s.fault
		}
		return n, io.EOF
	}
	return n, nil
}

func (s *stereoStream) SampleRate() int {
	return s.rate
}

func stereoFrames(frames ...[2]int16) []byte {
	var b []byte
	for _, f := range frames {
		for _, v := range f {
			b = append(b, uint8(uint16(v)), uint8(uint16(v)>>8))
		}
	}
	return b
}

func TestReadStereo16(t *testing.T) {
	frames := [][2]int16{
		{16384, -32768},
		{-16384, 32767},
		{0, 1},
		{-32768, 0},
		{8192, 8192},
	}
	expected := []float64{0.5, -0.5, 0, -1, 0.25}

	for _, step := range []int{1, 3, 4, 5, 7, 4096} {
		var smp Sample
		stream := &stereoStream{
			data: stereoFrames(frames...),
			step: step,
			rate: 22050,
		}
		test.DemandSuccess(t, smp.readStereo16(stream), step)
		test.ExpectEquality(t, smp.SampleRate, 22050.0, step)
		test.DemandEquality(t, len(smp.Data), len(expected), step)
		for i, v := range expected {
			test.ExpectEquality(t, smp.Data[i], v, step, i)
		}
	}
}

func TestReadStereo16Truncated(t *testing.T) {
	// a trailing partial frame is dropped
	var smp Sample
	data := stereoFrames([2]int16{16384, 0}, [2]int16{-16384, 0})
	stream := &stereoStream{
		data: data[:len(data)-1],
		step: 3,
		rate: 44100,
	}
	test.DemandSuccess(t, smp.readStereo16(stream))
	test.DemandEquality(t, len(smp.Data), 1)
	test.ExpectEquality(t, smp.Data[0], 0.5)
}

func TestReadStereo16Fault(t *testing.T) {
	errRead := errors.New("read fault")

	var smp Sample
	stream := &stereoStream{
		data:  stereoFrames([2]int16{0, 0}),
		step:  4,
		fault: errRead,
	}
	err := smp.readStereo16(stream)
	test.ExpectSuccess(t, errors.Is(err, errRead))
}
