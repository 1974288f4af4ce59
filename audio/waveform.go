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
	"fmt"
	"math"
	"time"
)

// default waveform values.
const (
	DefaultFrequency = 440.0
	DefaultDuration  = time.Second
	DefaultAmplitude = 0.2
)

// Waveform describes one tone.
type Waveform struct {
	Frequency float64
	Duration  time.Duration
	Amplitude float64

	// if Sample is not nil the tone is the sample rather than a sine wave.
	// the sample is played once at the given amplitude and the Frequency
	// and Duration fields are ignored
	Sample *Sample
}

// DefaultWaveform returns a 440Hz sine wave lasting one second.
func DefaultWaveform() Waveform {
	return Waveform{
		Frequency: DefaultFrequency,
		Duration:  DefaultDuration,
		Amplitude: DefaultAmplitude,
	}
}

func (wf Waveform) String() string {
	if wf.Sample != nil {
		return fmt.Sprintf("%s x%.2f", wf.Sample, wf.Amplitude)
	}
	return fmt.Sprintf("%.1fHz %s x%.2f", wf.Frequency, wf.Duration, wf.Amplitude)
}

// NumSamples returns the number of samples required for the waveform at the
// sample rate.
func (wf Waveform) NumSamples(sampleRate int) int {
	if wf.Sample != nil {
		return int(math.Round(float64(len(wf.Sample.Data)) * float64(sampleRate) / wf.Sample.SampleRate))
	}
	return int(math.Round(wf.Duration.Seconds() * float64(sampleRate)))
}

// Synthesise the waveform at the sample rate. Values are in the range
// [-Amplitude, Amplitude].
func Synthesise(wf Waveform, sampleRate int) []float64 {
	if sampleRate <= 0 {
		return nil
	}

	n := wf.NumSamples(sampleRate)
	out := make([]float64, n)

	if wf.Sample != nil {
		// nearest neighbour resampling
		step := wf.Sample.SampleRate / float64(sampleRate)
		for i := range out {
			j := int(float64(i) * step)
			if j >= len(wf.Sample.Data) {
				j = len(wf.Sample.Data) - 1
			}
			out[i] = wf.Sample.Data[j] * wf.Amplitude
		}
		return out
	}

	w := 2 * math.Pi * wf.Frequency / float64(sampleRate)
	for i := range out {
		out[i] = wf.Amplitude * math.Sin(w*float64(i))
	}

	return out
}

// Quantise8 converts samples in the range [-1, 1] to unsigned 8-bit values
// centred on the silence value.
func Quantise8(samples []float64, silence uint8) []uint8 {
	out := make([]uint8, len(samples))
	for i, s := range samples {
		v := int(silence) + int(math.Round(s*127))
		if v < 0 {
			v = 0
		} else if v > math.MaxUint8 {
			v = math.MaxUint8
		}
		out[i] = uint8(v)
	}
	return out
}

// Quantise16 converts samples in the range [-1, 1] to signed 16-bit values.
func Quantise16(samples []float64) []int {
	out := make([]int, len(samples))
	for i, s := range samples {
		v := int(math.Round(s * math.MaxInt16))
		if v < math.MinInt16 {
			v = math.MinInt16
		} else if v > math.MaxInt16 {
			v = math.MaxInt16
		}
		out[i] = v
	}
	return out
}
