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

package audio_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	chipaudio "github.com/hsdiniz/gochip8/audio"
	"github.com/hsdiniz/gochip8/prefs"
	"github.com/hsdiniz/gochip8/test"
)

func TestPreferencesWaveform(t *testing.T) {
	p := chipaudio.DefaultPreferences()

	wf, err := p.Waveform()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, wf.Frequency, chipaudio.DefaultFrequency)
	test.ExpectEquality(t, wf.Duration, chipaudio.DefaultDuration)
	test.ExpectEquality(t, wf.Amplitude, chipaudio.DefaultAmplitude)
	test.ExpectSuccess(t, wf.Sample == nil)

	test.ExpectFailure(t, p.Amplitude.Set(1.5))
	test.ExpectFailure(t, p.Frequency.Set(0))
	test.ExpectFailure(t, p.Duration.Set(-1))

	test.DemandSuccess(t, p.Duration.Set(0.25))
	wf, err = p.Waveform()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, wf.Duration, 250*time.Millisecond)
}

func TestPreferencesFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := chipaudio.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.Frequency.Set(880))
	test.DemandSuccess(t, p.Save())

	q, err := chipaudio.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Frequency.Get().(float64), 880.0)
	test.ExpectEquality(t, q.Amplitude.Get().(float64), chipaudio.DefaultAmplitude)
}

func writeTestWAV(t *testing.T, fn string, rate int, bitDepth int, chans int, data []int) {
	t.Helper()

	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, rate, bitDepth, chans, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: chans, SampleRate: rate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	test.DemandSuccess(t, enc.Write(buf))
	test.DemandSuccess(t, enc.Close())
}

func TestLoadSampleWAV(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "beep.wav")
	writeTestWAV(t, fn, 8000, 16, 1, []int{0, 16384, -16384, 0})

	smp, err := chipaudio.LoadSample(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, smp.SampleRate, 8000.0)
	test.DemandEquality(t, len(smp.Data), 4)
	test.ExpectEquality(t, smp.Data[1], 0.5)
	test.ExpectEquality(t, smp.Data[2], -0.5)

	p := chipaudio.DefaultPreferences()
	test.DemandSuccess(t, p.Sample.Set(fn))
	wf, err := p.Waveform()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, wf.Sample != nil)
	test.ExpectEquality(t, wf.NumSamples(16000), 8)
}

func TestLoadSampleWAVFormats(t *testing.T) {
	for _, tc := range []struct {
		name     string
		bitDepth int
		chans    int
		data     []int
		expected []float64
	}{
		{
			name:     "8bit silence",
			bitDepth: 8,
			chans:    1,
			data:     []int{128, 128, 128, 128},
			expected: []float64{0, 0, 0, 0},
		},
		{
			name:     "8bit range",
			bitDepth: 8,
			chans:    1,
			data:     []int{0, 64, 128, 192},
			expected: []float64{-1, -0.5, 0, 0.5},
		},
		{
			name:     "16bit stereo",
			bitDepth: 16,
			chans:    2,
			data:     []int{16384, -32768, -16384, 32767, 0, 100},
			expected: []float64{0.5, -0.5, 0},
		},
		{
			name:     "8bit stereo",
			bitDepth: 8,
			chans:    2,
			data:     []int{192, 0, 128, 255},
			expected: []float64{0.5, 0},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			fn := filepath.Join(t.TempDir(), "sample.wav")
			writeTestWAV(t, fn, 11025, tc.bitDepth, tc.chans, tc.data)

			smp, err := chipaudio.LoadSample(fn)
			test.DemandSuccess(t, err)
			test.ExpectEquality(t, smp.SampleRate, 11025.0)
			test.DemandEquality(t, len(smp.Data), len(tc.expected))
			for i, v := range tc.expected {
				test.ExpectEquality(t, smp.Data[i], v, i)
			}
		})
	}
}

func TestLoadSampleMP3(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "beep.mp3")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("this is not an mp3 file"), 0o600))

	_, err := chipaudio.LoadSample(fn)
	test.ExpectFailure(t, err)
	test.ExpectFailure(t, errors.Is(err, chipaudio.ErrUnsupportedSample))
}

func TestLoadSampleUnsupported(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "beep.ogg")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("OggS"), 0o600))

	_, err := chipaudio.LoadSample(fn)
	test.ExpectSuccess(t, errors.Is(err, chipaudio.ErrUnsupportedSample))

	_, err = chipaudio.LoadSample(filepath.Join(t.TempDir(), "missing.wav"))
	test.ExpectFailure(t, err)
}
