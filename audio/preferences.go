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
	"time"

	"github.com/hsdiniz/gochip8/prefs"
	"github.com/hsdiniz/gochip8/resources"
)

// Preferences for the Tone.
type Preferences struct {
	dsk *prefs.Disk

	// frequency in Hz
	Frequency prefs.Float

	// duration in seconds
	Duration prefs.Float

	// in the range 0 to 1
	Amplitude prefs.Float

	// path to a WAV or MP3 file. if empty a sine wave is used
	Sample prefs.String
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return fmt.Sprintf("frequency=%s duration=%s amplitude=%s sample=%q",
			p.Frequency.String(), p.Duration.String(), p.Amplitude.String(), p.Sample.String())
	}
	return p.dsk.String()
}

func positive(label string) func(prefs.Value) error {
	return func(v prefs.Value) error {
		if v.(float64) <= 0 {
			return fmt.Errorf("audio: %s must be positive", label)
		}
		return nil
	}
}

// DefaultPreferences returns preferences with default values that are not
// backed by a preferences file.
func DefaultPreferences() *Preferences {
	p := &Preferences{}

	p.Frequency.SetHookPre(positive("frequency"))
	p.Duration.SetHookPre(positive("duration"))
	p.Amplitude.SetHookPre(func(v prefs.Value) error {
		if a := v.(float64); a < 0 || a > 1 {
			return fmt.Errorf("audio: amplitude %.3f out of range [0, 1]", a)
		}
		return nil
	})

	p.SetDefaults()

	return p
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file in
// the resources directory.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences but with an explicit path to
// the preferences file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := DefaultPreferences()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}

	if err := p.dsk.Add("audio.frequency", &p.Frequency); err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	if err := p.dsk.Add("audio.duration", &p.Duration); err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	if err := p.dsk.Add("audio.amplitude", &p.Amplitude); err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	if err := p.dsk.Add("audio.sample", &p.Sample); err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}

	if err := p.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all audio preferences to the default values.
func (p *Preferences) SetDefaults() {
	p.Frequency.Set(DefaultFrequency)
	p.Duration.Set(DefaultDuration.Seconds())
	p.Amplitude.Set(DefaultAmplitude)
	p.Sample.Set("")
}

// Load audio preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	if err := p.dsk.Load(); err != nil {
		return fmt.Errorf("audio: %w", err)
	}
	return nil
}

// Save current audio preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return fmt.Errorf("audio: preferences are not backed by a file")
	}
	if err := p.dsk.Save(); err != nil {
		return fmt.Errorf("audio: %w", err)
	}
	return nil
}

// Waveform returns the waveform described by the preferences. If a sample
// file has been specified it is loaded.
func (p *Preferences) Waveform() (Waveform, error) {
	wf := Waveform{
		Frequency: p.Frequency.Get().(float64),
		Duration:  time.Duration(p.Duration.Get().(float64) * float64(time.Second)),
		Amplitude: p.Amplitude.Get().(float64),
	}

	if fn := p.Sample.String(); fn != "" {
		smp, err := LoadSample(fn)
		if err != nil {
			return wf, err
		}
		wf.Sample = smp
	}

	return wf, nil
}
