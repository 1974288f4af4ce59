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

package display

import (
	"fmt"

	"github.com/hsdiniz/gochip8/prefs"
	"github.com/hsdiniz/gochip8/resources"
)

// default values for the display preferences. the colours are an amber
// phosphor on black.
const (
	DefaultScale      = 20
	DefaultForeground = "#FFB000"
	DefaultBackground = "#000000"

	// scale factors outside this range are rejected
	minScale = 1
	maxScale = 64
)

// Preferences for the Renderer.
type Preferences struct {
	dsk *prefs.Disk

	Scale      prefs.Int
	Foreground prefs.String
	Background prefs.String
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return fmt.Sprintf("scale=%s fg=%s bg=%s", p.Scale.String(), p.Foreground.String(), p.Background.String())
	}
	return p.dsk.String()
}

func validColour(v prefs.Value) error {
	_, err := ParseColour(v.(string))
	return err
}

// DefaultPreferences returns preferences with default values that are not
// backed by a preferences file.
func DefaultPreferences() *Preferences {
	p := &Preferences{}

	p.Scale.SetHookPre(func(v prefs.Value) error {
		if s := v.(int); s < minScale || s > maxScale {
			return fmt.Errorf("display: scale %d out of range [%d, %d]", s, minScale, maxScale)
		}
		return nil
	})
	p.Foreground.SetHookPre(validColour)
	p.Background.SetHookPre(validColour)

	p.SetDefaults()

	return p
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file in
// the resources directory.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, fmt.Errorf("display: %w", err)
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
		return nil, fmt.Errorf("display: %w", err)
	}

	if err := p.dsk.Add("display.scale", &p.Scale); err != nil {
		return nil, fmt.Errorf("display: %w", err)
	}
	if err := p.dsk.Add("display.foreground", &p.Foreground); err != nil {
		return nil, fmt.Errorf("display: %w", err)
	}
	if err := p.dsk.Add("display.background", &p.Background); err != nil {
		return nil, fmt.Errorf("display: %w", err)
	}

	if err := p.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all display preferences to the default values.
func (p *Preferences) SetDefaults() {
	p.Scale.Set(DefaultScale)
	p.Foreground.Set(DefaultForeground)
	p.Background.Set(DefaultBackground)
}

// Load display preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	if err := p.dsk.Load(); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}

// Save current display preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return fmt.Errorf("display: preferences are not backed by a file")
	}
	if err := p.dsk.Save(); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}
