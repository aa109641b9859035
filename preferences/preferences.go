// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

package preferences

import (
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/paths"
	"github.com/jetsetilly/gophernes/prefs"
)

// Default values.
const (
	DefaultSpeed     = 1.0
	DefaultPaletteID = 0
	DefaultAudio     = "SDL"
)

// Preferences defines and collates all the preference values used by the
// play modes.
type Preferences struct {
	dsk *prefs.Disk

	// emulation speed factor used when the emulator starts
	Speed prefs.Float

	// the palette id shown in the debug overlay
	PaletteID prefs.Int

	// the audio backend. one of SDL, OTO or NONE
	Audio prefs.String

	// show the debug overlay on start
	Debug prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The preferences file is placed in the resource path.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

// NewPreferencesFromFile is like NewPreferences but with an explicit
// preferences file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	p.Audio.SetMaxLen(4)

	err = p.SetDefaults()
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("play.speed", &p.Speed)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("play.paletteid", &p.PaletteID)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("play.audio", &p.Audio)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("play.debug", &p.Debug)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() error {
	if err := p.Speed.Set(DefaultSpeed); err != nil {
		return err
	}
	if err := p.PaletteID.Set(DefaultPaletteID); err != nil {
		return err
	}
	if err := p.Audio.Set(DefaultAudio); err != nil {
		return err
	}
	return p.Debug.Set(false)
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Override preference values with a command line group of the form
// "key::value; key::value". The values on disk are loaded again with the
// command line values taking precedence. Keys that are not preferences are
// logged and otherwise ignored.
func (p *Preferences) Override(cmdline string) error {
	prefs.PushCommandLineStack(cmdline)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Warn, "preferences", "unused preferences (%s)", unused)
		}
	}()

	err := p.dsk.Load(false)
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return err
	}
	return nil
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
