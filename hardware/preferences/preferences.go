// This file is part of EuroPC.
//
// EuroPC is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// EuroPC is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with EuroPC.  If not, see <https://www.gnu.org/licenses/>.

package preferences

import (
	"github.com/jetsetilly/europc/hardware/video"
	"github.com/jetsetilly/europc/prefs"
	"github.com/jetsetilly/europc/resources"
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// the video adapter fitted to the machine. must be a value accepted by
	// video.ParseAdapter()
	Adapter prefs.String

	// the directory containing nvram files. if empty the nvram directory in
	// the resources path is used
	NVRAMDir prefs.String

	// save nvram when the machine is shutdown
	SaveOnExit prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The preferences are loaded from the preferences file in
// the resources path.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesAt(pth)
}

// NewPreferencesAt is like NewPreferences but with the preferences file at
// the specified path.
func NewPreferencesAt(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.Adapter.SetHookPre(func(v prefs.Value) error {
		_, err := video.ParseAdapter(v.(string))
		return err
	})

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("europc.adapter", &p.Adapter)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("europc.nvram.dir", &p.NVRAMDir)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("europc.saveOnExit", &p.SaveOnExit)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all hardware preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.Adapter.Set(video.CGA.String())
	p.NVRAMDir.Set("")
	p.SaveOnExit.Set(true)
}

// VideoAdapter returns the adapter named by the Adapter preference.
func (p *Preferences) VideoAdapter() video.Adapter {
	// the hook on Adapter means the value is always valid
	a, _ := video.ParseAdapter(p.Adapter.String())
	return a
}

// Load hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
