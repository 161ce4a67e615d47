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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/europc/environment"
	"github.com/jetsetilly/europc/hardware/jim"
	"github.com/jetsetilly/europc/hardware/nvram"
	"github.com/jetsetilly/europc/hardware/ports"
	"github.com/jetsetilly/europc/logger"
)

// Machine is the whole emulated machine.
type Machine struct {
	env *environment.Environment

	Ports *ports.Bus
	JIM   *jim.JIM
}

// NewMachine powers on a new machine. The video adapter and the location of
// the nvram files are taken from the environment's preferences.
func NewMachine(env *environment.Environment) (*Machine, error) {
	if env == nil {
		return nil, fmt.Errorf("hardware: no environment")
	}

	m := &Machine{
		env:   env,
		Ports: ports.NewBus(env),
	}

	var store *nvram.Disk
	if dir := env.Prefs.NVRAMDir.String(); dir != "" {
		store = nvram.NewDiskAt(dir)
	} else {
		store = nvram.NewDisk()
	}

	adapter := env.Prefs.VideoAdapter()
	m.JIM = jim.Create(env, store, adapter)
	if err := m.JIM.Attach(m.Ports); err != nil {
		return nil, fmt.Errorf("hardware: %w", err)
	}

	logger.Logf(env, "hardware", "powered on with %s adapter", adapter)

	return m, nil
}

// In reads a byte from the I/O port.
func (m *Machine) In(address uint16) uint8 {
	return m.Ports.Read(address)
}

// Out writes a byte to the I/O port.
func (m *Machine) Out(address uint16, data uint8) {
	m.Ports.Write(address, data)
}

// SaveNVRAM saves every chip with non-volatile memory.
func (m *Machine) SaveNVRAM() {
	m.JIM.Save()
}

// Shutdown powers off the machine. NVRAM is saved if the SaveOnExit
// preference is set. The machine should not be used after Shutdown().
func (m *Machine) Shutdown() {
	if m.env.Prefs.SaveOnExit.Get().(bool) {
		m.SaveNVRAM()
	}
	m.JIM.Detach(m.Ports)
	logger.Log(m.env, "hardware", "powered off")
}

func (m *Machine) String() string {
	return fmt.Sprintf("%s\n\n%s", m.Ports, m.JIM)
}
