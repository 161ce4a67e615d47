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

package jim

// access describes what happens when a port in the JIM window is read
type access int

const (
	// reads as zero. the byte is written to the configuration block
	accessWriteOnly access = iota

	// reads back the configuration block
	accessConfig

	// the clock/calendar latch
	accessLatch

	// reads as zero. the byte is written to the configuration block
	accessUnused
)

func (a access) String() string {
	switch a {
	case accessWriteOnly:
		return "write only"
	case accessConfig:
		return "config"
	case accessLatch:
		return "rtc latch"
	}
	return "unused"
}

type portRange struct {
	first  uint16
	last   uint16
	access access
}

// portMap lists every port in the JIM window. ports outside the window, and
// any gaps, are treated as accessUnused
var portMap = []portRange{
	{first: 0x250, last: 0x253, access: accessWriteOnly},
	{first: 0x254, last: 0x257, access: accessConfig},
	{first: 0x258, last: 0x259, access: accessUnused},
	{first: LatchPort, last: LatchPort, access: accessLatch},
	{first: 0x25b, last: 0x25f, access: accessUnused},
}

func decode(address uint16) access {
	for _, r := range portMap {
		if address >= r.first && address <= r.last {
			return r.access
		}
	}
	return accessUnused
}

// every write to an address that matches the mask is also a write to the
// configuration block. the comparison is on twelve bits only
const (
	configMask  = 0xff0
	configIndex = 0x00f
)

func isConfigWrite(address uint16) bool {
	return address&configMask == Base
}
