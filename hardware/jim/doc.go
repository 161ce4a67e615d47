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

// Package jim emulates the JIM chip of the Schneider EuroPC. The chip
// combines a small block of configuration NVRAM with a real-time clock and
// sits in the 16 I/O ports from 0x250 to 0x25f.
//
// # Configuration block
//
// Sixteen bytes indexed by the low nibble of the port address. Every write
// to the port window stores the value in the configuration block, including
// writes to the latch port. Only ports 0x254 to 0x257 read the block back.
// Ports 0x250 to 0x253 are write only and read as zero.
//
// # Clock/calendar block
//
// Sixteen bytes reached only through the latch port at 0x25a. The latch is a
// three step protocol that moves one byte through the port a nibble at a
// time:
//
//	phase 0 --write(index)-------> phase 1
//	phase 1 --write/read(high)---> phase 2
//	phase 2 --write/read(low)----> phase 0
//
// Reads and writes share the same phase counter. A read in phase 0 returns
// zero and leaves the phase alone.
//
// The clock is not ticked. The block is storage only.
//
// # Persistence
//
// Both blocks are saved to a 32 byte file, configuration block first. When
// the chip is created the file is loaded. If there is no file the clock
// block is seeded with default values. In either case two bytes of the
// clock block are then overwritten with a code describing the fitted video
// adapter.
package jim
