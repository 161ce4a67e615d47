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

// Package hardware is the base package for the EuroPC emulation. The Machine
// type ties the chips to the port bus and is the entry point for any code
// that wants to drive the emulation.
//
// The Machine is powered on by NewMachine() and powered off by Shutdown().
// Chips with non-volatile memory are saved on shutdown if the SaveOnExit
// preference is set.
package hardware
