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

// Package debugger implements the EuroPC monitor. The monitor is a simple
// command line interface to the emulated machine. Ports can be read and
// written, the JIM chip can be inspected and the NVRAM file can be saved.
//
// The monitor talks to the user through the terminal.Terminal interface.
// Implementations can be found in the plainterm and colorterm packages.
//
// Commands are case insensitive. Numbers are always hexadecimal, with an
// optional "0x" or "$" prefix or an "h" suffix. The HELP command lists every
// command.
package debugger
