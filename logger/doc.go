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

// Package logger is the central logging facility for the emulator. Log
// entries are made up of a tag and a detail. The tag identifies the part of
// the emulation that produced the entry and the detail says what happened.
//
// Identical entries that arrive one after another are collapsed into a
// single entry with a repeat count.
//
// Logging is gated by the Permission interface. Emulation components
// normally pass their context, which decides whether logging is allowed at
// that moment. The Allow value always permits logging.
package logger
