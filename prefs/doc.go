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

// Package prefs facilitates the storage of preferential values in the
// EuroPC system. Preference values are typed (Bool, String and Int) and
// are collected in a Disk instance, which saves and loads them to a text
// file.
//
// The preferences file is a list of "key :: value" lines, sorted by key and
// preceded by a warning boilerplate line. Entries in the file that are not
// recognised by the Disk instance are preserved when the file is saved.
//
// Values can also be supplied on the command line with the
// PushCommandLineStack() function. A command line value takes priority
// over the value on disk the next time the Disk is loaded.
//
// Hooks can be added to each value. HookPre is called before a new value is
// stored and can veto the change by returning an error. HookPost is called
// after the value has been stored.
package prefs
