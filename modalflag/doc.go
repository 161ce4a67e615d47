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

// Package modalflag wraps the flag package of the standard library and adds
// program modes. A mode is a command line argument that selects a different
// way of running the program, each with its own flags. The go command is the
// best known example: build, test and run all take different flags.
//
// Arguments are given to NewArgs() and flags are added with the AddBool() and
// AddString() functions. Parse() then consumes the flags:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("MONITOR", "DUMP")
//	verbose := md.AddBool("v", false, "verbose output")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// The first sub-mode is the default. After Parse() the Mode() function returns
// the selected mode and RemainingArgs() the arguments after it. Calling
// NewMode() starts a new layer of flags and sub-modes for the selected mode.
// Path() returns every mode selected so far, separated by a slash.
//
// Sub-mode names are case insensitive and are stored in upper case.
package modalflag
