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

// Package statsview serves runtime statistics over HTTP while the emulator is
// running. The server is only included when the program is built with the
// statsview build tag:
//
//	go build -tags=statsview .
//
// When launched the charts are found at:
//
//	localhost:12650/debug/statsview
//
// and the standard pprof pages at:
//
//	localhost:12650/debug/pprof/
//
// Without the build tag Available() returns false and Launch() does nothing.
package statsview

// Address of the statistics server.
const Address = "localhost:12650"

const url = "/debug/statsview"
