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

package resources

import (
	"os"
	"path/filepath"
)

const (
	portableMarker = "portable.txt"
	portableDir    = "EuroPC_UserData"
)

// checkPortable returns the portable base path and true if the portable.txt
// marker exists next to the executable
func checkPortable() (string, bool) {
	exe, err := os.Executable()
	if err != nil {
		return "", false
	}
	dir := filepath.Dir(exe)

	if _, err := os.Stat(filepath.Join(dir, portableMarker)); err != nil {
		return "", false
	}

	return filepath.Join(dir, portableDir), true
}
