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

package debugger

import (
	"fmt"
	"strconv"
	"strings"
)

// parse a hexadecimal number that must fit in the number of bits. the number
// may be prefixed with 0x or $ or suffixed with h
func parseHex(s string, bits int) (uint64, error) {
	n := strings.ToLower(s)
	switch {
	case strings.HasPrefix(n, "0x"):
		n = n[2:]
	case strings.HasPrefix(n, "$"):
		n = n[1:]
	case strings.HasSuffix(n, "h"):
		n = n[:len(n)-1]
	}

	v, err := strconv.ParseUint(n, 16, bits)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return 0, fmt.Errorf("%s is too large", s)
		}
		return 0, fmt.Errorf("%s is not a hexadecimal number", s)
	}

	return v, nil
}

func parseAddress(s string) (uint16, error) {
	v, err := parseHex(s, 16)
	return uint16(v), err
}

func parseData(s string) (uint8, error) {
	v, err := parseHex(s, 8)
	return uint8(v), err
}

func parseIndex(s string) (int, error) {
	v, err := parseHex(s, 4)
	if err != nil {
		return 0, fmt.Errorf("%s is not a clock/calendar index (0 to f)", s)
	}
	return int(v), nil
}

// counts are decimal, unlike addresses and data
func parseCount(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("%s is not a positive decimal number", s)
	}
	return v, nil
}
