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
	"testing"

	"github.com/jetsetilly/europc/test"
)

func TestParseHex(t *testing.T) {
	for _, s := range []string{"25a", "25A", "0x25a", "$25a", "25ah", "025a"} {
		v, err := parseAddress(s)
		test.ExpectSuccess(t, err, s)
		test.ExpectEquality(t, v, 0x25a, s)
	}

	_, err := parseAddress("10000")
	test.ExpectFailure(t, err)
	_, err = parseAddress("port")
	test.ExpectFailure(t, err)
	_, err = parseAddress("")
	test.ExpectFailure(t, err)

	d, err := parseData("ff")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, 0xff)
	_, err = parseData("100")
	test.ExpectFailure(t, err)

	i, err := parseIndex("f")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, i, 0xf)
	_, err = parseIndex("10")
	test.ExpectFailure(t, err)

	// counts are decimal
	n, err := parseCount("10")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 10)
	_, err = parseCount("a")
	test.ExpectFailure(t, err)
	_, err = parseCount("0")
	test.ExpectFailure(t, err)
	_, err = parseCount("-1")
	test.ExpectFailure(t, err)
}
