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

//go:build !statsview

package statsview_test

import (
	"testing"

	"github.com/jetsetilly/europc/statsview"
	"github.com/jetsetilly/europc/test"
)

func TestUnavailable(t *testing.T) {
	tw := &test.CompareWriter{}
	statsview.Launch(tw)
	test.ExpectEquality(t, statsview.Available(), false)
	test.ExpectEquality(t, tw.String(), "")
}
