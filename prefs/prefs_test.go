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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/europc/prefs"
	"github.com/jetsetilly/europc/test"
)

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("true"))
	test.ExpectFailure(t, x.Set(10))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestString(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	var w prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, dsk.Add("bar", &w))

	test.ExpectSuccess(t, v.Set("CGA"))
	test.ExpectSuccess(t, w.Set("europc_jim.nvr"))

	// maximum length crops existing value
	w.SetMaxLen(6)
	test.ExpectEquality(t, w.String(), "europc")

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "bar :: europc\nfoo :: CGA\n")
}

func TestInt(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, v.Set("10"))
	test.ExpectEquality(t, v.Get().(int), 10)
	test.ExpectFailure(t, v.Set("ten"))
	test.ExpectEquality(t, v.Get().(int), 10)

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "number :: 10\n")
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	var w prefs.Bool
	test.ExpectSuccess(t, dsk.Add("adapter", &v))
	test.ExpectSuccess(t, dsk.Add("save", &w))

	// loading a non-existant file is not an error
	test.ExpectSuccess(t, dsk.Load())

	test.ExpectSuccess(t, v.Set("MDA"))
	test.ExpectSuccess(t, w.Set(true))
	test.DemandSuccess(t, dsk.Save())

	// a second disk instance sees the saved values
	dsk2, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v2 prefs.String
	var w2 prefs.Bool
	test.ExpectSuccess(t, dsk2.Add("adapter", &v2))
	test.ExpectSuccess(t, dsk2.Add("save", &w2))
	test.ExpectSuccess(t, dsk2.Load())
	test.ExpectEquality(t, v2.String(), "MDA")
	test.ExpectEquality(t, w2.Get().(bool), true)
}

func TestPreserveUnknownKeys(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var v prefs.String
	var w prefs.String
	test.ExpectSuccess(t, dsk.Add("a", &v))
	test.ExpectSuccess(t, dsk.Add("b", &w))
	test.ExpectSuccess(t, v.Set("1"))
	test.ExpectSuccess(t, w.Set("2"))
	test.DemandSuccess(t, dsk.Save())

	// disk instance that only knows about one of the keys
	dsk2, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var v2 prefs.String
	test.ExpectSuccess(t, dsk2.Add("a", &v2))
	test.ExpectSuccess(t, v2.Set("3"))
	test.DemandSuccess(t, dsk2.Save())

	cmpTmpFile(t, fn, "a :: 3\nb :: 2\n")
}

func TestInvalidFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not a prefs file\n"), 0600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, dsk.Load())
}

func TestAddErrors(t *testing.T) {
	_, err := prefs.NewDisk("")
	test.ExpectFailure(t, err)

	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectFailure(t, dsk.Add("bad::key", &v))
	test.ExpectSuccess(t, dsk.Add("good", &v))
	test.ExpectFailure(t, dsk.Add("good", &v))
}

func TestHooks(t *testing.T) {
	var v prefs.String
	var post string

	v.SetHookPre(func(value prefs.Value) error {
		if value.(string) == "" {
			return fmt.Errorf("empty value")
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(string)
		return nil
	})

	test.ExpectSuccess(t, v.Set("CGA"))
	test.ExpectEquality(t, post, "CGA")

	// pre hook vetoes the change
	test.ExpectFailure(t, v.Set(""))
	test.ExpectEquality(t, v.String(), "CGA")
}
