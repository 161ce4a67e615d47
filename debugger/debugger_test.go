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

package debugger_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/europc/debugger"
	"github.com/jetsetilly/europc/debugger/terminal/plainterm"
	"github.com/jetsetilly/europc/environment"
	"github.com/jetsetilly/europc/hardware"
	"github.com/jetsetilly/europc/hardware/jim"
	"github.com/jetsetilly/europc/hardware/preferences"
	"github.com/jetsetilly/europc/logger"
	"github.com/jetsetilly/europc/test"
)

func newMachine(t *testing.T) *hardware.Machine {
	t.Helper()

	dir := t.TempDir()
	p, err := preferences.NewPreferencesAt(filepath.Join(dir, "preferences"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.NVRAMDir.Set(filepath.Join(dir, "nvram")))

	env, err := environment.NewEnvironment(environment.MainEmulation, p)
	test.DemandSuccess(t, err)

	m, err := hardware.NewMachine(env)
	test.DemandSuccess(t, err)
	return m
}

// run the monitor with the input and return the output
func run(t *testing.T, m *hardware.Machine, input ...string) string {
	t.Helper()

	out := &test.CompareWriter{}
	term := plainterm.NewPlainTerminal(strings.NewReader(strings.Join(input, "\n")), out)

	dbg, err := debugger.NewDebugger(m, term)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.Start())

	return out.String()
}

func TestInOut(t *testing.T) {
	m := newMachine(t)

	out := run(t, m, "out 255 42", "in 255", "in 0x3f8")
	test.ExpectEquality(t, out, "0255 <- 42\n0255 -> 42\n03f8 -> ff\n")
	test.ExpectEquality(t, m.JIM.Config[5], 0x42)
}

func TestRTC(t *testing.T) {
	m := newMachine(t)

	out := run(t, m, "rtc b", "rtc 2 c5", "rtc 2")
	test.ExpectEquality(t, out, "rtc b -> 12\nrtc 2 <- c5\nrtc 2 -> c5\n")
	test.ExpectEquality(t, m.JIM.Peek(2), 0xc5)

	// the latch is reset before use
	m.Out(jim.LatchPort, 0x01)
	out = run(t, m, "rtc 5")
	test.ExpectEquality(t, out, "rtc 5 -> 88\n")

	out = run(t, m, "rtc")
	test.ExpectEquality(t, out, "0:00 1:00 2:c5 3:01 4:01 5:88 6:00 7:00 8:00 9:00 a:00 b:12 c:00 d:12 e:00 f:01\n")
}

func TestErrors(t *testing.T) {
	m := newMachine(t)

	out := run(t, m, "in", "out 250", "rtc 10", "rtc 2 100", "foo")
	test.ExpectEquality(t, out, strings.Join([]string{
		"* IN requires an address",
		"* OUT requires an address and a value",
		"* 10 is not a clock/calendar index (0 to f)",
		"* 100 is too large",
		"* unrecognised command (FOO)",
	}, "\n")+"\n")

	// failed commands do not touch the latch
	test.ExpectEquality(t, m.JIM.Latch.Phase, jim.PhaseIndex)
}

func TestLog(t *testing.T) {
	m := newMachine(t)

	logger.Clear()
	for i := range 20 {
		logger.Logf(logger.Allow, "test", "entry %d", i)
	}

	out := run(t, m, "log 10")
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	test.ExpectEquality(t, len(lines), 10)

	// the most recent entry is from the monitor starting
	test.ExpectEquality(t, lines[0], "test: entry 11")
	test.ExpectEquality(t, lines[9], "debugger: monitor started")

	out = run(t, m, "log 0x10")
	test.ExpectEquality(t, out, "* 0x10 is not a positive decimal number\n")
}

func TestQuit(t *testing.T) {
	m := newMachine(t)

	out := run(t, m, "out 255 01", "quit", "out 255 02")
	test.ExpectEquality(t, out, "0255 <- 01\n")
	test.ExpectEquality(t, m.JIM.Config[5], 0x01)
}

func TestSave(t *testing.T) {
	m := newMachine(t)
	test.ExpectEquality(t, m.JIM.IsSaved(), false)

	out := run(t, m, "save")
	test.ExpectEquality(t, out, "nvram saved\n")
	test.ExpectEquality(t, m.JIM.IsSaved(), true)

	out = run(t, m, "jim")
	test.ExpectEquality(t, strings.HasSuffix(out, "nvram:  saved\n"), true)
}

func TestInformation(t *testing.T) {
	m := newMachine(t)

	out := run(t, m, "ports")
	test.ExpectEquality(t, out, m.Ports.String()+"\n")

	out = run(t, m, "map")
	test.ExpectEquality(t, out, jim.PortMap()+"\n")

	out = run(t, m, "help")
	test.ExpectEquality(t, strings.HasPrefix(out, "IN OUT RTC"), true)

	out = run(t, m, "help rtc")
	test.ExpectEquality(t, strings.HasPrefix(out, "RTC {index {value}}\n"), true)

	out = run(t, m, "help foo")
	test.ExpectEquality(t, out, "* no help for FOO\n")
}

func TestMemviz(t *testing.T) {
	m := newMachine(t)

	fn := filepath.Join(t.TempDir(), "jim.dot")
	run(t, m, "memviz "+fn)

	d, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.HasPrefix(string(d), "digraph"), true)
}

func TestNoMachine(t *testing.T) {
	_, err := debugger.NewDebugger(nil, plainterm.NewPlainTerminal(nil, nil))
	test.ExpectFailure(t, err)
}
