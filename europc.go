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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/jetsetilly/europc/debugger"
	"github.com/jetsetilly/europc/debugger/terminal"
	"github.com/jetsetilly/europc/debugger/terminal/colorterm"
	"github.com/jetsetilly/europc/debugger/terminal/plainterm"
	"github.com/jetsetilly/europc/environment"
	"github.com/jetsetilly/europc/hardware"
	"github.com/jetsetilly/europc/hardware/jim"
	"github.com/jetsetilly/europc/hardware/nvram"
	"github.com/jetsetilly/europc/logger"
	"github.com/jetsetilly/europc/modalflag"
	"github.com/jetsetilly/europc/performance"
	"github.com/jetsetilly/europc/prefs"
	"github.com/jetsetilly/europc/statsview"
	"github.com/jetsetilly/europc/version"
)

func main() {
	// the value to use with os.Exit()
	exitVal := make(chan int)

	// ctrl-c ends the program without saving. the color terminal handles
	// ctrl-c itself so this only matters for the plain terminal
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go func() {
		exitVal <- launch(os.Args[1:])
	}()

	select {
	case <-intChan:
		fmt.Println("\r")
		os.Exit(0)
	case v := <-exitVal:
		os.Exit(v)
	}
}

func launch(args []string) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)

	showVersion := md.AddBool("version", false, "print version information and exit")
	echoLog := md.AddBool("log", false, "echo log entries to stdout")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	md.AddSubModes("MONITOR", "DUMP")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return 10
	}

	if *showVersion {
		v, r, _ := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, v, r)
		return 0
	}

	if *echoLog {
		logger.SetEcho(os.Stdout)
	}

	if stats != nil && *stats {
		statsview.Launch(os.Stdout)
	}

	switch md.Mode() {
	case "MONITOR":
		err = monitor(md)
	case "DUMP":
		err = dump(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

func monitor(md *modalflag.Modes) error {
	md.NewMode()

	adapter := md.AddString("adapter", "", "video adapter fitted to the machine (default from preferences)")
	nvramDir := md.AddString("nvram", "", "directory containing nvram files (default from preferences)")
	prefsString := md.AddString("prefs", "", "preferences for this session. key::value pairs separated by semi-colons")
	plain := md.AddBool("plain", false, "use plain terminal")
	profile := md.AddBool("profile", false, "run monitor through the cpu profiler")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	// preferences given on the command line are applied when the preferences
	// are loaded
	if *prefsString != "" {
		prefs.PushCommandLineStack(*prefsString)
		defer func() {
			if s := prefs.PopCommandLineStack(); s != "" {
				logger.Logf(logger.Allow, "europc", "unused preferences: %s", s)
			}
		}()
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		return err
	}

	// adapter and nvram flags change the preferences for this session only.
	// preferences are never saved by the monitor
	if *adapter != "" {
		if err := env.Prefs.Adapter.Set(*adapter); err != nil {
			return err
		}
	}
	if *nvramDir != "" {
		if err := env.Prefs.NVRAMDir.Set(*nvramDir); err != nil {
			return err
		}
	}

	m, err := hardware.NewMachine(env)
	if err != nil {
		return err
	}
	defer m.Shutdown()

	term := newTerminal(*plain, colorterm.NewColorTerminal)

	dbg, err := debugger.NewDebugger(m, term)
	if err != nil {
		return err
	}

	if *profile {
		err = performance.ProfileCPU("monitor.cpu.profile", dbg.Start)
		if err != nil {
			return err
		}
		return performance.ProfileMem("monitor.mem.profile")
	}

	return dbg.Start()
}

// newTerminal returns the terminal for the monitor. The plain terminal is
// used if requested or if the color terminal cannot be created.
func newTerminal(plain bool, color func() (terminal.Terminal, error)) terminal.Terminal {
	if !plain {
		term, err := color()
		if err == nil {
			return term
		}
		logger.Logf(logger.Allow, "europc", "%v: using plain terminal", err)
	}
	return plainterm.NewPlainTerminal(nil, nil)
}

func dump(md *modalflag.Modes) error {
	md.NewMode()

	plain := md.AddBool("plain", false, "do not style output")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var dsk *nvram.Disk
	var name string

	switch len(md.RemainingArgs()) {
	case 0:
		dsk = nvram.NewDisk()
		name = jim.NVRAMFile
	case 1:
		dsk = nvram.NewDiskAt(filepath.Dir(md.GetArg(0)))
		name = filepath.Base(md.GetArg(0))
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	pth, err := dsk.Path(name)
	if err != nil {
		return err
	}

	var config, rtc [jim.BlockSize]uint8
	err = dsk.Load(name, config[:], rtc[:])
	if err != nil {
		return err
	}

	fmt.Println(renderNVRAM(pth, config, rtc, *plain))

	return nil
}
