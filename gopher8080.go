// This file is part of Gopher8080.
//
// Gopher8080 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8080 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8080.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher8080/disassembly"
	"github.com/jetsetilly/gopher8080/govern"
	"github.com/jetsetilly/gopher8080/hardware"
	"github.com/jetsetilly/gopher8080/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8080/hardware/peripherals"
	"github.com/jetsetilly/gopher8080/hardware/peripherals/console"
	"github.com/jetsetilly/gopher8080/hardware/peripherals/dac"
	"github.com/jetsetilly/gopher8080/hardware/preferences"
	"github.com/jetsetilly/gopher8080/logger"
	"github.com/jetsetilly/gopher8080/modalflag"
	"github.com/jetsetilly/gopher8080/paths"
	"github.com/jetsetilly/gopher8080/prefs"
	"github.com/jetsetilly/gopher8080/romloader"
	"github.com/jetsetilly/gopher8080/statsview"
	"github.com/jetsetilly/gopher8080/version"
)

// exit values
const (
	exitOK = iota
	exitParseError
	exitModeError
	exitFault
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch the program with the command line arguments. returns the value to
// use with os.Exit()
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "DISASM")
	showVersion := md.AddBool("version", false, "print version and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	if *showVersion {
		fmt.Fprintln(output, version.String())
		return exitOK
	}

	var r hardware.StepResult

	switch md.Mode() {
	case "RUN":
		r, err = run(md)
	case "DISASM":
		err = disasm(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
		return exitModeError
	}

	if r.State == hardware.Fault {
		return exitFault
	}

	return exitOK
}

func loadImage(md *modalflag.Modes, hash string) (romloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return romloader.Loader{}, fmt.Errorf("program image required for %s mode", md)
	case 1:
	default:
		return romloader.Loader{}, fmt.Errorf("too many arguments for %s mode", md)
	}

	ld := romloader.NewLoader(md.GetArg(0))
	ld.Hash = hash

	err := ld.Load()
	if err != nil {
		return ld, err
	}

	return ld, nil
}

func newPreferences(prefsOverride string) (*preferences.Preferences, error) {
	if prefsOverride != "" {
		prefs.PushCommandLineStack(prefsOverride)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
			}
		}()
	}

	return preferences.NewPreferences()
}

func run(md *modalflag.Modes) (hardware.StepResult, error) {
	md.NewMode()

	prefsOverride := md.AddString("prefs", "", "override preferences (eg. \"memory.size::0x10000; cpu.stacktop::0xf000\")")
	savePrefs := md.AddBool("saveprefs", false, "save preferences to disk before running")
	hash := md.AddString("hash", "", "expected SHA1 hash of the program image")
	trace := md.AddBool("trace", false, "print every instruction before it is executed")
	log := md.AddBool("log", false, "echo log to stdout")
	useConsole := md.AddBool("console", false, fmt.Sprintf("attach terminal to console ports (status %#02x, data %#02x)", peripherals.ConsoleStatusPort, peripherals.ConsoleDataPort))
	useDAC := md.AddBool("dac", false, fmt.Sprintf("record output of DAC port (%#02x) to a wav file", peripherals.DACPort))
	wavFile := md.AddString("wav", "", "filename for DAC recording (implies -dac)")
	sampleRate := md.AddInt("samplerate", dac.DefaultSampleRate, "sample rate of DAC recording")
	maxInstructions := md.AddInt("max", 0, "stop after number of instructions (0 for no limit)")
	memvizFile := md.AddString("memviz", "", "write graphviz representation of the machine state after the run to file")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	var r hardware.StepResult

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return r, err
	}

	if *log {
		logger.SetEcho(md.Output)
		defer logger.SetEcho(nil)
	} else {
		logger.SetEcho(nil)
	}

	if stats != nil && *stats {
		statsview.Launch(md.Output)
	}

	ld, err := loadImage(md, *hash)
	if err != nil {
		return r, err
	}

	pr, err := newPreferences(*prefsOverride)
	if err != nil {
		return r, err
	}

	if *savePrefs {
		err = pr.Save()
		if err != nil {
			return r, err
		}
	}

	m, err := hardware.NewMachine(pr)
	if err != nil {
		return r, err
	}

	err = m.AttachImage(ld.Data)
	if err != nil {
		return r, err
	}
	logger.Logf(logger.Allow, "gopher8080", "%s (sha1 %s)", ld.Filename, ld.Hash)

	if *useConsole {
		trm, err := console.OpenTerminal()
		if err != nil {
			return r, err
		}
		defer trm.Close()

		con := console.NewConsole(peripherals.ConsoleStatusPort, peripherals.ConsoleDataPort, trm, trm)
		err = con.Attach(m.Ports)
		if err != nil {
			return r, err
		}
	}

	if *useDAC || *wavFile != "" {
		fn := *wavFile
		if fn == "" {
			fn = fmt.Sprintf("%s.wav", paths.UniqueFilename("dac", ld.ShortName()))
		}

		d := dac.NewDAC(peripherals.DACPort, fn, *sampleRate)
		err = d.Attach(m.Ports)
		if err != nil {
			return r, err
		}
		defer func() {
			if err := d.Close(); err != nil {
				fmt.Fprintf(md.Output, "* error: %v\n", err)
			}
		}()
	}

	if *trace {
		m.CPU.TraceHook = func(res execution.Result) {
			fmt.Fprintln(md.Output, res.String())
		}
	}

	// ctrl-c ends the run between instructions
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	var performanceFilter int
	continueCheck := func() (govern.State, error) {
		// the result of every instruction is checked when tracing
		if *trace {
			if err := m.CPU.LastResult.IsValid(); err != nil {
				return govern.Ending, err
			}
		}

		performanceFilter++
		if performanceFilter < hardware.PerformanceBrake {
			return govern.Running, nil
		}
		performanceFilter = 0

		select {
		case <-intChan:
			return govern.Ending, nil
		default:
		}
		return govern.Running, nil
	}

	if *maxInstructions > 0 {
		r, err = m.RunForInstructionCount(*maxInstructions, func(_ int) (govern.State, error) {
			return continueCheck()
		})
	} else {
		r, err = m.Run(continueCheck)
	}
	if err != nil {
		return r, err
	}

	fmt.Fprintln(md.Output, r)
	fmt.Fprintln(md.Output, m)

	if *memvizFile != "" {
		err = writeMemviz(*memvizFile, m)
		if err != nil {
			return r, err
		}
	}

	return r, nil
}

// writeMemviz writes a graphviz representation of the machine state to the
// named file. The state is taken from a snapshot so that the ports and any
// attached devices are not part of the graph.
func writeMemviz(filename string, m *hardware.Machine) error {
	s := m.Snapshot()
	s.CPU.Plumb(s.Mem, nil)

	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	memviz.Map(f, s)

	return f.Close()
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	origin := md.AddInt("origin", preferences.DefaultOrigin, "address at which the image is placed")
	grep := md.AddString("grep", "", "only show instructions matching the string")
	hash := md.AddString("hash", "", "expected SHA1 hash of the program image")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *origin < 0 || *origin > 0xffff {
		return fmt.Errorf("origin (%#x) outside of the address space", *origin)
	}

	ld, err := loadImage(md, *hash)
	if err != nil {
		return err
	}

	dsm := disassembly.FromImage(ld.Data, uint16(*origin))

	if *grep != "" {
		return dsm.Grep(md.Output, disassembly.GrepAll, strings.TrimSpace(*grep), false)
	}

	return dsm.Write(md.Output, disassembly.WriteAttr{ByteCode: *bytecode})
}
