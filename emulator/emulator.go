// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"log"

	"github.com/0mbi/aoc2020-08/cpu"
)

// Emulator state. CPU + the listing it runs.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	lastLineNo int // Line of the most recently executed statement.
}

// NewEmulator creates a new emulator with an empty program.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(nil),
		Program: &cpu.Program{},
	}

	return
}

// Reset loads the current program into the CPU and resets it.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Load(emu.Program.Statements())
	emu.lastLineNo = 0

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Ip returns current instruction pointer.
func (emu *Emulator) Ip() int {
	return emu.Cpu.Ip
}

// Statement returns the statement at the instruction pointer, if any.
func (emu *Emulator) Statement() cpu.Statement {
	line, ok := emu.Program.Debug(emu.Cpu.Ip)
	if !ok {
		return nil
	}

	return line.Statement
}

// LineNo returns the current line number for the executing statement.
func (emu *Emulator) LineNo() int {
	line, ok := emu.Program.Debug(emu.Cpu.Ip)
	if !ok {
		return 0
	}

	return line.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	// An IP outside the listing is blamed on the statement that put it there.
	lineno := emu.LineNo()
	if lineno == 0 {
		lineno = emu.lastLineNo
	}
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	done, err = emu.Cpu.Tick()
	if err == nil && !done {
		emu.lastLineNo = lineno
	}

	return
}

// Run ticks the emulator until the program revisits a statement,
// returning the accumulator at that point.
func (emu *Emulator) Run() (acc int32, err error) {
	for {
		var done bool
		done, err = emu.Tick()
		if err != nil {
			return
		}
		if done {
			break
		}
	}

	if emu.Verbose {
		log.Printf("halted at line %d after %d ticks", emu.LineNo(), emu.Ticks())
	}

	return emu.Cpu.Acc, nil
}
