// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/0mbi/aoc2020-08/cpu"
	"github.com/0mbi/aoc2020-08/emulator"
)

// bootCode is the listing run when no file is given.
var bootCode = []string{
	"nop +0",
	"acc +1",
	"jmp +4",
	"acc +3",
	"jmp -3",
	"acc -99",
	"acc +1",
	"jmp -4",
	"acc +6",
}

func main() {
	var listing string
	var verbose bool

	flag.StringVar(&listing, "f", "", "listing to run (.star for a Starlark script, - for stdin)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	prog := cpu.MustParse(bootCode...)

	ld := &cpu.Loader{Verbose: verbose}
	var err error
	switch {
	case len(listing) == 0:
		// Use the built-in boot code.
	case listing == "-":
		prog, err = ld.Parse(os.Stdin)
	case filepath.Ext(listing) == ".star":
		prog, err = ld.ParseScript(listing, nil)
	default:
		var inf *os.File
		inf, err = os.Open(listing)
		if err != nil {
			log.Fatalf("%v: %v", listing, err)
		}
		defer inf.Close()
		prog, err = ld.Parse(inf)
	}
	if err != nil {
		log.Fatalf("%v: %v", listing, err)
	}

	err = run(os.Stdout, prog, verbose)
	if err != nil {
		log.Fatal(err)
	}
}

// run executes a program and reports the final accumulator to out.
func run(out io.Writer, prog *cpu.Program, verbose bool) (err error) {
	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Verbose = verbose

	err = emu.Reset()
	if err != nil {
		return
	}

	acc, err := emu.Run()
	if err != nil {
		if verbose {
			log.Print(emu.Cpu.String())
		}
		return
	}

	_, err = fmt.Fprintf(out, "Accumulator is: %d\n", acc)

	return
}
