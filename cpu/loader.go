// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"log"
	"strings"
)

// Loader reads boot code listings into a Program.
type Loader struct {
	Verbose bool // If set, verbosely logs the loader actions.
}

// Parse parses an input stream into a Program, one statement per line.
//
// Blank lines and text after a ';' are ignored. If any line fails to
// parse, no Program is returned.
func (ld *Loader) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var lineno int

	defer func() {
		if err != nil {
			prog = nil
			err = ErrSyntax{LineNo: lineno, Err: err}
		}
	}()

	prog = &Program{}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if ld.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line := strings.TrimSpace(text_comment[0])
		if len(line) == 0 {
			continue
		}

		var st Statement
		st, err = ParseLine(line)
		if err != nil {
			return
		}

		prog.Lines = append(prog.Lines, Line{LineNo: lineno, Statement: st})
	}

	err = scanner.Err()

	return
}
