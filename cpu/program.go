package cpu

import (
	"iter"
	"strings"
)

// Line is a statement with its location in the listing it was loaded from.
type Line struct {
	LineNo int
	Statement
}

// Program is a loaded boot code listing.
type Program struct {
	Lines []Line
}

// NewProgram creates a program from bare statements, numbering them from 1.
func NewProgram(stmts ...Statement) (prog *Program) {
	prog = &Program{}
	for n, st := range stmts {
		prog.Lines = append(prog.Lines, Line{LineNo: n + 1, Statement: st})
	}

	return
}

// MustParse builds a program from literal lines, panicking on a bad line.
func MustParse(lines ...string) (prog *Program) {
	prog = &Program{}
	for n, text := range lines {
		st, err := ParseLine(text)
		if err != nil {
			panic(ErrSyntax{LineNo: n + 1, Err: err})
		}
		prog.Lines = append(prog.Lines, Line{LineNo: n + 1, Statement: st})
	}

	return
}

// Len returns the number of statements.
func (prog *Program) Len() int {
	return len(prog.Lines)
}

// Debug returns the listing line at an instruction index.
func (prog *Program) Debug(ip int) (line Line, ok bool) {
	if ip < 0 || ip >= len(prog.Lines) {
		return
	}

	return prog.Lines[ip], true
}

// Statements returns a copy of the statements, in execution order.
func (prog *Program) Statements() (stmts []Statement) {
	stmts = make([]Statement, 0, len(prog.Lines))
	for _, st := range prog.All() {
		stmts = append(stmts, st)
	}

	return
}

// All iterates over the instruction indexes and statements.
func (prog *Program) All() iter.Seq2[int, Statement] {
	return func(yield func(ip int, st Statement) bool) {
		for ip, line := range prog.Lines {
			if !yield(ip, line.Statement) {
				return
			}
		}
	}
}

// String returns the program as a listing, one statement per line.
func (prog *Program) String() string {
	var sb strings.Builder
	for _, st := range prog.All() {
		sb.WriteString(st.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}
