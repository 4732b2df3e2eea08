// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// ParseScript executes a Starlark script and loads its global `program`,
// which must be a list (or tuple) of boot code lines.
//
// The src argument is passed to starlark.ExecFileOptions; if nil the
// script is read from filename.
func (ld *Loader) ParseScript(filename string, src any) (prog *Program, err error) {
	thread := starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			if ld.Verbose {
				log.Printf("%v: %v", filename, msg)
			}
		},
	}
	opts := syntax.FileOptions{}

	dict, err := starlark.ExecFileOptions(&opts, &thread, filename, src, nil)
	if err != nil {
		err = errors.Join(ErrScript, err)
		return
	}

	var elems []starlark.Value
	switch value := dict["program"].(type) {
	case *starlark.List:
		for n := range value.Len() {
			elems = append(elems, value.Index(n))
		}
	case starlark.Tuple:
		elems = value
	default:
		err = ErrScriptValue
		return
	}

	prog = &Program{}
	for n, elem := range elems {
		text, ok := starlark.AsString(elem)
		if !ok {
			err = ErrSyntax{LineNo: n + 1, Err: ErrScriptValue}
			prog = nil
			return
		}

		if ld.Verbose {
			log.Printf("%v: %v\n", n+1, text)
		}

		var st Statement
		st, err = ParseLine(text)
		if err != nil {
			err = ErrSyntax{LineNo: n + 1, Err: err}
			prog = nil
			return
		}
		prog.Lines = append(prog.Lines, Line{LineNo: n + 1, Statement: st})
	}

	return
}
