package cpu

import (
	"errors"

	"github.com/0mbi/aoc2020-08/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrIpRange            = errors.New(f("ip out of range"))
	ErrAccRange           = errors.New(f("accumulator overflow"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))

	// Parse errors
	ErrMnemonicInvalid  = errors.New(f("mnemonic invalid"))
	ErrSeparatorMissing = errors.New(f("separator missing"))
	ErrSignInvalid      = errors.New(f("sign missing or invalid"))
	ErrOperandInvalid   = errors.New(f("operand invalid"))
	ErrOperandRange     = errors.New(f("operand out of range"))

	// Loader errors
	ErrScript      = errors.New(f("script"))
	ErrScriptValue = errors.New(f("script program must be a list of strings"))
)

// ErrParse is a malformed instruction line.
type ErrParse struct {
	Text string
	Err  error
}

func (err ErrParse) Error() string {
	return f("'%v' %v", err.Text, err.Err)
}

func (err ErrParse) Unwrap() error {
	return err.Err
}

// Is matches any ErrParse, regardless of the underlying cause.
func (err ErrParse) Is(target error) (ok bool) {
	_, ok = target.(ErrParse)
	return
}

// ErrExecution is a fatal fault during a run.
type ErrExecution struct {
	Ip  int
	Err error
}

func (err ErrExecution) Error() string {
	return f("ip %d %v", err.Ip, err.Err)
}

func (err ErrExecution) Unwrap() error {
	return err.Err
}

// Is matches any ErrExecution, regardless of the underlying cause.
func (err ErrExecution) Is(target error) (ok bool) {
	_, ok = target.(ErrExecution)
	return
}

// ErrSyntax locates a load failure within a listing.
type ErrSyntax struct {
	LineNo int
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
