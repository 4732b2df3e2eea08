package cpu

import (
	"fmt"
)

// Kind is the instruction kind of a statement.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_NOP = Kind(0) // nop
	KIND_ACC = Kind(1) // acc
	KIND_JMP = Kind(2) // jmp
	KIND_ERR = Kind(3) // err
)

// Statement is a single decoded instruction.
//
// The set of implementations is closed: Nop, Acc, Jmp and Err.
type Statement interface {
	fmt.Stringer
	Kind() Kind
	statement()
}

// Nop does nothing but advance the IP.
type Nop struct{}

// Acc adds Delta to the accumulator.
type Acc struct {
	Delta int32
}

// Jmp moves the IP by Offset, relative to itself.
type Jmp struct {
	Offset int32
}

// Err is an instruction the processor does not understand.
// Executing it is always fatal.
type Err struct {
	Mnemonic string
}

func (Nop) Kind() Kind { return KIND_NOP }
func (Acc) Kind() Kind { return KIND_ACC }
func (Jmp) Kind() Kind { return KIND_JMP }
func (Err) Kind() Kind { return KIND_ERR }

func (Nop) statement() {}
func (Acc) statement() {}
func (Jmp) statement() {}
func (Err) statement() {}

func (Nop) String() string {
	return "nop +0"
}

func (st Acc) String() string {
	return fmt.Sprintf("acc %+d", st.Delta)
}

func (st Jmp) String() string {
	return fmt.Sprintf("jmp %+d", st.Offset)
}

func (st Err) String() string {
	return st.Mnemonic
}
