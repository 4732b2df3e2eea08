package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

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

func TestRun(t *testing.T) {
	assert := assert.New(t)

	prog := MustParse(bootCode...)

	acc, err := Run(prog.Statements())
	assert.NoError(err)
	assert.Equal(int32(5), acc)

	// Deterministic
	acc, err = Run(prog.Statements())
	assert.NoError(err)
	assert.Equal(int32(5), acc)
}

func TestCpuTrace(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(MustParse(bootCode...).Statements())

	table := [](struct {
		ip  int
		acc int32
	}){
		{1, 0},
		{2, 1},
		{6, 1},
		{7, 2},
		{3, 2},
		{4, 5},
		{1, 5},
	}

	for n, entry := range table {
		halted, err := cpu.Tick()
		assert.NoError(err, n)
		assert.False(halted, n)
		assert.Equal(entry.ip, cpu.Ip, n)
		assert.Equal(entry.acc, cpu.Acc, n)
	}

	halted, err := cpu.Tick()
	assert.NoError(err)
	assert.True(halted)
	assert.Equal(1, cpu.Ip)
	assert.Equal(int32(5), cpu.Acc)
	assert.Equal(7, cpu.Ticks)

	// Halting is terminal.
	halted, err = cpu.Tick()
	assert.NoError(err)
	assert.True(halted)
	assert.Equal(7, cpu.Ticks)

	assert.True(cpu.Visited(4))
	assert.False(cpu.Visited(5))
	assert.False(cpu.Visited(8))
	assert.False(cpu.Visited(-1))
	assert.Contains(cpu.String(), "halted")
}

func TestCpuReset(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(MustParse(bootCode...).Statements())

	acc, err := cpu.Run()
	assert.NoError(err)
	assert.Equal(int32(5), acc)

	cpu.Reset()
	assert.Equal(0, cpu.Ip)
	assert.Equal(int32(0), cpu.Acc)
	assert.Equal(0, cpu.Ticks)
	assert.False(cpu.Visited(1))
	assert.Contains(cpu.String(), "running")

	acc, err = cpu.Run()
	assert.NoError(err)
	assert.Equal(int32(5), acc)
}

func TestRunSingleNop(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu([]Statement{Nop{}})

	halted, err := cpu.Tick()
	assert.NoError(err)
	assert.False(halted)
	assert.Equal(0, cpu.Ip)

	halted, err = cpu.Tick()
	assert.NoError(err)
	assert.True(halted)
	assert.Equal(int32(0), cpu.Acc)

	acc, err := Run([]Statement{Nop{}})
	assert.NoError(err)
	assert.Equal(int32(0), acc)
}

func TestRunFallThrough(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu([]Statement{Nop{}, Acc{Delta: 1}})

	halted, err := cpu.Tick()
	assert.NoError(err)
	assert.False(halted)
	assert.Equal(1, cpu.Ip)

	halted, err = cpu.Tick()
	assert.NoError(err)
	assert.False(halted)
	assert.Equal(0, cpu.Ip)
	assert.Equal(int32(1), cpu.Acc)

	halted, err = cpu.Tick()
	assert.NoError(err)
	assert.True(halted)
	assert.Equal(int32(1), cpu.Acc)
}

func TestRunSelfJump(t *testing.T) {
	assert := assert.New(t)

	acc, err := Run([]Statement{Acc{Delta: 3}, Jmp{Offset: 0}})
	assert.NoError(err)
	assert.Equal(int32(3), acc)
}

func TestRunErrInstruction(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu([]Statement{Err{Mnemonic: "xyz"}, Acc{Delta: 1}, Jmp{Offset: -2}})

	acc, err := cpu.Run()
	assert.Equal(int32(0), acc)
	assert.ErrorIs(err, ErrInstructionInvalid)
	assert.ErrorIs(err, ErrExecution{})
	assert.False(errors.Is(err, ErrParse{}))

	var eerr ErrExecution
	if assert.ErrorAs(err, &eerr) {
		assert.Equal(0, eerr.Ip)
	}
	assert.Equal(int32(0), cpu.Acc)
	assert.Contains(cpu.String(), "aborted")

	// Faults are terminal.
	halted, err := cpu.Tick()
	assert.False(halted)
	assert.ErrorIs(err, ErrInstructionInvalid)
}

func TestRunErrInstructionLater(t *testing.T) {
	assert := assert.New(t)

	_, err := Run([]Statement{Acc{Delta: 4}, Jmp{Offset: 2}, Nop{}, Err{Mnemonic: "hlt"}})
	assert.ErrorIs(err, ErrInstructionInvalid)

	var eerr ErrExecution
	if assert.ErrorAs(err, &eerr) {
		assert.Equal(3, eerr.Ip)
	}
}

func TestRunIpRange(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program []Statement
		ip      int
	}){
		{"empty", []Statement{}, 0},
		{"nil", nil, 0},
		{"jmp_forward", []Statement{Jmp{Offset: 5}}, 5},
		{"jmp_past_end", []Statement{Nop{}, Jmp{Offset: 1}}, 2},
		{"jmp_backward", []Statement{Nop{}, Jmp{Offset: -2}}, -1},
	}

	for _, entry := range table {
		acc, err := Run(entry.program)
		assert.Equal(int32(0), acc, entry.name)
		assert.ErrorIs(err, ErrIpRange, entry.name)

		var eerr ErrExecution
		if assert.ErrorAs(err, &eerr, entry.name) {
			assert.Equal(entry.ip, eerr.Ip, entry.name)
		}
	}
}

func TestRunAccRange(t *testing.T) {
	assert := assert.New(t)

	_, err := Run([]Statement{Acc{Delta: 2147483647}, Acc{Delta: 1}})
	assert.ErrorIs(err, ErrAccRange)

	_, err = Run([]Statement{Acc{Delta: -2147483648}, Acc{Delta: -1}})
	assert.ErrorIs(err, ErrAccRange)

	acc, err := Run([]Statement{Acc{Delta: -2147483648}, Acc{Delta: 2147483647}, Jmp{Offset: -2}})
	assert.NoError(err)
	assert.Equal(int32(-1), acc)
}

func TestExecute(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(nil)

	assert.NoError(cpu.Execute(Nop{}))
	assert.Equal(1, cpu.Ip)

	assert.NoError(cpu.Execute(Acc{Delta: -5}))
	assert.Equal(2, cpu.Ip)
	assert.Equal(int32(-5), cpu.Acc)

	assert.NoError(cpu.Execute(Jmp{Offset: -2}))
	assert.Equal(0, cpu.Ip)

	assert.ErrorIs(cpu.Execute(Err{Mnemonic: "xyz"}), ErrInstructionInvalid)
	assert.ErrorIs(cpu.Execute(nil), ErrInstructionInvalid)
	assert.Equal(0, cpu.Ip)
	assert.Equal(int32(-5), cpu.Acc)
}

func TestCpuString(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(MustParse("acc +3", "jmp -1").Statements())
	_, err := cpu.Run()
	assert.NoError(err)

	text := cpu.String()
	assert.Equal(4, strings.Count(text, "\n"))
	assert.Contains(text, "  acc: 3\n")
	assert.Contains(text, "   ip: 0\n")
}
