package cpu

import (
	"fmt"
	"log"
	"math"
)

// Cpu is the simulation context for the boot code processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Ip  int   // Current instruction pointer.
	Acc int32 // Accumulator.

	Ticks int // Instructions executed since reset.

	program []Statement
	visited []bool
	halted  bool
	fault   error
}

// NewCpu creates a new CPU bound to a sequence of statements.
func NewCpu(program []Statement) (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Load(program)

	return
}

// Load binds the CPU to a new sequence of statements, and resets it.
func (cpu *Cpu) Load(program []Statement) {
	cpu.program = program
	cpu.visited = make([]bool, len(program))
	cpu.Reset()
}

// Reset the CPU state.
// - Clears the accumulator and the visited set.
// - Zeros the tick counter.
// - Points the IP at the first statement.
func (cpu *Cpu) Reset() {
	cpu.Ip = 0
	cpu.Acc = 0
	cpu.Ticks = 0
	cpu.halted = false
	cpu.fault = nil
	clear(cpu.visited)
}

// Visited returns true if the statement at ip has already executed.
func (cpu *Cpu) Visited(ip int) bool {
	if ip < 0 || ip >= len(cpu.visited) {
		return false
	}

	return cpu.visited[ip]
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	state := "running"
	switch {
	case cpu.fault != nil:
		state = "aborted"
	case cpu.halted:
		state = "halted"
	}

	text += fmt.Sprintf("% 5s: %d\n", "ip", cpu.Ip)
	text += fmt.Sprintf("% 5s: %d\n", "acc", cpu.Acc)
	text += fmt.Sprintf("% 5s: %d\n", "ticks", cpu.Ticks)
	text += fmt.Sprintf("% 5s: %v\n", "state", state)

	return
}

// Tick executes a single instruction cycle.
//
// halted is set once the IP reaches an instruction that has already
// executed; that instruction is not executed again. Faults are fatal,
// and every later Tick returns the same outcome.
func (cpu *Cpu) Tick() (halted bool, err error) {
	if cpu.fault != nil {
		return false, cpu.fault
	}
	if cpu.halted {
		return true, nil
	}

	defer func() {
		if err != nil {
			err = ErrExecution{Ip: cpu.Ip, Err: err}
			cpu.fault = err
		}
	}()

	if cpu.Ip < 0 || cpu.Ip >= len(cpu.program) {
		err = ErrIpRange
		return
	}

	if cpu.visited[cpu.Ip] {
		if cpu.Verbose {
			log.Printf("%03d: revisited, acc %d", cpu.Ip, cpu.Acc)
		}
		cpu.halted = true
		halted = true
		return
	}
	cpu.visited[cpu.Ip] = true

	err = cpu.Execute(cpu.program[cpu.Ip])
	if err != nil {
		return
	}

	cpu.Ticks++

	return
}

// Execute executes a single statement at the current IP.
//
// Only a jmp can leave the program; nop and acc on the last statement
// move the IP back to index 0.
func (cpu *Cpu) Execute(st Statement) (err error) {
	if cpu.Verbose {
		log.Printf("%03d: %v", cpu.Ip, st)
	}

	next_ip := cpu.Ip + 1

	// Falling through the last statement continues at the first.
	if next_ip == len(cpu.program) {
		next_ip = 0
	}

	switch st := st.(type) {
	case Nop:
		// pass
	case Acc:
		sum := int64(cpu.Acc) + int64(st.Delta)
		if sum < math.MinInt32 || sum > math.MaxInt32 {
			return ErrAccRange
		}
		cpu.Acc = int32(sum)
	case Jmp:
		next_ip = cpu.Ip + int(st.Offset)
	default:
		return ErrInstructionInvalid
	}

	cpu.Ip = next_ip

	return
}

// Run ticks the CPU until it halts or faults, returning the accumulator.
func (cpu *Cpu) Run() (acc int32, err error) {
	for {
		var halted bool
		halted, err = cpu.Tick()
		if err != nil {
			return
		}
		if halted {
			return cpu.Acc, nil
		}
	}
}

// Run executes a program from index 0 until an instruction would run a
// second time, and returns the accumulator at that point.
func Run(program []Statement) (acc int32, err error) {
	return NewCpu(program).Run()
}
