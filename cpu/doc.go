// Package cpu implements the boot code processor for the handheld console.
//
// The processor has an instruction pointer (IP) and a single signed 32-bit
// accumulator. Three instructions are understood: nop, acc and jmp. A run
// starts at index 0 and halts as soon as the IP reaches an instruction that
// has already executed once, leaving the accumulator as the result.
//
// The loader reads listings one statement per line, either as plain text or
// as the `program` list produced by a Starlark script.
package cpu
