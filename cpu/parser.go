package cpu

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// mnemonicMap maps mnemonics to their statement kind.
var mnemonicMap = map[string]Kind{
	"nop": KIND_NOP,
	"acc": KIND_ACC,
	"jmp": KIND_JMP,
}

// ParseLine parses a single line of boot code, such as "acc -99".
//
// The grammar is strict: a mnemonic, exactly one space, a mandatory sign
// and a decimal magnitude. Failures are returned as ErrParse.
func ParseLine(text string) (st Statement, err error) {
	defer func() {
		if err != nil {
			st = nil
			err = ErrParse{Text: text, Err: err}
		}
	}()

	mnemonic, rest, found := strings.Cut(text, " ")
	kind, ok := mnemonicMap[mnemonic]
	if !ok {
		err = ErrMnemonicInvalid
		return
	}
	if !found {
		err = ErrSeparatorMissing
		return
	}

	operand, err := parseOperand(rest)
	if err != nil {
		return
	}

	switch kind {
	case KIND_NOP:
		st = Nop{}
	case KIND_ACC:
		st = Acc{Delta: operand}
	case KIND_JMP:
		st = Jmp{Offset: operand}
	}

	return
}

// parseOperand decodes a signed operand such as "+4" or "-3".
func parseOperand(word string) (operand int32, err error) {
	if len(word) == 0 {
		err = ErrSignInvalid
		return
	}

	negative := false
	switch word[0] {
	case '+':
	case '-':
		negative = true
	default:
		err = ErrSignInvalid
		return
	}

	digits := word[1:]
	if len(digits) == 0 {
		err = ErrOperandInvalid
		return
	}
	for _, c := range []byte(digits) {
		if c < '0' || c > '9' {
			err = ErrOperandInvalid
			return
		}
	}

	magnitude, err := strconv.ParseUint(digits, 10, 32)
	if errors.Is(err, strconv.ErrRange) {
		err = ErrOperandRange
		return
	}
	if err != nil {
		err = ErrOperandInvalid
		return
	}

	// -2147483648 is the only operand whose magnitude exceeds MaxInt32.
	switch {
	case negative && magnitude <= math.MaxInt32+1:
		operand = int32(-int64(magnitude))
	case !negative && magnitude <= math.MaxInt32:
		operand = int32(magnitude)
	default:
		err = ErrOperandRange
	}

	return
}
