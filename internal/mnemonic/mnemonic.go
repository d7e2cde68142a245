package mnemonic

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnknownMnemonic is returned for tokens outside of the closed mnemonic vocabulary.
var ErrUnknownMnemonic = errors.New("unknown mnemonic")

// Field names the instruction field that a mnemonic belongs to.
type Field string

// Instruction fields of a computation instruction.
const (
	FieldComputation Field = "computation"
	FieldDestination Field = "destination"
	FieldJump        Field = "jump"
)

// MnemonicError describes a token that could not be parsed as a mnemonic of the given field.
type MnemonicError struct {
	Field Field
	Token string
}

func (e *MnemonicError) Error() string {
	return fmt.Sprintf("unknown %s mnemonic '%s'", e.Field, e.Token)
}

// Unwrap returns ErrUnknownMnemonic so that errors.Is can be used to check the error class.
func (e *MnemonicError) Unwrap() error {
	return ErrUnknownMnemonic
}

// formatBits renders the lowest width bits of value as a string of 0 and 1.
func formatBits(value uint16, width int) string {
	s := strconv.FormatUint(uint64(value), 2)
	for len(s) < width {
		s = "0" + s
	}
	return s
}
