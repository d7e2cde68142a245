// Package encoder classifies single assembly lines and encodes them into 16 bit words.
package encoder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/retroenv/hackasm/internal/mnemonic"
)

const (
	// AddressMarker starts an address instruction.
	AddressMarker = '@'
	// AssignSeparator separates the destination from the computation.
	AssignSeparator = "="
	// JumpSeparator separates the computation from the jump.
	JumpSeparator = ";"

	// MaxAddress is the largest literal of an address instruction, the
	// most significant bit of a word is reserved for computation instructions.
	MaxAddress = 1<<15 - 1

	// WordSize is the number of bits of an encoded instruction.
	WordSize = 16

	computationHeader = 0b111 << 13
)

// Error classes returned by Classify and EncodeLine.
var (
	ErrMalformedLine   = errors.New("malformed line")
	ErrValueOutOfRange = errors.New("value out of range")
	ErrUnknownMnemonic = mnemonic.ErrUnknownMnemonic
)

// Word is an encoded instruction.
type Word uint16

// String returns the word as 16 characters of 0 and 1, most significant bit first.
func (w Word) String() string {
	return fmt.Sprintf("%016b", uint16(w))
}

// IsComputation returns whether the word encodes a computation instruction.
func (w Word) IsComputation() bool {
	return w&(1<<(WordSize-1)) != 0
}

// LineError wraps a classification or encoding error with its source position.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%02d: %s: '%s'", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// EncodeLine classifies and encodes a trimmed, non empty source line.
// Any failure is returned as *LineError.
func EncodeLine(line int, text string) (Word, error) {
	ins, err := Classify(text)
	if err != nil {
		return 0, &LineError{Line: line, Text: text, Err: err}
	}
	return ins.Encode(), nil
}

// Classify parses a trimmed, non empty source line into an instruction.
func Classify(text string) (Instruction, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: empty statement", ErrMalformedLine)
	}
	if text[0] == AddressMarker {
		return classifyAddress(text[1:])
	}
	return classifyComputation(text)
}

func classifyAddress(literal string) (Instruction, error) {
	if literal == "" {
		return nil, fmt.Errorf("%w: missing address literal", ErrMalformedLine)
	}

	value, err := strconv.ParseInt(literal, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, fmt.Errorf("%w: address '%s' exceeds %d", ErrValueOutOfRange, literal, MaxAddress)
		}
		return nil, fmt.Errorf("%w: address '%s' is not a decimal literal", ErrMalformedLine, literal)
	}
	if value < 0 || value > MaxAddress {
		return nil, fmt.Errorf("%w: address %d not in range 0-%d", ErrValueOutOfRange, value, MaxAddress)
	}

	return AddressInstruction{Value: uint16(value)}, nil
}

func classifyComputation(text string) (Instruction, error) {
	assigns := strings.Count(text, AssignSeparator)
	jumps := strings.Count(text, JumpSeparator)

	switch {
	case assigns > 0 && jumps > 0:
		return nil, fmt.Errorf("%w: destination and jump in one statement", ErrMalformedLine)
	case assigns > 1 || jumps > 1:
		return nil, fmt.Errorf("%w: repeated separator", ErrMalformedLine)
	case assigns == 0 && jumps == 0:
		return nil, fmt.Errorf("%w: unrecognized statement", ErrMalformedLine)
	}

	var ins ComputationInstruction
	var comp string

	if assigns == 1 {
		dest, c, _ := strings.Cut(text, AssignSeparator)
		dest, comp = strings.TrimSpace(dest), strings.TrimSpace(c)
		if dest == "" || comp == "" {
			return nil, fmt.Errorf("%w: incomplete assignment", ErrMalformedLine)
		}

		var err error
		if ins.Destination, err = mnemonic.ParseDestination(dest); err != nil {
			return nil, err
		}
	} else {
		c, jump, _ := strings.Cut(text, JumpSeparator)
		comp, jump = strings.TrimSpace(c), strings.TrimSpace(jump)
		if comp == "" || jump == "" {
			return nil, fmt.Errorf("%w: incomplete jump", ErrMalformedLine)
		}

		var err error
		if ins.Jump, err = mnemonic.ParseJump(jump); err != nil {
			return nil, err
		}
	}

	var err error
	if ins.Computation, err = mnemonic.ParseComputation(comp); err != nil {
		return nil, err
	}
	return ins, nil
}
