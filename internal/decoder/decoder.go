// Package decoder converts encoded words back into instructions.
package decoder

import (
	"errors"
	"fmt"

	"github.com/retroenv/hackasm/internal/encoder"
	"github.com/retroenv/hackasm/internal/mnemonic"
)

// ErrInvalidWord is returned for words that no statement of the source grammar encodes to.
var ErrInvalidWord = errors.New("invalid word")

const (
	headerShift = encoder.WordSize - 3
	header      = 0b111

	computationShift = mnemonic.DestinationWidth + mnemonic.JumpWidth
	computationMask  = 1<<mnemonic.ComputationWidth - 1
	fieldMask        = 0b111
)

// Decode returns the instruction that is encoded by the given word.
func Decode(word encoder.Word) (encoder.Instruction, error) {
	if !word.IsComputation() {
		return encoder.AddressInstruction{Value: uint16(word)}, nil
	}

	if uint16(word)>>headerShift != header {
		return nil, fmt.Errorf("%w: %s has no computation header", ErrInvalidWord, word)
	}

	bits := uint16(word) >> computationShift & computationMask
	comp, ok := mnemonic.ComputationFromBits(bits)
	if !ok {
		return nil, fmt.Errorf("%w: %s has unknown computation bits %07b", ErrInvalidWord, word, bits)
	}

	ins := encoder.ComputationInstruction{
		Computation: comp,
		Destination: mnemonic.Destination(uint16(word) >> mnemonic.JumpWidth & fieldMask),
		Jump:        mnemonic.Jump(uint16(word) & fieldMask),
	}

	// the source grammar has no statement with both or neither of destination and jump
	hasDestination := ins.Destination != mnemonic.NoDestination
	hasJump := ins.Jump != mnemonic.NoJump
	if hasDestination == hasJump {
		return nil, fmt.Errorf("%w: %s needs exactly one of destination and jump", ErrInvalidWord, word)
	}

	return ins, nil
}

// DecodeAll decodes all words, the first invalid word aborts decoding.
func DecodeAll(words []encoder.Word) ([]encoder.Instruction, error) {
	instructions := make([]encoder.Instruction, 0, len(words))
	for i, word := range words {
		ins, err := Decode(word)
		if err != nil {
			return nil, fmt.Errorf("decoding word %d: %w", i, err)
		}
		instructions = append(instructions, ins)
	}
	return instructions, nil
}
