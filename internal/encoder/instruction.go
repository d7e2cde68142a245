package encoder

import (
	"fmt"
	"strconv"

	"github.com/retroenv/hackasm/internal/mnemonic"
)

// Instruction is either an AddressInstruction or a ComputationInstruction.
type Instruction interface {
	fmt.Stringer

	// Encode returns the binary word of the instruction.
	Encode() Word

	isInstruction()
}

// Compile-time checks to ensure both variants implement Instruction.
var (
	_ Instruction = AddressInstruction{}
	_ Instruction = ComputationInstruction{}
)

// AddressInstruction loads a literal address into the A register.
// Value is at most MaxAddress.
type AddressInstruction struct {
	Value uint16
}

// Encode returns the address word.
func (i AddressInstruction) Encode() Word {
	return Word(i.Value)
}

// String returns the assembly text of the instruction.
func (i AddressInstruction) String() string {
	return string(AddressMarker) + strconv.FormatUint(uint64(i.Value), 10)
}

func (AddressInstruction) isInstruction() {}

// ComputationInstruction performs an ALU operation and stores the result
// and/or jumps depending on it.
type ComputationInstruction struct {
	Computation mnemonic.Computation
	Destination mnemonic.Destination
	Jump        mnemonic.Jump
}

// Encode returns the computation word:
// header 111, selector + function, destination, jump.
func (i ComputationInstruction) Encode() Word {
	word := computationHeader |
		i.Computation.Bits()<<(mnemonic.DestinationWidth+mnemonic.JumpWidth) |
		i.Destination.Bits()<<mnemonic.JumpWidth |
		i.Jump.Bits()
	return Word(word)
}

// String returns the assembly text of the instruction.
func (i ComputationInstruction) String() string {
	s := i.Computation.String()
	if i.Destination != mnemonic.NoDestination {
		s = i.Destination.String() + AssignSeparator + s
	}
	if i.Jump != mnemonic.NoJump {
		s += JumpSeparator + i.Jump.String()
	}
	return s
}

func (ComputationInstruction) isInstruction() {}
