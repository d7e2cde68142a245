package mnemonic

import "strings"

const (
	// ComputationWidth is the number of bits of an encoded computation, selector included.
	ComputationWidth = 7
	// functionWidth is the number of ALU function bits.
	functionWidth = 6

	// selectorBit is set when the second ALU operand is the memory cell M.
	selectorBit = 1 << functionWidth

	accumulator = "A"
	memory      = "M"
)

// functions maps the accumulator form of every computation to its ALU function bits.
var functions = map[string]uint16{
	"0":   0b101010,
	"1":   0b111111,
	"-1":  0b111010,
	"D":   0b001100,
	"A":   0b110000,
	"!D":  0b001101,
	"!A":  0b110001,
	"-D":  0b001111,
	"-A":  0b110011,
	"D+1": 0b011111,
	"A+1": 0b110111,
	"D-1": 0b001110,
	"A-1": 0b110010,
	"D+A": 0b000010,
	"D-A": 0b010011,
	"A-D": 0b000111,
	"D&A": 0b000000,
	"D|A": 0b010101,
}

// Computation is a validated ALU computation mnemonic.
// The zero value is not a valid computation.
type Computation struct {
	name string
	bits uint16
}

var (
	computations      = map[string]Computation{}
	computationByBits = map[uint16]Computation{}
)

func init() {
	for name, function := range functions {
		addComputation(Computation{name: name, bits: function})

		if strings.Contains(name, accumulator) {
			memoryName := strings.ReplaceAll(name, accumulator, memory)
			addComputation(Computation{name: memoryName, bits: selectorBit | function})
		}
	}
}

func addComputation(c Computation) {
	computations[c.name] = c
	computationByBits[c.bits] = c
}

// ParseComputation parses the given text as a computation mnemonic.
func ParseComputation(s string) (Computation, error) {
	c, ok := computations[s]
	if !ok {
		return Computation{}, &MnemonicError{Field: FieldComputation, Token: s}
	}
	return c, nil
}

// ComputationFromBits returns the computation that is encoded by the given
// 7 bits of selector and function.
func ComputationFromBits(bits uint16) (Computation, bool) {
	c, ok := computationByBits[bits]
	return c, ok
}

// ComputationBits returns the 7 bit pattern of the given computation mnemonic,
// the selector bit followed by the 6 function bits.
func ComputationBits(s string) (string, error) {
	function, ok := functions[normalizeOperand(s)]
	if !ok {
		return "", &MnemonicError{Field: FieldComputation, Token: s}
	}

	selector := "0"
	if strings.Contains(s, memory) {
		selector = "1"
	}
	return selector + formatBits(function, functionWidth), nil
}

// normalizeOperand rewrites the memory operand to the accumulator operand,
// both forms share the same ALU function.
func normalizeOperand(s string) string {
	return strings.ReplaceAll(s, memory, accumulator)
}

// Bits returns the selector and function bits of the computation.
func (c Computation) Bits() uint16 {
	return c.bits
}

// UsesMemory returns whether the second ALU operand is the memory cell M.
func (c Computation) UsesMemory() bool {
	return c.bits&selectorBit != 0
}

// IsValid returns whether the computation was created by parsing a known mnemonic.
func (c Computation) IsValid() bool {
	return c.name != ""
}

// String returns the mnemonic of the computation.
func (c Computation) String() string {
	return c.name
}
