package mnemonic

// JumpWidth is the number of bits of an encoded jump condition.
const JumpWidth = 3

// Jump is a jump condition, the value is the encoded lt eq gt flag triple.
type Jump uint16

// Comparison flags of the computation result against zero.
const (
	NoJump      Jump = 0b000
	JumpGreater Jump = 0b001
	JumpEqual   Jump = 0b010
	JumpLess    Jump = 0b100
)

var jumps = map[string]Jump{
	"JGT": JumpGreater,
	"JEQ": JumpEqual,
	"JGE": JumpGreater | JumpEqual,
	"JLT": JumpLess,
	"JNE": JumpLess | JumpGreater,
	"JLE": JumpLess | JumpEqual,
	"JMP": JumpLess | JumpEqual | JumpGreater,
}

var jumpNames = map[Jump]string{}

func init() {
	for name, jump := range jumps {
		jumpNames[jump] = name
	}
}

// ParseJump parses the given text as a jump mnemonic.
// An empty text is not a jump, callers use NoJump for it.
func ParseJump(s string) (Jump, error) {
	jump, ok := jumps[s]
	if !ok {
		return NoJump, &MnemonicError{Field: FieldJump, Token: s}
	}
	return jump, nil
}

// JumpBits returns the 3 bit pattern of the given jump mnemonic.
func JumpBits(s string) (string, error) {
	jump, err := ParseJump(s)
	if err != nil {
		return "", err
	}
	return formatBits(jump.Bits(), JumpWidth), nil
}

// Bits returns the encoded jump field.
func (j Jump) Bits() uint16 {
	return uint16(j) & 0b111
}

// Unconditional returns whether the jump is taken for every computation result.
func (j Jump) Unconditional() bool {
	return j == JumpLess|JumpEqual|JumpGreater
}

// String returns the mnemonic of the jump, or an empty string for NoJump.
func (j Jump) String() string {
	return jumpNames[j]
}
