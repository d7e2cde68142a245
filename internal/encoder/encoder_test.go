package encoder

import (
	"errors"
	"strconv"
	"testing"

	"github.com/retroenv/hackasm/internal/mnemonic"
	"github.com/retroenv/retrogolib/assert"
)

func TestEncodeLine(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"@2", "0000000000000010"},
		{"D=A", "1110110000010000"},
		{"@0", "0000000000000000"},
		{"D;JGT", "1110001100000001"},
		{"M=D", "1110001100001000"},
		{"D=D+A", "1110000010010000"},
		{"@42", "0000000000101010"},
		{"@32767", "0111111111111111"},
		{"AMD=M+1", "1111110111111000"},
		{"0;JMP", "1110101010000111"},
		{"MD=D|M", "1111010101011000"},
		{"A=!A", "1110110001100000"},
		{"D-M;JNE", "1111010011000101"},
		{"D = M", "1111110000010000"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			word, err := EncodeLine(1, tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, word.String())
			assert.Equal(t, WordSize, len(word.String()))
		})
	}
}

func TestEncodeAddressRange(t *testing.T) {
	for v := 0; v <= MaxAddress; v++ {
		word, err := EncodeLine(1, "@"+strconv.Itoa(v))
		if err != nil {
			t.Fatalf("encoding @%d: %v", v, err)
		}

		s := word.String()
		parsed, err := strconv.ParseUint(s, 2, 16)
		assert.NoError(t, err)
		if int(parsed) != v || s[0] != '0' || word.IsComputation() {
			t.Fatalf("encoding @%d returned %s", v, s)
		}
	}
}

func TestEncodeLineErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"unknown computation", "D=D*A", ErrUnknownMnemonic},
		{"unknown destination", "X=D", ErrUnknownMnemonic},
		{"unknown jump", "D;JXX", ErrUnknownMnemonic},
		{"lowercase mnemonic", "d=a", ErrUnknownMnemonic},
		{"assignment and jump", "D=M;JGT", ErrMalformedLine},
		{"no separator", "D+A", ErrMalformedLine},
		{"two assignments", "A=D=M", ErrMalformedLine},
		{"two jumps", "D;JGT;JMP", ErrMalformedLine},
		{"empty destination", "=D", ErrMalformedLine},
		{"empty computation", "D=", ErrMalformedLine},
		{"empty jump", "D;", ErrMalformedLine},
		{"empty statement", "", ErrMalformedLine},
		{"missing literal", "@", ErrMalformedLine},
		{"symbolic address", "@LOOP", ErrMalformedLine},
		{"hex literal", "@0x10", ErrMalformedLine},
		{"negative address", "@-1", ErrValueOutOfRange},
		{"address exceeds 15 bits", "@32768", ErrValueOutOfRange},
		{"address exceeds 16 bits", "@65536", ErrValueOutOfRange},
		{"address exceeds int64", "@99999999999999999999", ErrValueOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, err := EncodeLine(7, tt.input)
			assert.True(t, errors.Is(err, tt.want), "want %v, have %v", tt.want, err)
			assert.Equal(t, Word(0), word)

			var lineErr *LineError
			assert.True(t, errors.As(err, &lineErr))
			assert.Equal(t, 7, lineErr.Line)
			assert.Equal(t, tt.input, lineErr.Text)
		})
	}
}

func TestLineErrorNamesMnemonic(t *testing.T) {
	_, err := EncodeLine(3, "D=D*A")

	var mnemonicErr *mnemonic.MnemonicError
	assert.True(t, errors.As(err, &mnemonicErr))
	assert.Equal(t, "D*A", mnemonicErr.Token)
	assert.Equal(t, mnemonic.FieldComputation, mnemonicErr.Field)
	assert.Equal(t, "03: unknown computation mnemonic 'D*A': 'D=D*A'", err.Error())
}

func TestClassify(t *testing.T) {
	ins, err := Classify("@17")
	assert.NoError(t, err)
	assert.Equal(t, Instruction(AddressInstruction{Value: 17}), ins)

	ins, err = Classify("AM=M-1")
	assert.NoError(t, err)
	comp, ok := ins.(ComputationInstruction)
	assert.True(t, ok)
	assert.Equal(t, "M-1", comp.Computation.String())
	assert.Equal(t, mnemonic.DestA|mnemonic.DestM, comp.Destination)
	assert.Equal(t, mnemonic.NoJump, comp.Jump)

	ins, err = Classify("D;JLE")
	assert.NoError(t, err)
	comp, ok = ins.(ComputationInstruction)
	assert.True(t, ok)
	assert.Equal(t, mnemonic.NoDestination, comp.Destination)
	assert.Equal(t, mnemonic.JumpLess|mnemonic.JumpEqual, comp.Jump)
}

func TestInstructionString(t *testing.T) {
	for _, input := range []string{"@0", "@123", "D=A", "AMD=D|M", "0;JMP", "D-1;JNE"} {
		ins, err := Classify(input)
		assert.NoError(t, err)
		assert.Equal(t, input, ins.String())
	}
}

func TestWordIsComputation(t *testing.T) {
	word, err := EncodeLine(1, "D=A")
	assert.NoError(t, err)
	assert.True(t, word.IsComputation())

	word, err = EncodeLine(1, "@5")
	assert.NoError(t, err)
	assert.False(t, word.IsComputation())
}
