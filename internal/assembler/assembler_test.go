package assembler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/retroenv/hackasm/internal/encoder"
	"github.com/retroenv/hackasm/internal/source"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func wordStrings(words []encoder.Word) string {
	s := make([]string, 0, len(words))
	for _, word := range words {
		s = append(s, word.String())
	}
	return strings.Join(s, "\n")
}

func TestAssemble(t *testing.T) {
	logger := log.NewTestLogger(t)
	asm := New(logger, Options{})

	lines := source.SplitText("@2\nD=A\n\n@3\nD=D+A\n@0\nM=D")
	result, err := asm.Assemble(context.Background(), lines)
	assert.NoError(t, err)
	assert.NoError(t, result.Err())

	want := "0000000000000010\n" +
		"1110110000010000\n" +
		"0000000000000011\n" +
		"1110000010010000\n" +
		"0000000000000000\n" +
		"1110001100001000"
	assert.Equal(t, want, wordStrings(result.Words))
	assert.Equal(t, []int{1, 2, 4, 5, 6, 7}, result.Lines)
}

func TestAssembleParallelKeepsOrder(t *testing.T) {
	logger := log.NewTestLogger(t)

	var text strings.Builder
	for i := range 1000 {
		if i%2 == 0 {
			fmt.Fprintf(&text, "@%d\n", i)
		} else {
			text.WriteString("D;JGT\n")
		}
	}
	lines := source.SplitText(text.String())

	serial, err := New(logger, Options{Workers: 1}).Assemble(context.Background(), lines)
	assert.NoError(t, err)

	for _, workers := range []int{2, 3, 8, 64} {
		parallel, err := New(logger, Options{Workers: workers}).Assemble(context.Background(), lines)
		assert.NoError(t, err)
		assert.Equal(t, serial.Words, parallel.Words, "workers %d", workers)
		assert.Equal(t, serial.Lines, parallel.Lines, "workers %d", workers)
	}

	assert.Len(t, serial.Words, 1000)
	assert.Equal(t, encoder.Word(998), serial.Words[998])
}

func TestAssembleCollectsDiagnostics(t *testing.T) {
	logger := log.NewTestLogger(t)
	asm := New(logger, Options{Workers: 4})

	lines := source.SplitText("@1\nD=D*A\nD=A\nfoo\n@70000\nD;JGT")
	result, err := asm.Assemble(context.Background(), lines)
	assert.NoError(t, err)
	assert.Len(t, result.Errors, 3)

	wantErrs := []struct {
		line int
		err  error
	}{
		{2, encoder.ErrUnknownMnemonic},
		{4, encoder.ErrMalformedLine},
		{5, encoder.ErrValueOutOfRange},
	}
	for i, want := range wantErrs {
		var lineErr *encoder.LineError
		assert.True(t, errors.As(result.Errors[i], &lineErr))
		assert.Equal(t, want.line, lineErr.Line)
		assert.True(t, errors.Is(lineErr, want.err))
	}

	assert.Error(t, result.Err())
	assert.Equal(t, []int{1, 3, 6}, result.Lines)
}

func TestAssembleStopOnError(t *testing.T) {
	logger := log.NewTestLogger(t)
	asm := New(logger, Options{Workers: 1, StopOnError: true})

	lines := source.SplitText("@1\nX=A\nD=A\nY=A")
	result, err := asm.Assemble(context.Background(), lines)
	assert.NoError(t, err)
	assert.Len(t, result.Errors, 1)
	assert.Equal(t, []int{1}, result.Lines)
}

func TestAssembleCancelled(t *testing.T) {
	logger := log.NewTestLogger(t)
	asm := New(logger, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := asm.Assemble(ctx, source.SplitText("@1\nD=A"))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestAssembleEmpty(t *testing.T) {
	logger := log.NewTestLogger(t)
	asm := New(logger, Options{})

	result, err := asm.Assemble(context.Background(), source.SplitText("\n// nothing\n"))
	assert.NoError(t, err)
	assert.Len(t, result.Words, 0)
	assert.NoError(t, result.Err())
}
