// Package verification verifies that the generated output file recreates the assembled program.
package verification

import (
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/hackasm/internal/assembler"
	"github.com/retroenv/hackasm/internal/decoder"
	"github.com/retroenv/hackasm/internal/encoder"
	"github.com/retroenv/hackasm/internal/options"
	"github.com/retroenv/hackasm/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// maxReportedMismatches limits the number of logged word mismatches.
const maxReportedMismatches = 10

// VerifyOutput verifies that the output file contains exactly the assembled words
// and that every word decodes to a statement that encodes to the same word again.
func VerifyOutput(logger *log.Logger, opts options.Program, format writer.Format, result *assembler.Result) error {
	if opts.Output == "" {
		return errors.New("can not verify console output")
	}

	data, err := os.ReadFile(opts.Output)
	if err != nil {
		return fmt.Errorf("reading output file for comparison: %w", err)
	}

	words, err := writer.Read(data, format)
	if err != nil {
		return fmt.Errorf("parsing output file: %w", err)
	}

	if err := checkWordsEqual(logger, result, words); err != nil {
		return fmt.Errorf("output mismatch: %w", err)
	}

	if err := checkRoundTrip(logger, result); err != nil {
		return fmt.Errorf("round trip mismatch: %w", err)
	}
	return nil
}

func checkWordsEqual(logger *log.Logger, result *assembler.Result, output []encoder.Word) error {
	if len(result.Words) != len(output) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(result.Words), len(output))
	}

	var diffs int
	for i, expected := range result.Words {
		if expected == output[i] {
			continue
		}

		diffs++
		if diffs <= maxReportedMismatches {
			logger.Error("Word mismatch",
				log.Int("line", result.Lines[i]),
				log.String("expected", expected.String()),
				log.String("got", output[i].String()))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d word mismatches", diffs)
}

// checkRoundTrip decodes every word to its canonical statement and encodes
// the statement again.
func checkRoundTrip(logger *log.Logger, result *assembler.Result) error {
	for i, word := range result.Words {
		ins, err := decoder.Decode(word)
		if err != nil {
			return fmt.Errorf("line %d: %w", result.Lines[i], err)
		}

		again, err := encoder.EncodeLine(result.Lines[i], ins.String())
		if err != nil {
			return fmt.Errorf("re-encoding decoded statement: %w", err)
		}
		if again != word {
			logger.Error("Round trip mismatch",
				log.Int("line", result.Lines[i]),
				log.String("statement", ins.String()),
				log.String("expected", word.String()),
				log.String("got", again.String()))
			return fmt.Errorf("line %d: statement '%s' encodes to %s instead of %s",
				result.Lines[i], ins, again, word)
		}
	}
	return nil
}
