// Package assembler implements the translation pass over all source lines.
package assembler

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/retroenv/hackasm/internal/encoder"
	"github.com/retroenv/hackasm/internal/source"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/sync/errgroup"
)

// Options of the assembler.
type Options struct {
	Workers     int  // number of parallel encoding workers, 0 uses GOMAXPROCS
	StopOnError bool // stop at the first invalid line instead of collecting all diagnostics
}

// Result of a translation pass.
type Result struct {
	Words  []encoder.Word // encoded words in source order
	Lines  []int          // source line number of every word
	Errors []error        // diagnostics in source order, all of type *encoder.LineError
}

// Err returns all diagnostics joined into a single error, or nil if the pass succeeded.
func (r *Result) Err() error {
	return errors.Join(r.Errors...)
}

// Assembler translates prepared source lines into words.
type Assembler struct {
	logger  *log.Logger
	options Options
}

// New returns a new assembler.
func New(logger *log.Logger, options Options) *Assembler {
	if options.Workers <= 0 {
		options.Workers = runtime.GOMAXPROCS(0)
	}
	return &Assembler{
		logger:  logger,
		options: options,
	}
}

// Assemble encodes all non blank lines. Lines are encoded independently and
// can be processed by multiple workers, the result keeps the source order.
// Invalid lines are reported in Result.Errors and produce no word, the
// returned error is only set if the context was cancelled.
func (a *Assembler) Assemble(ctx context.Context, lines []source.Line) (*Result, error) {
	statements := make([]source.Line, 0, len(lines))
	for _, line := range lines {
		if !line.IsBlank() {
			statements = append(statements, line)
		}
	}

	words := make([]encoder.Word, len(statements))
	encoded := make([]bool, len(statements))
	errs := make([]error, len(statements))

	workers := min(a.options.Workers, max(len(statements), 1))
	chunkSize := (len(statements) + workers - 1) / workers

	a.logger.Debug("Assembling",
		log.Int("statements", len(statements)),
		log.Int("workers", workers))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for start := 0; start < len(statements); start += chunkSize {
		end := min(start+chunkSize, len(statements))

		group.Go(func() error {
			return a.encodeChunk(groupCtx, statements[start:end], words[start:end], encoded[start:end], errs[start:end])
		})
	}

	if err := group.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("assembling: %w", ctxErr)
		}
		var lineErr *encoder.LineError
		if !errors.As(err, &lineErr) {
			return nil, fmt.Errorf("assembling: %w", err)
		}
	}

	return collect(statements, words, encoded, errs), nil
}

// encodeChunk encodes a consecutive range of statements into the given word and error slices.
func (a *Assembler) encodeChunk(ctx context.Context, statements []source.Line,
	words []encoder.Word, encoded []bool, errs []error) error {

	for i, line := range statements {
		if err := ctx.Err(); err != nil {
			return err
		}

		word, err := encoder.EncodeLine(line.Number, line.Text)
		if err != nil {
			errs[i] = err
			if a.options.StopOnError {
				return err
			}
			continue
		}
		words[i] = word
		encoded[i] = true
	}
	return nil
}

// collect builds the result from the per statement slices. Statements that
// were not encoded because of an early stop produce neither a word nor an error.
func collect(statements []source.Line, words []encoder.Word, encoded []bool, errs []error) *Result {
	result := &Result{
		Words: make([]encoder.Word, 0, len(words)),
		Lines: make([]int, 0, len(words)),
	}

	for i, line := range statements {
		switch {
		case errs[i] != nil:
			result.Errors = append(result.Errors, errs[i])
		case encoded[i]:
			result.Words = append(result.Words, words[i])
			result.Lines = append(result.Lines, line.Number)
		}
	}
	return result
}
