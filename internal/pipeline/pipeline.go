// Package pipeline orchestrates the assembly workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/hackasm/internal/assembler"
	"github.com/retroenv/hackasm/internal/config"
	"github.com/retroenv/hackasm/internal/loader"
	"github.com/retroenv/hackasm/internal/options"
	"github.com/retroenv/hackasm/internal/source"
	"github.com/retroenv/hackasm/internal/verification"
	"github.com/retroenv/hackasm/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete assembly workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new assembly pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
	}
}

// Execute runs the complete assembly pipeline.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, asmOpts options.Assembler,
	output io.Writer) (*assembler.Result, error) {

	lines, err := p.loader.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading source: %w", err)
	}

	return p.ExecuteWithLines(ctx, lines, opts, asmOpts, output)
}

// ExecuteWithLines runs the assembly pipeline with already loaded source lines.
// This is useful for testing and programmatic usage where the source is already in memory.
// No output is written if any line fails to assemble.
func (p *Pipeline) ExecuteWithLines(ctx context.Context, lines []source.Line, opts options.Program,
	asmOpts options.Assembler, output io.Writer) (*assembler.Result, error) {

	format, err := writer.ParseFormat(asmOpts.Format)
	if err != nil {
		return nil, fmt.Errorf("selecting output format: %w", err)
	}

	p.printInfo(opts, lines, format)

	asm := assembler.New(p.logger, assembler.Options{
		Workers:     config.Workers(asmOpts.Workers),
		StopOnError: asmOpts.StopOnError,
	})

	result, err := asm.Assemble(ctx, lines)
	if err != nil {
		return nil, err
	}

	if err := result.Err(); err != nil {
		for _, lineErr := range result.Errors {
			p.logger.Error("Invalid statement", log.String("file", opts.Input), log.Err(lineErr))
		}
		return result, fmt.Errorf("assembling failed, %d invalid statements: %w", len(result.Errors), err)
	}

	if err := writer.Write(output, result.Words, format); err != nil {
		return nil, fmt.Errorf("writing output: %w", err)
	}

	p.logger.Debug("Assembled",
		log.String("file", opts.Input),
		log.Int("words", len(result.Words)))

	if opts.AssembleTest {
		if err := verification.VerifyOutput(p.logger, opts, format, result); err != nil {
			return nil, fmt.Errorf("verification failed: %w", err)
		}
		p.logger.Info("Verification successful")
	}

	return result, nil
}

// printInfo prints information about the source being processed.
func (p *Pipeline) printInfo(opts options.Program, lines []source.Line, format writer.Format) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Processing assembly source",
		log.String("file", opts.Input),
		log.Int("statements", source.CountStatements(lines)),
		log.String("format", string(format)),
	)
}
