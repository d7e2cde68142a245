// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/hackasm/internal/options"
	"github.com/retroenv/hackasm/internal/pipeline"
	"github.com/retroenv/hackasm/internal/writer"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// batchSeparator separates multiple glob patterns of the batch option.
const batchSeparator = ","

// ProcessFile handles the complete file processing workflow.
// A partially written output file is removed if assembling fails.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program, asmOpts options.Assembler) error {
	output, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}

	_, err = pipeline.New(logger).Execute(ctx, opts, asmOpts, output)

	if closer, ok := output.(io.Closer); ok && output != os.Stdout {
		if closeErr := closer.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", closeErr)
		}
	}

	if err != nil {
		if opts.Output != "" {
			_ = os.Remove(opts.Output)
		}
		return err
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options.
// Files matched by multiple batch patterns are only returned once.
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch == "" {
		return []string{opts.Input}, nil
	}

	seen := set.New[string]()
	var files []string

	for _, pattern := range strings.Split(opts.Batch, batchSeparator) {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}

		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern '%s': %w", pattern, err)
		}

		for _, match := range matches {
			if seen.Contains(match) {
				continue
			}
			seen.Add(match)
			files = append(files, match)
		}
	}
	return files, nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile string, format writer.Format) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + format.Extension()
}

func createWriter(opts options.Program) (io.Writer, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("hackasm", log.String("version", buildinfo.Version(version, commit, date)))
}
