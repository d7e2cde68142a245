// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/hackasm/internal/options"
	"github.com/retroenv/hackasm/internal/writer"
)

// ParseFlags parses command line flags and returns program and assembler options
func ParseFlags() (options.Program, options.Assembler, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Batch == "") {
		return opts, options.Assembler{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, options.Assembler{}, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, options.Assembler{}, err
	}

	if err := validateOptionCombinations(opts); err != nil {
		return opts, options.Assembler{}, err
	}

	if opts.Batch == "" {
		opts.Input = args[0]
	}

	return opts, options.NewAssembler(opts), nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the error message if set and the command usage.
func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: hackasm [options] <file to assemble>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "-" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to assemble, please pass the file to assemble as last argument", arg),
			}
		}
	}
	if len(args) > 1 {
		return &UsageError{
			msg: fmt.Sprintf("Only one file to assemble can be passed, got %d, use -batch for multiple files", len(args)),
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Format = strings.ToLower(opts.Format)
	if _, err := writer.ParseFormat(opts.Format); err != nil {
		valid := make([]string, 0, len(writer.Formats))
		for _, format := range writer.Formats {
			valid = append(valid, string(format))
		}
		return fmt.Errorf("%w. Valid options: %s", err, strings.Join(valid, ", "))
	}

	if opts.Workers < 0 {
		return fmt.Errorf("invalid worker count %d", opts.Workers)
	}
	return nil
}

// validateOptionCombinations checks for options that can not be used together
func validateOptionCombinations(opts options.Program) error {
	if opts.AssembleTest && opts.Output == "" && opts.Batch == "" {
		return &UsageError{msg: "-verify requires an output file, console output can not be verified"}
	}
	if opts.Batch != "" && opts.Output != "" {
		return &UsageError{msg: "-o can not be used with -batch, output files are named after the source files"}
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Output, "o", "", "name of the output file, printed on console if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given comma separated path and file masks and automatically name output files, for example *.asm")
	flags.StringVar(&opts.Format, "f", string(writer.Hack), "output format (hack/bin)")
	flags.IntVar(&opts.Workers, "workers", 0, "number of parallel encoding workers, 0 uses all CPUs")
	flags.BoolVar(&opts.FailFast, "fail-fast", false, "stop at the first invalid line instead of reporting all errors")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.AssembleTest, "verify", false, "verify the generated output by decoding it and check if it matches the source")
}
