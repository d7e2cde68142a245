// Package options contains the program options.
package options

import (
	"strings"
)

// Parameters contains file path options.
type Parameters struct {
	Input  string // source file, "-" reads from stdin
	Output string // output file, printed on console if empty
	Batch  string // comma separated glob patterns of source files
}

// Flags contains behavior options.
type Flags struct {
	Format       string // output format: hack, bin
	Workers      int    // number of parallel encoding workers
	FailFast     bool   // stop at the first invalid line
	AssembleTest bool   // verify the written output by decoding it again
	Debug        bool
	Quiet        bool
}

// Program options of the assembler.
type Program struct {
	Parameters
	Flags
}

// Assembler defines options to control the translation pass.
type Assembler struct {
	Format      string
	Workers     int
	StopOnError bool
}

// NewAssembler returns the assembler options for the given program options.
func NewAssembler(opts Program) Assembler {
	return Assembler{
		Format:      strings.ToLower(opts.Format),
		Workers:     opts.Workers,
		StopOnError: opts.FailFast,
	}
}
