// Package loader handles source file loading operations.
package loader

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/hackasm/internal/source"
)

// StdinName is the input name that selects reading the source from stdin.
const StdinName = "-"

// Loader handles loading assembly source files.
type Loader struct {
	stdin io.Reader
}

// New creates a new source loader.
func New() *Loader {
	return &Loader{
		stdin: os.Stdin,
	}
}

// Load reads and prepares the source lines of the given file.
func (l *Loader) Load(input string) ([]source.Line, error) {
	if input == StdinName {
		lines, err := source.Read(l.stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return lines, nil
	}

	file, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", input, err)
	}
	defer func() { _ = file.Close() }()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("reading file info of %s: %w", input, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("%s is not a valid assembly file", input)
	}

	lines, err := source.Read(file)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", input, err)
	}
	return lines, nil
}

// LoadFromBytes prepares the source lines of an in-memory source.
// This is useful for testing and programmatic usage.
func (l *Loader) LoadFromBytes(data []byte) ([]source.Line, error) {
	return source.Read(bytes.NewReader(data))
}
