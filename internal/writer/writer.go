// Package writer implements the output formats of the assembled words.
package writer

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/retroenv/hackasm/internal/encoder"
)

// Format is an output file format.
type Format string

// Supported output formats.
const (
	Hack   Format = "hack" // one 16 character binary string per line
	Binary Format = "bin"  // big endian 16 bit words
)

// Formats lists all supported output formats.
var Formats = []Format{Hack, Binary}

// ParseFormat returns the format for the given name.
func ParseFormat(name string) (Format, error) {
	format := Format(strings.ToLower(name))
	switch format {
	case Hack, Binary:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format '%s'", name)
	}
}

// Extension returns the file name extension of the format, including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// Write writes the words in the given format. The hack format joins the words
// with a single newline and has no trailing separator.
func Write(w io.Writer, words []encoder.Word, format Format) error {
	switch format {
	case Hack:
		return writeHack(w, words)
	case Binary:
		if err := binary.Write(w, binary.BigEndian, words); err != nil {
			return fmt.Errorf("writing binary words: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format '%s'", format)
	}
}

func writeHack(w io.Writer, words []encoder.Word) error {
	buf := bufio.NewWriter(w)
	for i, word := range words {
		if i > 0 {
			if err := buf.WriteByte('\n'); err != nil {
				return fmt.Errorf("writing line: %w", err)
			}
		}
		if _, err := buf.WriteString(word.String()); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}

// Read parses data that was written in the given format back into words.
func Read(data []byte, format Format) ([]encoder.Word, error) {
	switch format {
	case Hack:
		return readHack(data)
	case Binary:
		if len(data)%2 != 0 {
			return nil, fmt.Errorf("binary output has odd length %d", len(data))
		}
		words := make([]encoder.Word, len(data)/2)
		if err := binary.Read(bytes.NewReader(data), binary.BigEndian, words); err != nil {
			return nil, fmt.Errorf("reading binary words: %w", err)
		}
		return words, nil
	default:
		return nil, fmt.Errorf("unsupported output format '%s'", format)
	}
}

func readHack(data []byte) ([]encoder.Word, error) {
	if len(data) == 0 {
		return nil, nil
	}

	lines := strings.Split(string(data), "\n")
	words := make([]encoder.Word, 0, len(lines))
	for i, line := range lines {
		if len(line) != encoder.WordSize {
			return nil, fmt.Errorf("line %d: expected %d characters but got %d", i+1, encoder.WordSize, len(line))
		}
		value, err := strconv.ParseUint(line, 2, encoder.WordSize)
		if err != nil {
			return nil, fmt.Errorf("line %d: parsing word: %w", i+1, err)
		}
		words = append(words, encoder.Word(value))
	}
	return words, nil
}
