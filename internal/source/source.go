// Package source prepares raw assembly text for the encoder.
package source

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// CommentMarker starts a comment that runs until the end of the line.
const CommentMarker = "//"

// Line is a prepared source line.
type Line struct {
	Number int    // 1 based line number in the source text
	Text   string // line without comment and surrounding whitespace
}

// IsBlank returns whether the line contains no statement.
func (l Line) IsBlank() bool {
	return l.Text == ""
}

// Read reads all lines of the given reader and prepares them.
// Blank lines are kept to preserve the line numbering.
func Read(r io.Reader) ([]Line, error) {
	var lines []Line

	scanner := bufio.NewScanner(r)
	for number := 1; scanner.Scan(); number++ {
		lines = append(lines, Line{
			Number: number,
			Text:   Prepare(scanner.Text()),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}
	return lines, nil
}

// SplitText splits an in-memory source text into prepared lines.
func SplitText(text string) []Line {
	raw := strings.Split(text, "\n")
	lines := make([]Line, 0, len(raw))
	for i, s := range raw {
		lines = append(lines, Line{
			Number: i + 1,
			Text:   Prepare(s),
		})
	}
	return lines
}

// Prepare strips the comment and the surrounding whitespace of a raw line.
func Prepare(raw string) string {
	if i := strings.Index(raw, CommentMarker); i >= 0 {
		raw = raw[:i]
	}
	return strings.TrimSpace(raw)
}

// CountStatements returns the number of non blank lines.
func CountStatements(lines []Line) int {
	var count int
	for _, line := range lines {
		if !line.IsBlank() {
			count++
		}
	}
	return count
}
