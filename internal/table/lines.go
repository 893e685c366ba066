package table

import (
	"fmt"
	"os"
	"strings"
)

// LoadLines reads a line-oriented text file. A trailing empty line produced
// by the final newline is dropped; carriage returns are stripped.
func LoadLines(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &SourceError{Path: path, Op: "open", Err: fmt.Errorf("%w: %v", ErrMissingSource, err)}
	}
	return SplitLines(string(b)), nil
}

// SplitLines splits text on newlines the same way LoadLines does.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && strings.TrimRight(lines[n-1], "\r") == "" {
		lines = lines[:n-1]
	}
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], "\r")
	}
	return lines
}
