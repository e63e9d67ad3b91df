// Package loader handles source file loading operations.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// endDirective ends the source, the loader does not read past it.
const endDirective = ".end"

// maxLineLength is the longest source line the loader accepts.
const maxLineLength = 1 << 20

// Loader handles loading source files from disk.
type Loader struct{}

// New creates a new source loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the source lines of the given file.
func (l *Loader) Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	lines, err := l.LoadFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return lines, nil
}

// LoadFromReader reads source lines up to and including the first line that
// contains the end directive. Line endings, including a carriage return, are
// not part of the returned lines.
func (l *Loader) LoadFromReader(reader io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)

	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		lines = append(lines, line)
		if strings.Contains(line, endDirective) {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning lines: %w", err)
	}
	return lines, nil
}
