// Package input reads item names from stdin or a file, one per line.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Lines reads non-empty lines from src: "-" means stdin, anything else
// (optionally prefixed with @) is a file path.
func Lines(src string, stdin io.Reader) ([]string, error) {
	if src == "-" {
		return ReadLinesFromReader(stdin)
	}
	path := strings.TrimPrefix(src, "@")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	defer f.Close()
	return ReadLinesFromReader(f)
}

// ReadLinesFromReader reads non-empty, trimmed lines from a reader. Lines
// starting with # are skipped.
func ReadLinesFromReader(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	return lines, nil
}
