// Package input loads puzzle input as an ordered slice of lines.
//
// It is the only part of the module that touches the filesystem: the file is
// opened, read fully and closed before any equation is parsed.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// Sentinel errors wrapped by ResourceError.
var (
	// ErrOpen indicates the input source could not be opened.
	ErrOpen = errors.New("input: cannot open source")

	// ErrRead indicates reading the input source failed part way.
	ErrRead = errors.New("input: cannot read source")
)

// Stdin is the path that selects standard input in ReadFile.
const Stdin = "-"

// ResourceError reports a failure to obtain the input lines.
type ResourceError struct {
	Path string
	Op   error // ErrOpen or ErrRead
	Err  error // underlying cause
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("%v %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *ResourceError) Unwrap() []error { return []error{e.Op, e.Err} }

// ReadLines returns every line of r without line terminators.
// A trailing newline does not produce an empty final line.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// ReadFile reads all lines of the file at path, or of os.Stdin when path is "-".
func ReadFile(path string) ([]string, error) {
	if path == Stdin {
		lines, err := ReadLines(os.Stdin)
		if err != nil {
			return nil, &ResourceError{Path: "stdin", Op: ErrRead, Err: err}
		}

		return lines, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, &ResourceError{Path: path, Op: ErrOpen, Err: err}
	}
	defer file.Close()

	lines, err := ReadLines(file)
	if err != nil {
		return nil, &ResourceError{Path: path, Op: ErrRead, Err: err}
	}

	return lines, nil
}
