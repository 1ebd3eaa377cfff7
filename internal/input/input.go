// Package input collects raw URL lines from a piped stream and a file.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// maxLineSize bounds a single input line. Crawled URLs can be long.
const maxLineSize = 1024 * 1024

var (
	// ErrNoInput is returned when neither a piped stream nor a file is given.
	ErrNoInput = errors.New("no input provided: use --input FILE or pipe URLs on stdin")

	// ErrInputNotFound is returned when the input file does not exist and
	// the piped stream carried no URL.
	ErrInputNotFound = errors.New("input file not found")

	// ErrNoURLs is returned when the sources hold no URL at all.
	ErrNoURLs = errors.New("no URLs found in input")
)

// Sources names where URLs are read from. Either field may be empty.
type Sources struct {
	// Stdin is the piped stream. Leave it nil when stdin is a terminal.
	Stdin io.Reader

	// File is the path of a newline delimited URL file.
	File string
}

// IsPiped reports whether r is a stream that carries data rather than an
// interactive terminal. Readers that are not files, such as buffers in
// tests, count as piped.
func IsPiped(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return r != nil
	}
	fd := f.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// Collect reads the URL lines of src: the piped lines first, then the file
// lines. A missing file is only an error when the stream gave no URL.
func Collect(src Sources) ([]string, error) {
	if src.Stdin == nil && src.File == "" {
		return nil, ErrNoInput
	}

	var urls []string
	if src.Stdin != nil {
		lines, err := ReadLines(src.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		urls = append(urls, lines...)
	}

	if src.File != "" {
		lines, err := readFile(src.File)
		switch {
		case errors.Is(err, os.ErrNotExist):
			if len(urls) == 0 {
				return nil, fmt.Errorf("%w: %s", ErrInputNotFound, src.File)
			}
		case err != nil:
			return nil, fmt.Errorf("failed to read input file: %w", err)
		default:
			urls = append(urls, lines...)
		}
	}

	if len(urls) == 0 {
		return nil, ErrNoURLs
	}
	return urls, nil
}

// ReadLines returns the non-blank lines of r with surrounding whitespace
// removed.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func readFile(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}
