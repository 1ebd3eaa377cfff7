package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// WordlistSource tells where the wordlist of a run came from.
type WordlistSource int

const (
	// SourceFile means the wordlist was read from an existing file.
	SourceFile WordlistSource = iota

	// SourceBootstrapped means the file did not exist and was created
	// with the built-in defaults.
	SourceBootstrapped

	// SourceDefaults means the built-in defaults are used in memory
	// because the file could not be read, parsed, or created.
	SourceDefaults
)

// String returns a human-readable name of the source.
func (s WordlistSource) String() string {
	switch s {
	case SourceFile:
		return "file"
	case SourceBootstrapped:
		return "bootstrapped"
	case SourceDefaults:
		return "defaults"
	default:
		return "unknown"
	}
}

// LoadResult is the outcome of LoadOrBootstrap.
type LoadResult struct {
	// Wordlist is always usable.
	Wordlist *Wordlist

	// Path is the wordlist file path that was considered.
	Path string

	// Source tells where Wordlist came from.
	Source WordlistSource

	// Warning describes a recoverable problem, such as a malformed file or
	// an unwritable config directory. It is nil when everything went fine.
	Warning error
}

// FindWordlistFile decides which wordlist file a run uses:
// 1. If explicitPath is specified, use it (whether or not it exists)
// 2. Use the XDG config location if a wordlist file exists there
// 3. Otherwise use ~/.parasort/parameter_categories.json
func FindWordlistFile(explicitPath string) string {
	if explicitPath != "" {
		return explicitPath
	}

	if xdgPath := XDGWordlistPath(); fileExists(xdgPath) {
		return xdgPath
	}

	return DefaultWordlistPath()
}

// LoadWordlistFile reads and parses a wordlist file.
// If the file does not exist, it returns ErrWordlistNotFound.
func LoadWordlistFile(path string) (*Wordlist, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrWordlistNotFound
		}
		return nil, err
	}
	return ParseWordlist(data)
}

// LoadOrBootstrap loads the wordlist at path.
//
// A missing file is created with the built-in defaults. A file that cannot
// be read or parsed is left untouched and the defaults are used in memory.
// A config directory that cannot be created is reported as a warning and
// the defaults are used in memory. LoadOrBootstrap never fails; problems
// are reported through LoadResult.Warning.
func LoadOrBootstrap(path string) LoadResult {
	result := LoadResult{Path: path}

	wordlist, err := LoadWordlistFile(path)
	switch {
	case err == nil:
		result.Wordlist = wordlist
		result.Source = SourceFile
		return result
	case !errors.Is(err, ErrWordlistNotFound):
		result.Wordlist = DefaultWordlist()
		result.Source = SourceDefaults
		result.Warning = fmt.Errorf("config error in %s: %w; using defaults", path, err)
		return result
	}

	if err := WriteDefaultWordlist(path, false); err != nil {
		result.Wordlist = DefaultWordlist()
		result.Source = SourceDefaults
		result.Warning = fmt.Errorf("config error: %w; using defaults", err)
		return result
	}

	result.Wordlist = DefaultWordlist()
	result.Source = SourceBootstrapped
	return result
}

// WriteDefaultWordlist writes the built-in wordlist to path, creating the
// parent directory when needed. Without force an existing file is kept and
// an error is returned.
func WriteDefaultWordlist(path string, force bool) error {
	if !force && fileExists(path) {
		return fmt.Errorf("%w: %s", ErrWordlistExists, path)
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := DefaultWordlistJSON()
	if err != nil {
		return fmt.Errorf("failed to encode default wordlist: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write wordlist file: %w", err)
	}
	return nil
}

// MarshalWordlistIndent encodes a wordlist as JSON indented by two spaces,
// keeping category order.
func MarshalWordlistIndent(w *Wordlist) ([]byte, error) {
	compact, err := w.MarshalJSON()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// fileExists reports whether path exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
