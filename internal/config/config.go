package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "parasort"

	// DefaultOutputDir is the output directory used when --output is not set.
	DefaultOutputDir = "results"

	// AllCategories selects every category of the wordlist.
	AllCategories = "all"

	// WordlistDirName is the hidden directory under the home directory that
	// holds the wordlist file.
	WordlistDirName = ".parasort"

	// WordlistFileName is the file name of the wordlist file.
	WordlistFileName = "parameter_categories.json"
)

// Config holds all run options for parasort.
// It is populated from CLI flags and passed through the application
// explicitly; no package reads options from global state.
//
// Design decision: We use a single flat struct, like the flag set it
// mirrors. The number of options is small enough that nesting would only
// add indirection.
type Config struct {
	// InputFile is the path of a newline delimited URL file.
	// It may be empty when URLs are piped on stdin.
	InputFile string

	// OutputDir is the root directory for per-domain output folders.
	OutputDir string

	// ClearValues replaces every query value with an empty string before
	// URLs are written, keeping only the parameter names.
	ClearValues bool

	// Verbose enables the per-domain detailed summary and debug logging.
	Verbose bool

	// Silent suppresses all console output except fatal errors.
	// Silent wins over Verbose.
	Silent bool

	// NoColor disables colored console output.
	NoColor bool

	// ExtractParams writes parameters.txt per domain and all-parameters.txt
	// when more than one domain was processed.
	ExtractParams bool

	// Categories is the requested category selection.
	// It contains AllCategories or category names from the wordlist.
	Categories []string

	// CustomParams is an inline custom parameter list.
	// Mutually exclusive with CustomParamsFile.
	CustomParams []string

	// CustomParamsFile is a file with one custom parameter per line.
	// Mutually exclusive with CustomParams.
	CustomParamsFile string

	// ShowCategories lists the available categories instead of sorting.
	ShowCategories bool

	// WordlistFile is an explicit wordlist file path.
	// When empty, FindWordlistFile decides where the wordlist lives.
	WordlistFile string

	// GroupByRoot groups URLs by registrable domain instead of full host.
	GroupByRoot bool

	// MarkdownSummary writes summary.md into OutputDir.
	MarkdownSummary bool

	// JSONSummary writes summary.json into OutputDir.
	JSONSummary bool

	// Progress shows a progress bar on stderr while URLs are partitioned.
	Progress bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		OutputDir:  DefaultOutputDir,
		Categories: []string{AllCategories},
	}
}

// Validate checks if the configuration is valid.
// It returns the first problem found as a sentinel error.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return ErrNoOutputDir
	}

	if len(c.CustomParams) > 0 && c.CustomParamsFile != "" {
		return ErrConflictingCustomParams
	}

	if len(c.Categories) == 0 {
		return ErrNoCategories
	}

	return nil
}

// SelectedCategories returns the explicitly requested category names.
// It returns nil when the selection contains AllCategories, which means
// every category of the wordlist.
func (c *Config) SelectedCategories() []string {
	for _, name := range c.Categories {
		if name == AllCategories {
			return nil
		}
	}
	return c.Categories
}

// ConsoleEnabled reports whether anything besides fatal errors is printed.
func (c *Config) ConsoleEnabled() bool {
	return !c.Silent
}

// DetailedSummary reports whether the per-domain summary is printed.
func (c *Config) DetailedSummary() bool {
	return c.Verbose && !c.Silent
}

// DefaultWordlistPath returns ~/.parasort/parameter_categories.json.
func DefaultWordlistPath() string {
	return filepath.Join(xdg.Home, WordlistDirName, WordlistFileName)
}

// XDGConfigDir returns the XDG config directory for parasort.
// On Linux: ~/.config/parasort
// On macOS: ~/Library/Application Support/parasort
// On Windows: %APPDATA%\parasort
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGWordlistPath returns the wordlist path inside the XDG config directory.
func XDGWordlistPath() string {
	return filepath.Join(XDGConfigDir(), WordlistFileName)
}
