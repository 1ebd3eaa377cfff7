package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and the loaders, and can
// be checked with errors.Is().
var (
	// ErrNoOutputDir is returned when the output directory is empty.
	ErrNoOutputDir = errors.New("no output directory specified")

	// ErrConflictingCustomParams is returned when both an inline custom
	// parameter list and a custom parameter file are given.
	ErrConflictingCustomParams = errors.New("conflicting custom parameters: --custom-params and --custom-params-file cannot be used together")

	// ErrNoCategories is returned when the category selection is empty.
	ErrNoCategories = errors.New("no categories selected: use 'all' or name at least one category")

	// ErrCustomParamsFile is returned when the custom parameter file cannot be read.
	ErrCustomParamsFile = errors.New("failed to load custom parameters file")
)

// Wordlist errors.
var (
	// ErrWordlistNotFound is returned when the wordlist file does not exist.
	ErrWordlistNotFound = errors.New("wordlist file not found")

	// ErrInvalidWordlist is returned when a wordlist file is not a mapping
	// from category name to a list of parameter names.
	ErrInvalidWordlist = errors.New("invalid wordlist")

	// ErrDuplicateCategory is returned when a category is defined twice.
	ErrDuplicateCategory = errors.New("duplicate category")

	// ErrEmptyCategory is returned when a category has no parameter names.
	ErrEmptyCategory = errors.New("empty category")

	// ErrReservedCategory is returned when a category uses a name that the
	// output layout or the category selection already gives a meaning.
	ErrReservedCategory = errors.New("reserved category name")

	// ErrWordlistExists is returned when writing the default wordlist would
	// overwrite an existing file.
	ErrWordlistExists = errors.New("wordlist file already exists")
)
