package model

import "slices"

// Files written directly into the output directory, next to the domain
// directories.
const (
	// AllParametersFileName lists the parameter names of every domain.
	AllParametersFileName = "all-parameters.txt"

	// MarkdownSummaryFileName is the Markdown run summary.
	MarkdownSummaryFileName = "summary.md"

	// JSONSummaryFileName is the JSON run summary.
	JSONSummaryFileName = "summary.json"
)

// IsTopLevelFileName reports whether name is taken by a file written
// directly into the output directory, so it cannot name a domain directory.
func IsTopLevelFileName(name string) bool {
	return slices.Contains([]string{
		AllParametersFileName,
		MarkdownSummaryFileName,
		JSONSummaryFileName,
	}, name)
}
