// Package report renders the results of a sorting run.
//
// This package contains writers for different output formats:
//   - SimpleWriter: Human-readable summary for terminal display
//   - MarkdownWriter: summary.md with tables and a category chart
//   - JSONWriter: Structured JSON output for tool integration
//
// Console carries the progress messages printed while a run is in
// progress, and Palette maps categories to terminal colors.
//
// Design decision: We separate report writing from the run statistics
// (which are in the model package). The partitioner produces data only and
// never prints, so every output format is a writer here.
package report
