// Package stats accumulates the figures of a sorting run.
//
// Aggregator counts URLs per domain and category and remembers which
// parameter names triggered each category. Extractor collects every
// parameter name seen per domain, independent of matching, and writes the
// parameters.txt exports.
//
// Neither type is safe for concurrent use; a run is a single pass.
package stats
