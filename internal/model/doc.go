// Package model defines the data structures shared by the parasort packages.
//
// This package contains the following main types:
//   - Categorization: the per-URL matching result
//   - RunSummary, DomainSummary, CategorySummary: aggregated statistics
//   - ParameterIndex: extracted parameter names per domain
//   - Run: the state handed from one pipeline step to the next
//
// Design decision: We keep these types in a leaf package so that the
// matcher, the partitioner, the pipeline and the report writers can share
// them without import cycles. Summary types carry JSON tags because they
// are written to summary.json.
package model
