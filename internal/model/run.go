package model

import "time"

// Run carries the state of one sorting run through the pipeline steps.
type Run struct {
	// URLs is the concatenated input, in input order.
	URLs []string

	// OutputDir is the root output directory.
	OutputDir string

	// StartedAt is when the run was created.
	StartedAt time.Time

	// Summary is set by the partition step.
	Summary *RunSummary

	// Parameters is set by the partition step when extraction is enabled.
	Parameters *ParameterIndex

	// Files lists every file written by the run, in write order.
	Files []string

	// PerformedSteps lists the names of the steps that completed.
	PerformedSteps []string
}

// NewRun creates a Run for the given input and output directory.
func NewRun(urls []string, outputDir string) *Run {
	return &Run{
		URLs:      urls,
		OutputDir: outputDir,
		StartedAt: time.Now(),
	}
}
