package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nao1215/parasort/internal/model"
	"github.com/nao1215/parasort/internal/partition"
	"github.com/nao1215/parasort/internal/report"
	"github.com/nao1215/parasort/internal/stats"
)

const (
	// MarkdownSummaryFileName is the Markdown summary written below the
	// output directory.
	MarkdownSummaryFileName = model.MarkdownSummaryFileName

	// JSONSummaryFileName is the JSON summary written below the output
	// directory.
	JSONSummaryFileName = model.JSONSummaryFileName
)

var (
	// ErrNoSummary is returned by steps that need the partition step to
	// have run first.
	ErrNoSummary = errors.New("run has no summary; the partition step must run first")

	// ErrNoParameters is returned when parameter export runs without
	// extracted parameters.
	ErrNoParameters = errors.New("run has no extracted parameters")
)

// SavedFunc is called for every export file a step writes.
// what describes the file ("Parameters", "Summary"), path is its location.
type SavedFunc func(what, path string)

// PartitionStep sorts the run's URLs into per-domain category files.
// It sets Run.Summary, Run.Parameters, and appends the category files
// to Run.Files.
type PartitionStep struct {
	partitioner *partition.Partitioner
}

// NewPartitionStep creates a partition step around a configured
// partitioner. A partitioner handles a single run, so the step does too.
func NewPartitionStep(partitioner *partition.Partitioner) *PartitionStep {
	return &PartitionStep{partitioner: partitioner}
}

// Name returns the step name.
func (s *PartitionStep) Name() string {
	return "partition"
}

// Do executes the partition step.
func (s *PartitionStep) Do(ctx context.Context, run *model.Run) error {
	result, err := s.partitioner.Run(ctx, run.URLs)
	if err != nil {
		return fmt.Errorf("partition failed: %w", err)
	}

	run.Summary = result.Summary
	run.Parameters = result.Parameters
	run.Files = append(run.Files, result.Files...)
	return nil
}

// ExportParametersStep writes the extracted parameter names to
// <output>/<domain>/parameters.txt and <output>/all-parameters.txt.
type ExportParametersStep struct {
	onSaved SavedFunc
	logger  *slog.Logger
}

// ExportParametersStepOption configures an ExportParametersStep.
type ExportParametersStepOption func(*ExportParametersStep)

// WithExportSavedHook sets the function called for every written file.
func WithExportSavedHook(fn SavedFunc) ExportParametersStepOption {
	return func(s *ExportParametersStep) {
		s.onSaved = fn
	}
}

// WithExportLogger sets a custom logger for the export step.
func WithExportLogger(logger *slog.Logger) ExportParametersStepOption {
	return func(s *ExportParametersStep) {
		s.logger = logger
	}
}

// NewExportParametersStep creates a new parameter export step.
func NewExportParametersStep(opts ...ExportParametersStepOption) *ExportParametersStep {
	s := &ExportParametersStep{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *ExportParametersStep) Name() string {
	return "export_parameters"
}

// Do executes the export step.
func (s *ExportParametersStep) Do(_ context.Context, run *model.Run) error {
	if run.Parameters == nil {
		return ErrNoParameters
	}

	written, err := stats.WriteParameterFiles(run.OutputDir, run.Parameters)
	run.Files = append(run.Files, written...)
	if err != nil {
		return fmt.Errorf("failed to export parameters: %w", err)
	}

	for _, path := range written {
		what := "Parameters"
		if filepath.Base(path) == stats.AllParametersFileName {
			what = "All parameters"
		}
		if s.onSaved != nil {
			s.onSaved(what, path)
		}
	}

	s.logger.Debug("parameters exported",
		"files", len(written),
		"global", len(run.Parameters.Global),
	)
	return nil
}

// SummaryFormat selects the file format of a SummaryFileStep.
type SummaryFormat int

const (
	// FormatMarkdown writes summary.md.
	FormatMarkdown SummaryFormat = iota
	// FormatJSON writes summary.json.
	FormatJSON
)

// String returns the format name.
func (f SummaryFormat) String() string {
	switch f {
	case FormatMarkdown:
		return "markdown"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// fileName returns the summary file name of the format.
func (f SummaryFormat) fileName() string {
	if f == FormatJSON {
		return JSONSummaryFileName
	}
	return MarkdownSummaryFileName
}

// SummaryFileStep writes the run summary into the output directory.
type SummaryFileStep struct {
	format  SummaryFormat
	version string
	onSaved SavedFunc
}

// SummaryFileStepOption configures a SummaryFileStep.
type SummaryFileStepOption func(*SummaryFileStep)

// WithSummaryVersion records the tool version in JSON summaries.
func WithSummaryVersion(version string) SummaryFileStepOption {
	return func(s *SummaryFileStep) {
		s.version = version
	}
}

// WithSummarySavedHook sets the function called after the file is written.
func WithSummarySavedHook(fn SavedFunc) SummaryFileStepOption {
	return func(s *SummaryFileStep) {
		s.onSaved = fn
	}
}

// NewSummaryFileStep creates a step that writes the summary in format.
func NewSummaryFileStep(format SummaryFormat, opts ...SummaryFileStepOption) *SummaryFileStep {
	s := &SummaryFileStep{format: format}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *SummaryFileStep) Name() string {
	return "summary_" + s.format.String()
}

// Do executes the summary step.
func (s *SummaryFileStep) Do(_ context.Context, run *model.Run) (err error) {
	if run.Summary == nil {
		return ErrNoSummary
	}

	path := filepath.Join(run.OutputDir, s.format.fileName())

	// Summaries list parameter names seen in private URL corpora.
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close summary file: %w", closeErr)
		}
	}()

	if _, err := s.writer(f).Write(run); err != nil {
		return fmt.Errorf("failed to write %s summary: %w", s.format, err)
	}

	run.Files = append(run.Files, path)
	if s.onSaved != nil {
		s.onSaved("Summary", path)
	}
	return nil
}

// writer returns the report writer of the step's format.
func (s *SummaryFileStep) writer(w io.Writer) report.Writer {
	if s.format == FormatJSON {
		return report.NewJSONWriter(w, report.WithPrettyPrint(), report.WithVersion(s.version))
	}
	return report.NewMarkdownWriter(w)
}

// DefaultPipelineConfig holds configuration for the default pipeline.
type DefaultPipelineConfig struct {
	// ExportParameters adds the parameter export step. The partitioner
	// must have been created with partition.WithExtractParams(true).
	ExportParameters bool

	// Markdown adds a step writing summary.md.
	Markdown bool

	// JSON adds a step writing summary.json.
	JSON bool

	// Version is recorded in JSON summaries.
	Version string

	// OnSaved is called for every export file written.
	OnSaved SavedFunc

	// Logger is passed on to steps that log.
	Logger *slog.Logger
}

// DefaultPipelineOption configures a DefaultPipelineConfig.
type DefaultPipelineOption func(*DefaultPipelineConfig)

// WithPipelineExportParameters enables the parameter export step.
func WithPipelineExportParameters(export bool) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.ExportParameters = export
	}
}

// WithPipelineMarkdown enables the Markdown summary file.
func WithPipelineMarkdown(enabled bool) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Markdown = enabled
	}
}

// WithPipelineJSON enables the JSON summary file.
func WithPipelineJSON(enabled bool) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.JSON = enabled
	}
}

// WithPipelineVersion sets the version recorded in JSON summaries.
func WithPipelineVersion(version string) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Version = version
	}
}

// WithPipelineSavedHook sets the function called for every export file.
func WithPipelineSavedHook(fn SavedFunc) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.OnSaved = fn
	}
}

// WithPipelineLogger sets the logger handed to the steps.
func WithPipelineLogger(logger *slog.Logger) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Logger = logger
	}
}

// DefaultPipeline creates the standard sorting pipeline: partition first,
// then the enabled exports in a fixed order (parameters, Markdown, JSON).
//
// The first variadic parameter accepts pipeline options (WithLogger, etc).
// The second accepts pipeline config options (WithPipelineMarkdown, etc).
func DefaultPipeline(partitioner *partition.Partitioner, pipelineOpts []Option, configOpts ...DefaultPipelineOption) *Pipeline {
	p := New(pipelineOpts...)

	cfg := DefaultPipelineConfig{
		Logger: p.logger,
	}
	for _, opt := range configOpts {
		opt(&cfg)
	}

	p.AddStep(NewPartitionStep(partitioner))

	if cfg.ExportParameters {
		p.AddStep(NewExportParametersStep(
			WithExportSavedHook(cfg.OnSaved),
			WithExportLogger(cfg.Logger),
		))
	}
	if cfg.Markdown {
		p.AddStep(NewSummaryFileStep(FormatMarkdown, WithSummarySavedHook(cfg.OnSaved)))
	}
	if cfg.JSON {
		p.AddStep(NewSummaryFileStep(FormatJSON,
			WithSummaryVersion(cfg.Version),
			WithSummarySavedHook(cfg.OnSaved),
		))
	}

	return p
}
