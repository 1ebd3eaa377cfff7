package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/parasort/internal/model"
)

// JSONWriter outputs run summaries in JSON format.
// This format is designed for tool integration and programmatic processing.
//
// Design decision: We use standard encoding/json rather than a third-party
// JSON library. The document is small and written once per run.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool

	// version is written into the document when set.
	version string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithPrettyPrint enables pretty-printed JSON with two space indentation.
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
	}
}

// WithVersion records the parasort version in the document.
func WithVersion(version string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.version = version
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// SummaryDocument is the JSON document of a finished run.
type SummaryDocument struct {
	// Version is the parasort version that produced the document.
	Version string `json:"version,omitempty"`

	// Summary holds the run statistics.
	Summary *model.RunSummary `json:"summary"`

	// Parameters holds the extracted parameter names, when extraction ran.
	Parameters *model.ParameterIndex `json:"parameters,omitempty"`
}

// Write outputs the summary and extracted parameters of a run.
func (w *JSONWriter) Write(run *model.Run) (int, error) {
	if run.Summary == nil {
		return 0, ErrNoSummary
	}
	return w.writeJSON(SummaryDocument{
		Version:    w.version,
		Summary:    run.Summary,
		Parameters: run.Parameters,
	})
}

// WriteSummary outputs only the run statistics.
func (w *JSONWriter) WriteSummary(summary *model.RunSummary) (int, error) {
	return w.writeJSON(summary)
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
