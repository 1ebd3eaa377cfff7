package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/parasort/internal/model"
)

// Writer defines the interface for run summary output.
type Writer interface {
	// Write outputs the results of a finished run.
	// Returns the number of bytes written and any error encountered.
	Write(run *model.Run) (int, error)

	// WriteSummary outputs only the run statistics.
	WriteSummary(summary *model.RunSummary) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// previewSize is the number of parameter names shown before a list is
// truncated in summaries.
const previewSize = 5

// previewParams joins the first previewSize names and appends the number
// of hidden names, such as "a, b, c, d, e ... (+2 more)".
func previewParams(params []string) string {
	if len(params) <= previewSize {
		return strings.Join(params, ", ")
	}
	return strings.Join(params[:previewSize], ", ") + " ... (+" + strconv.Itoa(len(params)-previewSize) + " more)"
}
