package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/parasort/internal/config"
	"github.com/nao1215/parasort/internal/model"
)

// ErrNoSummary is returned when a run has no summary to write.
var ErrNoSummary = errors.New("run has no summary")

// SimpleWriter outputs the human-readable run summary.
// This format is designed for terminal display: the global category table
// sorted by URL count and, in verbose mode, a per-domain breakdown.
type SimpleWriter struct {
	baseWriter

	// palette colors the output. Colors are off by default.
	palette *Palette

	// verbose adds the per-domain breakdown before the summary.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithPalette sets the colors of the output.
func WithPalette(palette *Palette) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.palette = palette
	}
}

// WithVerbose enables the per-domain breakdown.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		palette:    NewPalette(false),
		verbose:    false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the summary of a finished run.
func (w *SimpleWriter) Write(run *model.Run) (int, error) {
	if run.Summary == nil {
		return 0, ErrNoSummary
	}
	return w.WriteSummary(run.Summary)
}

// WriteSummary outputs the run statistics in human-readable format.
func (w *SimpleWriter) WriteSummary(summary *model.RunSummary) (int, error) {
	var sb strings.Builder

	if w.verbose {
		w.writeDomains(&sb, summary)
	}
	w.writeTotals(&sb, summary)
	w.writeCategories(&sb, summary)
	w.writeFooter(&sb, summary)

	return w.output.Write([]byte(sb.String()))
}

// rule writes a colored line of n copies of ch.
func (w *SimpleWriter) rule(sb *strings.Builder, ch string, n int) {
	sb.WriteString(w.palette.Header(strings.Repeat(ch, n)))
	sb.WriteString("\n")
}

// writeDomains writes the per-domain breakdown, domains and categories
// sorted by name, with the full parameter lists.
func (w *SimpleWriter) writeDomains(sb *strings.Builder, summary *model.RunSummary) {
	sb.WriteString("\n")
	w.rule(sb, "=", 80)
	sb.WriteString(w.palette.Header("DOMAIN SUMMARY"))
	sb.WriteString("\n")
	w.rule(sb, "=", 80)

	for _, d := range summary.Domains {
		sb.WriteString("\n")
		sb.WriteString(w.palette.Header(d.Domain))
		sb.WriteString("\n")
		w.rule(sb, "-", 60)

		for _, c := range d.Categories {
			sb.WriteString(w.categoryLine(c.Name, c.URLs, 3))
			if len(c.Parameters) > 0 {
				sb.WriteString(" | Parameters: ")
				sb.WriteString(strings.Join(c.Parameters, ", "))
			}
			sb.WriteString("\n")
		}
		if d.Uncategorized > 0 {
			sb.WriteString(w.categoryLine(model.UncategorizedName, d.Uncategorized, 3))
			sb.WriteString("\n")
		}
	}
}

// writeTotals writes the header and the run totals.
func (w *SimpleWriter) writeTotals(sb *strings.Builder, summary *model.RunSummary) {
	sb.WriteString("\n")
	w.rule(sb, "=", 50)
	sb.WriteString(w.palette.Header("PROCESSING COMPLETE"))
	sb.WriteString("\n")
	w.rule(sb, "=", 50)

	fmt.Fprintf(sb, "URLs processed: %s\n", w.palette.Value(fmt.Sprint(summary.TotalURLs)))
	fmt.Fprintf(sb, "Domains found: %s\n", w.palette.Value(fmt.Sprint(summary.DomainCount())))
}

// writeCategories writes the global category table, sorted by descending
// URL count, with a preview of the triggering parameter names.
func (w *SimpleWriter) writeCategories(sb *strings.Builder, summary *model.RunSummary) {
	if !summary.HasCategorized() {
		sb.WriteString(w.palette.Warning("No categorized URLs found"))
		sb.WriteString("\n")
	} else {
		sb.WriteString("\n")
		sb.WriteString(w.palette.Header("GLOBAL CATEGORY SUMMARY"))
		sb.WriteString("\n")
		w.rule(sb, "-", 50)

		for _, c := range summary.Categories {
			sb.WriteString(w.categoryLine(c.Name, c.URLs, 5))
			if len(c.Parameters) > 0 {
				sb.WriteString(" | Parameters: ")
				sb.WriteString(previewParams(c.Parameters))
			}
			sb.WriteString("\n")
		}
	}

	if summary.Uncategorized > 0 {
		sb.WriteString(w.categoryLine(model.UncategorizedName, summary.Uncategorized, 5))
		sb.WriteString("\n")
	}
}

// categoryLine formats "  <name padded to 18> : <count> URLs".
func (w *SimpleWriter) categoryLine(name string, count, width int) string {
	return "  " + w.palette.Category(name, fmt.Sprintf("%-18s", name)) +
		fmt.Sprintf(" : %*d URLs", width, count)
}

// writeFooter writes the output directory.
func (w *SimpleWriter) writeFooter(sb *strings.Builder, summary *model.RunSummary) {
	w.rule(sb, "=", 50)
	fmt.Fprintf(sb, "Output directory: %s\n", w.palette.Value(strings.TrimSuffix(summary.OutputDir, "/")+"/"))
	w.rule(sb, "=", 50)
}

// WriteCategories lists the categories of a wordlist with their parameter
// count and the first parameter names.
func (w *SimpleWriter) WriteCategories(wordlist *config.Wordlist) (int, error) {
	var sb strings.Builder

	sb.WriteString("\n")
	w.rule(&sb, "=", 60)
	sb.WriteString(w.palette.Header("AVAILABLE VULNERABILITY CATEGORIES"))
	sb.WriteString("\n")
	w.rule(&sb, "=", 60)

	for _, name := range wordlist.Categories() {
		params, _ := wordlist.Params(name)
		sb.WriteString(w.palette.Category(name, fmt.Sprintf("%-20s", name)))
		fmt.Fprintf(&sb, " (%d parameters)\n", len(params))

		preview := params
		if len(preview) > previewSize {
			preview = preview[:previewSize]
		}
		sb.WriteString("  ")
		sb.WriteString(w.palette.Muted(strings.Join(preview, ", ") + "..."))
		sb.WriteString("\n")
	}

	w.rule(&sb, "=", 60)
	return w.output.Write([]byte(sb.String()))
}
