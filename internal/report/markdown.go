package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nao1215/parasort/internal/model"
)

// MarkdownWriter outputs the run summary in Markdown format.
// This format is designed for sharing triage results, e.g. in a ticket.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation, which gives us tables, GitHub alerts, and mermaid charts
// without hand-written escaping.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the summary of a finished run in Markdown format.
func (w *MarkdownWriter) Write(run *model.Run) (int, error) {
	if run.Summary == nil {
		return 0, ErrNoSummary
	}
	return w.WriteSummary(run.Summary)
}

// WriteSummary outputs the run statistics in Markdown format.
func (w *MarkdownWriter) WriteSummary(summary *model.RunSummary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, summary)
	w.writeCategories(md, summary)
	w.writeDomains(md, summary)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the title and the run totals.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, summary *model.RunSummary) {
	md.H1("Parasort Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Output Directory", "`" + summary.OutputDir + "`"},
			{"Started", summary.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Finished", summary.FinishedAt.Format("2006-01-02 15:04:05 MST")},
			{"URLs Processed", strconv.Itoa(summary.TotalURLs)},
			{"Domains", strconv.Itoa(summary.DomainCount())},
			{"Uncategorized URLs", strconv.Itoa(summary.Uncategorized)},
		},
	})
	md.PlainText("")
}

// writeCategories writes the global category table and chart.
func (w *MarkdownWriter) writeCategories(md *markdown.Markdown, summary *model.RunSummary) {
	md.H2("Categories")
	md.PlainText("")

	if !summary.HasCategorized() {
		md.Note("No categorized URLs found.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(summary.Categories))
	for _, c := range summary.Categories {
		rows = append(rows, []string{
			displayName(c.Name),
			strconv.Itoa(c.URLs),
			previewParams(c.Parameters),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Category", "URLs", "Parameters"},
		Rows:   rows,
	})
	md.PlainText("")

	w.writePieChart(md, summary)

	categorized := summary.TotalURLs - summary.Uncategorized
	md.Tip(fmt.Sprintf("%d of %d URLs matched at least one category.", categorized, summary.TotalURLs))
	md.PlainText("")
}

// writePieChart writes a mermaid pie chart of the category URL counts.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, summary *model.RunSummary) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("URLs per Category"),
		piechart.WithShowData(true),
	)

	for _, c := range summary.Categories {
		chart.LabelAndIntValue(displayName(c.Name), uint64(c.URLs))
	}
	if summary.Uncategorized > 0 {
		chart.LabelAndIntValue(displayName(model.UncategorizedName), uint64(summary.Uncategorized))
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeDomains writes one table per domain.
func (w *MarkdownWriter) writeDomains(md *markdown.Markdown, summary *model.RunSummary) {
	md.H2("Domains")
	md.PlainText("")

	for _, d := range summary.Domains {
		md.H3(d.Domain)
		md.PlainText("")

		rows := make([][]string, 0, len(d.Categories)+1)
		for _, c := range d.Categories {
			rows = append(rows, []string{
				"`" + c.Name + "`",
				strconv.Itoa(c.URLs),
				strings.Join(c.Parameters, ", "),
			})
		}
		if d.Uncategorized > 0 {
			rows = append(rows, []string{"`" + model.UncategorizedName + "`", strconv.Itoa(d.Uncategorized), "-"})
		}

		md.Table(markdown.TableSet{
			Header: []string{"Category", "URLs", "Parameters"},
			Rows:   rows,
		})
		md.PlainText("")
	}
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Generated by [parasort](https://github.com/nao1215/parasort)*")
}

// displayName turns a category name into a heading, such as
// "Open Redirect" for open_redirect.
func displayName(name string) string {
	words := strings.NewReplacer("_", " ", "-", " ").Replace(name)
	return cases.Title(language.English).String(words)
}
