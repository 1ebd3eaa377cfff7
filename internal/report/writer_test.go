package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/parasort/internal/config"
	"github.com/nao1215/parasort/internal/model"
)

// createTestSummary creates a summary with sample data for testing.
func createTestSummary() *model.RunSummary {
	started := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	return &model.RunSummary{
		TotalURLs:     5,
		Uncategorized: 1,
		Categories: []model.CategorySummary{
			{Name: "sqli", URLs: 3, Parameters: []string{"a", "b", "c", "d", "e", "f", "id"}},
			{Name: "open_redirect", URLs: 1, Parameters: []string{"next"}},
		},
		Domains: []model.DomainSummary{
			{
				Domain: "a.com",
				URLs:   3,
				Categories: []model.CategorySummary{
					{Name: "sqli", URLs: 3, Parameters: []string{"a", "b", "c", "d", "e", "f", "id"}},
				},
			},
			{
				Domain:        "b.com",
				URLs:          2,
				Uncategorized: 1,
				Categories: []model.CategorySummary{
					{Name: "open_redirect", URLs: 1, Parameters: []string{"next"}},
				},
			},
		},
		OutputDir:  "results",
		StartedAt:  started,
		FinishedAt: started.Add(time.Second),
	}
}

// TestSimpleWriter tests the human-readable summary writer.
func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes totals and categories", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)
		if _, err := w.WriteSummary(createTestSummary()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{
			"PROCESSING COMPLETE",
			"URLs processed: 5",
			"Domains found: 2",
			"GLOBAL CATEGORY SUMMARY",
			"  sqli               :     3 URLs | Parameters: a, b, c, d, e ... (+2 more)",
			"  open_redirect      :     1 URLs | Parameters: next",
			"  uncategorized      :     1 URLs",
			"Output directory: results/",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q, got:\n%s", want, output)
			}
		}
		if strings.Contains(output, "DOMAIN SUMMARY") {
			t.Error("domain breakdown must only be written in verbose mode")
		}
		if strings.Index(output, "sqli") > strings.Index(output, "open_redirect") {
			t.Error("expected categories sorted by count")
		}
	})

	t.Run("verbose writes domain breakdown with full lists", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithVerbose(true))
		if _, err := w.WriteSummary(createTestSummary()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "DOMAIN SUMMARY") {
			t.Error("expected domain breakdown")
		}
		if !strings.Contains(output, "  sqli               :   3 URLs | Parameters: a, b, c, d, e, f, id") {
			t.Errorf("expected full parameter list, got:\n%s", output)
		}
		if strings.Index(output, "a.com") > strings.Index(output, "b.com") {
			t.Error("expected domains sorted by name")
		}
	})

	t.Run("no categorized urls", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		summary := &model.RunSummary{TotalURLs: 1, Uncategorized: 1, OutputDir: "out/"}
		if _, err := NewSimpleWriter(&buf).WriteSummary(summary); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "No categorized URLs found") {
			t.Error("expected no categorized message")
		}
		if !strings.Contains(buf.String(), "Output directory: out/\n") {
			t.Errorf("expected a single trailing slash, got:\n%s", buf.String())
		}
	})

	t.Run("run without summary", func(t *testing.T) {
		t.Parallel()

		_, err := NewSimpleWriter(&bytes.Buffer{}).Write(model.NewRun(nil, "results"))
		if err == nil {
			t.Error("expected ErrNoSummary")
		}
	})

	t.Run("palette colors category names", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithPalette(NewPalette(true)))
		if _, err := w.WriteSummary(createTestSummary()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\x1b[") {
			t.Error("expected ANSI escape codes")
		}
	})
}

func TestSimpleWriterWriteCategories(t *testing.T) {
	t.Parallel()

	wordlist, err := config.ParseWordlist([]byte(`{"sqli": ["id", "a", "b", "c", "d", "e"], "xss": ["q"]}`))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if _, err := NewSimpleWriter(&buf).WriteCategories(wordlist); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"AVAILABLE VULNERABILITY CATEGORIES",
		"sqli                 (6 parameters)",
		"  id, a, b, c, d...",
		"xss                  (1 parameters)",
		"  q...",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

// TestMarkdownWriter tests the Markdown summary writer.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes tables and chart", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		run := model.NewRun(nil, "results")
		run.Summary = createTestSummary()
		if _, err := NewMarkdownWriter(&buf).Write(run); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{
			"# Parasort Summary",
			"## Categories",
			"Open Redirect",
			"```mermaid",
			"pie",
			"## Domains",
			"### a.com",
			"`uncategorized`",
			"4 of 5 URLs matched at least one category.",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
	})

	t.Run("no categorized urls", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		summary := &model.RunSummary{TotalURLs: 1, Uncategorized: 1}
		if _, err := NewMarkdownWriter(&buf).WriteSummary(summary); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "No categorized URLs found.") {
			t.Error("expected no categorized note")
		}
		if strings.Contains(buf.String(), "mermaid") {
			t.Error("expected no chart")
		}
	})
}

// TestJSONWriter tests the JSON summary writer.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes summary document", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		run := model.NewRun(nil, "results")
		run.Summary = createTestSummary()
		run.Parameters = &model.ParameterIndex{
			Domains:     map[string][]string{"a.com": {"id"}},
			Global:      []string{"id"},
			DomainCount: 2,
		}

		w := NewJSONWriter(&buf, WithPrettyPrint(), WithVersion("v1.2.3"))
		if _, err := w.Write(run); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var doc SummaryDocument
		if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if doc.Version != "v1.2.3" {
			t.Errorf("Version = %q", doc.Version)
		}
		if doc.Summary.TotalURLs != 5 || len(doc.Summary.Categories) != 2 {
			t.Errorf("unexpected summary: %+v", doc.Summary)
		}
		if doc.Parameters == nil || doc.Parameters.DomainCount != 2 {
			t.Errorf("unexpected parameters: %+v", doc.Parameters)
		}
		if !strings.Contains(buf.String(), "\n  \"summary\"") {
			t.Error("expected indented output")
		}
	})

	t.Run("compact summary only", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).WriteSummary(createTestSummary()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Count(buf.String(), "\n") != 1 {
			t.Error("expected compact single line output")
		}
		if !strings.Contains(buf.String(), `"total_urls":5`) {
			t.Errorf("unexpected output: %s", buf.String())
		}
	})
}

func TestPreviewParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		params []string
		want   string
	}{
		{params: nil, want: ""},
		{params: []string{"a", "b"}, want: "a, b"},
		{params: []string{"a", "b", "c", "d", "e"}, want: "a, b, c, d, e"},
		{params: []string{"a", "b", "c", "d", "e", "f"}, want: "a, b, c, d, e ... (+1 more)"},
	}
	for _, tt := range tests {
		if got := previewParams(tt.params); got != tt.want {
			t.Errorf("previewParams(%v) = %q, want %q", tt.params, got, tt.want)
		}
	}
}

func TestPalette(t *testing.T) {
	t.Parallel()

	plain := NewPalette(false)
	if got := plain.Category("sqli", "sqli"); got != "sqli" {
		t.Errorf("disabled palette changed text: %q", got)
	}

	colored := NewPalette(true)
	if got := colored.Category("sqli", "sqli"); got == "sqli" || !strings.Contains(got, "sqli") {
		t.Errorf("enabled palette did not color text: %q", got)
	}
	if got := colored.Category("my_category", "x"); got == "x" {
		t.Error("unknown categories use the fallback color")
	}
}

func TestConsole(t *testing.T) {
	t.Parallel()

	t.Run("prints progress messages", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		c := NewConsole(&buf, NewPalette(false), false)
		c.Processing(3, "2 categories")
		c.Domain("a.com")
		c.CustomParams([]string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"})
		c.CustomParamsFile(4, "params.txt")
		c.Saved("Parameters", "results/a.com/parameters.txt")

		output := buf.String()
		for _, want := range []string{
			"Processing 3 URLs using 2 categories...\n",
			"Processing: a.com\n",
			"Custom parameters: a, b, c, d, e, f, g, h, i, j...\n",
			"Loaded 4 parameters from params.txt\n",
			"Parameters saved: results/a.com/parameters.txt",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q, got:\n%s", want, output)
			}
		}
	})

	t.Run("silent prints nothing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		c := NewConsole(&buf, NewPalette(false), true)
		c.Banner()
		c.Processing(1, "custom parameters")
		c.Warn("warning %d", 1)
		if buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}
	})
}
