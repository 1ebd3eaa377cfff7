package stats

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/nao1215/parasort/internal/model"
)

// Output file names of the parameter export.
const (
	// ParametersFileName is written into every domain folder.
	ParametersFileName = "parameters.txt"

	// AllParametersFileName is written into the output directory when more
	// than one domain was processed.
	AllParametersFileName = model.AllParametersFileName
)

// Extractor collects the distinct parameter names per domain.
type Extractor struct {
	domains map[string]map[string]struct{}
	global  map[string]struct{}
}

// NewExtractor creates an empty Extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		domains: make(map[string]map[string]struct{}),
		global:  make(map[string]struct{}),
	}
}

// Observe records the parameter names of one URL routed to domain.
// The domain is counted even when names is empty.
func (e *Extractor) Observe(domain string, names []string) {
	set, ok := e.domains[domain]
	if !ok {
		set = make(map[string]struct{})
		e.domains[domain] = set
	}
	for _, name := range names {
		set[name] = struct{}{}
		e.global[name] = struct{}{}
	}
}

// Index returns the collected names, sorted.
func (e *Extractor) Index() *model.ParameterIndex {
	index := &model.ParameterIndex{
		Domains:     make(map[string][]string, len(e.domains)),
		Global:      slices.Sorted(maps.Keys(e.global)),
		DomainCount: len(e.domains),
	}
	for domain, set := range e.domains {
		if len(set) == 0 {
			continue
		}
		index.Domains[domain] = slices.Sorted(maps.Keys(set))
	}
	return index
}

// WriteParameterFiles writes <outputDir>/<domain>/parameters.txt for every
// domain that has parameters, and <outputDir>/all-parameters.txt when more
// than one domain was observed and any parameter was seen.
// Files hold one name per line, sorted. It returns the written paths in
// write order.
func WriteParameterFiles(outputDir string, index *model.ParameterIndex) ([]string, error) {
	var written []string

	for _, domain := range slices.Sorted(maps.Keys(index.Domains)) {
		dir := filepath.Join(outputDir, domain)
		if err := os.MkdirAll(dir, 0750); err != nil {
			return written, fmt.Errorf("failed to create domain folder %s: %w", dir, err)
		}
		path := filepath.Join(dir, ParametersFileName)
		if err := writeLines(path, index.Domains[domain]); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	if index.DomainCount > 1 && len(index.Global) > 0 {
		path := filepath.Join(outputDir, AllParametersFileName)
		if err := writeLines(path, index.Global); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	return written, nil
}

// writeLines writes one line per entry, each terminated by a newline.
func writeLines(path string, lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
