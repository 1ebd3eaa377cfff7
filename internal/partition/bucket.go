package partition

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nao1215/parasort/internal/model"
)

// urlsFileSuffix is appended to a category name to form its file name.
const urlsFileSuffix = "-urls.txt"

// FileName returns the output file name of a category.
// The custom pseudo category and the uncategorized bucket follow the same
// rule, giving custom-params-urls.txt and uncategorized-urls.txt.
func FileName(category string) string {
	return category + urlsFileSuffix
}

// outputFile is one lazily opened category file.
type outputFile struct {
	file   *os.File
	writer *bufio.Writer
	lines  int
}

// bucket owns the output files of one domain.
// All files are released together by close.
type bucket struct {
	domain string
	dir    string
	files  map[string]*outputFile
	order  []string
}

// newBucket creates the domain folder and an empty bucket for it.
func newBucket(outputDir, domain string) (*bucket, error) {
	dir := filepath.Join(outputDir, domain)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create domain folder %s: %w", dir, err)
	}
	return &bucket{
		domain: domain,
		dir:    dir,
		files:  make(map[string]*outputFile),
	}, nil
}

// write appends the URL line of c to every matched category file, or to the
// uncategorized file when nothing matched.
func (b *bucket) write(c model.Categorization) error {
	if c.Uncategorized() {
		return b.append(model.UncategorizedName, c.URL)
	}
	for _, category := range c.Categories {
		if err := b.append(category, c.URL); err != nil {
			return err
		}
	}
	return nil
}

func (b *bucket) append(category, line string) error {
	out, err := b.open(category)
	if err != nil {
		return err
	}
	if _, err := out.writer.WriteString(line); err != nil {
		return fmt.Errorf("failed to write %s: %w", out.file.Name(), err)
	}
	if err := out.writer.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write %s: %w", out.file.Name(), err)
	}
	out.lines++
	return nil
}

// open returns the file of a category, creating it on first use.
// An existing file from a previous run is truncated.
func (b *bucket) open(category string) (*outputFile, error) {
	if out, ok := b.files[category]; ok {
		return out, nil
	}

	path := filepath.Join(b.dir, FileName(category))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // path is built from the output directory
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %s: %w", path, err)
	}

	out := &outputFile{file: f, writer: bufio.NewWriter(f)}
	b.files[category] = out
	b.order = append(b.order, category)
	return out, nil
}

// paths returns the created file paths in creation order.
func (b *bucket) paths() []string {
	paths := make([]string, 0, len(b.order))
	for _, category := range b.order {
		paths = append(paths, b.files[category].file.Name())
	}
	return paths
}

// close flushes and closes every file of the bucket. It attempts all of
// them even when one fails and returns the joined errors.
func (b *bucket) close() error {
	var errs []error
	for _, category := range b.order {
		out := b.files[category]
		if err := out.writer.Flush(); err != nil {
			errs = append(errs, fmt.Errorf("failed to flush %s: %w", out.file.Name(), err))
		}
		if err := out.file.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close %s: %w", out.file.Name(), err))
		}
	}
	b.files = make(map[string]*outputFile)
	b.order = nil
	return errors.Join(errs...)
}
