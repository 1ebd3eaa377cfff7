package model

import "time"

// UncategorizedName is the label used for URLs that matched no category.
// It is also the prefix of the uncategorized output file.
const UncategorizedName = "uncategorized"

// CustomParamsName is the label of the pseudo category for parameters that
// match the user supplied custom list.
const CustomParamsName = "custom-params"

// RunSummary aggregates the statistics of a whole run.
// It is built incrementally while URLs are partitioned and handed to the
// report writers once the run is finalized.
type RunSummary struct {
	// TotalURLs is the number of URLs processed.
	TotalURLs int `json:"total_urls"`

	// Uncategorized is the number of URLs that matched no category.
	Uncategorized int `json:"uncategorized"`

	// Categories holds the global per-category figures, sorted by
	// descending URL count and then by name.
	Categories []CategorySummary `json:"categories"`

	// Domains holds the per-domain figures, sorted by domain name.
	Domains []DomainSummary `json:"domains"`

	// OutputDir is the directory the run wrote to.
	OutputDir string `json:"output_dir"`

	// StartedAt and FinishedAt bound the run.
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// DomainSummary holds the figures of one domain bucket.
type DomainSummary struct {
	// Domain is the bucket name, which is also the output folder name.
	Domain string `json:"domain"`

	// URLs is the number of URLs routed to this domain.
	URLs int `json:"urls"`

	// Uncategorized is the number of URLs of this domain that matched nothing.
	Uncategorized int `json:"uncategorized"`

	// Categories holds the per-category figures, sorted by name.
	Categories []CategorySummary `json:"categories"`
}

// CategorySummary holds the URL count and the triggering parameter names
// of one category.
type CategorySummary struct {
	// Name is the category name.
	Name string `json:"name"`

	// URLs counts URLs that matched the category. A URL matching two
	// categories is counted once in each.
	URLs int `json:"urls"`

	// Parameters is the sorted union of parameter names that triggered
	// a match for this category.
	Parameters []string `json:"parameters"`
}

// DomainCount returns the number of distinct domains seen in the run.
func (s *RunSummary) DomainCount() int {
	return len(s.Domains)
}

// HasCategorized reports whether at least one URL matched a category.
func (s *RunSummary) HasCategorized() bool {
	return len(s.Categories) > 0
}

// Category returns the global figures of the named category.
func (s *RunSummary) Category(name string) (CategorySummary, bool) {
	return findCategory(s.Categories, name)
}

// Domain returns the figures of the named domain.
func (s *RunSummary) Domain(name string) (DomainSummary, bool) {
	for _, d := range s.Domains {
		if d.Domain == name {
			return d, true
		}
	}
	return DomainSummary{}, false
}

// Category returns the figures of the named category within the domain.
func (d DomainSummary) Category(name string) (CategorySummary, bool) {
	return findCategory(d.Categories, name)
}

func findCategory(categories []CategorySummary, name string) (CategorySummary, bool) {
	for _, c := range categories {
		if c.Name == name {
			return c, true
		}
	}
	return CategorySummary{}, false
}
