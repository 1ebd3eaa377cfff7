package stats

import (
	"maps"
	"slices"
	"sort"

	"github.com/nao1215/parasort/internal/model"
)

// Aggregator builds a model.RunSummary from per-URL categorizations.
type Aggregator struct {
	total         int
	uncategorized int
	domains       map[string]*domainStats
}

type domainStats struct {
	urls          int
	uncategorized int
	categories    map[string]*categoryStats
}

type categoryStats struct {
	urls   int
	params map[string]struct{}
}

// NewAggregator creates an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{domains: make(map[string]*domainStats)}
}

// Record adds one categorized URL routed to domain.
// A URL matching two categories counts once in each of them.
func (a *Aggregator) Record(domain string, c model.Categorization) {
	a.total++

	d, ok := a.domains[domain]
	if !ok {
		d = &domainStats{categories: make(map[string]*categoryStats)}
		a.domains[domain] = d
	}
	d.urls++

	if c.Uncategorized() {
		a.uncategorized++
		d.uncategorized++
		return
	}

	for _, category := range c.Categories {
		cs, ok := d.categories[category]
		if !ok {
			cs = &categoryStats{params: make(map[string]struct{})}
			d.categories[category] = cs
		}
		cs.urls++
		for _, p := range c.Parameters[category] {
			cs.params[p] = struct{}{}
		}
	}
}

// Total returns the number of recorded URLs.
func (a *Aggregator) Total() int {
	return a.total
}

// Summary returns the figures recorded so far.
// Global category figures are the sums and unions of the domain figures,
// sorted by descending URL count and then by name. Domains and the
// categories within a domain are sorted by name.
// Only the statistics fields are set; the caller fills in run metadata.
func (a *Aggregator) Summary() *model.RunSummary {
	summary := &model.RunSummary{
		TotalURLs:     a.total,
		Uncategorized: a.uncategorized,
		Categories:    []model.CategorySummary{},
		Domains:       make([]model.DomainSummary, 0, len(a.domains)),
	}

	globalCounts := make(map[string]int)
	globalParams := make(map[string]map[string]struct{})

	for _, name := range slices.Sorted(maps.Keys(a.domains)) {
		d := a.domains[name]
		ds := model.DomainSummary{
			Domain:        name,
			URLs:          d.urls,
			Uncategorized: d.uncategorized,
			Categories:    make([]model.CategorySummary, 0, len(d.categories)),
		}

		for _, category := range slices.Sorted(maps.Keys(d.categories)) {
			cs := d.categories[category]
			ds.Categories = append(ds.Categories, model.CategorySummary{
				Name:       category,
				URLs:       cs.urls,
				Parameters: slices.Sorted(maps.Keys(cs.params)),
			})

			globalCounts[category] += cs.urls
			if globalParams[category] == nil {
				globalParams[category] = make(map[string]struct{})
			}
			maps.Copy(globalParams[category], cs.params)
		}
		summary.Domains = append(summary.Domains, ds)
	}

	for category, count := range globalCounts {
		summary.Categories = append(summary.Categories, model.CategorySummary{
			Name:       category,
			URLs:       count,
			Parameters: slices.Sorted(maps.Keys(globalParams[category])),
		})
	}
	sort.Slice(summary.Categories, func(i, j int) bool {
		ci, cj := summary.Categories[i], summary.Categories[j]
		if ci.URLs != cj.URLs {
			return ci.URLs > cj.URLs
		}
		return ci.Name < cj.Name
	})

	return summary
}
