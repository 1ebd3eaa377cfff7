package param

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/nao1215/parasort/internal/config"
	"github.com/nao1215/parasort/internal/model"
)

// CustomCategory is the pseudo category reported for parameters that match
// the user supplied custom list.
const CustomCategory = model.CustomParamsName

// ErrUnknownCategory is returned when a requested category is not present
// in the wordlist.
var ErrUnknownCategory = errors.New("unknown category")

// Matcher decides which categories a parameter name belongs to.
// It is immutable after construction and safe to share.
type Matcher struct {
	// categories holds the selected categories in wordlist order.
	categories []string

	// index maps a normalized parameter name to the selected categories
	// whose wordlist contains it.
	index map[string][]string

	// custom holds the normalized custom parameter names.
	// A nil map means no custom list was supplied.
	custom map[string]struct{}
}

// NewMatcher builds a Matcher for the given categories of the wordlist.
// An empty categories slice selects every category in the wordlist.
// The custom slice may be nil; when it is non-nil its entries are matched
// in addition to the categories and reported as CustomCategory.
func NewMatcher(wordlist *config.Wordlist, categories []string, custom []string) (*Matcher, error) {
	selected, err := selectCategories(wordlist, categories)
	if err != nil {
		return nil, err
	}

	m := &Matcher{
		categories: selected,
		index:      make(map[string][]string),
	}

	for _, category := range selected {
		params, _ := wordlist.Params(category)
		for _, p := range params {
			n := Normalize(p)
			if n == "" || slices.Contains(m.index[n], category) {
				continue
			}
			m.index[n] = append(m.index[n], category)
		}
	}

	if custom != nil {
		m.custom = make(map[string]struct{}, len(custom))
		for _, p := range custom {
			if n := Normalize(p); n != "" {
				m.custom[n] = struct{}{}
			}
		}
	}

	return m, nil
}

// selectCategories resolves the requested categories against the wordlist,
// keeping wordlist order and dropping duplicates.
func selectCategories(wordlist *config.Wordlist, requested []string) ([]string, error) {
	if len(requested) == 0 {
		return wordlist.Categories(), nil
	}

	want := make(map[string]bool, len(requested))
	for _, name := range requested {
		if !wordlist.Has(name) {
			return nil, fmt.Errorf("%w: %q (available: %s)",
				ErrUnknownCategory, name, strings.Join(wordlist.Categories(), ", "))
		}
		want[name] = true
	}

	selected := make([]string, 0, len(want))
	for _, name := range wordlist.Categories() {
		if want[name] {
			selected = append(selected, name)
		}
	}
	return selected, nil
}

// Categories returns the categories this Matcher tests against.
func (m *Matcher) Categories() []string {
	return slices.Clone(m.categories)
}

// HasCustom reports whether a custom parameter list takes part in matching.
func (m *Matcher) HasCustom() bool {
	return m.custom != nil
}

// Match returns the categories a single parameter name belongs to.
// CustomCategory comes first when present, followed by the vulnerability
// categories in wordlist order. The result is empty when nothing matches.
func (m *Matcher) Match(name string) []string {
	n := Normalize(name)
	if n == "" {
		return nil
	}

	var result []string
	if _, ok := m.custom[n]; ok {
		result = append(result, CustomCategory)
	}
	return append(result, m.index[n]...)
}

// Categorize matches every parameter name of one URL and returns the union
// of matched categories together with the names that triggered each one.
// line is the URL text that will be persisted for this URL.
func (m *Matcher) Categorize(line string, names []string) model.Categorization {
	result := model.Categorization{
		URL:        line,
		Parameters: make(map[string][]string),
	}

	for _, name := range names {
		for _, category := range m.Match(name) {
			if !slices.Contains(result.Parameters[category], name) {
				result.Parameters[category] = append(result.Parameters[category], name)
			}
		}
	}

	if _, ok := result.Parameters[CustomCategory]; ok {
		result.Categories = append(result.Categories, CustomCategory)
	}
	for _, category := range m.categories {
		if _, ok := result.Parameters[category]; ok {
			result.Categories = append(result.Categories, category)
		}
	}
	return result
}

// Entry is one raw wordlist entry.
type Entry struct {
	Category string
	Raw      string
}

// Collision describes distinct raw wordlist entries that normalize to the
// same name. The matcher cannot tell such entries apart.
type Collision struct {
	Normalized string
	Entries    []Entry
}

// FindCollisions lists the normalized names that are produced by more than
// one distinct raw spelling anywhere in the wordlist. The same spelling in
// several categories is not a collision; that is regular multi-category
// membership.
func FindCollisions(wordlist *config.Wordlist) []Collision {
	spellings := make(map[string]map[string]bool)
	entries := make(map[string][]Entry)

	for _, category := range wordlist.Categories() {
		params, _ := wordlist.Params(category)
		for _, raw := range params {
			n := Normalize(raw)
			if spellings[n] == nil {
				spellings[n] = make(map[string]bool)
			}
			spellings[n][raw] = true
			entries[n] = append(entries[n], Entry{Category: category, Raw: raw})
		}
	}

	var collisions []Collision
	for n, raws := range spellings {
		if len(raws) < 2 {
			continue
		}
		collisions = append(collisions, Collision{Normalized: n, Entries: entries[n]})
	}
	sort.Slice(collisions, func(i, j int) bool {
		return collisions[i].Normalized < collisions[j].Normalized
	})
	return collisions
}
