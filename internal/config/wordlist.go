package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/nao1215/parasort/internal/model"
	"gopkg.in/yaml.v3"
)

// reservedCategories cannot be used as wordlist categories.
var reservedCategories = []string{
	model.UncategorizedName,
	model.CustomParamsName,
	AllCategories,
}

// Wordlist maps category names to parameter names.
// Category order is preserved as loaded, which is the order used when
// categories are listed or matched.
//
// A Wordlist is immutable once built. Accessors return copies, so callers
// may share one Wordlist between the matcher and the reporters.
type Wordlist struct {
	order  []string
	params map[string][]string
}

// NewWordlist creates an empty Wordlist.
func NewWordlist() *Wordlist {
	return &Wordlist{params: make(map[string][]string)}
}

// add appends a category. It is only used while building a Wordlist.
func (w *Wordlist) add(name string, params []string) error {
	name = strings.TrimSpace(name)
	if err := validateCategoryName(name); err != nil {
		return err
	}
	if _, ok := w.params[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateCategory, name)
	}

	cleaned := make([]string, 0, len(params))
	for _, p := range params {
		if p = strings.TrimSpace(p); p != "" {
			cleaned = append(cleaned, p)
		}
	}
	if len(cleaned) == 0 {
		return fmt.Errorf("%w: %q", ErrEmptyCategory, name)
	}

	w.order = append(w.order, name)
	w.params[name] = cleaned
	return nil
}

// validateCategoryName checks that a category name can be used as the
// prefix of a file inside a domain directory.
func validateCategoryName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: category name must not be empty", ErrInvalidWordlist)
	case name == "." || name == "..":
		return fmt.Errorf("%w: category name %q is not allowed", ErrInvalidWordlist, name)
	case strings.ContainsAny(name, `/\`+"\x00"):
		return fmt.Errorf("%w: category name %q must not contain path separators", ErrInvalidWordlist, name)
	case slices.Contains(reservedCategories, strings.ToLower(name)):
		return fmt.Errorf("%w: %w: %q", ErrInvalidWordlist, ErrReservedCategory, name)
	}
	return nil
}

// Categories returns the category names in order.
func (w *Wordlist) Categories() []string {
	return slices.Clone(w.order)
}

// Params returns the parameter names of a category.
func (w *Wordlist) Params(category string) ([]string, bool) {
	params, ok := w.params[category]
	return slices.Clone(params), ok
}

// Has reports whether the category exists.
func (w *Wordlist) Has(category string) bool {
	_, ok := w.params[category]
	return ok
}

// Len returns the number of categories.
func (w *Wordlist) Len() int {
	return len(w.order)
}

// MarshalJSON writes the wordlist as a JSON object with categories in order.
func (w *Wordlist) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range w.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(w.params[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ParseWordlist parses a wordlist document.
// The document is a mapping from category name to a list of parameter
// names. JSON is accepted since it is a subset of YAML; YAML files work too.
//
// Design decision: We decode into a yaml.Node instead of a Go map because
// maps lose the category order, and the order written by the user is the
// order shown by the category listing. Duplicate category names are not
// rejected by the node decoder, so add() checks them.
func ParseWordlist(data []byte) (*Wordlist, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWordlist, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: document is empty", ErrInvalidWordlist)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must map category names to parameter lists", ErrInvalidWordlist)
	}
	if len(root.Content) == 0 {
		return nil, fmt.Errorf("%w: no categories defined", ErrInvalidWordlist)
	}

	w := NewWordlist()
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: category name must be a string", ErrInvalidWordlist, keyNode.Line)
		}

		var params []string
		if err := valueNode.Decode(&params); err != nil {
			return nil, fmt.Errorf("%w: category %q: parameters must be a list of strings", ErrInvalidWordlist, keyNode.Value)
		}
		if err := w.add(keyNode.Value, params); err != nil {
			return nil, err
		}
	}
	return w, nil
}
