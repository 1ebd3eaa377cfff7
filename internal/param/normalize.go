package param

import (
	"net/url"
	"strings"

	"golang.org/x/text/cases"
)

// ampArtifact is left behind when "&amp;" was encoded twice in a crawled URL
// and the query string is split on '&'.
const ampArtifact = "amp;"

// Normalize returns the canonical form of a raw parameter name.
// It percent-decodes the name, removes "amp;" artifacts, applies Unicode
// case folding, and trims surrounding whitespace. The steps are repeated
// until the value stops changing, so Normalize(Normalize(x)) == Normalize(x)
// holds for every input, including names that were encoded more than once.
//
// Normalize never fails. A name that cannot be percent-decoded is used as is.
func Normalize(name string) string {
	folder := cases.Fold()
	current := name
	for {
		next := normalizeOnce(folder, current)
		if next == current {
			return current
		}
		current = next
	}
}

// normalizeOnce applies a single round of the normalization steps.
func normalizeOnce(folder cases.Caser, s string) string {
	if decoded, err := url.PathUnescape(s); err == nil {
		s = decoded
	}
	s = strings.ReplaceAll(s, ampArtifact, "")
	s = folder.String(s)
	return strings.TrimSpace(s)
}
