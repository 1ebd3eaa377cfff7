package urlparse

import (
	"net"
	"net/url"
	"strings"

	"github.com/nao1215/parasort/internal/model"
	"golang.org/x/net/publicsuffix"
)

// UnknownDomain is the bucket for URLs without a usable host.
const UnknownDomain = "unknown_domain"

// Param is one query parameter occurrence.
type Param struct {
	// Name is the query-unescaped key. It falls back to the key as written
	// when the key cannot be unescaped.
	Name string

	// Value is the query-unescaped value, or the raw value when it cannot
	// be unescaped. It is empty for keys without '='.
	Value string
}

// ParsedURL is a transient view of one raw URL line.
type ParsedURL struct {
	// Domain is the lowercased host without port, or UnknownDomain.
	Domain string

	// Path is the URL path.
	Path string

	// Params lists every query parameter occurrence in order,
	// duplicates included.
	Params []Param
}

// Values groups the parameter values by name. A name that appears several
// times has several values.
func (p ParsedURL) Values() map[string][]string {
	values := make(map[string][]string, len(p.Params))
	for _, param := range p.Params {
		values[param.Name] = append(values[param.Name], param.Value)
	}
	return values
}

// Names returns the distinct parameter names in order of first appearance.
func (p ParsedURL) Names() []string {
	seen := make(map[string]bool, len(p.Params))
	names := make([]string, 0, len(p.Params))
	for _, param := range p.Params {
		if seen[param.Name] {
			continue
		}
		seen[param.Name] = true
		names = append(names, param.Name)
	}
	return names
}

// Parse parses a raw URL line.
// A line that url.Parse rejects yields UnknownDomain and no parameters.
func Parse(raw string) ParsedURL {
	u, err := url.Parse(raw)
	if err != nil {
		return ParsedURL{Domain: UnknownDomain}
	}
	return ParsedURL{
		Domain: domainOf(u),
		Path:   u.Path,
		Params: splitQuery(u.RawQuery),
	}
}

// ParamNames returns the distinct query parameter names of a raw URL line
// in order of first appearance. It returns no names when the line cannot
// be parsed or has no query.
func ParamNames(raw string) []string {
	return Parse(raw).Names()
}

// ClearValues returns raw with every query value emptied.
// Keys keep their original spelling, order, and multiplicity, and the
// rest of the line, fragment included, is left untouched:
//
//	http://a.com/x?id=5&q=hi#top  ->  http://a.com/x?id=&q=#top
//
// Lines that cannot be parsed or carry no query are returned unchanged.
func ClearValues(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.RawQuery == "" {
		return raw
	}

	// url.Parse cuts the fragment at the first '#' and then the query at
	// the first '?', so the same cuts locate RawQuery inside raw.
	beforeFragment, fragment, hasFragment := strings.Cut(raw, "#")
	base, query, ok := strings.Cut(beforeFragment, "?")
	if !ok || query != u.RawQuery {
		return raw
	}

	var b strings.Builder
	b.Grow(len(raw))
	b.WriteString(base)
	b.WriteByte('?')
	first := true
	for _, segment := range strings.Split(query, "&") {
		key, _, _ := strings.Cut(segment, "=")
		if key == "" {
			continue
		}
		if !first {
			b.WriteByte('&')
		}
		first = false
		b.WriteString(key)
		b.WriteByte('=')
	}
	if hasFragment {
		b.WriteByte('#')
		b.WriteString(fragment)
	}
	return b.String()
}

// RootDomain returns the registrable domain (eTLD+1) of a domain bucket,
// such as example.co.uk for api.shop.example.co.uk. IP literals,
// UnknownDomain, hosts that have no registrable part, and hosts whose
// registrable domain clashes with a top-level output file are returned
// unchanged.
func RootDomain(domain string) string {
	if domain == UnknownDomain || net.ParseIP(domain) != nil {
		return domain
	}
	root, err := publicsuffix.EffectiveTLDPlusOne(domain)
	if err != nil || model.IsTopLevelFileName(root) {
		return domain
	}
	return root
}

// domainOf extracts the bucket name from a parsed URL.
// The name becomes a directory under the output directory, so names that
// would resolve outside of it, or that clash with the files written next to
// the domain directories, are mapped to UnknownDomain.
func domainOf(u *url.URL) string {
	host := strings.ToLower(u.Hostname())
	switch {
	case host == "", host == ".", host == "..":
		return UnknownDomain
	case strings.ContainsAny(host, `/\`):
		return UnknownDomain
	case model.IsTopLevelFileName(host):
		return UnknownDomain
	}
	return host
}

// splitQuery splits a raw query on '&'.
//
// Design decision: We do not use url.ParseQuery. It rejects keys containing
// ';', which drops exactly the "amp;id" keys produced by double-encoded
// "&amp;" that normalization is meant to repair, and it loses the order of
// keys.
func splitQuery(rawQuery string) []Param {
	if rawQuery == "" {
		return nil
	}

	var params []Param
	for _, segment := range strings.Split(rawQuery, "&") {
		if segment == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(segment, "=")
		name := unescape(rawKey)
		if strings.TrimSpace(name) == "" {
			continue
		}
		params = append(params, Param{
			Name:  name,
			Value: unescape(rawValue),
		})
	}
	return params
}

// unescape query-unescapes s, returning s itself when it is malformed.
func unescape(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
