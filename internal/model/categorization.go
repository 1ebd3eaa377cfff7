package model

// Categorization is the result of matching one URL against the selected
// categories. It is produced per URL and consumed immediately by the
// partitioner and the statistics aggregator.
type Categorization struct {
	// URL is the line persisted for this URL. It is the input line, or the
	// input line with query values cleared when value clearing is enabled.
	URL string

	// Categories lists the matched categories. The custom pseudo category
	// comes first when present, followed by wordlist order.
	// An empty slice means the URL is uncategorized.
	Categories []string

	// Parameters maps each matched category to the parameter names of this
	// URL that triggered the match.
	Parameters map[string][]string
}

// Uncategorized reports whether no category matched.
func (c Categorization) Uncategorized() bool {
	return len(c.Categories) == 0
}
