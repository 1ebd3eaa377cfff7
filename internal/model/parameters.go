package model

// ParameterIndex is the result of parameter extraction: every distinct
// query parameter name seen per domain and across all domains,
// independent of category matching.
type ParameterIndex struct {
	// Domains maps a domain to its sorted parameter names.
	// Domains without any parameter are absent.
	Domains map[string][]string `json:"domains"`

	// Global is the sorted union of all domains' parameter names.
	Global []string `json:"global"`

	// DomainCount is the number of distinct domains observed, including
	// domains whose URLs carried no parameters.
	DomainCount int `json:"domain_count"`
}
