package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ParseCustomParams splits inline custom parameter arguments.
// Each argument may hold several names separated by commas and/or
// whitespace, so "id,user cmd" and the three separate arguments
// "id" "user" "cmd" give the same result. Empty names are dropped and the
// first occurrence order is kept.
func ParseCustomParams(args []string) []string {
	return splitList(args)
}

// ParseCategories splits --vuln arguments the same way as
// ParseCustomParams, so "sqli,xss" and "sqli xss" select the same
// categories.
func ParseCategories(args []string) []string {
	return splitList(args)
}

// splitList splits every argument on commas and whitespace, dropping empty
// and repeated names.
func splitList(args []string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, arg := range args {
		fields := strings.FieldsFunc(arg, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
		for _, f := range fields {
			if seen[f] {
				continue
			}
			seen[f] = true
			names = append(names, f)
		}
	}
	return names
}

// LoadCustomParamsFile reads one custom parameter name per line.
// Blank lines and lines starting with '#' are ignored.
// Any read error is wrapped in ErrCustomParamsFile.
func LoadCustomParamsFile(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided path is intentional
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCustomParamsFile, err)
	}
	defer f.Close()

	params := make([]string, 0)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		params = append(params, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCustomParamsFile, err)
	}
	return params, nil
}
