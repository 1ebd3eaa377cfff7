// Package main provides the entry point for the parasort CLI.
//
// Parasort sorts a list of URLs into per-domain, per-category files
// according to the query parameters each URL carries, so that testers can
// feed e.g. every URL with an id-like parameter to an SQL injection tool.
//
// Usage:
//
//	parasort -i urls.txt
//	cat urls.txt | parasort --vuln sqli,xss
//
// See --help for all available options.
package main

// main is the entry point for parasort.
func main() {
	Execute()
}
