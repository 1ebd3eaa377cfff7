// Package param canonicalizes query parameter names and matches them
// against vulnerability category wordlists.
//
// Matching is pure equality on normalized names: "id" matches only the
// wordlist entry "id", never "user_id" or "valid". A single parameter may
// belong to several categories at once, and a user supplied custom list
// adds the pseudo category "custom-params" without suppressing the
// regular categories.
//
// Design decision: static wordlist entries are normalized once when the
// Matcher is built and kept in an index keyed by the normalized name.
// A lookup is then a single map access per parameter, which keeps the
// per-URL cost independent of wordlist size.
package param
