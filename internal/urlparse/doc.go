// Package urlparse turns raw URL lines into the pieces the sorter needs:
// the domain bucket, the query parameter names, and the value-cleared form
// of the URL.
//
// Every function here fails soft. A line that cannot be parsed yields the
// UnknownDomain bucket and no parameters, and ClearValues returns such a
// line unchanged, so a single bad line never stops a run.
package urlparse
