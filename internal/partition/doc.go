// Package partition routes URLs into per-domain, per-category output files.
//
// Output layout under the output directory:
//
//	<domain>/<category>-urls.txt     one per matched category
//	<domain>/custom-params-urls.txt  when custom parameters matched
//	<domain>/uncategorized-urls.txt  URLs that matched nothing
//
// Files are created lazily, only for categories that were observed, and
// each line is written in input order without deduplication.
//
// Design decision: A run has two phases. The first groups the input by
// domain in memory; the second writes one domain at a time and closes all
// of its files before the next domain starts. Input is not guaranteed to be
// sorted by domain, so writing while reading would keep a file open for
// every (domain, category) pair seen so far. Grouping first bounds the open
// files to the categories of one domain, and every file is opened and
// closed exactly once.
package partition
