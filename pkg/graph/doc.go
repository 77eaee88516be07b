// Package graph defines the JSON graph document produced by edgeviz.
//
// A Document holds two arrays: nodes (distinct identifiers, sorted
// lexicographically) and links (source/target pairs in input order).
// Build constructs a Document from a parsed edge list; Marshal, Write,
// and WriteFile serialize it; Read and ReadFile load it back.
package graph
