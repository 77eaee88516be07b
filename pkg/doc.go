// Package pkg provides the core libraries for edgeviz.
//
// # Overview
//
// Edgeviz converts edge-list text files into JSON graph documents for
// force-layout visualization front ends. The typical data flow:
//
//	edge-list file (one "source target" pair per line)
//	         ↓
//	    [edgelist] package (parse, skip malformed lines)
//	         ↓
//	    [graph] package (deduplicate + sort nodes, build document)
//	         ↓
//	    nodes/links JSON output
//
// # Main Packages
//
// [edgelist] - Edge-list parsing. Splits lines on whitespace runs,
// silently skipping lines without exactly two tokens.
//
// [graph] - The Document serialization format: a sorted, deduplicated
// nodes array and a links array preserving input order.
//
// [render] - Visual artifacts from documents: Graphviz DOT, SVG, and a
// self-contained HTML force-graph page.
//
// [config] - Optional TOML configuration for the convert paths.
//
// [cache] - Content-addressed file cache for rendered artifacts.
//
// [errors] - Coded errors distinguishing input, output, and format failures.
//
// [edgelist]: https://pkg.go.dev/github.com/edgeviz/edgeviz/pkg/edgelist
// [graph]: https://pkg.go.dev/github.com/edgeviz/edgeviz/pkg/graph
// [render]: https://pkg.go.dev/github.com/edgeviz/edgeviz/pkg/render
// [config]: https://pkg.go.dev/github.com/edgeviz/edgeviz/pkg/config
// [cache]: https://pkg.go.dev/github.com/edgeviz/edgeviz/pkg/cache
// [errors]: https://pkg.go.dev/github.com/edgeviz/edgeviz/pkg/errors
package pkg
