// Package edgelist parses whitespace-delimited edge-list files.
//
// An edge list is a plain-text graph format with one edge per line, each
// line holding exactly two whitespace-separated node identifiers:
//
//	0 1
//	1 2
//	0 2
//
// Lines with any other token count (blank lines included) are skipped
// without failing the run. Identifiers are kept as strings verbatim, so
// IDs like "007" or "node-a" survive the round trip unchanged.
package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Edge is an ordered pair of node identifiers taken from one input line.
type Edge struct {
	Source string
	Target string
}

// Stats summarizes a single parse run.
type Stats struct {
	Lines   int // total lines read
	Edges   int // well-formed lines that produced an edge
	Skipped int // lines with a token count other than two
}

// Parse reads edges from r, one per line, in input order.
// Duplicate edges are preserved; only malformed lines are dropped.
func Parse(r io.Reader) ([]Edge, Stats, error) {
	var (
		edges []Edge
		stats Stats
	)

	scanner := bufio.NewScanner(r)
	// SNAP datasets can carry long lines; the default 64K token limit is
	// raised so a single oversized line does not abort the scan.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		stats.Lines++
		fields := strings.Fields(strings.TrimSpace(scanner.Text()))
		if len(fields) != 2 {
			stats.Skipped++
			continue
		}
		edges = append(edges, Edge{Source: fields[0], Target: fields[1]})
		stats.Edges++
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("scan: %w", err)
	}

	return edges, stats, nil
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) ([]Edge, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}
