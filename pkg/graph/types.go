package graph

import (
	"slices"

	"github.com/edgeviz/edgeviz/pkg/edgelist"
)

// =============================================================================
// Document - Graph Serialization Format
// =============================================================================

// Document is the canonical serialization format for converted graphs.
// It matches the nodes/links shape consumed by force-layout front ends
// such as D3 and is designed for deterministic output: the same input
// always serializes to the same bytes.
type Document struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// Node holds a single distinct node identifier.
type Node struct {
	ID string `json:"id"`
}

// Link mirrors one input edge in original input order.
type Link struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// NodeCount returns the number of distinct nodes in the document.
func (d *Document) NodeCount() int { return len(d.Nodes) }

// LinkCount returns the number of links in the document.
func (d *Document) LinkCount() int { return len(d.Links) }

// Degrees returns the total degree (in + out) of every node in the
// document. Nodes without links are present with degree zero.
func (d *Document) Degrees() map[string]int {
	degrees := make(map[string]int, len(d.Nodes))
	for _, n := range d.Nodes {
		degrees[n.ID] = 0
	}
	for _, l := range d.Links {
		degrees[l.Source]++
		degrees[l.Target]++
	}
	return degrees
}

// =============================================================================
// Building from Edge Lists
// =============================================================================

// Build converts parsed edges into a Document.
//
// The node set is deduplicated and sorted in ascending lexicographic order
// (string comparison, not numeric). Links keep their input order, duplicates
// included. Nodes and Links are never nil so an empty input still serializes
// to {"nodes": [], "links": []}.
func Build(edges []edgelist.Edge) Document {
	seen := make(map[string]struct{}, len(edges)*2)
	ids := make([]string, 0, len(edges)*2)
	links := make([]Link, 0, len(edges))

	for _, e := range edges {
		for _, id := range [2]string{e.Source, e.Target} {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
		links = append(links, Link{Source: e.Source, Target: e.Target})
	}

	slices.Sort(ids)

	nodes := make([]Node, len(ids))
	for i, id := range ids {
		nodes[i] = Node{ID: id}
	}

	return Document{Nodes: nodes, Links: links}
}
