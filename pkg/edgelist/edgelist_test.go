package edgelist

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantEdges   []Edge
		wantSkipped int
	}{
		{
			name:  "Simple",
			input: "1 2\n2 3\n1 3\n",
			wantEdges: []Edge{
				{Source: "1", Target: "2"},
				{Source: "2", Target: "3"},
				{Source: "1", Target: "3"},
			},
		},
		{
			name:      "Empty",
			input:     "",
			wantEdges: nil,
		},
		{
			name:  "SkipsMalformedLines",
			input: "1 2\n\n5\na b c\n3 4\n",
			wantEdges: []Edge{
				{Source: "1", Target: "2"},
				{Source: "3", Target: "4"},
			},
			wantSkipped: 3,
		},
		{
			name:  "DuplicateEdgesPreserved",
			input: "1 2\n1 2\n",
			wantEdges: []Edge{
				{Source: "1", Target: "2"},
				{Source: "1", Target: "2"},
			},
		},
		{
			name:  "ArbitraryWhitespaceRuns",
			input: "  1\t\t2  \n3   4\n",
			wantEdges: []Edge{
				{Source: "1", Target: "2"},
				{Source: "3", Target: "4"},
			},
		},
		{
			name:  "LeadingZerosPreserved",
			input: "007 008\n",
			wantEdges: []Edge{
				{Source: "007", Target: "008"},
			},
		},
		{
			name:        "OnlyMalformed",
			input:       "one\ntwo three four\n",
			wantEdges:   nil,
			wantSkipped: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edges, stats, err := Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if len(edges) != len(tt.wantEdges) {
				t.Fatalf("len(edges) = %d, want %d", len(edges), len(tt.wantEdges))
			}
			for i, e := range edges {
				if e != tt.wantEdges[i] {
					t.Errorf("edges[%d] = %v, want %v", i, e, tt.wantEdges[i])
				}
			}
			if stats.Skipped != tt.wantSkipped {
				t.Errorf("stats.Skipped = %d, want %d", stats.Skipped, tt.wantSkipped)
			}
			if stats.Edges != len(tt.wantEdges) {
				t.Errorf("stats.Edges = %d, want %d", stats.Edges, len(tt.wantEdges))
			}
		})
	}
}

func TestParseFileMissing(t *testing.T) {
	_, _, err := ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("ParseFile() expected error for missing file")
	}
}

func TestParseFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edges.txt")
	writeFile(t, path, "a b\nb c\n")

	edges, stats, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if len(edges) != 2 || stats.Lines != 2 {
		t.Errorf("got %d edges over %d lines, want 2 over 2", len(edges), stats.Lines)
	}
}
