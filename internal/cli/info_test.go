package cli

import (
	"path/filepath"
	"testing"

	"github.com/edgeviz/edgeviz/pkg/edgelist"
	"github.com/edgeviz/edgeviz/pkg/graph"
)

func TestTopDegrees(t *testing.T) {
	doc := graph.Build([]edgelist.Edge{
		{Source: "hub", Target: "a"},
		{Source: "hub", Target: "b"},
		{Source: "hub", Target: "c"},
		{Source: "a", Target: "b"},
	})

	top := topDegrees(&doc, 2)
	if len(top) != 2 {
		t.Fatalf("len(top) = %d, want 2", len(top))
	}
	if top[0].id != "hub" || top[0].degree != 3 {
		t.Errorf("top[0] = %v, want hub/3", top[0])
	}
	// a and b both have degree 2; the tie breaks lexicographically.
	if top[1].id != "a" || top[1].degree != 2 {
		t.Errorf("top[1] = %v, want a/2", top[1])
	}
}

func TestTopDegreesFewerThanN(t *testing.T) {
	doc := graph.Build([]edgelist.Edge{{Source: "x", Target: "y"}})
	if got := topDegrees(&doc, 5); len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestRunInfoInvalidGraph(t *testing.T) {
	if err := runInfo(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("runInfo() expected error for missing file")
	}
}
