package render

import (
	"strings"
	"testing"

	"github.com/edgeviz/edgeviz/pkg/edgelist"
	"github.com/edgeviz/edgeviz/pkg/graph"
)

func TestHTML(t *testing.T) {
	doc := graph.Build([]edgelist.Edge{
		{Source: "alpha", Target: "beta"},
	})

	data, err := HTML(doc, "test graph")
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}

	page := string(data)
	for _, want := range []string{"<html", "test graph", "alpha", "beta"} {
		if !strings.Contains(page, want) {
			t.Errorf("missing %q in rendered page", want)
		}
	}
}

func TestHTMLEmptyGraph(t *testing.T) {
	data, err := HTML(graph.Build(nil), "empty")
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	if len(data) == 0 {
		t.Error("HTML() produced no output for empty graph")
	}
}
