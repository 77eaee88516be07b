package cli

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/edgeviz/edgeviz/pkg/edgelist"
	"github.com/edgeviz/edgeviz/pkg/graph"
)

func TestViewerRouter(t *testing.T) {
	doc := graph.Build([]edgelist.Edge{
		{Source: "1", Target: "2"},
	})
	data, err := graph.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}

	c := newTestCLI()
	srv := httptest.NewServer(c.viewerRouter(data))
	defer srv.Close()

	t.Run("GraphJSON", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/graph.json")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
			t.Errorf("Content-Type = %q", ct)
		}

		var got graph.Document
		if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if got.NodeCount() != 2 || got.LinkCount() != 1 {
			t.Errorf("got %d/%d nodes/links, want 2/1", got.NodeCount(), got.LinkCount())
		}
	})

	t.Run("ViewerPage", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatal(err)
		}
		page := string(body)
		for _, want := range []string{"<svg>", "forceSimulation", "/graph.json"} {
			if !strings.Contains(page, want) {
				t.Errorf("viewer page missing %q", want)
			}
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/nope")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want 404", resp.StatusCode)
		}
	})
}
