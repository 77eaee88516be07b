package graph_test

import (
	"os"

	"github.com/edgeviz/edgeviz/pkg/edgelist"
	"github.com/edgeviz/edgeviz/pkg/graph"
)

func ExampleBuild() {
	edges := []edgelist.Edge{
		{Source: "b", Target: "a"},
	}

	doc := graph.Build(edges)
	_ = graph.Write(doc, os.Stdout)

	// Output:
	// {
	//   "nodes": [
	//     {
	//       "id": "a"
	//     },
	//     {
	//       "id": "b"
	//     }
	//   ],
	//   "links": [
	//     {
	//       "source": "b",
	//       "target": "a"
	//     }
	//   ]
	// }
}
