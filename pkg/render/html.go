package render

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/edgeviz/edgeviz/pkg/graph"
)

// HTML renders a graph document as a self-contained HTML page with an
// interactive force-directed chart. The page can be opened directly in a
// browser, no server required.
func HTML(d graph.Document, title string) ([]byte, error) {
	nodes := make([]opts.GraphNode, len(d.Nodes))
	for i, n := range d.Nodes {
		nodes[i] = opts.GraphNode{Name: n.ID}
	}

	links := make([]opts.GraphLink, len(d.Links))
	for i, l := range d.Links {
		links[i] = opts.GraphLink{Source: l.Source, Target: l.Target}
	}

	page := components.NewPage()
	page.AddCharts(forceGraph(nodes, links, title))

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}

func forceGraph(nodes []opts.GraphNode, links []opts.GraphLink, title string) *charts.Graph {
	g := charts.NewGraph()
	g.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Height:    "100vh",
			Width:     "100vw",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
	)
	g.AddSeries(
		"graph",
		nodes,
		links,
		charts.WithGraphChartOpts(
			opts.GraphChart{
				Draggable: opts.Bool(true),
				Roam:      opts.Bool(true),
				Force:     &opts.GraphForce{Repulsion: 400},
			},
		),
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Color:    "black",
			Position: "top",
		}),
	)
	return g
}
