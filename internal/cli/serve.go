package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	apperrors "github.com/edgeviz/edgeviz/pkg/errors"
	"github.com/edgeviz/edgeviz/pkg/graph"
)

// defaultAddr is the default listen address for the serve command.
// Loopback only: the viewer is a local tool, not a deployable service.
const defaultAddr = "127.0.0.1:8477"

// serveCommand creates the serve command, a local viewer for a graph
// document. It hosts a D3 force-layout page at / that fetches the
// document from /graph.json.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve <graph.json>",
		Short: "Serve an interactive force-layout viewer for a graph document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), args[0], addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")

	return cmd
}

// runServe loads the document once and serves it until the context is
// cancelled (Ctrl-C).
func (c *CLI) runServe(ctx context.Context, input, addr string) error {
	doc, err := graph.ReadFile(input)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidGraph, err, "load graph %s", input)
	}
	docData, err := graph.Marshal(doc)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           c.viewerRouter(docData),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	c.Logger.Infof("Serving %d nodes and %d links", doc.NodeCount(), doc.LinkCount())
	printInfo("Viewer running at http://%s (Ctrl-C to stop)", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// viewerRouter builds the HTTP routes for the viewer.
func (c *CLI) viewerRouter(docData []byte) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(c.requestLogger)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(viewerPage))
	})
	r.Get("/graph.json", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write(docData)
	})

	return r
}

// requestLogger logs each request at debug level.
func (c *CLI) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, req)
		c.Logger.Debug("request",
			"method", req.Method,
			"path", req.URL.Path,
			"duration", time.Since(start).Round(time.Microsecond))
	})
}

// viewerPage is the embedded D3 force-layout viewer. It fetches the graph
// document from /graph.json, so the page itself is static.
const viewerPage = `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8">
    <title>edgeviz</title>
    <style>
        * { margin: 0; }
        svg { width: 100vw; height: 100vh; }
        .link { stroke: #999; stroke-opacity: 0.6; }
        .node { stroke: #fff; stroke-width: 1.5px; }
        .label { font: 10px sans-serif; pointer-events: none; }
    </style>
    <script src="https://cdn.jsdelivr.net/npm/d3@7"></script>
  </head>
  <body>
    <svg></svg>
    <script>
fetch("/graph.json").then(r => r.json()).then(graph => {
    const svg = d3.select("svg");
    const width = window.innerWidth;
    const height = window.innerHeight;

    const simulation = d3.forceSimulation(graph.nodes)
        .force("link", d3.forceLink(graph.links).id(d => d.id).distance(40))
        .force("charge", d3.forceManyBody().strength(-80))
        .force("center", d3.forceCenter(width / 2, height / 2));

    const link = svg.append("g").selectAll("line")
        .data(graph.links).join("line").attr("class", "link");

    const node = svg.append("g").selectAll("circle")
        .data(graph.nodes).join("circle")
        .attr("class", "node").attr("r", 5).attr("fill", "#4682b4")
        .call(d3.drag()
            .on("start", (event, d) => {
                if (!event.active) simulation.alphaTarget(0.3).restart();
                d.fx = d.x; d.fy = d.y;
            })
            .on("drag", (event, d) => { d.fx = event.x; d.fy = event.y; })
            .on("end", (event, d) => {
                if (!event.active) simulation.alphaTarget(0);
                d.fx = null; d.fy = null;
            }));

    node.append("title").text(d => d.id);

    simulation.on("tick", () => {
        link.attr("x1", d => d.source.x).attr("y1", d => d.source.y)
            .attr("x2", d => d.target.x).attr("y2", d => d.target.y);
        node.attr("cx", d => d.x).attr("cy", d => d.y);
    });
});
    </script>
  </body>
</html>
`
