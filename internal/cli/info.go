package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	apperrors "github.com/edgeviz/edgeviz/pkg/errors"
	"github.com/edgeviz/edgeviz/pkg/graph"
)

// topDegreeCount is how many high-degree nodes the info command lists.
const topDegreeCount = 5

// infoCommand creates the info command, a styled summary of a graph document.
func (c *CLI) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <graph.json>",
		Short: "Show a summary of a JSON graph document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}
}

func runInfo(path string) error {
	doc, err := graph.ReadFile(path)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidGraph, err, "load graph %s", path)
	}

	printKeyValue("File", path)
	printKeyValue("Nodes", StyleNumber.Render(fmt.Sprintf("%d", doc.NodeCount())))
	printKeyValue("Links", StyleNumber.Render(fmt.Sprintf("%d", doc.LinkCount())))

	top := topDegrees(&doc, topDegreeCount)
	if len(top) > 0 {
		printDetail("Highest-degree nodes:")
		for _, d := range top {
			printDetail("%s %s (%d)", iconArrow, d.id, d.degree)
		}
	}
	return nil
}

type nodeDegree struct {
	id     string
	degree int
}

// topDegrees returns the n highest-degree nodes, ties broken by node ID
// so the listing is deterministic.
func topDegrees(doc *graph.Document, n int) []nodeDegree {
	degrees := doc.Degrees()
	ranked := make([]nodeDegree, 0, len(degrees))
	for id, d := range degrees {
		ranked = append(ranked, nodeDegree{id: id, degree: d})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].degree != ranked[j].degree {
			return ranked[i].degree > ranked[j].degree
		}
		return ranked[i].id < ranked[j].id
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
