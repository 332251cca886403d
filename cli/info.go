package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Summarise the loaded graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.loadGraph(cmd.Context())
			if err != nil {
				return err
			}

			info := g.Info()
			fmt.Fprintf(c.out, "nodes:  %d\n", info.Nodes)
			fmt.Fprintf(c.out, "edges:  %d\n", info.Edges)
			fmt.Fprintf(c.out, "bounds: N %.6f  S %.6f  E %.6f  W %.6f\n",
				info.Bounds.North, info.Bounds.South, info.Bounds.East, info.Bounds.West)
			return nil
		},
	}
}
