package cli

import (
	"github.com/spf13/cobra"

	"github.com/Cleawwy/Project-Omega/graph_generators"
	"github.com/Cleawwy/Project-Omega/logging"
)

func (c *CLI) convertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <input.json> [output.gob]",
		Short: "Convert a JSON road graph into a gob snapshot",
		Long:  `Convert reads either the indexed {"nodes", "neighbors"} dataset or an OSMnx node-link export and writes the gob snapshot that serve loads fastest.`,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			outputPath := graph_generators.DefaultOutputPath(inputPath)
			if len(args) > 1 {
				outputPath = args[1]
			}

			stats, err := graph_generators.ConvertJSONToGob(inputPath, outputPath)
			if err != nil {
				return err
			}

			logging.FromContext(cmd.Context()).Infof("Successfully converted %s to %s (nodes: %d, edges: %d)",
				inputPath, outputPath, stats.Nodes, stats.Edges)
			return nil
		},
	}
}
