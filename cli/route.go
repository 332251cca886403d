package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/Cleawwy/Project-Omega/apperrors"
	"github.com/Cleawwy/Project-Omega/models"
	"github.com/Cleawwy/Project-Omega/utils"
)

// routeFlags are shared by route and compare.
type routeFlags struct {
	src string
	dst string
}

func (f *routeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.src, "src", "", "source coordinate as lat,lon")
	cmd.Flags().StringVar(&f.dst, "dst", "", "destination coordinate as lat,lon")
	cmd.MarkFlagRequired("src")
	cmd.MarkFlagRequired("dst")
}

func (f *routeFlags) parse() (models.LatLng, models.LatLng, error) {
	src, err := utils.ParseLatLng(f.src)
	if err != nil {
		return models.LatLng{}, models.LatLng{}, err
	}
	dst, err := utils.ParseLatLng(f.dst)
	if err != nil {
		return models.LatLng{}, models.LatLng{}, err
	}
	return src, dst, nil
}

func (c *CLI) routeCommand() *cobra.Command {
	var (
		flags routeFlags
		algo  string
	)

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Compute one route and print it as JSON",
		Example: `  omega route --graph data/kl_graph.json --src 3.1390,101.6869 --dst 3.1578,101.7117 --algo astar`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			src, dst, err := flags.parse()
			if err != nil {
				return err
			}
			algorithm, ok := utils.ParseAlgorithm(algo)
			if !ok {
				return apperrors.New(apperrors.ErrCodeInvalidInput, "unknown algorithm %q", algo)
			}

			g, err := c.loadGraph(ctx)
			if err != nil {
				return err
			}
			rs, err := c.newService(g)
			if err != nil {
				return err
			}

			resp, err := rs.CalculateRoute(ctx, models.RouteRequest{
				Source:      src,
				Destination: dst,
				Algorithm:   algorithm,
			})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(c.out)
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&algo, "algo", "a", string(models.DefaultAlgorithm), "dijkstra, astar, bfs, dfs or greedy")

	return cmd
}
