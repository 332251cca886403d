// Package cli implements the omega command-line interface.
//
// # Commands
//
//   - serve: run the public HTTP API and the admin listener
//   - route: compute one route and print it as JSON
//   - compare: run every search strategy on one query and print a table
//   - info: summarise the loaded graph
//   - convert: turn a JSON road graph into a gob snapshot
//
// All commands accept --config for a TOML or YAML file, --graph to override
// graph.path and --verbose (-v) for debug logging. Loggers travel through
// context.Context.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Cleawwy/Project-Omega/config"
	"github.com/Cleawwy/Project-Omega/graphs_go"
	"github.com/Cleawwy/Project-Omega/logging"
	"github.com/Cleawwy/Project-Omega/services"
)

const appName = "omega"

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger

	out    io.Writer
	errOut io.Writer
	cfg    *config.Config

	configPath string
	graphPath  string
	verbose    bool
}

// New creates a CLI writing command output to out and logs to errOut.
func New(out, errOut io.Writer) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(errOut, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
		}),
		out:    out,
		errOut: errOut,
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               appName,
		Short:             "Omega computes and compares shortest paths on a road network",
		Long:              `Omega serves point-to-point routes over a precomputed road graph and lets you compare Dijkstra, A*, BFS, DFS and greedy best-first search on the same query.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "config file (.toml, .yaml or .yml)")
	root.PersistentFlags().StringVar(&c.graphPath, "graph", "", "graph file (.json or .gob), overrides graph.path")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(c.serveCommand())
	root.AddCommand(c.routeCommand())
	root.AddCommand(c.compareCommand())
	root.AddCommand(c.infoCommand())
	root.AddCommand(c.convertCommand())

	return root
}

// setup loads configuration, applies global flags and installs the logger.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.graphPath != "" {
		cfg.Graph.Path = c.graphPath
	}
	if c.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(c.errOut, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	c.cfg = cfg
	c.Logger = logger
	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
	return nil
}

func (c *CLI) loadGraph(ctx context.Context) (*graphs_go.Graph, error) {
	logger := logging.FromContext(ctx)
	logger.Infof("Loading graph from %s...", c.cfg.Graph.Path)

	start := time.Now()
	g, err := graphs_go.LoadGraphFromFile(c.cfg.Graph.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load graph: %w", err)
	}

	logger.Infof("Graph loaded: %d nodes, %d edges (%s)",
		g.NodeCount(), g.EdgeCount(), time.Since(start).Round(time.Millisecond))
	return g, nil
}

func (c *CLI) newService(g *graphs_go.Graph) (*services.RoutingService, error) {
	return services.NewRoutingService(g, services.WithParallelism(c.cfg.Compare.Parallelism))
}
