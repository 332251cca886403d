package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/Cleawwy/Project-Omega/models"
)

var (
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

func (c *CLI) compareCommand() *cobra.Command {
	var flags routeFlags

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every search strategy on one query and print a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			src, dst, err := flags.parse()
			if err != nil {
				return err
			}

			g, err := c.loadGraph(ctx)
			if err != nil {
				return err
			}
			rs, err := c.newService(g)
			if err != nil {
				return err
			}

			resp, err := rs.CompareAlgorithms(ctx, models.CompareRequest{Source: src, Destination: dst})
			if err != nil {
				return err
			}

			fmt.Fprintln(c.out, renderComparison(resp))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func renderComparison(resp *models.CompareResponse) string {
	rows := make([][]string, 0, len(resp.Results))
	for _, r := range resp.Results {
		distance := "-"
		if r.DistanceM != nil {
			distance = strconv.FormatFloat(*r.DistanceM, 'f', 1, 64)
		}
		rows = append(rows, []string{
			r.Name,
			distance,
			strconv.FormatFloat(r.RuntimeMS, 'f', 3, 64),
			strconv.Itoa(r.VisitedNodes),
			strconv.Itoa(r.PathNodes),
			r.Efficiency,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Algorithm", "Distance (m)", "Runtime (ms)", "Visited", "Path nodes", "Efficiency").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if col != 5 || row >= len(resp.Results) {
				return base
			}
			if resp.Results[row].Optimal {
				return base.Foreground(colorGreen)
			}
			return base.Foreground(colorYellow)
		})

	return t.Render()
}
