package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Kael-Dean/SKT-sub000/pkg/planning"
)

func newPullCmd() *cobra.Command {
	var (
		planID   string
		branchID string
		table    string
	)

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Load a plan and print the grid with totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(table)
			if err != nil {
				return err
			}
			defer s.close()

			plan, err := s.resolvePlan(planID, branchID, "")
			if err != nil {
				return err
			}

			units, err := s.unitDir.Units(cmd.Context(), plan.BranchID)
			if err != nil {
				return err
			}
			ids := make([]string, len(units))
			for i, u := range units {
				ids[i] = u.ID
			}
			s.grid.Reshape(ids)

			if err := s.gateway.Load(cmd.Context(), plan); err != nil {
				return err
			}

			printGrid(cmd.OutOrStdout(), s.grid, units, s.maxDecimals)
			return nil
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "plan id (year/version)")
	cmd.Flags().StringVar(&branchID, "branch", "", "branch id")
	cmd.Flags().StringVar(&table, "table", "cost", "planning table: cost or earning")
	return cmd
}

// printGrid writes the taxonomy rows with amounts and derived totals as a
// fixed-width text table.
func printGrid(w io.Writer, grid *planning.Grid, units []planning.Unit, maxDecimals int) {
	const labelW, colW = 34, 14
	totals := planning.ComputeTotals(grid)
	unitIDs := grid.UnitIDs()

	header := pad("Code  Item", labelW)
	for _, u := range units {
		name := u.Name
		if name == "" {
			name = u.ID
		}
		header += lpad(name, colW)
	}
	header += lpad("Total", colW)
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("-", len(header)))

	for _, row := range grid.Taxonomy().Rows() {
		line := pad(row.Code+"  "+row.Label, labelW)
		switch row.Kind {
		case planning.RowItem:
			for _, id := range unitIDs {
				line += lpad(planning.FormatAmount(planning.ToNumber(grid.Get(row.Code, id)), maxDecimals), colW)
			}
			line += lpad(planning.FormatAmount(totals.RowTotal[row.Code], maxDecimals), colW)
		case planning.RowSubtotal:
			st := totals.SectionSubtotal[row.Code]
			for _, id := range unitIDs {
				line += lpad(planning.FormatAmount(st.PerColumn[id], maxDecimals), colW)
			}
			line += lpad(planning.FormatAmount(st.Total, maxDecimals), colW)
		case planning.RowGrandTotal:
			for _, id := range unitIDs {
				line += lpad(planning.FormatAmount(totals.ColumnTotal[id], maxDecimals), colW)
			}
			line += lpad(planning.FormatAmount(totals.GrandTotal, maxDecimals), colW)
		}
		fmt.Fprintln(w, line)
	}
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s[:w]
	}
	return s + strings.Repeat(" ", w-len(s))
}

func lpad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return strings.Repeat(" ", w-len(s)) + s
}
