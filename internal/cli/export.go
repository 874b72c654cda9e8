package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kael-Dean/SKT-sub000/internal/xlsx"
)

func newExportCmd() *cobra.Command {
	var (
		planID   string
		branchID string
		table    string
		out      string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Load a plan and write it to an Excel workbook",
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

			if err := xlsx.Export(out, s.grid, units, s.maxDecimals); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "plan id (year/version)")
	cmd.Flags().StringVar(&branchID, "branch", "", "branch id")
	cmd.Flags().StringVar(&table, "table", "cost", "planning table: cost or earning")
	cmd.Flags().StringVar(&out, "out", "plan.xlsx", "output workbook path")
	return cmd
}
