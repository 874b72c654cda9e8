package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Kael-Dean/SKT-sub000/internal/tui"
)

func newEditCmd() *cobra.Command {
	var (
		planID   string
		branchID string
		period   string
		table    string
	)

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the interactive grid editor for a plan",
		Long: "Edit loads the plan's saved amounts for one branch and opens the\n" +
			"grid editor. Arrow keys move between cells, typing replaces the\n" +
			"active amount, ctrl+s saves the whole grid.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(table)
			if err != nil {
				return err
			}
			defer s.close()

			plan, err := s.resolvePlan(planID, branchID, period)
			if err != nil {
				return err
			}

			model := tui.New(s.store, s.unitDir, s.gateway, s.grid, plan, s.table, s.maxDecimals)
			if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("run editor: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "plan id (year/version)")
	cmd.Flags().StringVar(&branchID, "branch", "", "branch id")
	cmd.Flags().StringVar(&period, "period", "", "free-text period label")
	cmd.Flags().StringVar(&table, "table", "cost", "planning table: cost or earning")
	return cmd
}
