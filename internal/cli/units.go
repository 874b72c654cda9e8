package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUnitsCmd() *cobra.Command {
	var branchID string

	cmd := &cobra.Command{
		Use:   "units",
		Short: "List the organizational units of a branch",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession("cost")
			if err != nil {
				return err
			}
			defer s.close()

			if branchID == "" {
				return fmt.Errorf("--branch is required")
			}
			units, err := s.unitDir.Units(cmd.Context(), branchID)
			if err != nil {
				return err
			}
			if len(units) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no units")
				return nil
			}
			for _, u := range units {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", u.ID, u.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&branchID, "branch", "", "branch id")
	return cmd
}
