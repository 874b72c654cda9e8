package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	modulePath = "github.com/Kael-Dean/SKT-sub000"

	// Version is the CLI release version.
	Version = "0.4.0"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the sktplan version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "sktplan v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
