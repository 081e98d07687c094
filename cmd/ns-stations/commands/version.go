package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nlrail/ns-stations/internal/constants"
)

func (a *App) installVersion() {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Returns the version of " + constants.CmdName + " and exits",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return getVersion(cmd) },
	}
	a.cmd.AddCommand(cmd)
}

// getVersion returns the current tool version.
func getVersion(cmd *cobra.Command) (err error) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", constants.CmdName, constants.Version)
	return nil
}
