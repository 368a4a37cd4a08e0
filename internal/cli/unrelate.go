package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewUnrelateCommand creates the unrelate command.
func NewUnrelateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unrelate <edge-id>",
		Short: "Remove a relationship edge",
		Long: `Remove a relationship edge by ID.

The edge stops appearing in both endpoints' perspectives. Removing an
edge that does not exist succeeds silently.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, s, err := openEngine(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := eng.RemoveRelationship(cmd.Context(), args[0]); err != nil {
				return WrapExitError(ExitCommandError, "remove relationship", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return nil
		},
	}
	return cmd
}
