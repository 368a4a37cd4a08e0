package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewPerspectiveCommand creates the perspective command.
func NewPerspectiveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "perspective <person-id>",
		Short: "Show a person's view of their relationships",
		Long: `Show a person's view of their relationships: one entry per related
person, with the kind as seen from this person. Reciprocal duplicate
records collapse to a single entry.

Example:
  kinatlas perspective p-tom`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, s, err := openEngine(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			personID := args[0]
			if _, err := s.GetPerson(cmd.Context(), personID); err != nil {
				return WrapExitError(ExitCommandError, "person not found", err)
			}

			entries, err := eng.Perspective(cmd.Context(), personID)
			if err != nil {
				return WrapExitError(ExitCommandError, "compute perspective", err)
			}

			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if out.IsJSON() {
				return out.JSON(entries)
			}

			if len(entries) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s has no recorded relationships\n", personID)
				return nil
			}
			for _, entry := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  (edge %s)\n",
					entry.RelatedPersonID, entry.Kind, entry.EdgeID)
			}
			return nil
		},
	}
	return cmd
}
