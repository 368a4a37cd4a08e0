package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nordmindi/kinship-atlas-sub002/internal/engine"
	"github.com/nordmindi/kinship-atlas-sub002/internal/kin"
)

// RelateOptions holds flags for the relate command.
type RelateOptions struct {
	*RootOptions
	Mode string
}

// NewRelateCommand creates the relate command.
func NewRelateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RelateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "relate <from-id> <to-id> <kind>",
		Short: "Create a relationship between two people",
		Long: `Create a relationship between two people.

Kind is one of: parent, child, spouse, sibling. "parent" means the
first person is the parent of the second.

Parent/child directions are checked against birth dates. In strict
mode (default) an impossible direction is rejected with a suggestion;
in smart mode the direction is corrected automatically when the birth
dates allow it.

Example:
  kinatlas relate p-marge p-tom parent
  kinatlas relate p-tom p-marge parent --mode smart`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRelate(opts, args[0], args[1], args[2], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Mode, "mode", "strict", "validation mode (strict|smart)")

	return cmd
}

func runRelate(opts *RelateOptions, fromID, toID, kindArg string, cmd *cobra.Command) error {
	kind, err := kin.ParseKind(kindArg)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid kind", err)
	}

	eng, s, err := openEngine(opts.RootOptions)
	if err != nil {
		return err
	}
	defer s.Close()

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	res, err := eng.CreateRelationship(cmd.Context(), fromID, toID, kind, engine.Mode(opts.Mode))
	if err != nil {
		return renderWriteError(out, err)
	}

	if out.IsJSON() {
		return out.JSON(res)
	}

	switch {
	case !res.Created:
		fmt.Fprintf(cmd.OutOrStdout(), "already recorded as edge %s\n", res.EdgeID)
	case res.Corrected:
		fmt.Fprintf(cmd.OutOrStdout(), "created edge %s (direction corrected: %s is the %s of %s)\n",
			res.EdgeID, fromID, res.ActualKind, toID)
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "created edge %s\n", res.EdgeID)
	}
	return nil
}

// renderWriteError prints engine rejections in the configured format
// and maps them to exit codes. Infrastructure errors pass through.
func renderWriteError(out *OutputFormatter, err error) error {
	var ve *engine.ValidationError
	if errors.As(err, &ve) {
		if renderErr := out.Reject(string(ve.Code), ve.Reason, ve.Suggestion); renderErr != nil {
			return renderErr
		}
		return NewExitError(ExitFailure, ve.Reason)
	}

	var ce *engine.ConflictingEdgeError
	if errors.As(err, &ce) {
		msg := fmt.Sprintf("pair already linked as %q by edge %s", ce.ExistingKind, ce.ExistingEdgeID)
		if renderErr := out.Reject("CONFLICTING_EDGE", msg, "remove the existing edge first"); renderErr != nil {
			return renderErr
		}
		return NewExitError(ExitFailure, msg)
	}

	return WrapExitError(ExitCommandError, "create relationship", err)
}
