package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewGraphCommand creates the graph command.
func NewGraphCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph [person-id...]",
		Short: "Materialize the deduplicated display graph",
		Long: `Materialize the deduplicated display graph: at most one undirected
edge per related pair, in canonical orientation (vertical edges run
child to parent).

With no arguments the graph covers every stored person.

Example:
  kinatlas graph
  kinatlas graph p-marge p-tom`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, s, err := openEngine(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			personIDs := args
			if len(personIDs) == 0 {
				persons, err := s.ListPersons(cmd.Context())
				if err != nil {
					return WrapExitError(ExitCommandError, "list persons", err)
				}
				for _, p := range persons {
					personIDs = append(personIDs, p.ID)
				}
			}

			graph, err := eng.BuildDisplayGraph(cmd.Context(), personIDs)
			if err != nil {
				return WrapExitError(ExitCommandError, "build display graph", err)
			}

			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if out.IsJSON() {
				return out.JSON(graph)
			}

			if len(graph) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no edges to display")
				return nil
			}
			for _, edge := range graph {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s -[%s]-> %s\n",
					edge.ID, edge.SourceID, edge.Kind, edge.TargetID)
			}
			return nil
		},
	}
	return cmd
}
