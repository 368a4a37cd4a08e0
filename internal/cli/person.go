package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nordmindi/kinship-atlas-sub002/internal/kin"
)

// PersonOptions holds flags for the person add command.
type PersonOptions struct {
	*RootOptions
	Name  string
	Birth string
	Death string
}

// NewPersonCommand creates the person command group.
func NewPersonCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "person",
		Short: "Manage person records",
	}

	cmd.AddCommand(newPersonAddCommand(rootOpts))
	cmd.AddCommand(newPersonShowCommand(rootOpts))
	cmd.AddCommand(newPersonListCommand(rootOpts))
	cmd.AddCommand(newPersonRemoveCommand(rootOpts))

	return cmd
}

func newPersonAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PersonOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add <person-id>",
		Short: "Add or update a person record",
		Long: `Add or update a person record.

Dates use YYYY-MM-DD. A missing birth date is allowed: relationship
chronology checks are simply skipped for that person.

Example:
  kinatlas person add p-marge --name "Margaret" --birth 1950-06-15`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPersonAdd(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "display name")
	cmd.Flags().StringVar(&opts.Birth, "birth", "", "birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.Death, "death", "", "death date (YYYY-MM-DD)")

	return cmd
}

func runPersonAdd(opts *PersonOptions, id string, cmd *cobra.Command) error {
	birth, err := kin.ParseDate(opts.Birth)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --birth", err)
	}
	death, err := kin.ParseDate(opts.Death)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --death", err)
	}

	_, s, err := openEngine(opts.RootOptions)
	if err != nil {
		return err
	}
	defer s.Close()

	p := kin.Person{ID: id, Name: opts.Name, BirthDate: birth, DeathDate: death}
	if err := s.PutPerson(cmd.Context(), p); err != nil {
		return WrapExitError(ExitCommandError, "store person", err)
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if out.IsJSON() {
		return out.JSON(p)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "stored %s\n", describePerson(p))
	return nil
}

func newPersonShowCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "show <person-id>",
		Short:         "Show a person record",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := openEngine(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			p, err := s.GetPerson(cmd.Context(), args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "person not found", err)
			}

			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if out.IsJSON() {
				return out.JSON(p)
			}
			fmt.Fprintln(cmd.OutOrStdout(), describePerson(p))
			return nil
		},
	}
	return cmd
}

func newPersonListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List all person records",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := openEngine(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			persons, err := s.ListPersons(cmd.Context())
			if err != nil {
				return WrapExitError(ExitCommandError, "list persons", err)
			}

			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if out.IsJSON() {
				return out.JSON(persons)
			}
			for _, p := range persons {
				fmt.Fprintln(cmd.OutOrStdout(), describePerson(p))
			}
			return nil
		},
	}
	return cmd
}

func newPersonRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "remove <person-id>",
		Short:         "Remove a person and the edges that touch them",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, s, err := openEngine(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			// The store refuses to orphan edges, so drop them first.
			edges, err := s.EdgesTouching(cmd.Context(), args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "remove person", err)
			}
			for _, e := range edges {
				if err := eng.RemoveRelationship(cmd.Context(), e.ID); err != nil {
					return WrapExitError(ExitCommandError, "remove person", err)
				}
			}
			if err := s.DeletePerson(cmd.Context(), args[0]); err != nil {
				return WrapExitError(ExitCommandError, "remove person", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "removed %s and %d edge(s)\n", args[0], len(edges))
			return nil
		},
	}
	return cmd
}

// describePerson renders a one-line text summary.
func describePerson(p kin.Person) string {
	line := p.ID
	if p.Name != "" {
		line += "  " + p.Name
	}
	if !p.BirthDate.IsZero() {
		line += "  b. " + p.BirthDate.String()
	}
	if !p.DeathDate.IsZero() {
		line += "  d. " + p.DeathDate.String()
	}
	return line
}
