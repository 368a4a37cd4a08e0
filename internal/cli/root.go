package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nordmindi/kinship-atlas-sub002/internal/engine"
	"github.com/nordmindi/kinship-atlas-sub002/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	DB      string
	Verbose bool
	Format  string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the kinatlas CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "kinatlas",
		Short: "Kinship Atlas - family relationship consistency engine",
		Long: `Kinship Atlas stores directed family relationship edges and derives
each person's consistent bidirectional view of them: perspectives,
chronology validation, and a deduplicated display graph.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.DB, "db", defaultDBPath(), "path to the SQLite database")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewPersonCommand(opts))
	cmd.AddCommand(NewRelateCommand(opts))
	cmd.AddCommand(NewUnrelateCommand(opts))
	cmd.AddCommand(NewPerspectiveCommand(opts))
	cmd.AddCommand(NewGraphCommand(opts))

	return cmd
}

// defaultDBPath resolves the database path default: the KINATLAS_DB
// environment variable when set, otherwise kinatlas.db in the working
// directory. The --db flag overrides both.
func defaultDBPath() string {
	if path := os.Getenv("KINATLAS_DB"); path != "" {
		return path
	}
	return "kinatlas.db"
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// openEngine opens the store at --db and builds an engine over it.
// The caller must Close the returned store.
func openEngine(opts *RootOptions) (*engine.Engine, *store.Store, error) {
	s, err := store.Open(opts.DB)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, fmt.Sprintf("open database %s", opts.DB), err)
	}

	eng := engine.New(s, s, engine.WithLogger(newLogger(opts)))
	return eng, s, nil
}

// newLogger builds the CLI logger: warnings and up on stderr, debug
// when --verbose is set. Log output never mixes into stdout, so JSON
// output stays parseable.
func newLogger(opts *RootOptions) *slog.Logger {
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
