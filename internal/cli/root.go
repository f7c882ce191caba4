package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/aichronos/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the aichronos CLI. Without a
// subcommand it launches the interactive timeline.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "aichronos",
		Short:   "Pan and zoom through AI model releases",
		Long:    "aichronos: an interactive timeline of AI model releases with filters and a detail view",
		Version: ver,
		Example: rootCmdExample,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
		RunE: runTUI,
	}
	cmd.SilenceUsage = true

	pf := cmd.PersistentFlags()
	pf.Bool("debug", false, "enable debug logging")
	pf.String("lang", "", "display language (en, zh); overrides config and AICHRONOS_LANG")
	pf.String("theme", "", "color theme (dark, light); overrides config and AICHRONOS_THEME")
	pf.String("dataset", "", "dataset JSON file (default: built-in dataset)")
	pf.Bool("watch", false, "reload the dataset file when it changes (TUI only)")
	addFilterFlags(cmd)

	cmd.AddCommand(NewListCmd(), NewExportCmd(), newConfigCmd())
	return cmd
}

const rootCmdExample = `  # Browse the built-in timeline
  aichronos

  # Browse in English with the light theme, newest Google models only
  aichronos --lang en --theme light --company Google

  # Browse your own dataset and reload it on save
  aichronos --dataset ./models.json --watch

  # Print the 2024 multimodal releases as JSON
  aichronos list --year 2024 --capability multimodal --output json

  # Render the timeline to an image and a text file
  aichronos export -o timeline.png -o timeline.txt

  # Initialize configuration
  aichronos config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd())
	return cmd
}
