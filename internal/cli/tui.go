package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/aichronos/internal/tui"
)

// runTUI launches the interactive timeline. It refuses to start without a
// terminal on both stdin and stdout.
func runTUI(cmd *cobra.Command, _ []string) error {
	out, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !isTerminal(out) || !isTerminal(os.Stdin) {
		return fmt.Errorf("%w: the timeline needs an interactive terminal; use 'aichronos list' for plain output",
			ErrNotTerminal)
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	opts := tui.OptionsFromConfig(&s.cfg)
	opts.Filter = s.filter
	opts.Order = s.order

	watchPath := ""
	if s.cfg.Dataset.Watch {
		if s.cfg.Dataset.Path == "" {
			logger.Warn().Msg("--watch needs --dataset; the built-in dataset never changes")
		} else {
			watchPath = s.cfg.Dataset.Path
		}
	}
	return tui.Run(cmd.Context(), s.data, opts, watchPath)
}
