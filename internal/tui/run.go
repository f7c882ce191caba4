package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/aichronos/internal/dataset"
	"github.com/rshade/aichronos/internal/logging"
)

// Run starts the interactive timeline over ds and blocks until the user
// quits or ctx is cancelled. When watchPath is set the file is reloaded on
// change.
func Run(ctx context.Context, ds *dataset.Dataset, opts Options, watchPath string) error {
	logger := logging.FromContext(ctx).With().Str("component", "tui").Logger()

	m := NewAppModel(ctx, ds, opts)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	if watchPath != "" {
		w, err := dataset.Watch(ctx, watchPath, dataset.DefaultDebounce, func(ds *dataset.Dataset, err error) {
			p.Send(DatasetReloadedMsg{Dataset: ds, Err: err})
		})
		if err != nil {
			return fmt.Errorf("watching dataset: %w", err)
		}
		defer func() {
			if cerr := w.Close(); cerr != nil {
				logger.Debug().Err(cerr).Msg("closing dataset watcher")
			}
		}()
		logger.Info().Str("path", watchPath).Msg("watching dataset")
	}

	final, err := p.Run()
	if fm, ok := final.(AppModel); ok {
		fm.Close()
	}
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("running timeline: %w", err)
	}
	return nil
}
