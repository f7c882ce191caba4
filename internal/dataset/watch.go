package dataset

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/rshade/aichronos/internal/logging"
)

// DefaultDebounce coalesces editor save bursts into a single reload.
const DefaultDebounce = 100 * time.Millisecond

// ReloadFunc receives the result of every reload. Exactly one of ds and err
// is non-nil.
type ReloadFunc func(ds *Dataset, err error)

// Watcher reloads a dataset file whenever it changes on disk.
type Watcher struct {
	path     string
	debounce time.Duration
	onReload ReloadFunc
	fsw      *fsnotify.Watcher
	done     chan struct{}
}

// Watch starts watching path until ctx is cancelled or Close is called. The
// parent directory is watched so that atomic rename-on-save is seen.
func Watch(ctx context.Context, path string, debounce time.Duration, onReload ReloadFunc) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:     abs,
		debounce: debounce,
		onReload: onReload,
		fsw:      fsw,
		done:     make(chan struct{}),
	}
	go w.loop(ctx)
	return w, nil
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.done)

	logger := logging.FromContext(ctx).With().
		Str("component", "dataset").
		Str("path", w.path).
		Logger()

	debounce := time.NewTimer(0)
	<-debounce.C // drain initial timer
	defer debounce.Stop()

	pending := false
	for {
		select {
		case <-ctx.Done():
			_ = w.fsw.Close()
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug().Str("op", event.Op.String()).Msg("dataset file changed")
			pending = true
			debounce.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warn().Err(err).Msg("watcher error")

		case <-debounce.C:
			if !pending {
				continue
			}
			pending = false
			ds, err := Load(w.path)
			if err != nil {
				logger.Warn().Err(err).Msg("dataset reload failed")
				w.onReload(nil, err)
				continue
			}
			logger.Info().Int("records", len(ds.Records)).Msg("dataset reloaded")
			w.onReload(ds, nil)
		}
	}
}
