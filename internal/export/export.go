// Package export writes the timeline to image and text files outside the
// TUI.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/aichronos/internal/config"
	"github.com/rshade/aichronos/internal/logging"
	"github.com/rshade/aichronos/internal/timeline"
)

type constError string

func (e constError) Error() string { return string(e) }

// ErrUnsupportedFormat is returned for an output path whose extension has no
// writer.
const ErrUnsupportedFormat = constError("unsupported export format")

// ErrNoOutputs is returned when Write is called without any output path.
const ErrNoOutputs = constError("no export outputs")

// ErrDuplicateOutput is returned when the same file is named twice.
const ErrDuplicateOutput = constError("duplicate export output")

// Format is an export file format.
type Format string

// Supported formats.
const (
	FormatPNG  Format = "png"
	FormatText Format = "txt"
)

// FormatFor picks the format from the extension of path.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".txt", ".text":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// SceneFor returns a scene of items at the initial transform of bounds,
// wide enough to show every item.
func SceneFor(items []timeline.Item, layout timeline.Layout, bounds timeline.Bounds, markLatest bool) timeline.Scene {
	t := timeline.Transform{Offset: 0, Scale: bounds.InitialScale}
	return timeline.Scene{
		Items:      items,
		Layout:     layout,
		Transform:  t,
		Width:      int(math.Ceil(layout.ContentWidth(len(items))*t.Scale)) + 1,
		MarkLatest: markLatest,
	}
}

// Write renders scene once and writes it to every output concurrently. All
// paths are checked before any file is created.
func Write(ctx context.Context, outputs []string, scene timeline.Scene, theme config.Theme) error {
	if len(outputs) == 0 {
		return ErrNoOutputs
	}
	formats := make([]Format, len(outputs))
	seen := make(map[string]struct{}, len(outputs))
	var errs []error
	for i, out := range outputs {
		f, err := FormatFor(out)
		if err != nil {
			errs = append(errs, err)
		}
		formats[i] = f

		key := filepath.Clean(out)
		if abs, absErr := filepath.Abs(out); absErr == nil {
			key = abs
		}
		if _, dup := seen[key]; dup {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateOutput, out))
		}
		seen[key] = struct{}{}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	logger := logging.FromContext(ctx).With().Str("component", "export").Logger()
	canvas := timeline.Render(scene)

	g, gctx := errgroup.WithContext(ctx)
	for i, out := range outputs {
		format := formats[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := writeFile(out, func(w io.Writer) error {
				return Encode(w, format, canvas, theme)
			}); err != nil {
				return fmt.Errorf("exporting %s: %w", out, err)
			}
			logger.Info().Str("path", out).Str("format", string(format)).Msg("timeline exported")
			return nil
		})
	}
	return g.Wait()
}

// Encode writes canvas to w in format.
func Encode(w io.Writer, format Format, canvas *timeline.Canvas, theme config.Theme) error {
	switch format {
	case FormatPNG:
		return EncodePNG(w, canvas, theme)
	case FormatText:
		return EncodeText(w, canvas)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func writeFile(path string, encode func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return encode(f)
}
