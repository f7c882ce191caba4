package tui

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	"github.com/rshade/aichronos/internal/config"
)

const minMarkdownWidth = 10

var (
	mdRendererMu sync.Mutex //nolint:gochecknoglobals // Renderer cache guard.
	// Renderers are cached by theme and wrap width. A fixed style avoids the
	// terminal background query WithAutoStyle performs.
	mdRenderers = map[string]*glamour.TermRenderer{} //nolint:gochecknoglobals // Renderer cache.
)

func markdownStyle(theme config.Theme) string {
	if theme.IsDark() {
		return styles.DarkStyle
	}
	return styles.LightStyle
}

// renderMarkdown renders md for the terminal, falling back to the raw text
// when glamour fails.
func renderMarkdown(md string, width int, theme config.Theme) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < minMarkdownWidth {
		width = minMarkdownWidth
	}

	style := markdownStyle(theme)
	key := style + ":" + strconv.Itoa(width)

	mdRendererMu.Lock()
	r := mdRenderers[key]
	mdRendererMu.Unlock()

	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRendererMu.Lock()
		if existing := mdRenderers[key]; existing != nil {
			r = existing
		} else {
			mdRenderers[key] = rr
			r = rr
		}
		mdRendererMu.Unlock()
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
