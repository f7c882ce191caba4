package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/rshade/aichronos/internal/dataset"
	"github.com/rshade/aichronos/internal/i18n"
	"github.com/rshade/aichronos/internal/timeline"
)

const separator = " · "

// View renders the current view (Bubble Tea interface).
func (m AppModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateDetail:
		if m.detail != nil {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.detail.View())
		}
	case ViewStateTimeline, ViewStateSearch:
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderFilterBar(),
		"",
		m.renderTimeline(),
		"",
		m.renderStatusBar(),
		m.help.View(m.keys),
	)
}

// renderHeader draws the title on the left and the system indicators on the
// right.
func (m AppModel) renderHeader() string {
	left := m.styles.Title.Render(m.labels.AppTitle) + "  " + m.styles.Subtitle.Render(m.labels.AppSubtitle)
	right := m.styles.Online.Render("● "+m.labels.SystemOnline) + "  " +
		m.styles.Label.Render(m.opts.Lang.Code()+separator+strings.ToUpper(string(m.opts.Theme)))
	return spread(left, right, m.width)
}

func (m AppModel) renderFilterBar() string {
	if m.state == ViewStateSearch {
		return m.search.View()
	}

	l := m.labels
	all := l.FilterAll
	value := func(v string) string {
		if v == "" {
			return m.styles.Value.Render(all)
		}
		return m.styles.Active.Render(v)
	}

	parts := []string{
		m.styles.Label.Render(l.FilterCompany+": ") + value(string(m.filter.Company)),
		m.styles.Label.Render(l.FilterCap+": ") + value(string(m.filter.Capability)),
		m.styles.Label.Render(l.FilterYear+": ") + value(m.filter.Year),
	}
	order := l.SortNewest
	if m.order == dataset.Oldest {
		order = l.SortOldest
	}
	parts = append(parts, m.styles.Value.Render(order))
	if m.filter.Search != "" {
		parts = append(parts, m.styles.Active.Render("/"+m.filter.Search))
	}
	if m.filter.Active() {
		parts = append(parts, m.styles.Subtle.Render("x "+l.ResetFilters))
	}
	return ansi.Truncate(strings.Join(parts, "  "), m.width, "…")
}

// renderTimeline draws the canvas, or the empty-result panel.
func (m AppModel) renderTimeline() string {
	if len(m.items) == 0 {
		panel := m.styles.Empty.Render(m.labels.NoData + "\n" + m.labels.NoDataDesc)
		return lipgloss.Place(m.width, timeline.CanvasHeight, lipgloss.Center, lipgloss.Center, panel)
	}
	return RenderCanvas(timeline.Render(m.scene()), m.styles)
}

// RenderCanvas styles every span of c and joins the rows.
func RenderCanvas(c *timeline.Canvas, s Styles) string {
	lines := make([]string, timeline.CanvasHeight)
	for y := range lines {
		var b strings.Builder
		for _, run := range c.Runs(y) {
			if run.Kind == timeline.CellEmpty {
				b.WriteString(run.Text)
				continue
			}
			b.WriteString(s.Cell(run.Kind, run.Group).Render(run.Text))
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func (m AppModel) renderStatusBar() string {
	l := m.labels
	left := m.styles.Label.Render(l.Zoom+" ") +
		m.styles.Value.Render(i18n.FormatPercent(m.opts.Lang, m.controller.ZoomPercent())) +
		m.styles.Subtle.Render(separator) +
		m.styles.Label.Render(l.NodesActive+" ") +
		m.styles.Value.Render(i18n.FormatCount(m.opts.Lang, len(m.items))) +
		m.styles.Subtle.Render(separator+l.DragHint)

	right := ""
	if m.status != "" {
		style := m.styles.Status
		if m.statusErr {
			style = m.styles.Error
		}
		right = style.Render(m.status)
	}
	return spread(left, right, m.width)
}

// spread places left and right on one line of the given width, truncating the
// left side when both do not fit.
func spread(left, right string, width int) string {
	rw := ansi.StringWidth(right)
	if rw >= width {
		return ansi.Truncate(right, width, "…")
	}
	left = ansi.Truncate(left, max(0, width-rw-1), "…")
	gap := width - ansi.StringWidth(left) - rw
	if right == "" {
		return left
	}
	return left + strings.Repeat(" ", max(1, gap)) + right
}
