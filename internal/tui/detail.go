package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/aichronos/internal/dataset"
	"github.com/rshade/aichronos/internal/i18n"
)

// Overlay geometry.
const (
	detailMaxWidth    = 84
	detailMargin      = 4
	detailChromeLines = 6 // border, header, footer
	minDetailHeight   = 3
)

// DetailModel is the overlay showing one model. It owns the scroll lock on
// the timeline for as long as it is open.
type DetailModel struct {
	model  dataset.Model
	labels i18n.UIText
	styles Styles
	lock   *ScrollLock

	viewport viewport.Model
	width    int
	height   int
}

// NewDetailModel opens the overlay for model, acquiring lock on surface.
func NewDetailModel(
	model dataset.Model,
	labels i18n.UIText,
	styles Styles,
	surface *Surface,
	width, height int,
) DetailModel {
	d := DetailModel{
		model:  model,
		labels: labels,
		styles: styles,
		lock:   surface.Lock(),
	}
	d.resize(width, height)
	return d
}

// ID returns the ID of the model on display.
func (d DetailModel) ID() string {
	return d.model.ID
}

// Close releases the scroll lock. Calling it again is harmless.
func (d DetailModel) Close() {
	d.lock.Release()
}

// Restyle re-renders with new labels or styles, keeping the scroll position.
func (d *DetailModel) Restyle(model dataset.Model, labels i18n.UIText, styles Styles) {
	d.model = model
	d.labels = labels
	d.styles = styles
	offset := d.viewport.YOffset
	d.refreshContent()
	d.viewport.SetYOffset(offset)
}

func (d *DetailModel) resize(width, height int) {
	d.width = min(detailMaxWidth, max(minMarkdownWidth, width-detailMargin))
	d.height = max(minDetailHeight+detailChromeLines, height-detailMargin)
	d.viewport = viewport.New(d.innerWidth(), d.height-detailChromeLines)
	d.refreshContent()
}

func (d DetailModel) innerWidth() int {
	return d.width - 4 //nolint:mnd // Border and padding.
}

func (d *DetailModel) refreshContent() {
	d.viewport.SetContent(renderMarkdown(d.markdown(), d.innerWidth(), d.styles.Theme))
}

// Update scrolls the overlay.
func (d DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		offset := d.viewport.YOffset
		d.resize(size.Width, size.Height)
		d.viewport.SetYOffset(offset)
		return d, nil
	}
	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

// Bounds returns the overlay rectangle when centered in a width x height
// screen.
func (d DetailModel) Bounds(width, height int) (x0, y0, x1, y1 int) {
	x0 = max(0, (width-d.width)/2)   //nolint:mnd // Centering.
	y0 = max(0, (height-d.height)/2) //nolint:mnd // Centering.
	return x0, y0, x0 + d.width, y0 + d.height
}

// Contains reports whether screen cell (x, y) falls inside the overlay.
func (d DetailModel) Contains(x, y, width, height int) bool {
	x0, y0, x1, y1 := d.Bounds(width, height)
	return x >= x0 && x < x1 && y >= y0 && y < y1
}

// View renders the overlay panel.
func (d DetailModel) View() string {
	m := d.model
	company := d.styles.CompanyStyle(string(m.Company)).Bold(true).Render(strings.ToUpper(string(m.Company)))
	header := fmt.Sprintf("%s  %s %s", company, d.styles.Label.Render(d.labels.Released), d.styles.Value.Render(m.ReleaseDate))

	footer := d.styles.Subtle.Render(d.labels.CloseHint)
	if pct := d.viewport.ScrollPercent(); !d.viewport.AtTop() || !d.viewport.AtBottom() {
		footer += d.styles.Subtle.Render(fmt.Sprintf("  %3.0f%%", pct*100)) //nolint:mnd // Percentage.
	}

	body := lipgloss.JoinVertical(lipgloss.Left, header, "", d.viewport.View(), "", footer)
	return d.styles.Panel.Width(d.width - 2).Render(body) //nolint:mnd // Border.
}

// markdown builds the overlay body.
func (d DetailModel) markdown() string {
	m := d.model
	l := d.labels
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", m.Name)
	if m.Source != "" {
		fmt.Fprintf(&b, "**%s:** %s\n\n", l.Source, m.Source)
	}
	if len(m.Capabilities) > 0 {
		caps := make([]string, len(m.Capabilities))
		for i, c := range m.Capabilities {
			caps[i] = "`" + string(c) + "`"
		}
		b.WriteString(strings.Join(caps, " "))
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "## %s\n\n%s\n\n", l.Description, m.Description)
	fmt.Fprintf(&b, "## %s\n\n%s\n\n", l.CoreTech, m.CoreTech)

	params := m.Params
	if params == "" {
		params = l.Undisclosed
	}
	fmt.Fprintf(&b, "## %s\n\n%s\n\n", l.Params, params)

	writeList(&b, l.Features, m.Features)
	writeList(&b, l.UseCases, m.UseCases)
	return b.String()
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", it)
	}
	b.WriteString("\n")
}
