package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/aichronos/internal/config"
	"github.com/rshade/aichronos/internal/dataset"
	"github.com/rshade/aichronos/internal/timeline"
)

// Palette is the set of colors of one theme.
type Palette struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Spine      lipgloss.Color
	Selected   lipgloss.Color
	Badge      lipgloss.Color
	Error      lipgloss.Color
}

// PaletteFor returns the palette of theme.
func PaletteFor(theme config.Theme) Palette {
	if theme.IsDark() {
		return Palette{
			Background: lipgloss.Color("#020617"),
			Foreground: lipgloss.Color("#E2E8F0"),
			Muted:      lipgloss.Color("#64748B"),
			Accent:     lipgloss.Color("#22D3EE"),
			Spine:      lipgloss.Color("#334155"),
			Selected:   lipgloss.Color("#F8FAFC"),
			Badge:      lipgloss.Color("#F43F5E"),
			Error:      lipgloss.Color("#F87171"),
		}
	}
	return Palette{
		Background: lipgloss.Color("#F8FAFC"),
		Foreground: lipgloss.Color("#0F172A"),
		Muted:      lipgloss.Color("#64748B"),
		Accent:     lipgloss.Color("#0891B2"),
		Spine:      lipgloss.Color("#CBD5E1"),
		Selected:   lipgloss.Color("#020617"),
		Badge:      lipgloss.Color("#E11D48"),
		Error:      lipgloss.Color("#DC2626"),
	}
}

// Styles holds every lipgloss style the TUI renders with. It is built from a
// theme and passed by value; there is no package-level style state.
type Styles struct {
	Theme   config.Theme
	Palette Palette

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Online   lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Active   lipgloss.Style
	Subtle   lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Panel    lipgloss.Style
	Empty    lipgloss.Style

	Spine    lipgloss.Style
	Year     lipgloss.Style
	Boundary lipgloss.Style
	Date     lipgloss.Style
	Badge    lipgloss.Style
	Selected lipgloss.Style
}

// NewStyles builds the styles of theme.
func NewStyles(theme config.Theme) Styles {
	p := PaletteFor(theme)
	return Styles{
		Theme:   theme,
		Palette: p,

		Title:    lipgloss.NewStyle().Bold(true).Foreground(p.Foreground),
		Subtitle: lipgloss.NewStyle().Foreground(p.Muted),
		Online:   lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		Label:    lipgloss.NewStyle().Foreground(p.Muted),
		Value:    lipgloss.NewStyle().Foreground(p.Foreground),
		Active:   lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		Subtle:   lipgloss.NewStyle().Foreground(p.Muted),
		Status:   lipgloss.NewStyle().Foreground(p.Accent),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(p.Error),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(0, 1),
		Empty: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.Muted).
			Foreground(p.Muted).
			Padding(1, 4). //nolint:mnd // Panel padding.
			Align(lipgloss.Center),

		Spine:    lipgloss.NewStyle().Foreground(p.Spine),
		Year:     lipgloss.NewStyle().Bold(true).Foreground(p.Muted),
		Boundary: lipgloss.NewStyle().Foreground(p.Spine),
		Date:     lipgloss.NewStyle().Foreground(p.Muted),
		Badge:    lipgloss.NewStyle().Bold(true).Foreground(p.Badge),
		Selected: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(p.Selected),
	}
}

// CompanyStyle colors text with the accent color of group.
func (s Styles) CompanyStyle(group string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(dataset.ParseCompany(group).Color()))
}

// Cell returns the style for a canvas span.
func (s Styles) Cell(kind timeline.CellKind, group string) lipgloss.Style {
	switch kind {
	case timeline.CellSpine:
		return s.Spine
	case timeline.CellNode, timeline.CellGroup:
		return s.CompanyStyle(group)
	case timeline.CellNodeMilestone:
		return s.CompanyStyle(group).Bold(true)
	case timeline.CellNodeSelected, timeline.CellLabelSelected:
		return s.Selected
	case timeline.CellYear:
		return s.Year
	case timeline.CellBoundary:
		return s.Boundary
	case timeline.CellLabel:
		return s.Value
	case timeline.CellDate:
		return s.Date
	case timeline.CellBadge:
		return s.Badge
	default:
		return lipgloss.NewStyle()
	}
}
