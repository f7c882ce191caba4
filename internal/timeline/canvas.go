package timeline

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Canvas rows, top to bottom. Even items are labelled above the spine, odd
// items below it.
const (
	RowYear = iota
	RowAboveGroup
	RowAboveLabel
	RowAboveDate
	RowSpine
	RowBelowGroup
	RowBelowLabel
	RowBelowDate

	CanvasHeight
)

const (
	minLabelWidth = 3
	maxLabelWidth = 28
	ellipsis      = "…"
	latestBadge   = "LATEST"
)

// CellKind tags a canvas cell with its role so renderers can style it.
type CellKind uint8

// Cell kinds.
const (
	CellEmpty CellKind = iota
	CellSpine
	CellNode
	CellNodeMilestone
	CellNodeSelected
	CellYear
	CellBoundary
	CellGroup
	CellLabel
	CellLabelSelected
	CellDate
	CellBadge
)

// Glyphs used on the canvas.
const (
	GlyphSpine         = '─'
	GlyphNode          = '●'
	GlyphMilestone     = '◆'
	GlyphSelected      = '◉'
	GlyphBoundary      = '┊'
	GlyphBoundarySpine = '┼'
)

// Cell is one terminal column. A zero Rune marks the trailing half of a wide
// rune.
type Cell struct {
	Rune  rune
	Kind  CellKind
	Group string
}

// Run is a maximal horizontal span of cells sharing kind and group.
type Run struct {
	Text  string
	Kind  CellKind
	Group string
}

// Canvas is a fixed-height character grid.
type Canvas struct {
	Width int
	rows  [CanvasHeight][]Cell
}

// NewCanvas returns a blank canvas of the given width.
func NewCanvas(width int) *Canvas {
	if width < 0 {
		width = 0
	}
	c := &Canvas{Width: width}
	for y := range c.rows {
		c.rows[y] = make([]Cell, width)
		for x := range c.rows[y] {
			c.rows[y][x] = Cell{Rune: ' '}
		}
	}
	return c
}

// At returns the cell at (x, y). Out-of-range coordinates yield an empty cell.
func (c *Canvas) At(x, y int) Cell {
	if y < 0 || y >= CanvasHeight || x < 0 || x >= c.Width {
		return Cell{Rune: ' '}
	}
	return c.rows[y][x]
}

func (c *Canvas) put(x, y int, cell Cell) {
	if y < 0 || y >= CanvasHeight || x < 0 || x >= c.Width {
		return
	}
	row := c.rows[y]
	// Never leave half of a wide rune behind.
	if row[x].Rune == 0 && x > 0 {
		row[x-1] = Cell{Rune: ' '}
	}
	if x+1 < c.Width && row[x+1].Rune == 0 {
		row[x+1] = Cell{Rune: ' '}
	}
	row[x] = cell
}

// Text writes s starting at column x, clipping at both edges. It returns the
// column after the last rune written.
func (c *Canvas) Text(x, y int, s string, kind CellKind, group string) int {
	for _, r := range s {
		w := ansi.StringWidth(string(r))
		if w == 0 {
			continue
		}
		if x >= 0 && x+w <= c.Width {
			c.put(x, y, Cell{Rune: r, Kind: kind, Group: group})
			if w == 2 { //nolint:mnd // Wide rune.
				c.put(x+1, y, Cell{Rune: 0, Kind: kind, Group: group})
			}
		}
		x += w
	}
	return x
}

// Line returns row y as plain text.
func (c *Canvas) Line(y int) string {
	var b strings.Builder
	for _, run := range c.Runs(y) {
		b.WriteString(run.Text)
	}
	return b.String()
}

// Lines returns all rows as plain text.
func (c *Canvas) Lines() []string {
	lines := make([]string, CanvasHeight)
	for y := range lines {
		lines[y] = c.Line(y)
	}
	return lines
}

// Runs splits row y into styled spans.
func (c *Canvas) Runs(y int) []Run {
	if y < 0 || y >= CanvasHeight {
		return nil
	}
	var runs []Run
	var b strings.Builder
	cur := Run{}
	flush := func() {
		if b.Len() == 0 {
			return
		}
		cur.Text = b.String()
		runs = append(runs, cur)
		b.Reset()
	}
	for _, cell := range c.rows[y] {
		if cell.Rune == 0 {
			continue
		}
		if b.Len() > 0 && (cell.Kind != cur.Kind || cell.Group != cur.Group) {
			flush()
		}
		if b.Len() == 0 {
			cur = Run{Kind: cell.Kind, Group: cell.Group}
		}
		b.WriteRune(cell.Rune)
	}
	flush()
	return runs
}

// Scene is everything needed to draw one frame of the timeline.
type Scene struct {
	Items     []Item
	Layout    Layout
	Transform Transform
	Width     int
	// Highlight is the ID drawn as selected.
	Highlight string
	// MarkLatest badges the first item.
	MarkLatest bool
}

// Render draws the scene onto a new canvas.
func Render(s Scene) *Canvas {
	c := NewCanvas(s.Width)
	for x := 0; x < c.Width; x++ {
		c.put(x, RowSpine, Cell{Rune: GlyphSpine, Kind: CellSpine})
	}
	if len(s.Items) == 0 || s.Transform.Scale <= 0 {
		return c
	}

	cell := s.Layout.CellWidth(s.Transform)
	from, to := s.Layout.Visible(len(s.Items), s.Transform, s.Width)

	for _, m := range Markers(s.Items) {
		renderMarker(c, s, m, cell)
	}

	labelWidth := int(math.Min(maxLabelWidth, math.Max(minLabelWidth, math.Floor(2*cell)-1)))
	for i := from; i < to; i++ {
		renderItem(c, s, i, labelWidth)
	}
	return c
}

func renderMarker(c *Canvas, s Scene, m Marker, cell float64) {
	col := int(math.Round(s.Layout.ScreenX(m.Index, s.Transform)))
	year := strconv.Itoa(m.Year)
	if !m.Boundary {
		c.Text(col-ansi.StringWidth(year)/2, RowYear, year, CellYear, "")
		return
	}
	line := int(math.Round(s.Layout.ScreenX(m.Index, s.Transform) - cell/2))
	for y := RowAboveGroup; y < CanvasHeight; y++ {
		glyph := GlyphBoundary
		if y == RowSpine {
			glyph = GlyphBoundarySpine
		}
		c.put(line, y, Cell{Rune: glyph, Kind: CellBoundary})
	}
	c.put(line, RowYear, Cell{Rune: GlyphBoundary, Kind: CellBoundary})
	c.Text(line+1, RowYear, year, CellYear, "")
}

func renderItem(c *Canvas, s Scene, i, labelWidth int) {
	item := s.Items[i]
	col := int(math.Round(s.Layout.ScreenX(i, s.Transform)))
	selected := item.ID != "" && item.ID == s.Highlight

	node := Cell{Rune: GlyphNode, Kind: CellNode, Group: item.Group}
	switch {
	case selected:
		node = Cell{Rune: GlyphSelected, Kind: CellNodeSelected, Group: item.Group}
	case item.Milestone:
		node = Cell{Rune: GlyphMilestone, Kind: CellNodeMilestone, Group: item.Group}
	}
	c.put(col, RowSpine, node)

	groupRow, labelRow, dateRow := RowAboveGroup, RowAboveLabel, RowAboveDate
	if i%2 == 1 {
		groupRow, labelRow, dateRow = RowBelowGroup, RowBelowLabel, RowBelowDate
	}

	labelKind := CellLabel
	if selected {
		labelKind = CellLabelSelected
	}
	centered(c, col, groupRow, item.Group, labelWidth, CellGroup, item.Group)
	centered(c, col, labelRow, item.Label, labelWidth, labelKind, item.Group)

	date := item.Ordinal.Format("2006-01-02")
	if s.MarkLatest && i == 0 && labelWidth >= len(date)+1+len(latestBadge) {
		start := col - (len(date)+1+len(latestBadge))/2
		next := c.Text(start, dateRow, date, CellDate, "")
		c.Text(next+1, dateRow, latestBadge, CellBadge, "")
		return
	}
	centered(c, col, dateRow, date, labelWidth, CellDate, "")
}

func centered(c *Canvas, col, row int, text string, width int, kind CellKind, group string) {
	text = ansi.Truncate(text, width, ellipsis)
	c.Text(col-ansi.StringWidth(text)/2, row, text, kind, group)
}
