package timeline

import (
	"math"
	"time"
)

// Default layout metrics in content columns.
const (
	DefaultMargin  = 12.0
	DefaultSpacing = 14.0
)

// Item is a read-only timeline entry supplied by the data layer, already in
// display order.
type Item struct {
	ID        string
	Label     string
	Group     string
	Ordinal   time.Time
	Milestone bool
}

// Year returns the coarse grouping key used for boundary markers.
func (i Item) Year() int {
	return i.Ordinal.Year()
}

// Marker labels the start of a year run. Boundary is false for the very first
// item, which gets a label but no separator line.
type Marker struct {
	Index    int
	Year     int
	Boundary bool
}

// Markers derives year markers by comparing each item with its predecessor in
// display order.
func Markers(items []Item) []Marker {
	var markers []Marker
	for i, item := range items {
		if i == 0 {
			markers = append(markers, Marker{Index: 0, Year: item.Year()})
			continue
		}
		if item.Year() != items[i-1].Year() {
			markers = append(markers, Marker{Index: i, Year: item.Year(), Boundary: true})
		}
	}
	return markers
}

// Layout places item i at content column Margin + i*Spacing.
type Layout struct {
	Margin  float64
	Spacing float64
}

// DefaultLayout returns the default layout metrics.
func DefaultLayout() Layout {
	return Layout{Margin: DefaultMargin, Spacing: DefaultSpacing}
}

func (l Layout) normalized() Layout {
	if l.Spacing <= 0 {
		l.Spacing = DefaultSpacing
	}
	if l.Margin < 0 {
		l.Margin = 0
	}
	return l
}

// ContentX returns the content column of item i.
func (l Layout) ContentX(i int) float64 {
	l = l.normalized()
	return l.Margin + float64(i)*l.Spacing
}

// ScreenX returns the screen column of item i under t.
func (l Layout) ScreenX(i int, t Transform) float64 {
	return l.ContentX(i)*t.Scale + t.Offset
}

// CellWidth returns the on-screen distance between adjacent items under t.
func (l Layout) CellWidth(t Transform) float64 {
	return l.normalized().Spacing * t.Scale
}

// ContentWidth returns the unscaled width needed to show n items with margins.
func (l Layout) ContentWidth(n int) float64 {
	l = l.normalized()
	if n <= 0 {
		return 2 * l.Margin
	}
	return 2*l.Margin + float64(n-1)*l.Spacing
}

// ItemAt returns the index of the item whose cell contains screenX.
func (l Layout) ItemAt(n int, t Transform, screenX float64) (int, bool) {
	if n <= 0 || t.Scale <= 0 {
		return 0, false
	}
	l = l.normalized()
	content := (screenX - t.Offset) / t.Scale
	i := int(math.Round((content - l.Margin) / l.Spacing))
	if i < 0 || i >= n {
		return 0, false
	}
	half := math.Max(0.5, l.CellWidth(t)/2)
	if math.Abs(screenX-l.ScreenX(i, t)) > half {
		return 0, false
	}
	return i, true
}

// Visible returns the half-open index range [from, to) of items whose cells
// intersect a screen of the given width, padded by one item on each side.
func (l Layout) Visible(n int, t Transform, width int) (int, int) {
	if n <= 0 || width <= 0 || t.Scale <= 0 {
		return 0, 0
	}
	l = l.normalized()
	left := ((0-t.Offset)/t.Scale - l.Margin) / l.Spacing
	right := ((float64(width)-t.Offset)/t.Scale - l.Margin) / l.Spacing
	from := int(math.Floor(left)) - 1
	to := int(math.Ceil(right)) + 2
	if from < 0 {
		from = 0
	}
	if to > n {
		to = n
	}
	if to < 0 {
		to = 0
	}
	if from > to {
		from = to
	}
	return from, to
}

// CenterOn returns the pan delta that brings item i to screen column center.
func (l Layout) CenterOn(i int, t Transform, center float64) float64 {
	return center - l.ScreenX(i, t)
}
