package export

import (
	"fmt"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/rshade/aichronos/internal/config"
	"github.com/rshade/aichronos/internal/dataset"
	"github.com/rshade/aichronos/internal/timeline"
	"github.com/rshade/aichronos/internal/tui"
)

// Character cell geometry of the rendered image, in pixels.
const (
	fontSize   = 14.0
	fontDPI    = 72
	charWidth  = 8.5
	charHeight = 20.0
	padding    = 2 // cells
)

// EncodePNG draws the canvas as a PNG image, one monospace cell per canvas
// cell, colored like the TUI theme.
func EncodePNG(w io.Writer, canvas *timeline.Canvas, theme config.Theme) error {
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    fontSize,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	defer func() { _ = face.Close() }()

	pal := tui.PaletteFor(theme)
	width := int(float64(canvas.Width+2*padding) * charWidth)
	height := int(float64(timeline.CanvasHeight+2*padding) * charHeight)

	dc := gg.NewContext(width, height)
	dc.SetHexColor(string(pal.Background))
	dc.Clear()
	dc.SetFontFace(face)

	for y := range timeline.CanvasHeight {
		py := float64(y+padding) * charHeight
		for x := range canvas.Width {
			cell := canvas.At(x, y)
			if cell.Rune == 0 || cell.Rune == ' ' {
				continue
			}
			dc.SetHexColor(cellColor(cell, pal))
			px := float64(x+padding) * charWidth
			// Anchor at the cell's vertical middle so glyph baselines line up.
			dc.DrawStringAnchored(string(cell.Rune), px, py+charHeight/2, 0, 0.5) //nolint:mnd // Centering.
		}
	}
	return dc.EncodePNG(w)
}

func cellColor(cell timeline.Cell, pal tui.Palette) string {
	switch cell.Kind { //nolint:exhaustive // Labels and the rest use the foreground.
	case timeline.CellNode, timeline.CellNodeMilestone, timeline.CellGroup:
		return dataset.ParseCompany(cell.Group).Color()
	case timeline.CellNodeSelected, timeline.CellLabelSelected:
		return string(pal.Selected)
	case timeline.CellBadge:
		return string(pal.Badge)
	case timeline.CellYear:
		return string(pal.Accent)
	case timeline.CellSpine, timeline.CellBoundary:
		return string(pal.Spine)
	case timeline.CellDate:
		return string(pal.Muted)
	default:
		return string(pal.Foreground)
	}
}
