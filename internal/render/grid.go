package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Cell is one character of the status panel.
type Cell struct {
	Glyph byte
	FG    uint8
	BG    uint8
}

// CellBuffer is a grid of text cells for the status panel under the map.
type CellBuffer struct {
	Cols  int
	Rows  int
	Cells []Cell
}

func blankCell() Cell { return Cell{Glyph: ' ', FG: ColorLightGray, BG: ColorBlack} }

// NewCellBuffer creates a blank buffer.
func NewCellBuffer(cols, rows int) *CellBuffer {
	b := &CellBuffer{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	b.Clear()
	return b
}

// Set writes a single cell. Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, glyph byte, fg, bg uint8) {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		b.Cells[y*b.Cols+x] = Cell{Glyph: glyph, FG: fg, BG: bg}
	}
}

// Clear resets every cell to a blank.
func (b *CellBuffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = blankCell()
	}
}

// WriteString writes s from (x, y), clipped at the right edge.
func (b *CellBuffer) WriteString(x, y int, s string, fg, bg uint8) {
	for i, ch := range []byte(s) {
		b.Set(x+i, y, ch, fg, bg)
	}
}

// TextRenderer draws a CellBuffer at a fixed pixel origin.
type TextRenderer struct {
	Atlas   *FontAtlas
	OriginX int
	OriginY int
	bgPixel *ebiten.Image
}

// NewTextRenderer creates a renderer drawing from (originX, originY).
func NewTextRenderer(atlas *FontAtlas, originX, originY int) *TextRenderer {
	return &TextRenderer{
		Atlas:   atlas,
		OriginX: originX,
		OriginY: originY,
		bgPixel: whitePixel(),
	}
}

// Draw renders the whole buffer.
func (r *TextRenderer) Draw(screen *ebiten.Image, buf *CellBuffer) {
	var op ebiten.DrawImageOptions
	for y := 0; y < buf.Rows; y++ {
		for x := 0; x < buf.Cols; x++ {
			cell := buf.Cells[y*buf.Cols+x]
			px := float64(r.OriginX + x*GlyphWidth)
			py := float64(r.OriginY + y*GlyphHeight)

			if cell.BG != ColorBlack {
				op = ebiten.DrawImageOptions{}
				op.GeoM.Scale(GlyphWidth, GlyphHeight)
				op.GeoM.Translate(px, py)
				op.ColorScale.ScaleWithColor(Palette[cell.BG])
				screen.DrawImage(r.bgPixel, &op)
			}

			if cell.Glyph != ' ' && cell.Glyph != 0 {
				op = ebiten.DrawImageOptions{}
				op.GeoM.Translate(px, py)
				op.ColorScale.ScaleWithColor(Palette[cell.FG])
				screen.DrawImage(r.Atlas.Glyph(cell.Glyph), &op)
			}
		}
	}
}

// whitePixel is a 1x1 image scaled and tinted to draw solid rectangles.
func whitePixel() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}
