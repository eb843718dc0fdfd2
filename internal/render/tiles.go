package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pathview/pathview/internal/game"
	"github.com/pathview/pathview/internal/world"
)

// MapPainter draws a terrain grid as colored squares with the selection
// overlay on top.
type MapPainter struct {
	CellSize int
	pixel    *ebiten.Image
}

// NewMapPainter creates a painter for square cells of cellSize pixels.
func NewMapPainter(cellSize int) *MapPainter {
	return &MapPainter{CellSize: cellSize, pixel: whitePixel()}
}

// CellAt converts a pixel position to the cell under it.
func (p *MapPainter) CellAt(grid *world.TerrainGrid, px, py int) (world.Coord, bool) {
	if px < 0 || py < 0 {
		return world.Coord{}, false
	}
	c := world.Coord{Row: py / p.CellSize, Col: px / p.CellSize}
	return c, grid.InBounds(c)
}

// Draw paints terrain, then path outlines, start fills and end outlines.
func (p *MapPainter) Draw(screen *ebiten.Image, grid *world.TerrainGrid, overlay *game.Overlay) {
	for r := 0; r < grid.Height; r++ {
		for c := 0; c < grid.Width; c++ {
			cell := world.Coord{Row: r, Col: c}
			p.fill(screen, cell, 0, Palette[TerrainColor(grid.At(cell))])
			p.stroke(screen, cell, 1, GridLine)
		}
	}

	var paths, starts, ends []world.Coord
	overlay.Each(func(m game.Marker) {
		switch m.Kind {
		case game.MarkPath:
			paths = append(paths, m.Cell)
		case game.MarkStart:
			starts = append(starts, m.Cell)
		case game.MarkEnd:
			ends = append(ends, m.Cell)
		}
	})

	wide := max(p.CellSize/3, 1)
	for _, c := range paths {
		p.stroke(screen, c, wide, PathOutline)
	}
	for _, c := range starts {
		p.fill(screen, c, 1, StartFill)
	}
	for _, c := range ends {
		p.stroke(screen, c, max(p.CellSize/5, 1), EndOutline)
	}
}

// fill paints the cell interior, inset by inset pixels on every side.
func (p *MapPainter) fill(screen *ebiten.Image, c world.Coord, inset int, clr color.Color) {
	x := c.Col*p.CellSize + inset
	y := c.Row*p.CellSize + inset
	size := p.CellSize - 2*inset
	p.rect(screen, x, y, size, size, clr)
}

// stroke paints a border of the given width inside the cell.
func (p *MapPainter) stroke(screen *ebiten.Image, c world.Coord, width int, clr color.Color) {
	x := c.Col * p.CellSize
	y := c.Row * p.CellSize
	s := p.CellSize
	p.rect(screen, x, y, s, width, clr)
	p.rect(screen, x, y+s-width, s, width, clr)
	p.rect(screen, x, y, width, s, clr)
	p.rect(screen, x+s-width, y, width, s, clr)
}

func (p *MapPainter) rect(screen *ebiten.Image, x, y, w, h int, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(p.pixel, &op)
}
