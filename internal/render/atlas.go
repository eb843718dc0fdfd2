package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	GlyphWidth  = 8
	GlyphHeight = 16
	AtlasCols   = 16
	AtlasRows   = 8
)

// FontAtlas holds a 7-bit ASCII glyph atlas and cached sub-images.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [128]*ebiten.Image
}

// NewFontAtlas renders printable ASCII with basicfont.Face7x13.
// Codes outside 32-126 stay blank.
func NewFontAtlas() *FontAtlas {
	img := image.NewNRGBA(image.Rect(0, 0, AtlasCols*GlyphWidth, AtlasRows*GlyphHeight))
	face := basicfont.Face7x13

	for code := 32; code <= 126; code++ {
		cx := (code % AtlasCols) * GlyphWidth
		cy := (code / AtlasCols) * GlyphHeight
		drawFontGlyph(img, face, cx, cy, rune(code))
	}

	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg}
	for code := range a.glyphs {
		x := (code % AtlasCols) * GlyphWidth
		y := (code / AtlasCols) * GlyphHeight
		a.glyphs[code] = eimg.SubImage(image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)).(*ebiten.Image)
	}
	return a
}

// Glyph returns the cached sub-image for an ASCII code. Non-ASCII maps to '?'.
func (a *FontAtlas) Glyph(code byte) *ebiten.Image {
	if code >= 128 {
		code = '?'
	}
	return a.glyphs[code]
}

// basicfont glyphs are 7x13; baseline sits 3px above the cell bottom.
func drawFontGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX, cellY+13),
	}
	d.DrawString(string(r))
}
