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
	GlyphWidth  = 16
	GlyphHeight = 16
	AtlasCols   = 16
	AtlasRows   = 6 // printable ASCII, 32-127

	firstGlyph = 32
	lastGlyph  = 126
	glyphInset = 4 // left edge of the glyph inside its cell
)

// FontAtlas holds printable ASCII rendered with basicfont.Face7x13.
type FontAtlas struct {
	image    *ebiten.Image
	glyphs   [AtlasCols * AtlasRows]*ebiten.Image
	advances [AtlasCols * AtlasRows]int
}

// NewFontAtlas rasterizes the atlas at startup.
func NewFontAtlas() *FontAtlas {
	atlasW := AtlasCols * GlyphWidth
	atlasH := AtlasRows * GlyphHeight

	img := image.NewNRGBA(image.Rect(0, 0, atlasW, atlasH))
	face := basicfont.Face7x13

	a := &FontAtlas{}
	for r := rune(firstGlyph); r <= lastGlyph; r++ {
		slot := int(r - firstGlyph)
		cx := slot % AtlasCols * GlyphWidth
		cy := slot / AtlasCols * GlyphHeight
		drawFontGlyph(img, face, cx, cy, r)

		adv, ok := face.GlyphAdvance(r)
		if !ok {
			adv = fixed.I(face.Advance)
		}
		a.advances[slot] = adv.Round()
	}

	a.image = ebiten.NewImageFromImage(img)
	for slot := range a.glyphs {
		x := slot % AtlasCols * GlyphWidth
		y := slot / AtlasCols * GlyphHeight
		rect := image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)
		a.glyphs[slot] = a.image.SubImage(rect).(*ebiten.Image)
	}
	return a
}

// Glyph returns the cached sub-image for r, or nil outside printable ASCII.
func (a *FontAtlas) Glyph(r rune) *ebiten.Image {
	if r < firstGlyph || r > lastGlyph {
		return nil
	}
	return a.glyphs[r-firstGlyph]
}

// Advance returns the unscaled pen advance of r. Unknown runes advance
// like a space.
func (a *FontAtlas) Advance(r rune) int {
	if r < firstGlyph || r > lastGlyph {
		r = ' '
	}
	return a.advances[r-firstGlyph]
}

// drawFontGlyph renders a single character into the atlas.
// basicfont.Face7x13 glyphs are 7x13 with the baseline at y+13.
func drawFontGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX+glyphInset, cellY+13),
	}
	d.DrawString(string(r))
}
