package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spacehole-rogue/nameinput/internal/nameinput"
)

const (
	edgeWidth   = 2
	cursorWidth = 2
)

// Canvas draws the naming screen's windows onto an Ebitengine image.
// It implements nameinput.Host.
type Canvas struct {
	Atlas *FontAtlas
	Scale float64 // glyph magnification
	pixel *ebiten.Image
	dst   *ebiten.Image
}

// NewCanvas creates a canvas with the given atlas and glyph scale.
func NewCanvas(atlas *FontAtlas, scale float64) *Canvas {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Canvas{Atlas: atlas, Scale: scale, pixel: pixel}
}

// Begin sets the image the following draw calls target.
func (c *Canvas) Begin(dst *ebiten.Image) {
	c.dst = dst
}

// TextWidth returns the scaled pen advance of s.
func (c *Canvas) TextWidth(s string) int {
	w := 0
	for _, r := range s {
		w += c.Atlas.Advance(r)
	}
	return int(float64(w) * c.Scale)
}

// DrawWindow fills the frame with the window skin and outlines it.
func (c *Canvas) DrawWindow(frame nameinput.Rect) {
	c.FillRect(frame, WindowBack)
	c.strokeRect(frame, edgeWidth, WindowEdge)
}

// DrawText draws s inside r, vertically centred.
func (c *Canvas) DrawText(r nameinput.Rect, s string, align nameinput.Align, clr color.Color) {
	if s == "" {
		return
	}
	var pen float64
	switch align {
	case nameinput.AlignCenter:
		pen = float64(r.X) + float64(r.W-c.TextWidth(s))/2
	case nameinput.AlignRight:
		pen = float64(r.X + r.W - c.TextWidth(s))
	default:
		pen = float64(r.X)
	}
	y := float64(r.Y) + (float64(r.H)-GlyphHeight*c.Scale)/2

	var op ebiten.DrawImageOptions
	for _, ch := range s {
		if g := c.Atlas.Glyph(ch); g != nil && ch != ' ' {
			op = ebiten.DrawImageOptions{}
			op.GeoM.Scale(c.Scale, c.Scale)
			op.GeoM.Translate(pen-glyphInset*c.Scale, y)
			op.ColorScale.ScaleWithColor(clr)
			c.dst.DrawImage(g, &op)
		}
		pen += float64(c.Atlas.Advance(ch)) * c.Scale
	}
}

// FillRect fills r with clr, honouring alpha.
func (c *Canvas) FillRect(r nameinput.Rect, clr color.Color) {
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(r.W), float64(r.H))
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	op.ColorScale.ScaleWithColor(clr)
	c.dst.DrawImage(c.pixel, &op)
}

// DrawCursor outlines r, dimmed when the window is inactive.
func (c *Canvas) DrawCursor(r nameinput.Rect, active bool) {
	clr := CursorIdle
	if active {
		clr = CursorActive
	}
	c.strokeRect(r, cursorWidth, clr)
}

func (c *Canvas) strokeRect(r nameinput.Rect, width float32, clr color.Color) {
	vector.StrokeRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, clr, false)
}
