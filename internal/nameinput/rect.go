package nameinput

// Rect is an integer pixel rectangle.
type Rect struct {
	X, Y, W, H int
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Align is the horizontal placement of text inside a Rect.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)
