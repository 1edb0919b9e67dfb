package nameinput

// arcOffset is the vertical displacement of a letter n columns from the
// left edge of its row (n is the column minus one).
func arcOffset(cfg Config, n int) float64 {
	d := float64(n - Columns/2 + 1)
	return d * d * cfg.Parabola
}

// arcSign is +1 for a strictly positive offset and -1 otherwise.
func arcSign(cfg Config, n int) float64 {
	if arcOffset(cfg, n) > 0 {
		return 1
	}
	return -1
}

// CellRect returns where cell i is drawn, relative to the picker's
// content origin. Letter rows curve along a parabola; the last row sits
// flat at BottomRowPosition lines below its natural position.
func CellRect(cfg Config, i int) Rect {
	cols := float64(Columns)
	if Columns%2 != 0 {
		cols += 0.5
	}
	columnBuffer := cols / 2 * float64(cfg.CellWidth)
	buffer := float64(cfg.WindowWidth/2) - columnBuffer

	p := i % Columns
	var rowBuffer float64
	if i > firstIndexLastRow()-1 {
		rowBuffer = float64(cfg.LineHeight * cfg.BottomRowPosition)
	} else {
		n := p - 1
		rowBuffer = arcOffset(cfg, n) * arcSign(cfg, n)
	}

	x := float64(p*cfg.CellWidth+p/Columns*cfg.CellWidth/2) + buffer
	y := float64(i/Columns*cfg.LineHeight) + 4*rowBuffer
	return Rect{X: int(x), Y: int(y), W: cfg.CellWidth, H: cfg.LineHeight}
}

// Picker is the character grid window below the preview.
type Picker struct {
	cfg   Config
	frame Rect
	sel   Selection
	cues  CuePlayer
}

// NewPicker places a picker directly under edit, sharing its width.
func NewPicker(cfg Config, edit Component, cues CuePlayer) *Picker {
	ef := edit.Frame()
	return &Picker{
		cfg:   cfg,
		frame: Rect{X: ef.X, Y: ef.Y + ef.H, W: ef.W, H: cfg.FittingHeight(cfg.BottomWindowHeight)},
		cues:  cues,
	}
}

func (p *Picker) Frame() Rect { return p.frame }

// Selection returns the current cursor.
func (p *Picker) Selection() Selection { return p.sel }

// Character returns what confirming the current cell would append.
func (p *Picker) Character() string { return Character(p.sel.Index()) }

// IsConfirm reports whether the cursor is on the confirm cell.
func (p *Picker) IsConfirm() bool { return p.sel.IsConfirm() }

// Move moves the cursor and plays the cursor cue if it actually moved.
func (p *Picker) Move(d Direction, wrap bool) bool {
	next := p.sel.Move(d, wrap)
	if next == p.sel {
		return false
	}
	p.sel = next
	p.cues.Play(CueCursor)
	return true
}

// JumpToConfirm moves the cursor to the confirm cell.
func (p *Picker) JumpToConfirm() bool {
	if p.sel.IsConfirm() {
		return false
	}
	p.sel = p.sel.JumpToConfirm()
	p.cues.Play(CueCursor)
	return true
}

// CursorRect returns the cursor rectangle in screen space.
func (p *Picker) CursorRect() Rect {
	return p.contentRect(p.sel.Index())
}

func (p *Picker) contentRect(i int) Rect {
	return CellRect(p.cfg, i).Offset(p.frame.X+p.cfg.Padding, p.frame.Y+p.cfg.Padding)
}

// Draw renders every cell, then the cursor.
func (p *Picker) Draw(h Host) {
	h.DrawWindow(p.frame)
	for i := 0; i < TableLen; i++ {
		h.DrawText(p.contentRect(i), CellAt(i).Label, AlignCenter, NormalColor)
	}
	h.DrawCursor(p.CursorRect(), true)
}
