package nameinput

import "unicode/utf8"

// nameRowY is the top of the character row inside the preview window.
const nameRowY = 36

// NamePreviewState is the name being edited. Index always equals
// len(Chars) and never exceeds the preview's MaxChars.
type NamePreviewState struct {
	Chars []rune
	Index int
}

// NewNamePreviewState starts from name, truncated to maxChars runes.
func NewNamePreviewState(name string, maxChars int) NamePreviewState {
	chars := []rune(name)
	if len(chars) > maxChars {
		chars = chars[:maxChars]
	}
	return NamePreviewState{Chars: chars, Index: len(chars)}
}

// Appended returns s with ch added. ch must be exactly one rune and the
// name must have room for it.
func (s NamePreviewState) Appended(ch string, maxChars int) (NamePreviewState, bool) {
	if s.Index >= maxChars || utf8.RuneCountInString(ch) != 1 {
		return s, false
	}
	r, _ := utf8.DecodeRuneInString(ch)
	chars := make([]rune, s.Index, s.Index+1)
	copy(chars, s.Chars)
	return NamePreviewState{Chars: append(chars, r), Index: s.Index + 1}, true
}

// Truncated returns s with the last rune removed.
func (s NamePreviewState) Truncated() (NamePreviewState, bool) {
	if s.Index == 0 {
		return s, false
	}
	chars := make([]rune, s.Index-1)
	copy(chars, s.Chars)
	return NamePreviewState{Chars: chars, Index: s.Index - 1}, true
}

// String returns the name.
func (s NamePreviewState) String() string { return string(s.Chars) }

// Preview is the window showing the name being edited, one underlined
// cell per character slot.
type Preview struct {
	cfg         Config
	frame       Rect
	measure     TextMeasurer
	maxChars    int
	defaultName string
	state       NamePreviewState
}

// NewPreview creates a preview centred horizontally on the screen.
func NewPreview(cfg Config, m TextMeasurer, name string, maxChars int) *Preview {
	x := cfg.ScreenWidth/2 - cfg.WindowWidth/2
	y := (cfg.ScreenHeight - (cfg.FittingHeight(cfg.WindowPosition) + 8)) / 2
	state := NewNamePreviewState(name, maxChars)
	return &Preview{
		cfg:         cfg,
		frame:       Rect{X: x, Y: y, W: cfg.WindowWidth + 4, H: cfg.FittingHeight(cfg.UpperWindowHeight)},
		measure:     m,
		maxChars:    maxChars,
		defaultName: state.String(),
		state:       state,
	}
}

func (p *Preview) Frame() Rect { return p.frame }

// State returns a copy of the edit state.
func (p *Preview) State() NamePreviewState {
	chars := make([]rune, len(p.state.Chars))
	copy(chars, p.state.Chars)
	return NamePreviewState{Chars: chars, Index: p.state.Index}
}

// Name returns the current name.
func (p *Preview) Name() string { return p.state.String() }

// MaxChars returns the name length limit.
func (p *Preview) MaxChars() int { return p.maxChars }

// Add appends ch. It fails when the name is full.
func (p *Preview) Add(ch string) bool {
	next, ok := p.state.Appended(ch, p.maxChars)
	p.state = next
	return ok
}

// Back deletes the last character. It fails when the name is empty.
func (p *Preview) Back() bool {
	next, ok := p.state.Truncated()
	p.state = next
	return ok
}

// RestoreDefault puts back the name the screen opened with and reports
// whether that name is non-empty.
func (p *Preview) RestoreDefault() bool {
	p.state = NewNamePreviewState(p.defaultName, p.maxChars)
	return p.defaultName != ""
}

// ContentWidth is the frame width minus padding on both sides.
func (p *Preview) ContentWidth() int {
	return p.frame.W - p.cfg.Padding*2
}

// CharWidth is the width of one character slot.
func (p *Preview) CharWidth() int {
	return p.measure.TextWidth("A") + p.cfg.CharPadding
}

// Left is the x of the first slot. The block of MaxChars+1 slots is
// centred but never extends past the right edge of the content.
func (p *Preview) Left() int {
	cw := p.ContentWidth()
	nameCenter := cw / 2
	nameWidth := (p.maxChars + 1) * p.CharWidth()
	return min(nameCenter-nameWidth/2, cw-nameWidth)
}

// ItemRect returns slot i in content space.
func (p *Preview) ItemRect(i int) Rect {
	cw := p.CharWidth()
	return Rect{X: p.Left() + i*cw, Y: nameRowY, W: cw, H: p.cfg.LineHeight}
}

// UnderlineRect returns the underline under slot i in content space.
func (p *Preview) UnderlineRect(i int) Rect {
	r := p.ItemRect(i)
	r.X++
	r.Y += r.H - 4
	r.W -= 2
	r.H = 2
	return r
}

// char returns the character in slot i, or "" past the end of the name.
func (p *Preview) char(i int) string {
	if i < 0 || i >= len(p.state.Chars) {
		return ""
	}
	return string(p.state.Chars[i])
}

func (p *Preview) toScreen(r Rect) Rect {
	return r.Offset(p.frame.X+p.cfg.Padding, p.frame.Y+p.cfg.Padding)
}

// CursorRect returns the insertion slot in screen space.
func (p *Preview) CursorRect() Rect {
	return p.toScreen(p.ItemRect(p.state.Index))
}

// Draw renders the underlines, the characters and an idle cursor.
func (p *Preview) Draw(h Host) {
	h.DrawWindow(p.frame)
	for i := 0; i < p.maxChars; i++ {
		h.FillRect(p.toScreen(p.UnderlineRect(i)), UnderlineColor())

		r := p.ItemRect(i)
		r.X += 3
		r.W += 4
		h.DrawText(p.toScreen(r), p.char(i), AlignLeft, NormalColor)
	}
	h.DrawCursor(p.CursorRect(), false)
}
