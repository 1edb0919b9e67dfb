package nameinput

import "image/color"

// TextMeasurer measures rendered text width in pixels.
type TextMeasurer interface {
	TextWidth(s string) int
}

// Host is the drawing surface the windows render onto.
type Host interface {
	TextMeasurer
	DrawWindow(frame Rect)
	DrawText(r Rect, s string, align Align, c color.Color)
	FillRect(r Rect, c color.Color)
	DrawCursor(r Rect, active bool)
}

// Component is a window that can be placed and drawn.
type Component interface {
	Frame() Rect
	Draw(h Host)
}

// Cue identifies a sound effect.
type Cue uint8

const (
	CueCursor Cue = iota
	CueOK
	CueBuzzer
	CueCancel
)

func (c Cue) String() string {
	switch c {
	case CueCursor:
		return "cursor"
	case CueOK:
		return "ok"
	case CueBuzzer:
		return "buzzer"
	case CueCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// CuePlayer plays sound effects. Play must not block.
type CuePlayer interface {
	Play(c Cue)
}

// NameStore reads and writes actor names.
type NameStore interface {
	Name(actorID int) (string, error)
	SetName(actorID int, name string) error
}

// NormalColor is the text color of both windows.
var NormalColor = color.NRGBA{255, 255, 255, 255}

// UnderlineColor returns NormalColor at alpha 48.
func UnderlineColor() color.NRGBA {
	c := NormalColor
	c.A = 48
	return c
}
