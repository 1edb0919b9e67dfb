package nameinput

import (
	"errors"
	"image/color"
)

// monoMeasure measures every rune as a fixed width.
type monoMeasure int

func (m monoMeasure) TextWidth(s string) int { return int(m) * len([]rune(s)) }

type textCall struct {
	Rect  Rect
	Text  string
	Align Align
}

type cursorCall struct {
	Rect   Rect
	Active bool
}

type recordingHost struct {
	monoMeasure
	windows []Rect
	texts   []textCall
	fills   []Rect
	colors  []color.Color
	cursors []cursorCall
}

func (h *recordingHost) DrawWindow(frame Rect) { h.windows = append(h.windows, frame) }

func (h *recordingHost) DrawText(r Rect, s string, align Align, _ color.Color) {
	h.texts = append(h.texts, textCall{Rect: r, Text: s, Align: align})
}

func (h *recordingHost) FillRect(r Rect, c color.Color) {
	h.fills = append(h.fills, r)
	h.colors = append(h.colors, c)
}

func (h *recordingHost) DrawCursor(r Rect, active bool) {
	h.cursors = append(h.cursors, cursorCall{Rect: r, Active: active})
}

type cueRecorder struct {
	played []Cue
}

func (c *cueRecorder) Play(cue Cue) { c.played = append(c.played, cue) }

func (c *cueRecorder) reset() { c.played = nil }

var errNoActor = errors.New("no such actor")

type memStore struct {
	names    map[int]string
	writeErr error
	writes   int
}

func (m *memStore) Name(id int) (string, error) {
	n, ok := m.names[id]
	if !ok {
		return "", errNoActor
	}
	return n, nil
}

func (m *memStore) SetName(id int, name string) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.writes++
	m.names[id] = name
	return nil
}
