package nameinput

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableShape(t *testing.T) {
	assert.Equal(t, 39, TableLen)
	assert.Equal(t, 38, ConfirmIndex)
	assert.Equal(t, "A", Character(0))
	assert.Equal(t, "Z", Character(25))
	assert.Equal(t, CellBlank, CellAt(26).Kind)
	assert.Equal(t, "1", Character(27))
	assert.Equal(t, "0", Character(36))
	assert.Equal(t, CellBlank, CellAt(37).Kind)
	assert.Equal(t, CellConfirm, CellAt(38).Kind)
	assert.Equal(t, "OK", CellAt(38).Label)
}

func TestCharacterOutsideGlyphs(t *testing.T) {
	for _, i := range []int{-1, 26, 37, 38, 39, 1000} {
		assert.Empty(t, Character(i), "index %d", i)
	}
}

func TestSelectionDown(t *testing.T) {
	tests := []struct {
		name string
		from int
		wrap bool
		want int
	}{
		{"row 0 to row 1", 10, false, 23},
		{"row 1 to last row", 20, false, 33},
		{"last row blocked", 27, false, 27},
		{"confirm blocked", 38, false, 38},
		{"first of last row blocked", 26, false, 26},
		{"last row wraps to top", 27, true, 1},
		{"confirm wraps to M", 38, true, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Selection(tt.from).Down(tt.wrap).Index())
		})
	}
}

func TestSelectionUp(t *testing.T) {
	tests := []struct {
		name string
		from int
		wrap bool
		want int
	}{
		{"row 1 to row 0", 23, false, 10},
		{"top row blocked", 5, false, 5},
		{"top row wraps to bottom", 5, true, 31},
		{"confirm to Z", 38, false, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Selection(tt.from).Up(tt.wrap).Index())
		})
	}
}

func TestSelectionRightLeftEdges(t *testing.T) {
	assert.Equal(t, 12, Selection(12).Right(false).Index())
	assert.Equal(t, 0, Selection(12).Right(true).Index())
	assert.Equal(t, 26, Selection(38).Right(true).Index())

	assert.Equal(t, 13, Selection(13).Left(false).Index())
	assert.Equal(t, 25, Selection(13).Left(true).Index())
	assert.Equal(t, 38, Selection(26).Left(true).Index())
}

func TestSelectionLeftRightRoundTrip(t *testing.T) {
	for i := 0; i < TableLen; i++ {
		s := Selection(i)
		if s.Column() > 0 {
			assert.Equal(t, s, s.Left(false).Right(false), "left then right from %d", i)
		}
		if s.Column() < Columns-1 {
			assert.Equal(t, s, s.Right(false).Left(false), "right then left from %d", i)
		}
	}
}

func TestSelectionWrapCycles(t *testing.T) {
	rows := TableLen / Columns
	for i := 0; i < TableLen; i++ {
		down, up := Selection(i), Selection(i)
		for n := 0; n < rows; n++ {
			down = down.Down(true)
			up = up.Up(true)
		}
		assert.Equal(t, i, down.Index(), "down cycle from %d", i)
		assert.Equal(t, i, up.Index(), "up cycle from %d", i)

		right, left := Selection(i), Selection(i)
		for n := 0; n < Columns; n++ {
			right = right.Right(true)
			left = left.Left(true)
		}
		assert.Equal(t, i, right.Index(), "right cycle from %d", i)
		assert.Equal(t, i, left.Index(), "left cycle from %d", i)
	}
}

func TestSelectionStaysInTable(t *testing.T) {
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}
	for i := 0; i < TableLen; i++ {
		for _, d := range dirs {
			for _, wrap := range []bool{false, true} {
				got := Selection(i).Move(d, wrap).Index()
				assert.GreaterOrEqual(t, got, 0)
				assert.Less(t, got, TableLen)
			}
		}
	}
}

func TestJumpToConfirm(t *testing.T) {
	for i := 0; i < TableLen; i++ {
		s := Selection(i).JumpToConfirm()
		assert.Equal(t, 38, s.Index())
		assert.True(t, s.IsConfirm())
	}
}
