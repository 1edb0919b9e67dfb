package nameinput

// Direction is a cursor movement.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Selection is the picker cursor: a flat index into the character table.
// Every transition returns a new value inside [0, TableLen).
type Selection int

// firstIndexLastRow is where the flat number row starts.
func firstIndexLastRow() int { return TableLen - Columns }

// Index returns the selection as an int.
func (s Selection) Index() int { return int(s) }

// Row returns the grid row of the selection.
func (s Selection) Row() int { return int(s) / Columns }

// Column returns the grid column of the selection.
func (s Selection) Column() int { return int(s) % Columns }

// Down moves one row down. Without wrap it does nothing from the last row.
func (s Selection) Down(wrap bool) Selection {
	if int(s) < firstIndexLastRow() || wrap {
		return Selection((int(s) + Columns) % TableLen)
	}
	return s
}

// Up moves one row up. Without wrap it does nothing from the first row.
func (s Selection) Up(wrap bool) Selection {
	if int(s) >= Columns || wrap {
		return Selection((int(s) + firstIndexLastRow()) % TableLen)
	}
	return s
}

// Right moves one column right, wrapping to the start of the same row.
func (s Selection) Right(wrap bool) Selection {
	switch {
	case s.Column() < Columns-1:
		return s + 1
	case wrap:
		return s - (Columns - 1)
	}
	return s
}

// Left moves one column left, wrapping to the end of the same row.
func (s Selection) Left(wrap bool) Selection {
	switch {
	case s.Column() > 0:
		return s - 1
	case wrap:
		return s + (Columns - 1)
	}
	return s
}

// Move applies d.
func (s Selection) Move(d Direction, wrap bool) Selection {
	switch d {
	case DirUp:
		return s.Up(wrap)
	case DirDown:
		return s.Down(wrap)
	case DirLeft:
		return s.Left(wrap)
	case DirRight:
		return s.Right(wrap)
	}
	return s
}

// JumpToConfirm returns the confirm cell.
func (s Selection) JumpToConfirm() Selection {
	return Selection(ConfirmIndex)
}

// IsConfirm reports whether the confirm cell is selected.
func (s Selection) IsConfirm() bool {
	return int(s) == ConfirmIndex
}
