package nameinput

// Columns is the grid width of the character table.
const Columns = 13

// CellKind classifies a table cell.
type CellKind uint8

const (
	CellGlyph   CellKind = iota // appends its label to the name
	CellBlank                   // spacer, selectable but does nothing
	CellConfirm                 // finishes name entry
)

// Cell is one slot of the character table.
type Cell struct {
	Kind  CellKind
	Label string
}

var table = buildTable(
	"ABCDEFGHIJKLM",
	"NOPQRSTUVWXYZ",
	" 1234567890 ",
)

// TableLen is the number of cells, including the confirm cell.
var TableLen = len(table)

// ConfirmIndex is the index of the confirm cell, always the last one.
var ConfirmIndex = TableLen - 1

// buildTable lays out letter and number rows, with spaces as blanks,
// and appends the confirm cell.
func buildTable(rows ...string) []Cell {
	var cells []Cell
	for _, row := range rows {
		for _, r := range row {
			if r == ' ' {
				cells = append(cells, Cell{Kind: CellBlank})
				continue
			}
			cells = append(cells, Cell{Kind: CellGlyph, Label: string(r)})
		}
	}
	return append(cells, Cell{Kind: CellConfirm, Label: "OK"})
}

// CellAt returns the cell at i. Out-of-range indices read as blank.
func CellAt(i int) Cell {
	if i < 0 || i >= TableLen {
		return Cell{Kind: CellBlank}
	}
	return table[i]
}

// Character returns the text cell i would append, or "" for blanks,
// the confirm cell and out-of-range indices.
func Character(i int) string {
	c := CellAt(i)
	if c.Kind != CellGlyph {
		return ""
	}
	return c.Label
}
