package nameinput

// Config holds the layout constants shared by the preview and picker windows.
// It is passed by value and never mutated after construction.
type Config struct {
	Parabola           float64 // steepness of the letter arc
	BottomRowPosition  int     // vertical offset of the number row, in lines
	BottomWindowHeight int     // picker window height, in lines
	UpperWindowHeight  int     // preview window height, in lines
	WindowPosition     int     // lines used to centre both windows vertically
	WindowWidth        int     // should always be > Columns * CellWidth

	CellWidth   int // picker cell width in pixels
	LineHeight  int
	Padding     int // window frame inset
	CharPadding int // added to the measured glyph width in the preview

	ScreenWidth  int
	ScreenHeight int
}

// DefaultConfig returns the stock layout.
func DefaultConfig() Config {
	return Config{
		Parabola:           0.3,
		BottomRowPosition:  1,
		BottomWindowHeight: 7,
		UpperWindowHeight:  3,
		WindowPosition:     10,
		WindowWidth:        450,

		CellWidth:   32,
		LineHeight:  24,
		Padding:     12,
		CharPadding: 4,

		ScreenWidth:  544,
		ScreenHeight: 416,
	}
}

// FittingHeight returns the window height needed to show n lines.
func (c Config) FittingHeight(lines int) int {
	return lines*c.LineHeight + c.Padding*2
}

// Overflows reports whether the picker grid is wider than the window.
// Nothing breaks when it does; cells just overlap the frame.
func (c Config) Overflows() bool {
	return c.WindowWidth <= Columns*c.CellWidth
}
