// Package layoutcfg loads the name input layout from ini files.
package layoutcfg

import (
	"fmt"

	"github.com/spacehole-rogue/nameinput/internal/nameinput"
	"gopkg.in/ini.v1"
)

type screenSection struct {
	Width      int `ini:"width"`
	Height     int `ini:"height"`
	LineHeight int `ini:"line_height"`
}

type windowSection struct {
	Width        int `ini:"width"`
	Position     int `ini:"position"`
	UpperHeight  int `ini:"upper_height"`
	BottomHeight int `ini:"bottom_height"`
	Padding      int `ini:"padding"`
}

type pickerSection struct {
	Parabola          float64 `ini:"parabola"`
	BottomRowPosition int     `ini:"bottom_row_position"`
	CellWidth         int     `ini:"cell_width"`
	CharPadding       int     `ini:"char_padding"`
}

var loadOptions = ini.LoadOptions{
	SkipUnrecognizableLines: true,
	IgnoreInlineComment:     false,
}

// Load reads defaults, then overlays each of overrides in order. An
// override is a file path or raw []byte, as accepted by ini.LoadSources.
// Keys missing from every source keep nameinput.DefaultConfig values.
func Load(defaults []byte, overrides ...interface{}) (nameinput.Config, error) {
	f, err := ini.LoadSources(loadOptions, defaults, overrides...)
	if err != nil {
		return nameinput.Config{}, fmt.Errorf("read layout: %w", err)
	}
	return fromFile(f)
}

func fromFile(f *ini.File) (nameinput.Config, error) {
	cfg := nameinput.DefaultConfig()

	screen := screenSection{Width: cfg.ScreenWidth, Height: cfg.ScreenHeight, LineHeight: cfg.LineHeight}
	if err := f.Section("Screen").StrictMapTo(&screen); err != nil {
		return cfg, fmt.Errorf("section Screen: %w", err)
	}
	window := windowSection{
		Width:        cfg.WindowWidth,
		Position:     cfg.WindowPosition,
		UpperHeight:  cfg.UpperWindowHeight,
		BottomHeight: cfg.BottomWindowHeight,
		Padding:      cfg.Padding,
	}
	if err := f.Section("Window").StrictMapTo(&window); err != nil {
		return cfg, fmt.Errorf("section Window: %w", err)
	}
	picker := pickerSection{
		Parabola:          cfg.Parabola,
		BottomRowPosition: cfg.BottomRowPosition,
		CellWidth:         cfg.CellWidth,
		CharPadding:       cfg.CharPadding,
	}
	if err := f.Section("Picker").StrictMapTo(&picker); err != nil {
		return cfg, fmt.Errorf("section Picker: %w", err)
	}

	cfg.ScreenWidth, cfg.ScreenHeight, cfg.LineHeight = screen.Width, screen.Height, screen.LineHeight
	cfg.WindowWidth = window.Width
	cfg.WindowPosition = window.Position
	cfg.UpperWindowHeight = window.UpperHeight
	cfg.BottomWindowHeight = window.BottomHeight
	cfg.Padding = window.Padding
	cfg.Parabola = picker.Parabola
	cfg.BottomRowPosition = picker.BottomRowPosition
	cfg.CellWidth = picker.CellWidth
	cfg.CharPadding = picker.CharPadding
	return cfg, nil
}
