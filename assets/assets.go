// Package assets embeds the default layout and party roster.
package assets

import "embed"

//go:embed nameinput.ini roster.json
var Files embed.FS

// Paths of the embedded files.
const (
	LayoutFile = "nameinput.ini"
	RosterFile = "roster.json"
)
