package gdb

// trackColors maps the stored track color index to its MapSource
// color name.
var trackColors = []string{
	"Black",
	"DarkRed",
	"DarkGreen",
	"DarkYellow",
	"DarkBlue",
	"DarkMagenta",
	"DarkCyan",
	"LightGray",
	"DarkGray",
	"Red",
	"Green",
	"Yellow",
	"Blue",
	"Magenta",
	"Cyan",
	"White",
	"Transparent",
}

// ColorName resolves a track color index to its name. It returns ""
// for indexes outside the known table.
func ColorName(idx int32) string {
	if idx < 0 || int(idx) >= len(trackColors) {
		return ""
	}
	return trackColors[idx]
}
