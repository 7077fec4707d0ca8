package render

import (
	"os"
	"strings"
)

// Glamour style names accepted in the markdown configuration
const (
	StyleDark    = "dark"
	StyleLight   = "light"
	StyleNoTTY   = "notty"
	StyleASCII   = "ascii"
	StyleDracula = "dracula"
	StylePink    = "pink"
)

// ThemeInfo contains information about a theme for display purposes.
type ThemeInfo struct {
	Name        string
	Description string
}

// AvailableStyles returns the markdown styles bundled with glamour.
func AvailableStyles() []ThemeInfo {
	return []ThemeInfo{
		{Name: StyleDark, Description: "Dark theme (default)"},
		{Name: StyleLight, Description: "Light theme for bright terminals"},
		{Name: StyleDracula, Description: "Dracula color scheme"},
		{Name: StylePink, Description: "Pink accents"},
		{Name: StyleNoTTY, Description: "Plain text (no styling)"},
		{Name: StyleASCII, Description: "ASCII-only output"},
	}
}

// IsBuiltinStyle reports whether style names a bundled style rather than a file path.
func IsBuiltinStyle(style string) bool {
	for _, s := range AvailableStyles() {
		if s.Name == style {
			return true
		}
	}
	return false
}

// StyleExists reports whether glamour can load style: a bundled name or a
// readable JSON file.
func StyleExists(style string) bool {
	if IsBuiltinStyle(style) {
		return true
	}
	info, err := os.Stat(style)
	return err == nil && !info.IsDir()
}

// StyleNames returns the bundled style names, comma separated.
func StyleNames() string {
	styles := AvailableStyles()
	names := make([]string, len(styles))
	for i, s := range styles {
		names[i] = s.Name
	}
	return strings.Join(names, ", ")
}
