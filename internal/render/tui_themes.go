package render

import (
	"github.com/charmbracelet/lipgloss"
)

// TUITheme defines the color scheme for the chat screen
type TUITheme struct {
	Name        string
	Description string

	Border lipgloss.Color

	// Question bubbles
	Question     lipgloss.Color
	QuestionText lipgloss.Color

	// Answer bubbles and headings
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Error   lipgloss.Color

	Text     lipgloss.Color
	TextDim  lipgloss.Color
	TextMute lipgloss.Color
}

// Built-in TUI themes
var (
	// IndigoTheme is the default: indigo question bubbles on a dark background
	IndigoTheme = TUITheme{
		Name:        "indigo",
		Description: "Indigo accents (default)",

		Border: lipgloss.Color("#3730a3"),

		Question:     lipgloss.Color("#3730a3"),
		QuestionText: lipgloss.Color("#ffffff"),

		Primary: lipgloss.Color("#818cf8"),
		Accent:  lipgloss.Color("#c7d2fe"),
		Error:   lipgloss.Color("#f87171"),

		Text:     lipgloss.Color("#e5e7eb"),
		TextDim:  lipgloss.Color("#9ca3af"),
		TextMute: lipgloss.Color("#4b5563"),
	}

	// TokyoNightTheme is based on the Tokyo Night color scheme
	TokyoNightTheme = TUITheme{
		Name:        "tokyonight",
		Description: "Tokyo Night - dark theme with blue accents",

		Border: lipgloss.Color("#414868"),

		Question:     lipgloss.Color("#9ece6a"),
		QuestionText: lipgloss.Color("#c0caf5"),

		Primary: lipgloss.Color("#7aa2f7"),
		Accent:  lipgloss.Color("#bb9af7"),
		Error:   lipgloss.Color("#f7768e"),

		Text:     lipgloss.Color("#c0caf5"),
		TextDim:  lipgloss.Color("#565f89"),
		TextMute: lipgloss.Color("#3b4261"),
	}
)

var currentTUITheme = IndigoTheme

// GetTUITheme returns the currently active TUI theme
func GetTUITheme() TUITheme {
	return currentTUITheme
}

// SetTUITheme sets the active TUI theme by name
func SetTUITheme(name string) bool {
	theme, ok := GetTUIThemeByName(name)
	if ok {
		currentTUITheme = theme
	}
	return ok
}

// GetTUIThemeByName returns a TUI theme by its name
func GetTUIThemeByName(name string) (TUITheme, bool) {
	for _, t := range AvailableTUIThemes() {
		if t.Name == name {
			return t, true
		}
	}
	return TUITheme{}, false
}

// AvailableTUIThemes returns a list of all available TUI themes
func AvailableTUIThemes() []TUITheme {
	return []TUITheme{IndigoTheme, TokyoNightTheme}
}
