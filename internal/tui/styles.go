// Package tui provides the terminal chat screen for emailai.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/emailai/internal/render"
)

// Color variables (updated from theme)
var (
	colorBorder       lipgloss.Color
	colorQuestion     lipgloss.Color
	colorQuestionText lipgloss.Color
	colorPrimary      lipgloss.Color
	colorAccent       lipgloss.Color
	colorError        lipgloss.Color
	colorText         lipgloss.Color
	colorTextDim      lipgloss.Color
	colorTextMute     lipgloss.Color
)

// Style variables (rebuilt when theme changes)
var (
	headerStyle       lipgloss.Style
	titleStyle        lipgloss.Style
	subtitleStyle     lipgloss.Style
	messagesAreaStyle lipgloss.Style

	questionBubbleStyle lipgloss.Style
	answerBubbleStyle   lipgloss.Style

	thinkingStyle   lipgloss.Style
	inputPanelStyle lipgloss.Style
	inputLabelStyle lipgloss.Style

	statusBarStyle  lipgloss.Style
	statusKeyStyle  lipgloss.Style
	statusDescStyle lipgloss.Style

	fallbackStyle lipgloss.Style

	welcomeBoxStyle   lipgloss.Style
	welcomeTitleStyle lipgloss.Style
	welcomeTextStyle  lipgloss.Style
	welcomeHintStyle  lipgloss.Style
	welcomeCardStyle  lipgloss.Style
)

func init() {
	UpdateTheme()
}

// UpdateTheme refreshes all styles from the current TUI theme
func UpdateTheme() {
	theme := render.GetTUITheme()

	colorBorder = theme.Border
	colorQuestion = theme.Question
	colorQuestionText = theme.QuestionText
	colorPrimary = theme.Primary
	colorAccent = theme.Accent
	colorError = theme.Error
	colorText = theme.Text
	colorTextDim = theme.TextDim
	colorTextMute = theme.TextMute

	rebuildStyles()
}

func rebuildStyles() {
	headerStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Align(lipgloss.Center).
		Padding(0, 2)

	titleStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	subtitleStyle = lipgloss.NewStyle().
		Foreground(colorTextDim)

	messagesAreaStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)

	// Questions sit on the right, answers on the left
	questionBubbleStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorQuestion).
		Foreground(colorQuestionText).
		Padding(0, 1)

	answerBubbleStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Foreground(colorText).
		Padding(0, 1)

	thinkingStyle = lipgloss.NewStyle().
		Foreground(colorAccent).
		Italic(true)

	inputPanelStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)

	inputLabelStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	statusBarStyle = lipgloss.NewStyle().
		Foreground(colorTextMute)

	statusKeyStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Bold(true)

	statusDescStyle = lipgloss.NewStyle().
		Foreground(colorTextMute)

	fallbackStyle = lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true).
		PaddingLeft(1)

	welcomeBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Padding(1, 3).
		Align(lipgloss.Center)

	welcomeTitleStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	welcomeTextStyle = lipgloss.NewStyle().
		Foreground(colorText)

	welcomeHintStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Italic(true)

	welcomeCardStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		Foreground(colorAccent).
		Padding(0, 2)
}
