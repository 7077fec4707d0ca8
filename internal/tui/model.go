package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/emailai/internal/chat"
	"github.com/diogo/emailai/internal/models"
	"github.com/diogo/emailai/internal/render"
)

// answerMsg is delivered when the outstanding turn has settled
type answerMsg struct {
	outcome chat.Outcome
}

// Layout constants
const (
	headerHeight = 3 // title line plus border
	inputHeight  = 5 // label, two textarea lines, border
	statusHeight = 1
	slotHeight   = 1 // fallback answer line
	frameHeight  = 2 // messages border
	minVPHeight  = 3
)

// Model is the chat screen. All conversation state lives in the controller;
// the model only holds widgets.
type Model struct {
	controller *chat.Controller
	renderOpts render.Options

	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	pending *chat.Turn
	ready   bool
	width   int
	height  int
}

// NewChatModel creates a new chat TUI model
func NewChatModel(controller *chat.Controller, renderOpts render.Options) Model {
	ta := textarea.New()
	ta.Placeholder = "Subject : "
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter", "ctrl+j"))
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = thinkingStyle

	return Model{
		controller: controller,
		renderOpts: renderOpts,
		textarea:   ta,
		spinner:    s,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.updateViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			return m.submit()
		}

		m.textarea, cmd = m.textarea.Update(msg)
		cmds = append(cmds, cmd)

	case answerMsg:
		m.pending = nil
		m.updateViewport()
		m.viewport.GotoBottom()

	case spinner.TickMsg:
		if m.controller.Busy() {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	default:
		m.textarea, cmd = m.textarea.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit hands the textarea content to the controller. Nothing happens
// while a request is outstanding or when the input is blank.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.controller.Busy() {
		return m, nil
	}

	input := m.textarea.Value()
	switch strings.TrimSpace(input) {
	case "/quit", "/exit":
		return m, tea.Quit
	}

	m.controller.SetInput(input)
	turn, err := m.controller.Begin(m.controller.Input())
	if err != nil {
		return m, nil
	}

	m.pending = turn
	m.textarea.Reset()
	m.updateViewport()
	m.viewport.GotoBottom()

	return m, tea.Batch(m.completeTurn(turn), m.spinner.Tick)
}

// completeTurn runs the request off the event loop
func (m Model) completeTurn(turn *chat.Turn) tea.Cmd {
	controller := m.controller
	return func() tea.Msg {
		return answerMsg{outcome: controller.Complete(turn)}
	}
}

func (m *Model) resize() {
	contentWidth := m.width - 2
	if contentWidth < 20 {
		contentWidth = 20
	}

	vpHeight := m.height - headerHeight - inputHeight - statusHeight - slotHeight - frameHeight
	if vpHeight < minVPHeight {
		vpHeight = minVPHeight
	}

	if !m.ready {
		m.viewport = viewport.New(contentWidth-4, vpHeight)
		// Letter keys belong to the textarea
		m.viewport.KeyMap = viewport.KeyMap{
			PageDown: key.NewBinding(key.WithKeys("pgdown")),
			PageUp:   key.NewBinding(key.WithKeys("pgup")),
			Up:       key.NewBinding(key.WithKeys("up")),
			Down:     key.NewBinding(key.WithKeys("down")),
		}
		m.ready = true
	} else {
		m.viewport.Width = contentWidth - 4
		m.viewport.Height = vpHeight
	}
	m.textarea.SetWidth(contentWidth - 4)
}

// updateViewport refreshes the viewport content from the conversation
func (m *Model) updateViewport() {
	if !m.ready {
		return
	}

	width := m.viewport.Width
	bubbleWidth := width * 4 / 5
	if bubbleWidth < 10 {
		bubbleWidth = width
	}

	var content strings.Builder
	for i, msg := range m.controller.Messages() {
		if i > 0 {
			content.WriteString("\n\n")
		}
		content.WriteString(m.renderMessage(msg, width, bubbleWidth))
	}

	if m.controller.Busy() {
		if content.Len() > 0 {
			content.WriteString("\n\n")
		}
		content.WriteString(thinkingStyle.Render("Thinking..."))
	}

	m.viewport.SetContent(content.String())
}

func (m Model) renderMessage(msg models.Message, width, bubbleWidth int) string {
	if msg.IsQuestion() {
		// Short questions get a bubble sized to the text
		wrap := lipgloss.Width(msg.Content) + 4
		if wrap > bubbleWidth-4 {
			wrap = bubbleWidth - 4
		}
		rendered := render.MarkdownOrPlain(msg.Content, m.renderOpts.WithWidth(wrap))
		bubble := questionBubbleStyle.Render(rendered)
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, bubble)
	}

	rendered := render.MarkdownOrPlain(msg.Content, m.renderOpts.WithWidth(bubbleWidth-4))
	return answerBubbleStyle.Width(bubbleWidth).Render(rendered)
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return thinkingStyle.Render("  Initializing...")
	}

	contentWidth := m.viewport.Width + 4
	state := m.controller.State()

	header := headerStyle.Width(contentWidth - 2).Render(
		titleStyle.Render("Email AI") + subtitleStyle.Render("  •  "+m.controller.ModelName()),
	)

	var body string
	if m.controller.Len() == 0 && !state.Busy {
		body = m.renderWelcome()
	} else {
		body = m.viewport.View()
	}
	messages := messagesAreaStyle.
		Width(contentWidth - 2).
		Height(m.viewport.Height).
		Render(body)

	label := inputLabelStyle.Render("You")
	if state.Busy {
		label += " " + m.spinner.View()
	}
	input := inputPanelStyle.Width(contentWidth - 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, label, m.textarea.View()),
	)

	slot := ""
	if !state.Busy && state.Answer == chat.FallbackAnswer {
		slot = fallbackStyle.Render(state.Answer)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		messages,
		input,
		slot,
		m.renderStatusBar(contentWidth),
	)
}

// renderWelcome renders the welcome panel shown before the first question
func (m Model) renderWelcome() string {
	box := welcomeBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		welcomeTitleStyle.Render("Welcome to Email AI! 👋"),
		"",
		welcomeTextStyle.Render("I'm here to help you with any email you'd like to write."),
		"",
		welcomeCardStyle.Render("💡 Assist You With Writing Email"),
		"",
		welcomeHintStyle.Render("Just type your subject below and press Enter!"),
	))

	return lipgloss.Place(m.viewport.Width, m.viewport.Height, lipgloss.Center, lipgloss.Center, box)
}

// renderStatusBar renders the bottom status bar with shortcuts
func (m Model) renderStatusBar(width int) string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send"},
		{"Alt+Enter", "Newline"},
		{"↑↓", "Scroll"},
		{"Esc", "Quit"},
	}

	items := make([]string, 0, len(shortcuts))
	for _, s := range shortcuts {
		items = append(items, statusKeyStyle.Render(s.key)+statusDescStyle.Render(" "+s.desc))
	}

	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(strings.Join(items, "  │  "))
}

// RunChat starts the chat TUI
func RunChat(controller *chat.Controller, renderOpts render.Options) error {
	p := tea.NewProgram(
		NewChatModel(controller, renderOpts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
