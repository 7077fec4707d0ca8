package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	bspinner "github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/emailai/internal/chat"
	"github.com/diogo/emailai/internal/config"
	apierrors "github.com/diogo/emailai/internal/errors"
	"github.com/diogo/emailai/internal/logging"
	"github.com/diogo/emailai/internal/render"
)

var (
	colorSuccess = lipgloss.Color("#9ece6a")
	colorWarning = lipgloss.Color("#f7768e")
)

func questionStyle() lipgloss.Style {
	theme := render.GetTUITheme()
	return lipgloss.NewStyle().
		Background(theme.Question).
		Foreground(theme.QuestionText).
		Padding(0, 1)
}

func answerLabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(render.GetTUITheme().Primary).
		Bold(true)
}

func answerBubbleStyle() lipgloss.Style {
	theme := render.GetTUITheme()
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Foreground(theme.Text).
		Padding(0, 1).
		MarginTop(1).
		MarginBottom(1)
}

// spinner draws a one-line busy indicator on a terminal
type spinner struct {
	out     io.Writer
	message string
	frames  []string
	stop    chan struct{}
	done    chan struct{}
	once    sync.Once
}

func newSpinner(out io.Writer, message string) *spinner {
	return &spinner{
		out:     out,
		message: message,
		frames:  bspinner.Dot.Frames,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

func (s *spinner) start() {
	go func() {
		defer close(s.done)

		ticker := time.NewTicker(bspinner.Dot.FPS)
		defer ticker.Stop()

		style := lipgloss.NewStyle().Foreground(render.GetTUITheme().Accent)
		for frame := 0; ; frame++ {
			fmt.Fprintf(s.out, "\r\033[K%s %s", style.Render(s.frames[frame%len(s.frames)]), s.message)
			select {
			case <-s.stop:
				fmt.Fprint(s.out, "\r\033[K")
				return
			case <-ticker.C:
			}
		}
	}()
}

// halt stops the animation and clears the line. Safe to call twice.
func (s *spinner) halt() {
	s.once.Do(func() { close(s.stop) })
	<-s.done
}

// runQuery submits a single subject and writes the answer.
// On a terminal the answer is rendered as markdown; otherwise the raw text
// is printed so it can be piped.
func runQuery(prompt string) error {
	// Files and pipes end in a newline; the rest of the text is sent as typed
	prompt = strings.TrimRight(prompt, "\r\n")
	if strings.TrimSpace(prompt) == "" {
		return fmt.Errorf("prompt cannot be empty")
	}

	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	logger := logging.New(deps.Stderr, cfg.LogLevel, true)

	client, err := deps.NewClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	controller := chat.NewController(client, chat.WithLogger(logger))
	controller.SetInput(prompt)

	tty := deps.IsTTY()

	var spin *spinner
	if tty {
		fmt.Fprintln(deps.Stderr, questionStyle().Render(prompt))
		spin = newSpinner(deps.Stderr, "Thinking...")
		spin.start()
	}

	outcome, err := controller.SubmitInput()
	if spin != nil {
		spin.halt()
	}
	if err != nil {
		return err
	}

	if !outcome.OK() {
		fmt.Fprintln(deps.Stdout, outcome.Answer)
		return fmt.Errorf("%w: %v", apierrors.ErrRequestFailed, outcome.Err)
	}

	return writeAnswer(cfg, outcome.Answer, tty)
}

// writeAnswer delivers a successful answer to the clipboard, the output file
// or stdout
func writeAnswer(cfg config.Config, text string, tty bool) error {
	if cfg.CopyToClipboard {
		if err := deps.Clipboard(text); err != nil {
			warn := lipgloss.NewStyle().Foreground(colorWarning).Render(
				fmt.Sprintf("⚠ Failed to copy to clipboard: %v", err),
			)
			fmt.Fprintln(deps.Stderr, warn)
		} else if tty {
			fmt.Fprintln(deps.Stderr, lipgloss.NewStyle().Foreground(colorSuccess).Render("✓ Copied to clipboard"))
		}
	}

	if outputFlag != "" {
		if err := os.WriteFile(outputFlag, []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		if tty {
			fmt.Fprintln(deps.Stderr, lipgloss.NewStyle().Foreground(colorSuccess).Render(
				fmt.Sprintf("✓ Answer saved to %s", outputFlag),
			))
		}
		return nil
	}

	if !tty {
		fmt.Fprint(deps.Stdout, text)
		return nil
	}

	bubbleWidth := deps.TermWidth() - 4
	if bubbleWidth < 40 {
		bubbleWidth = 40
	}
	if bubbleWidth > 120 {
		bubbleWidth = 120
	}

	opts := render.FromMarkdownConfig(cfg.Markdown).WithWidth(bubbleWidth - 4)
	rendered := render.MarkdownOrPlain(text, opts)

	fmt.Fprintln(deps.Stdout, answerLabelStyle().Render("✦ Email AI"))
	fmt.Fprintln(deps.Stdout, answerBubbleStyle().Width(bubbleWidth).Render(rendered))

	return nil
}
