package commands

import (
	"io"
	"os"

	"github.com/atotto/clipboard"
	"golang.org/x/term"

	"github.com/diogo/emailai/internal/api"
	"github.com/diogo/emailai/internal/chat"
	"github.com/diogo/emailai/internal/config"
	"github.com/diogo/emailai/internal/models"
	"github.com/diogo/emailai/internal/render"
	"github.com/diogo/emailai/internal/tui"
)

// ClientFactory builds a generation client from the resolved configuration
type ClientFactory func(cfg config.Config) (api.ClientInterface, error)

// Dependencies holds the external dependencies for the commands.
// This allows for dependency injection and easier testing.
type Dependencies struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// StdinPiped reports whether a prompt is waiting on stdin
	StdinPiped func() bool
	// IsTTY reports whether stdout is a terminal
	IsTTY     func() bool
	TermWidth func() int

	NewClient ClientFactory
	RunTUI    func(controller *chat.Controller, opts render.Options) error
	Clipboard func(text string) error
}

// NewDependencies creates a new Dependencies struct with default implementations.
func NewDependencies() *Dependencies {
	return &Dependencies{
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		StdinPiped: stdinPiped,
		IsTTY:      isStdoutTTY,
		TermWidth:  getTerminalWidth,
		NewClient:  newAPIClient,
		RunTUI:     tui.RunChat,
		Clipboard:  clipboard.WriteAll,
	}
}

var deps = NewDependencies()

// newAPIClient is the production ClientFactory
func newAPIClient(cfg config.Config) (api.ClientInterface, error) {
	if err := cfg.RequireAPIKey(); err != nil {
		return nil, err
	}
	return api.NewClient(cfg.APIKey,
		api.WithModel(models.ModelFromName(cfg.DefaultModel)),
		api.WithEndpoint(cfg.Endpoint),
	)
}

func stdinPiped() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// getTerminalWidth returns the terminal width or a default value
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// isStdoutTTY returns true if stdout is connected to a terminal
func isStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
