package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/diogo/emailai/internal/chat"
	"github.com/diogo/emailai/internal/config"
	"github.com/diogo/emailai/internal/logging"
	"github.com/diogo/emailai/internal/render"
	"github.com/diogo/emailai/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start the chat screen",
	Long: `Start the Email AI chat screen.

Type the subject of an email and press Enter. Alt+Enter adds a new line.
Each question is sent on its own; earlier messages are only kept on screen.
Press Esc or Ctrl+C to quit.

Logs are written to ~/.emailai/emailai.log.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

func runChat() error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	logger, closeLog := openChatLog(cfg)
	defer closeLog()

	client, err := deps.NewClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	if cfg.TUITheme != "" {
		if render.SetTUITheme(cfg.TUITheme) {
			tui.UpdateTheme()
		} else {
			logger.Warn().Str("theme", cfg.TUITheme).Msg("unknown tui theme, using default")
		}
	}

	controller := chat.NewController(client, chat.WithLogger(logger))
	logger.Info().Str("model", controller.ModelName()).Msg("chat started")

	return deps.RunTUI(controller, render.FromMarkdownConfig(cfg.Markdown))
}

// openChatLog opens the chat log file. The screen owns the terminal, so when
// the file cannot be opened logging is simply disabled.
func openChatLog(cfg config.Config) (zerolog.Logger, func()) {
	noop := func() {}

	path, err := config.GetLogPath()
	if err != nil {
		return zerolog.Nop(), noop
	}

	logger, closer, err := logging.NewFile(path, cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), noop
	}

	return logger, func() { _ = closer.Close() }
}
