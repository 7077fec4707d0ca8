// Package commands provides CLI commands for emailai.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/diogo/emailai/internal/config"
	apierrors "github.com/diogo/emailai/internal/errors"
)

var (
	// Global flags
	modelFlag    string
	logLevelFlag string
	outputFlag   string
	fileFlag     string
	versionFlag  bool

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "emailai [subject]",
	Short: "Write emails with Gemini from the terminal",
	Long: `emailai sends what you type to the Gemini generateContent API and
renders the answer as markdown. Give it the subject of the email you want
written and it drafts the rest.

The API key is read from EMAILAI_API_KEY (or a .env file in the current
directory), from ~/.emailai/config.json, or from the build.

Examples:
  emailai chat                                Start the chat screen
  emailai "Thank the team for the launch"     Draft a single email
  emailai -f notes.md                         Read the subject from a file
  cat notes.md | emailai                      Read the subject from stdin
  emailai "Late invoice reminder" -o mail.md  Save the answer to a file`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionFlag {
			fmt.Fprintf(deps.Stdout, "emailai %s (built %s)\n", Version, BuildTime)
			return nil
		}

		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return runQuery(string(data))
		}

		if deps.StdinPiped() {
			data, err := io.ReadAll(deps.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return runQuery(string(data))
		}

		if len(args) > 0 {
			return runQuery(args[0])
		}

		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Failed requests were already reported with the fallback answer
		if !apierrors.IsRequestFailed(err) {
			fmt.Fprintln(deps.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&modelFlag, "model", "m", "", "Model to use (e.g., gemini-pro)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save the answer to file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read the subject from file")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "v", false, "Show version and exit")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings resolves the configuration and applies the command-line flags,
// which take precedence over everything else
func loadSettings() (config.Config, error) {
	cfg, err := config.Resolve()
	if err != nil {
		return cfg, err
	}

	if modelFlag != "" {
		cfg.DefaultModel = modelFlag
	}
	if logLevelFlag != "" {
		cfg.LogLevel = logLevelFlag
	}

	return cfg, nil
}
