package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/diogo/emailai/internal/config"
	"github.com/diogo/emailai/internal/render"
)

var forceInitFlag bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect emailai configuration",
	Long: `Inspect the resolved configuration.

Settings come from, in increasing order of precedence: the build, the
config file (~/.emailai/config.json), a .env file in the current
directory, environment variables and command-line flags.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigShow()
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, path)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigInit(forceInitFlag)
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInitFlag, "force", false, "Overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigShow() error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	if style := cfg.Markdown.Style; style != "" && !render.StyleExists(style) {
		fmt.Fprintf(deps.Stderr, "warning: markdown style %q is neither a bundled style (%s) nor a readable file\n",
			style, render.StyleNames())
	}

	// Never print the key itself
	cfg.APIKey = cfg.MaskedAPIKey()

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	fmt.Fprintln(deps.Stdout, string(data))
	return nil
}

func runConfigInit(force bool) error {
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
	}

	if err := config.SaveConfig(config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Wrote %s\n", path)
	return nil
}
