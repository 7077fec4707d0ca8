package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/diogo/emailai/internal/api"
	"github.com/diogo/emailai/internal/chat"
	"github.com/diogo/emailai/internal/config"
	"github.com/diogo/emailai/internal/render"
)

// testEnv captures everything a command writes and what it handed to its
// dependencies
type testEnv struct {
	stdout    *bytes.Buffer
	stderr    *bytes.Buffer
	clipboard []string
	cfg       config.Config // last config passed to NewClient
	tuiRuns   []*chat.Controller
}

// setupCommandTest isolates HOME, the working directory and the environment,
// and swaps deps for fakes bound to client
func setupCommandTest(t *testing.T, client api.ClientInterface) *testEnv {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv(config.EnvAPIKey, "test-key")
	t.Setenv(config.EnvLegacyAPIKey, "")
	t.Setenv(config.EnvModel, "")
	t.Setenv(config.EnvEndpoint, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv("GLAMOUR_STYLE", render.StyleNoTTY)

	env := &testEnv{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}

	old := deps
	deps = &Dependencies{
		Stdin:      strings.NewReader(""),
		Stdout:     env.stdout,
		Stderr:     env.stderr,
		StdinPiped: func() bool { return false },
		IsTTY:      func() bool { return false },
		TermWidth:  func() int { return 80 },
		NewClient: func(cfg config.Config) (api.ClientInterface, error) {
			env.cfg = cfg
			return client, nil
		},
		RunTUI: func(controller *chat.Controller, opts render.Options) error {
			env.tuiRuns = append(env.tuiRuns, controller)
			return nil
		},
		Clipboard: func(text string) error {
			env.clipboard = append(env.clipboard, text)
			return nil
		},
	}
	rootCmd.SetOut(env.stdout)
	rootCmd.SetErr(env.stderr)

	t.Cleanup(func() {
		deps = old
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		modelFlag = ""
		logLevelFlag = ""
		outputFlag = ""
		fileFlag = ""
		versionFlag = false
		forceInitFlag = false
	})

	return env
}

// runRoot executes the root command with args
func runRoot(args ...string) error {
	if args == nil {
		// a nil slice makes cobra fall back to os.Args
		args = []string{}
	}
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}
