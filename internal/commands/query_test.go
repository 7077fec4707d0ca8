package commands

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/diogo/emailai/internal/api"
	"github.com/diogo/emailai/internal/chat"
	"github.com/diogo/emailai/internal/config"
	apierrors "github.com/diogo/emailai/internal/errors"
	"github.com/diogo/emailai/internal/models"
)

func TestRunQuery_RawOutput(t *testing.T) {
	client := api.NewMockClient("Dear team,\n\nthe **launch** went great.")
	env := setupCommandTest(t, client)

	if err := runQuery("Thank the team for the launch"); err != nil {
		t.Fatalf("runQuery() error: %v", err)
	}

	if got := env.stdout.String(); got != "Dear team,\n\nthe **launch** went great." {
		t.Errorf("stdout = %q", got)
	}
	if client.LastPrompt() != "Thank the team for the launch" {
		t.Errorf("LastPrompt() = %q", client.LastPrompt())
	}
	if client.Calls() != 1 {
		t.Errorf("Calls() = %d, want 1", client.Calls())
	}
}

func TestRunQuery_TrailingNewlines(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   string
	}{
		{"file newline", "Invoice reminder\n", "Invoice reminder"},
		{"crlf", "Invoice reminder\r\n\r\n", "Invoice reminder"},
		{"inner spacing kept", "  Invoice reminder \n", "  Invoice reminder "},
		{"inner newlines kept", "Invoice\n\n- net 30\n", "Invoice\n\n- net 30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := api.NewMockClient("ok")
			setupCommandTest(t, client)

			if err := runQuery(tt.prompt); err != nil {
				t.Fatalf("runQuery() error: %v", err)
			}
			if client.LastPrompt() != tt.want {
				t.Errorf("LastPrompt() = %q, want %q", client.LastPrompt(), tt.want)
			}
		})
	}
}

func TestRunQuery_EmptyPrompt(t *testing.T) {
	client := api.NewMockClient("unused")
	setupCommandTest(t, client)

	for _, prompt := range []string{"", "   ", "\n\t"} {
		if err := runQuery(prompt); err == nil {
			t.Errorf("runQuery(%q) should fail", prompt)
		}
	}
	if client.Calls() != 0 {
		t.Errorf("Calls() = %d, want 0", client.Calls())
	}
}

func TestRunQuery_Failure(t *testing.T) {
	client := api.NewFailingMockClient(apierrors.NewAPIError(500, "/models/gemini-pro:generateContent", "INTERNAL"))
	env := setupCommandTest(t, client)

	err := runQuery("Meeting reschedule")
	if err == nil {
		t.Fatal("expected error")
	}
	if !apierrors.IsRequestFailed(err) {
		t.Errorf("error should be a request failure: %v", err)
	}
	if got := strings.TrimSpace(env.stdout.String()); got != chat.FallbackAnswer {
		t.Errorf("stdout = %q, want fallback", got)
	}
	if !strings.Contains(env.stderr.String(), "generate content failed") {
		t.Errorf("failure should be logged, stderr = %q", env.stderr.String())
	}
}

func TestRunQuery_FailureWithPlainError(t *testing.T) {
	client := api.NewFailingMockClient(errors.New("connection reset"))
	env := setupCommandTest(t, client)

	err := runQuery("Meeting reschedule")
	if !apierrors.IsRequestFailed(err) {
		t.Errorf("any failed request should report as request failed: %v", err)
	}
	if !strings.Contains(env.stdout.String(), chat.FallbackAnswer) {
		t.Error("fallback should be printed")
	}
}

func TestRunQuery_ClientError(t *testing.T) {
	setupCommandTest(t, nil)
	deps.NewClient = func(cfg config.Config) (api.ClientInterface, error) {
		return nil, apierrors.ErrNoAPIKey
	}

	err := runQuery("hello")
	if !errors.Is(err, apierrors.ErrNoAPIKey) {
		t.Errorf("expected ErrNoAPIKey, got %v", err)
	}
	if apierrors.IsRequestFailed(err) {
		t.Error("setup errors are not request failures")
	}
}

func TestRunQuery_OutputFile(t *testing.T) {
	client := api.NewMockClient("# Subject\n\nBody")
	env := setupCommandTest(t, client)

	outputFlag = filepath.Join(t.TempDir(), "mail.md")
	if err := runQuery("Subject"); err != nil {
		t.Fatalf("runQuery() error: %v", err)
	}

	data, err := os.ReadFile(outputFlag)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(data) != "# Subject\n\nBody" {
		t.Errorf("file content = %q", string(data))
	}
	if env.stdout.Len() != 0 {
		t.Errorf("stdout should be empty, got %q", env.stdout.String())
	}
}

func TestRunQuery_OutputFileError(t *testing.T) {
	setupCommandTest(t, api.NewMockClient("Body"))

	outputFlag = filepath.Join(t.TempDir(), "missing", "mail.md")
	if err := runQuery("Subject"); err == nil {
		t.Error("expected write error")
	}
}

func TestRunQuery_Clipboard(t *testing.T) {
	client := api.NewMockClient("Copied body")
	env := setupCommandTest(t, client)

	cfg := config.DefaultConfig()
	cfg.CopyToClipboard = true
	if err := config.SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig() error: %v", err)
	}

	if err := runQuery("Subject"); err != nil {
		t.Fatalf("runQuery() error: %v", err)
	}
	if len(env.clipboard) != 1 || env.clipboard[0] != "Copied body" {
		t.Errorf("clipboard = %v", env.clipboard)
	}
}

func TestRunQuery_ClipboardFailureIsNotFatal(t *testing.T) {
	env := setupCommandTest(t, api.NewMockClient("Body"))
	deps.Clipboard = func(string) error { return errors.New("no display") }

	cfg := config.DefaultConfig()
	cfg.CopyToClipboard = true
	if err := config.SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig() error: %v", err)
	}

	if err := runQuery("Subject"); err != nil {
		t.Fatalf("runQuery() error: %v", err)
	}
	if !strings.Contains(env.stderr.String(), "Failed to copy to clipboard") {
		t.Errorf("stderr = %q", env.stderr.String())
	}
	if env.stdout.String() != "Body" {
		t.Errorf("stdout = %q", env.stdout.String())
	}
}

func TestRunQuery_TTYRendersMarkdown(t *testing.T) {
	env := setupCommandTest(t, api.NewMockClient("Dear **Alice**, see you soon."))
	deps.IsTTY = func() bool { return true }

	if err := runQuery("Lunch invite"); err != nil {
		t.Fatalf("runQuery() error: %v", err)
	}

	out := env.stdout.String()
	if !strings.Contains(out, "Email AI") {
		t.Errorf("answer label missing: %q", out)
	}
	if !strings.Contains(out, "Alice") {
		t.Errorf("answer missing: %q", out)
	}
	if !strings.Contains(out, "╭") {
		t.Errorf("answer should be drawn in a bubble: %q", out)
	}
	if !strings.Contains(env.stderr.String(), "Lunch invite") {
		t.Error("question should be echoed on stderr")
	}
}

func TestRunQuery_Flags(t *testing.T) {
	env := setupCommandTest(t, api.NewMockClient("ok"))

	modelFlag = "gemini-1.5-flash"
	logLevelFlag = "debug"
	if err := runQuery("Subject"); err != nil {
		t.Fatalf("runQuery() error: %v", err)
	}

	if env.cfg.DefaultModel != "gemini-1.5-flash" {
		t.Errorf("DefaultModel = %q", env.cfg.DefaultModel)
	}
	if env.cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", env.cfg.LogLevel)
	}
	if env.cfg.APIKey != "test-key" {
		t.Errorf("APIKey = %q", env.cfg.APIKey)
	}
}

func TestNewAPIClient(t *testing.T) {
	cfg := config.DefaultConfig()

	if _, err := newAPIClient(cfg); !errors.Is(err, apierrors.ErrNoAPIKey) {
		t.Errorf("expected ErrNoAPIKey, got %v", err)
	}

	cfg.APIKey = "key"
	cfg.DefaultModel = "gemini-1.5-pro"
	cfg.Endpoint = "http://localhost:8080/"

	client, err := newAPIClient(cfg)
	if err != nil {
		t.Fatalf("newAPIClient() error: %v", err)
	}
	if client.GetModel() != models.ModelGemini15Pro {
		t.Errorf("model = %v", client.GetModel())
	}
	if _, ok := client.(*api.Client); !ok {
		t.Fatalf("expected *api.Client, got %T", client)
	}
}

func TestSpinner_Halt(t *testing.T) {
	var out strings.Builder
	s := newSpinner(&out, "Thinking...")
	s.start()
	s.halt()
	s.halt()

	if !strings.Contains(out.String(), "Thinking...") {
		t.Errorf("spinner never drew: %q", out.String())
	}
}
