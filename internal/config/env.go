package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	apierrors "github.com/diogo/emailai/internal/errors"
)

// BuildAPIKey is the API key baked in at build time:
//
//	go build -ldflags "-X github.com/diogo/emailai/internal/config.BuildAPIKey=..."
var BuildAPIKey = ""

// Environment variable names
const (
	EnvAPIKey       = "EMAILAI_API_KEY"
	EnvLegacyAPIKey = "VITE_API_GENERATIVE_LANGUAGE_CLIENT"
	EnvModel        = "EMAILAI_MODEL"
	EnvEndpoint     = "EMAILAI_ENDPOINT"
	EnvLogLevel     = "EMAILAI_LOG_LEVEL"
)

// LoadDotEnv loads variables from the given .env files into the process
// environment. Variables that are already set are left untouched and
// missing files are ignored.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		_ = godotenv.Load(f)
	}
}

// ApplyEnv overlays environment variables on top of cfg.
// The API key resolves as env > config file > build-time default.
func ApplyEnv(cfg Config) Config {
	if key := firstEnv(EnvAPIKey, EnvLegacyAPIKey); key != "" {
		cfg.APIKey = key
	}
	if cfg.APIKey == "" {
		cfg.APIKey = BuildAPIKey
	}
	if model := os.Getenv(EnvModel); model != "" {
		cfg.DefaultModel = model
	}
	if endpoint := os.Getenv(EnvEndpoint); endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.LogLevel = level
	}
	return cfg
}

// Resolve loads the config file, the .env file and the environment, in
// increasing order of precedence.
func Resolve() (Config, error) {
	LoadDotEnv()
	cfg, err := LoadConfig()
	return ApplyEnv(cfg), err
}

// RequireAPIKey returns ErrNoAPIKey when no key could be resolved
func (c Config) RequireAPIKey() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return apierrors.ErrNoAPIKey
	}
	return nil
}

func firstEnv(names ...string) string {
	for _, n := range names {
		if v := strings.TrimSpace(os.Getenv(n)); v != "" {
			return v
		}
	}
	return ""
}
