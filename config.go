package llmgateway

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables holding provider credentials.
const (
	EnvOpenAIKey    = "OPENAI_API_KEY"
	EnvAnthropicKey = "ANTHROPIC_API_KEY"
)

// openAIKeyPlaceholder is the sentinel value shipped in .env templates.
// A key still set to it is treated as absent.
const openAIKeyPlaceholder = "YOUR_API_KEY_HERE"

// Config carries all process configuration. It is constructed once at
// startup and passed down explicitly; nothing in the request path reads the
// environment. Credentials come from environment variables (optionally via a
// .env file), non-secret defaults may be overlaid from a YAML file.
type Config struct {
	// OpenAIKey authenticates against OpenAI. Empty means unconfigured.
	OpenAIKey string `yaml:"-"`

	// AnthropicKey authenticates against Anthropic. Empty means unconfigured.
	AnthropicKey string `yaml:"-"`

	// DefaultProvider names the backend used when the caller does not pick
	// one. Defaults to "openai".
	DefaultProvider string `yaml:"default_provider"`

	// OpenAIModel overrides the OpenAI default model when non-empty.
	OpenAIModel string `yaml:"openai_model"`

	// AnthropicModel overrides the Anthropic default model when non-empty.
	AnthropicModel string `yaml:"anthropic_model"`

	// Temperature is the default sampling temperature for all requests.
	Temperature *float64 `yaml:"temperature"`
}

// LoadEnv searches for a .env file starting from the current directory and
// walking up the directory tree. It loads the first .env file found. If no
// .env file is found, it silently continues (using system env vars).
func LoadEnv() {
	dir, err := os.Getwd()
	if err != nil {
		return
	}

	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root, stop
			return
		}
		dir = parent
	}
}

// ConfigFromEnv builds a Config from the process environment. The OpenAI
// placeholder sentinel is normalized to "absent". Call LoadEnv first if .env
// files should be honored.
func ConfigFromEnv() *Config {
	cfg := &Config{
		OpenAIKey:       os.Getenv(EnvOpenAIKey),
		AnthropicKey:    os.Getenv(EnvAnthropicKey),
		DefaultProvider: ProviderOpenAI.String(),
	}

	if cfg.OpenAIKey == openAIKeyPlaceholder {
		cfg.OpenAIKey = ""
	}

	return cfg
}

// ApplyFile overlays non-secret defaults from a YAML file onto the config.
// A missing file is not an error; a malformed one is.
func (c *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if c.DefaultProvider == "" {
		c.DefaultProvider = ProviderOpenAI.String()
	}
	return nil
}

// HasOpenAI reports whether an OpenAI credential is configured.
func (c *Config) HasOpenAI() bool {
	return c.OpenAIKey != ""
}

// HasAnthropic reports whether an Anthropic credential is configured.
func (c *Config) HasAnthropic() bool {
	return c.AnthropicKey != ""
}
