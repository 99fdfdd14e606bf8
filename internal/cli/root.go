package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	llmgateway "github.com/bchan/llmgateway-go"
	"github.com/bchan/llmgateway-go/providers/anthropic"
	"github.com/bchan/llmgateway-go/providers/openai"
)

var (
	configPath   string
	providerName string
	versionInfo  string
)

// SetVersion sets the version information from build-time ldflags
func SetVersion(version, commit, date string) {
	versionInfo = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	rootCmd.Version = versionInfo
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "llmgate",
	Short: "Forward prompts to hosted LLM providers",
	Long: `llmgate - a thin gateway over OpenAI and Anthropic

Reads credentials from OPENAI_API_KEY / ANTHROPIC_API_KEY (a .env file in the
working directory or any parent is honored), forwards your prompt to the
chosen provider, and prints the completion.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default to the interactive menu if no subcommand specified
		return menuCmd.RunE(cmd, args)
	},
}

func init() {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "~"
	}
	defaultConfig := filepath.Join(home, ".config", "llmgate", "config.yaml")

	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfig, "Defaults file (YAML)")
	rootCmd.PersistentFlags().StringVarP(&providerName, "provider", "p", "", "Provider to use (openai or anthropic)")
}

// loadConfig builds the process configuration once: .env discovery, then
// environment variables, then the YAML defaults overlay.
func loadConfig() (*llmgateway.Config, error) {
	llmgateway.LoadEnv()
	cfg := llmgateway.ConfigFromEnv()
	if err := cfg.ApplyFile(configPath); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildGateway registers every provider whose credential is configured.
// Unconfigured vendors are left out of the registry, so the gateway reports
// them as missing-key rather than unknown.
func buildGateway(cfg *llmgateway.Config) (*llmgateway.Gateway, error) {
	registry := llmgateway.NewRegistry()

	if cfg.HasOpenAI() {
		p, err := openai.NewProvider(cfg.OpenAIKey)
		if err != nil {
			return nil, err
		}
		registry.Register(p)
	}

	if cfg.HasAnthropic() {
		p, err := anthropic.NewProvider(cfg.AnthropicKey)
		if err != nil {
			return nil, err
		}
		registry.Register(p)
	}

	return llmgateway.New(registry), nil
}

// chosenProvider resolves the provider to use for this invocation: the
// --provider flag wins, then the config default, then "openai".
func chosenProvider(cfg *llmgateway.Config) string {
	if providerName != "" {
		return providerName
	}
	if cfg.DefaultProvider != "" {
		return cfg.DefaultProvider
	}
	return llmgateway.ProviderOpenAI.String()
}

// paramsFor builds request params from configured defaults for a provider.
func paramsFor(cfg *llmgateway.Config, provider string) *llmgateway.RequestParams {
	params := &llmgateway.RequestParams{
		Temperature: cfg.Temperature,
	}

	switch llmgateway.ParseProviderID(provider) {
	case llmgateway.ProviderOpenAI:
		if cfg.OpenAIModel != "" {
			params.Model = llmgateway.StrPtr(cfg.OpenAIModel)
		}
	case llmgateway.ProviderAnthropic:
		if cfg.AnthropicModel != "" {
			params.Model = llmgateway.StrPtr(cfg.AnthropicModel)
		}
	}

	return params
}
