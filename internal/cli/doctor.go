package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	llmgateway "github.com/bchan/llmgateway-go"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check provider connectivity and configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		gw, err := buildGateway(cfg)
		if err != nil {
			return err
		}

		printHeader("Provider Check")

		const testPrompt = "Say 'ok' if you can read this."
		failures := 0

		for _, id := range []llmgateway.ProviderID{llmgateway.ProviderOpenAI, llmgateway.ProviderAnthropic} {
			reply, err := gw.Complete(context.Background(), id.String(), testPrompt, paramsFor(cfg, id.String()))
			if err != nil {
				printError(fmt.Sprintf("%s: %v", id, err))
				failures++
				continue
			}
			printSuccess(fmt.Sprintf("%s: %s", id, strings.TrimSpace(reply)))
		}

		if failures > 0 {
			return fmt.Errorf("%d provider(s) failed the connectivity check", failures)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
