package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	llmgateway "github.com/bchan/llmgateway-go"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive menu (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		gw, err := buildGateway(cfg)
		if err != nil {
			return err
		}

		printHeader("LLM Gateway CLI")
		fmt.Println("Welcome to your LLM-powered application!")

		// Verify connectivity before offering the menu; abort startup on
		// failure, matching the doctor command's diagnostics.
		provider := chosenProvider(cfg)
		printInfo("Testing LLM connection...")
		reply, err := gw.Complete(context.Background(), provider,
			"Say 'Hello! LLM is working!' if you can read this.", paramsFor(cfg, provider))
		if err != nil {
			printError("Error connecting to LLM: " + err.Error())
			fmt.Println()
			fmt.Println(promptStyle.Render("Please check:"))
			fmt.Println("  1. Your API keys are correctly set in the .env file")
			fmt.Println("  2. Your internet connection is working")
			return fmt.Errorf("aborting due to LLM connection error")
		}
		fmt.Println(ruleStyle.Render("LLM Response:") + " " + reply)
		printSuccess("LLM connection successful!")

		reader := bufio.NewReader(os.Stdin)
		for {
			fmt.Println()
			fmt.Println(ruleStyle.Render("Choose an option:"))
			fmt.Println("  1. Run Q&A mode")
			fmt.Println("  2. Test LLM providers")
			fmt.Println("  3. Exit")

			choice, err := readLine(reader, "Enter your choice (1-3): ")
			if err != nil {
				return nil
			}

			switch choice {
			case "1":
				runQA(gw, cfg, reader)
			case "2":
				testProviders(gw, cfg)
			default:
				printInfo("Goodbye!")
				return nil
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

// runQA loops over stdin questions until the quit keyword. Every gateway
// error is printed and the loop continues.
func runQA(gw *llmgateway.Gateway, cfg *llmgateway.Config, reader *bufio.Reader) {
	printHeader("Q&A Mode")
	printInfo("Type 'quit' to exit")
	printRule()

	provider := chosenProvider(cfg)
	for {
		question, err := readLine(reader, "Enter your question (or 'quit'): ")
		if err != nil {
			return
		}
		if strings.EqualFold(question, "quit") {
			printInfo("Goodbye!")
			return
		}
		if question == "" {
			continue
		}

		printInfo("Thinking...")
		answer, err := gw.Complete(context.Background(), provider, question, paramsFor(cfg, provider))
		if err != nil {
			printError("Error: " + err.Error())
			printInfo("Make sure your API keys are set correctly.")
			continue
		}

		fmt.Println()
		fmt.Println(answerStyle.Render("Answer:"))
		fmt.Println(answer)
		fmt.Println()
		printRule()
	}
}

// testProviders sends a smoke-test prompt to each vendor backend.
func testProviders(gw *llmgateway.Gateway, cfg *llmgateway.Config) {
	printHeader("Testing LLM Providers")

	const testPrompt = "What is 2+2? Answer with just the number."

	for _, provider := range []string{"openai", "anthropic"} {
		printInfo("Testing " + provider + "...")
		reply, err := gw.Complete(context.Background(), provider, testPrompt, paramsFor(cfg, provider))
		if err != nil {
			printError(provider + ": " + err.Error())
			continue
		}
		printSuccess(provider + ": " + strings.TrimSpace(reply))
	}

	fmt.Println()
	printSuccess("Provider testing complete!")
	printRule()
}

func readLine(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Print(promptStyle.Render("> " + prompt))
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
