package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Global styles used across commands
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	ruleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("cyan"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("green"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("red"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("blue"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("yellow"))

	answerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("green")).
			Bold(true)
)

const ruleWidth = 60

func printHeader(text string) {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Println()
	fmt.Println(ruleStyle.Render(rule))
	fmt.Println(headerStyle.Render(center(text, ruleWidth)))
	fmt.Println(ruleStyle.Render(rule))
	fmt.Println()
}

func printRule() {
	fmt.Println(ruleStyle.Render(strings.Repeat("-", ruleWidth)))
}

func printSuccess(text string) {
	fmt.Println(successStyle.Render("✓ " + text))
}

func printError(text string) {
	fmt.Println(errorStyle.Render("✗ " + text))
}

func printInfo(text string) {
	fmt.Println(infoStyle.Render("ℹ " + text))
}

func center(text string, width int) string {
	if len(text) >= width {
		return text
	}
	pad := (width - len(text)) / 2
	return strings.Repeat(" ", pad) + text
}
