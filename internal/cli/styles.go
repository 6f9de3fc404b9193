package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			MarginBottom(1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2).
			MarginRight(1)

	LabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	ValueStyle = lipgloss.NewStyle().Bold(true)

	GoodStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	WarnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	AlertStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	DimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// StatCard renders one labeled value in a bordered card.
func StatCard(label, value string) string {
	content := LabelStyle.Render(label) + "\n" + ValueStyle.Render(value)
	return CardStyle.Render(content)
}

// StatRow renders cards side by side.
func StatRow(cards ...string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// PrintTitle prints a styled section title.
func PrintTitle(title string) {
	fmt.Println(TitleStyle.Render(title))
}

// PrintKV prints an aligned label/value line.
func PrintKV(label, value string) {
	fmt.Printf("%s %s\n", LabelStyle.Render(label+":"), value)
}

// Rule prints a dim horizontal rule.
func Rule(width int) {
	fmt.Println(DimStyle.Render(strings.Repeat("─", width)))
}
