package ui

import (
	"fmt"

	"fall-calibrate.klederson.com/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// RenderTitleBar renders the welcome bar shown before the first prompt.
func RenderTitleBar(s Styles, width int) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)
	right := fmt.Sprintf("target: %s ", config.TargetFile)

	gap := width - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return s.TitleBar.Render(title + padding + right)
}

// RenderSection renders a "--- Title ---" heading.
func RenderSection(s Styles, title string) string {
	return s.Section.Render(fmt.Sprintf("--- %s ---", title))
}
