package ui

import "github.com/charmbracelet/lipgloss"

// RenderPanel wraps content with a titled, rounded border. The content
// itself is produced by the caller to avoid import cycles.
func RenderPanel(s Styles, title, content, footer string) string {
	body := lipgloss.JoinVertical(lipgloss.Left, s.PanelTitle.Render(title), content)
	return lipgloss.JoinVertical(lipgloss.Left, s.Panel.Render(body), footer)
}
