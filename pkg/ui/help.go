package ui

import "github.com/charmbracelet/glamour"

// helpView renders the key reference overlay as markdown.
func (m Model) helpView() string {
	width := m.width
	if width <= 0 || width > 100 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpText
	}
	out, err := r.Render(helpText)
	if err != nil {
		return helpText
	}
	return out
}
