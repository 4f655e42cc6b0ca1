package ui

import "github.com/charmbracelet/lipgloss"

// Theme bundles the renderer and the styles every view draws with.
type Theme struct {
	Renderer *lipgloss.Renderer

	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor

	Selected lipgloss.Style // cursor row
	Grabbed  lipgloss.Style // row being carried by a grab
	Folder   lipgloss.Style // folder header rows
	DropZone lipgloss.Style // drop zone sentinel rows
	Status   lipgloss.Style // footer bar
}

// DefaultTheme builds the standard adaptive palette on the given
// renderer.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	t := Theme{
		Renderer:  r,
		Primary:   lipgloss.AdaptiveColor{Light: "#1a73e8", Dark: "#8ab4f8"},
		Secondary: lipgloss.AdaptiveColor{Light: "#188038", Dark: "#81c995"},
		Muted:     lipgloss.AdaptiveColor{Light: "#5f6368", Dark: "#9aa0a6"},
		Accent:    lipgloss.AdaptiveColor{Light: "#c5221f", Dark: "#f28b82"},
	}
	t.Selected = r.NewStyle().
		Background(lipgloss.AdaptiveColor{Light: "#E0E0E0", Dark: "#2a2a2a"}).
		Bold(true)
	t.Grabbed = r.NewStyle().
		Foreground(t.Accent).
		Bold(true)
	t.Folder = r.NewStyle().
		Foreground(t.Primary).
		Bold(true)
	t.DropZone = r.NewStyle().
		Foreground(t.Muted).
		Italic(true)
	t.Status = r.NewStyle().
		Foreground(t.Muted)
	return t
}
