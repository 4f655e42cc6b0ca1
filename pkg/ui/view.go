package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"foldline/pkg/outline"
)

func (m Model) View() string {
	if m.mode == modeHelp {
		return m.helpView()
	}

	var sb strings.Builder
	nodes := m.engine.DisplayList()
	for i, n := range nodes {
		sb.WriteString(m.renderRow(i, n))
		sb.WriteString("\n")
	}
	if len(nodes) == 0 {
		sb.WriteString(m.theme.Status.Render("Empty outline. Press a to add an item, A to add a folder."))
		sb.WriteString("\n")
	}
	// The grab target can sit one past the last row.
	if m.mode == modeGrab && m.target == len(nodes) {
		sb.WriteString(m.theme.Grabbed.Render("▸ (end)"))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.renderFooter())
	return sb.String()
}

func (m Model) renderRow(i int, n outline.Node) string {
	var line string
	style := m.theme.Renderer.NewStyle()
	switch v := n.(type) {
	case outline.ItemNode:
		indent := ""
		if v.Nested {
			indent = "    "
		}
		line = indent + "• " + v.Item.Name
	case outline.FolderNode:
		marker := "▸"
		if v.Folder.Expanded {
			marker = "▾"
		}
		line = fmt.Sprintf("%s %s (%d)", marker, v.Folder.Name, len(v.Folder.Items))
		style = m.theme.Folder
	case outline.DropZoneNode:
		line = "    ⤷ drop here to leave folder"
		style = m.theme.DropZone
	}

	// Truncate before styling so escape sequences stay intact.
	line = style.Render(runewidth.Truncate(line, max(m.width-4, 20), "…"))

	if m.mode == modeGrab {
		switch {
		case i == m.grabSrc:
			return m.theme.Grabbed.Render("✥ ") + line
		case i == m.target:
			return m.theme.Grabbed.Render("▸ ") + line
		default:
			return "  " + line
		}
	}
	if i == m.cursor {
		return m.theme.Selected.Render("> " + line)
	}
	return "  " + line
}

func (m Model) renderFooter() string {
	if m.mode == modeInput {
		prompt := "name"
		switch m.action {
		case actionAddFolder:
			prompt = "new folder"
		case actionAddItem:
			prompt = "new item"
		case actionRename:
			prompt = "rename"
		}
		return m.theme.Status.Render(prompt+": ") + m.input.View()
	}

	left := m.theme.Status.Render(footerHints(m.mode == modeGrab))
	if m.status == "" {
		return left
	}
	statusStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Secondary)
	return lipgloss.JoinVertical(lipgloss.Left, statusStyle.Render(m.status), left)
}
