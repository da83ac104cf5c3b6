package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	var b strings.Builder

	header := fmt.Sprintf("%s   %s %d",
		titleStyle.Render("Items"),
		accentStyle.Render("Total"), len(m.items),
	)
	b.WriteString(header + "\n\n")

	if m.loading {
		b.WriteString(fmt.Sprintf("%s Loading items...\n", m.spin.View()))
		return panelString(b.String())
	}

	if len(m.items) == 0 {
		b.WriteString(mutedStyle.Render("No items yet. Press 'a' to add one.") + "\n")
	}

	for i, it := range m.items {
		prefix := "  "
		title := it.Title
		if i == m.cursor {
			prefix = selectedStyle.Render("> ")
			title = selectedStyle.Render(title)
		}
		line := fmt.Sprintf("%s%s  %s", prefix, title, mutedStyle.Render(it.Description))
		if i == m.cursor && m.editingID == it.ID {
			line += " " + accentStyle.Render("(editing)")
		}
		b.WriteString(line + "\n")
		b.WriteString("    " + helpStyle.Render(it.CreatedAt.Local().Format("2006-01-02 15:04")) + "\n")
	}

	if m.notice.text != "" {
		style := successStyle
		if m.notice.isErr {
			style = errorStyle
		}
		b.WriteString("\n" + style.Render(m.notice.text) + "\n")
	}

	switch m.mode {
	case modeCreate, modeEdit:
		formTitle := "Add new item"
		if m.mode == modeEdit {
			formTitle = "Edit item"
		}
		form := formTitle + "\n" +
			m.titleInput.View() + "\n" +
			m.descInput.View()
		b.WriteString("\n" + formBoxStyle.Render(form) + "\n")
		b.WriteString(helpStyle.Render("tab switch field • enter save • esc cancel") + "\n")
	case modeConfirmDelete:
		if m.cursor < len(m.items) {
			prompt := fmt.Sprintf("Delete %q? (y/n)", m.items[m.cursor].Title)
			b.WriteString("\n" + errorStyle.Render(prompt) + "\n")
		}
	default:
		b.WriteString("\n" + helpStyle.Render("a add • e edit • d delete • r refresh • q quit") + "\n")
	}

	return panelString(b.String())
}

func panelString(inner string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(inner)
}
