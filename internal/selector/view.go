package selector

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")) // bright cyan

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("86"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	currentMarkStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42")) // green

	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// View implements tea.Model. Rendering is a side effect only; results
// are determined entirely by Update.
func (m Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	if m.searching {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
	} else if m.input.Value() != "" {
		summary := fmt.Sprintf("/ %s (%d/%d)", m.input.Value(), len(m.filtered), len(m.items))
		b.WriteString(dimStyle.Render(summary))
		b.WriteString("\n\n")
	}

	if len(m.filtered) == 0 {
		b.WriteString(dimStyle.Render("  no matches"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderItems())
	}

	b.WriteString("\n")
	if m.searching {
		b.WriteString(dimStyle.Render("enter done · esc back"))
	} else {
		b.WriteString(dimStyle.Render("↑/↓ move · / filter · enter select · esc quit"))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderItems() string {
	var b strings.Builder

	end := m.scrollOffset + maxVisibleItems
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	if m.scrollOffset > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("    ↑ %d more", m.scrollOffset)))
		b.WriteString("\n")
	}

	maxLabelWidth := m.width - 10
	if maxLabelWidth < 16 {
		maxLabelWidth = 16
	}

	for i := m.scrollOffset; i < end; i++ {
		item := m.items[m.filtered[i]]

		label := runewidth.Truncate(item.Label, maxLabelWidth, "…")
		if item.Secondary != "" {
			label += " " + secondaryStyle.Render("("+item.Secondary+")")
		}

		if i == m.cursor {
			b.WriteString("  " + selectedStyle.Render(" ▸ "+label+" "))
		} else {
			b.WriteString("    " + dimStyle.Render(label))
		}
		if m.current != "" && item.Value == m.current {
			b.WriteString(" " + currentMarkStyle.Render("✓"))
		}
		b.WriteString("\n")
	}

	if remaining := len(m.filtered) - end; remaining > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("    ↓ %d more", remaining)))
		b.WriteString("\n")
	}

	return b.String()
}
