package colorfield

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/colorfield/internal/domain/color"
	"github.com/alexisbeaulieu97/colorfield/internal/swatch"
)

// View renders the current model state
func (m Model) View() string {
	var content strings.Builder

	if label, ok := m.field.Label(); ok {
		content.WriteString(label)
		content.WriteString("\n")
	}

	content.WriteString(m.renderRow())
	content.WriteString("\n")

	if m.sink.open {
		content.WriteString(m.renderMenu())
		content.WriteString("\n")
	}

	content.WriteString(m.renderFooter())
	return content.String()
}

// renderRow renders the text field and the swatch button side by side
func (m Model) renderRow() string {
	status := " "
	state := m.field.State()
	switch {
	case state.Pending:
		status = m.spinner.View()
	case !state.Valid:
		status = lipgloss.NewStyle().Foreground(errorColor).Render("✗")
	}

	field := m.root.Style().Render(m.text.input.View() + " " + status)
	return lipgloss.JoinHorizontal(lipgloss.Center, field, " ", m.button.View(!m.text.Focused()))
}

// renderMenu renders the swatch dropdown
func (m Model) renderMenu() string {
	lines := make([]string, 0, len(m.sink.items))
	for i, item := range m.sink.items {
		style := menuItemStyle
		marker := "  "
		if i == m.sink.cursor {
			style = menuSelectedStyle
			marker = "› "
		}
		lines = append(lines, style.Render(marker+renderItem(item)))
	}
	return menuStyle.Render(strings.Join(lines, "\n"))
}

func renderItem(item swatch.Item) string {
	switch item.Kind {
	case swatch.ItemCustom:
		return "+  " + item.Label + "…"
	case swatch.ItemRemove:
		return "∅  " + item.Label
	default:
		return chip(color.Value(item.Value), lipgloss.NewStyle(), "  ") + " " + item.Label
	}
}

// renderFooter renders the key help line
func (m Model) renderFooter() string {
	var help string
	switch {
	case m.sink.open:
		help = "↑/↓ move • enter select • esc close"
	case m.text.Focused():
		help = "enter accept • tab swatches • esc cancel"
	default:
		help = "enter open swatches • tab text • esc cancel"
	}
	return footerStyle.Render(help)
}
