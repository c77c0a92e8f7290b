package colorfield

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/colorfield/internal/colorinput"
)

var (
	// Colors
	primaryColor = lipgloss.Color("99")  // Purple
	errorColor   = lipgloss.Color("196") // Red
	mutedColor   = lipgloss.Color("245") // Gray
	accentColor  = lipgloss.Color("212") // Pink
	textColor    = lipgloss.Color("#E6EAF2")

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(0)

	inputTextStyle   = lipgloss.NewStyle().Foreground(textColor)
	placeholderStyle = lipgloss.NewStyle().Foreground(mutedColor)
	cursorStyle      = lipgloss.NewStyle().Foreground(accentColor)

	containerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			PaddingLeft(1).
			PaddingRight(1)

	swatchStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor)

	swatchFocusedStyle = swatchStyle.
				BorderForeground(accentColor)

	menuStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(primaryColor).
			PaddingLeft(1).
			PaddingRight(1)

	menuItemStyle     = lipgloss.NewStyle().PaddingLeft(1)
	menuSelectedStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Foreground(accentColor).
				Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)
)

// FocusedClass is applied to the container while the text field has focus.
const FocusedClass = "textfield-focused"

// DefaultTheme maps presentation classes to styles. Only the border color
// of a class style is used.
func DefaultTheme() map[string]lipgloss.Style {
	return map[string]lipgloss.Style{
		colorinput.DefaultInvalidClass: lipgloss.NewStyle().BorderForeground(errorColor),
		FocusedClass:                   lipgloss.NewStyle().BorderForeground(primaryColor),
	}
}
