package colorfield

import (
	"sort"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/colorfield/internal/colorinput"
	"github.com/alexisbeaulieu97/colorfield/internal/domain/color"
	"github.com/alexisbeaulieu97/colorfield/internal/swatch"
)

// textField adapts a textinput bubble to colorinput.TextField.
type textField struct {
	input textinput.Model
}

func newTextField() *textField {
	in := textinput.New()
	in.Placeholder = "#rrggbb or color name"
	in.CharLimit = 64
	in.Width = 28
	in.Prompt = ""
	in.TextStyle = inputTextStyle
	in.PlaceholderStyle = placeholderStyle
	in.Cursor.Style = cursorStyle
	return &textField{input: in}
}

func (t *textField) Value() color.Value { return color.Value(t.input.Value()) }

func (t *textField) SetValue(v color.Value) {
	t.input.SetValue(string(v))
	t.input.CursorEnd()
}

func (t *textField) Focus() { t.input.Focus() }

func (t *textField) Blur() { t.input.Blur() }

func (t *textField) Focused() bool { return t.input.Focused() }

// swatchButton shows the committed color next to the text field.
type swatchButton struct {
	background color.Value
}

func (b *swatchButton) SetBackground(v color.Value) { b.background = v }

func (b *swatchButton) Background() color.Value { return b.background }

func (b *swatchButton) View(focused bool) string {
	style := swatchStyle
	if focused {
		style = swatchFocusedStyle
	}
	return chip(b.background, style, "   ")
}

// container is the field's root element. It tracks presentation classes and
// maps them onto lipgloss styles.
type container struct {
	classes map[string]bool
	theme   map[string]lipgloss.Style
	invalid string
}

func newContainer(theme map[string]lipgloss.Style) *container {
	own := make(map[string]lipgloss.Style, len(theme)+1)
	for name, style := range theme {
		own[name] = style
	}
	return &container{classes: make(map[string]bool), theme: own}
}

// useInvalidClass names the class the field sets while its text is
// rejected. A theme without a style for it borrows the default invalid style.
func (c *container) useInvalidClass(class string) {
	c.invalid = class
	if _, ok := c.theme[class]; ok {
		return
	}
	if style, ok := c.theme[colorinput.DefaultInvalidClass]; ok {
		c.theme[class] = style
	}
}

func (c *container) AddClass(class string) { c.classes[class] = true }

func (c *container) RemoveClass(class string) { delete(c.classes, class) }

func (c *container) HasClass(class string) bool { return c.classes[class] }

// Style returns the container style with the border color of every active
// class applied in name order. The invalid class always applies last.
func (c *container) Style() lipgloss.Style {
	names := make([]string, 0, len(c.classes))
	for name := range c.classes {
		if name != c.invalid {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if c.classes[c.invalid] {
		names = append(names, c.invalid)
	}

	style := containerStyle
	for _, name := range names {
		if s, ok := c.theme[name]; ok {
			style = style.BorderForeground(s.GetBorderTopForeground())
		}
	}
	return style
}

// dropdown is the sink: it hosts the swatch menu and knows which swatch
// buttons are mounted.
type dropdown struct {
	buttons map[string]colorinput.SwatchButton
	open    bool
	items   []swatch.Item
	cursor  int
}

func newDropdown() *dropdown {
	return &dropdown{buttons: make(map[string]colorinput.SwatchButton)}
}

func (d *dropdown) SwatchButton(id string) (colorinput.SwatchButton, bool) {
	b, ok := d.buttons[id]
	return b, ok
}

func (d *dropdown) register(id string, b colorinput.SwatchButton) { d.buttons[id] = b }

func (d *dropdown) unregister(id string) { delete(d.buttons, id) }

func (d *dropdown) show(items []swatch.Item) {
	d.items = items
	d.cursor = 0
	d.open = len(items) > 0
}

func (d *dropdown) close() {
	d.open = false
}

func (d *dropdown) move(delta int) {
	if len(d.items) == 0 {
		return
	}
	d.cursor = (d.cursor + delta + len(d.items)) % len(d.items)
}

func (d *dropdown) selected() (swatch.Item, bool) {
	if d.cursor < 0 || d.cursor >= len(d.items) {
		return swatch.Item{}, false
	}
	return d.items[d.cursor], true
}

// providers is what the host shares with the field.
type providers struct {
	sink *dropdown
}

func (p providers) RenderLabel(label string) string { return labelStyle.Render(label) }

func (p providers) Sink() (colorinput.Sink, bool) {
	if p.sink == nil {
		return nil, false
	}
	return p.sink, true
}

// chip renders text on the background of v. Values without a fixed color
// fall back to style unchanged.
func chip(v color.Value, style lipgloss.Style, text string) string {
	if hex, ok := color.ToHex(v); ok {
		style = style.Background(lipgloss.Color(hex)).Foreground(lipgloss.Color(color.Contrast(v)))
	}
	return style.Render(text)
}
