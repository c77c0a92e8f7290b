package colorfield

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case ValidatedMsg:
		m.field.Resolve(msg.Outcome)
		return m, m.flush()

	case PickedMsg:
		m.field.CompletePick(msg.Result)
		return m, m.flush()

	case SubmitMsg:
		m.submitted = true
		return m, tea.Quit

	case spinner.TickMsg:
		if !m.field.State().Pending {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Cursor blink and anything else the text input understands
	var cmd tea.Cmd
	m.text.input, cmd = m.text.input.Update(msg)
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.sink.open {
		return m.handleMenuKeys(msg)
	}

	switch msg.String() {
	case "ctrl+c", "esc":
		m.cancelled = true
		return m, tea.Quit

	case "tab", "shift+tab":
		m.toggleFocus()
		return m, nil

	case "ctrl+s":
		return m, m.submit()
	}

	if !m.text.Focused() {
		return m.handleButtonKeys(msg)
	}

	if msg.String() == "enter" {
		return m, m.submit()
	}

	before := m.text.Value()
	var cmd tea.Cmd
	m.text.input, cmd = m.text.input.Update(msg)
	if after := m.text.Value(); after != before {
		m.field.Input(after)
	}
	return m, tea.Batch(cmd, m.flush())
}

// handleButtonKeys handles keys while the swatch button has focus
func (m Model) handleButtonKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", " ", "down", "j":
		m.openMenu()
		return m, nil

	case "q":
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMenuKeys handles keys while the swatch menu is open
func (m Model) handleMenuKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.cancelled = true
		return m, tea.Quit

	case "esc", "q":
		m.sink.close()
		return m, nil

	case "up", "k", "shift+tab":
		m.sink.move(-1)
		return m, nil

	case "down", "j", "tab":
		m.sink.move(1)
		return m, nil

	case "enter", " ":
		item, ok := m.sink.selected()
		m.sink.close()
		if !ok {
			return m, nil
		}
		req, pick := m.field.OnItemAction(item.Value)
		cmd := m.flush()
		if pick {
			return m, tea.Batch(cmd, pickCmd(m.ctx, m.field, req))
		}
		return m, cmd
	}
	return m, nil
}
