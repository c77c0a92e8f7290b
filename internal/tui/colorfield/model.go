package colorfield

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/colorfield/internal/colorinput"
	"github.com/alexisbeaulieu97/colorfield/internal/domain/color"
	"github.com/alexisbeaulieu97/colorfield/internal/ports"
	"github.com/alexisbeaulieu97/colorfield/internal/swatch"
)

// Options configures a Model.
type Options struct {
	Spec colorinput.Spec
	// Value is written into the field at start-up and validated like any
	// externally set value.
	Value     color.Value
	Validator *color.Validator
	Backstage colorinput.Backstage
	Swatches  colorinput.Swatches
	// Theme maps presentation classes to styles; only border colors are
	// used. A custom Spec.InvalidClass missing from it is drawn with the
	// DefaultInvalidClass style. The map is copied.
	Theme     map[string]lipgloss.Style
	Logger    ports.Logger
	Context   context.Context
}

// Model hosts one color field in a Bubble Tea program.
type Model struct {
	ctx       context.Context
	field     *colorinput.Field
	validator *color.Validator
	queue     *runQueue
	logger    ports.Logger

	// Sub-components
	text   *textField
	button *swatchButton
	root   *container
	sink   *dropdown

	// Component state
	spinner  spinner.Model
	spinning bool

	// Outcome
	submitted bool
	cancelled bool

	width int
}

// New creates a mounted color field model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	validator := opts.Validator
	if validator == nil {
		validator = color.NewValidator(nil)
	}
	theme := opts.Theme
	if theme == nil {
		theme = DefaultTheme()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(accentColor)

	m := Model{
		ctx:       ctx,
		validator: validator,
		queue:     &runQueue{},
		logger:    opts.Logger,
		text:      newTextField(),
		button:    &swatchButton{},
		root:      newContainer(theme),
		sink:      newDropdown(),
		spinner:   s,
		width:     80,
	}

	m.field = colorinput.New(opts.Spec, colorinput.Deps{
		Providers: providers{sink: m.sink},
		Backstage: opts.Backstage,
		Swatches:  opts.Swatches,
		Scheduler: m.queue,
		Logger:    opts.Logger,
	})
	m.root.useInvalidClass(m.field.InvalidClass())
	m.sink.register(m.field.ID(), m.button)
	m.field.Mount(m.text, m.button, m.root)

	m.text.Focus()
	m.syncFocus()

	if !opts.Value.IsNone() {
		m.field.SetValue(opts.Value)
	}
	return m
}

// Init starts the cursor blink and validates the initial value, if any.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	for _, run := range m.queue.drain() {
		cmds = append(cmds, validateCmd(m.ctx, m.validator, run))
	}
	if m.field.State().Pending {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// Value is the committed, validated color.
func (m Model) Value() color.Value {
	return m.field.Value()
}

// State is the validation state of the text field.
func (m Model) State() colorinput.FieldState {
	return m.field.State()
}

// Submitted reports the accepted value once the user submitted.
func (m Model) Submitted() (color.Value, bool) {
	if !m.submitted {
		return color.None, false
	}
	return m.field.Value(), true
}

// Cancelled reports whether the user left without submitting.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Close unmounts the field. Results still in flight are discarded.
func (m Model) Close() {
	m.sink.unregister(m.field.ID())
	m.field.Unmount()
	if m.logger != nil {
		m.logger.Debug(m.ctx, "color field closed", "value", string(m.field.Value()), "submitted", m.submitted)
	}
}

// Field exposes the underlying color field.
func (m Model) Field() *colorinput.Field {
	return m.field
}

// flush turns the runs scheduled during this update into commands.
func (m *Model) flush() tea.Cmd {
	m.syncFocus()

	runs := m.queue.drain()
	cmds := make([]tea.Cmd, 0, len(runs)+1)
	for _, run := range runs {
		cmds = append(cmds, validateCmd(m.ctx, m.validator, run))
	}
	if m.field.State().Pending && !m.spinning {
		m.spinning = true
		cmds = append(cmds, m.spinner.Tick)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) syncFocus() {
	if m.text.Focused() {
		m.root.AddClass(FocusedClass)
	} else {
		m.root.RemoveClass(FocusedClass)
	}
}

func (m *Model) toggleFocus() {
	if m.text.Focused() {
		m.text.Blur()
	} else {
		m.text.Focus()
	}
	m.syncFocus()
}

func (m *Model) openMenu() {
	m.field.Fetch(func(items []swatch.Item) {
		m.sink.show(items)
	})
}

func (m *Model) submit() tea.Cmd {
	state := m.field.State()
	if state.Pending || !state.Valid {
		return nil
	}
	return submitCmd
}
