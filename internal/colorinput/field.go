package colorinput

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/colorfield/internal/domain/color"
	"github.com/alexisbeaulieu97/colorfield/internal/ports"
	"github.com/alexisbeaulieu97/colorfield/internal/swatch"
)

// DefaultSeed is handed to the interactive picker when it opens.
const DefaultSeed color.Value = "#ffffff"

// Spec is the construction input of a color field.
type Spec struct {
	// Label is optional; an empty label renders nothing.
	Label        string
	FieldClasses []string
	InvalidClass string
	Seed         color.Value
}

// Providers are the shared services a field borrows from its host.
type Providers interface {
	RenderLabel(label string) string
	// Sink returns the container used for floating UI, if the host has one.
	Sink() (Sink, bool)
}

// Sink hosts floating UI such as the swatch dropdown.
type Sink interface {
	// SwatchButton finds the swatch button registered under id.
	SwatchButton(id string) (SwatchButton, bool)
}

// TextField is the text sub-component.
type TextField interface {
	Value() color.Value
	SetValue(v color.Value)
	Focus()
}

// SwatchButton is the swatch sub-component that opens the picker menu.
type SwatchButton interface {
	SetBackground(v color.Value)
}

// Backstage is the picker collaborator.
type Backstage interface {
	HasCustomColors() bool
	// PickColor opens the interactive picker seeded with seed. It blocks
	// until the user confirms (value, true) or cancels (None, false).
	PickColor(ctx context.Context, seed color.Value) (color.Value, bool)
}

// Terminal is the stream set a picker prompts on. Nil fields mean the
// process's own stdin, stdout and stderr.
type Terminal struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// TerminalBackstage is a Backstage that can prompt on streams handed over by
// the host instead of the process's own.
type TerminalBackstage interface {
	Backstage
	PickColorOn(ctx context.Context, seed color.Value, term Terminal) (color.Value, bool)
}

// Swatches is the shared quick-pick registry.
type Swatches interface {
	Fetch(includeCustom bool) swatch.FetchFunc
	AddColor(v color.Value)
}

// Deps bundles the collaborators of a Field.
type Deps struct {
	Providers Providers
	Backstage Backstage
	Swatches  Swatches
	Scheduler Scheduler
	Logger    ports.Logger
}

// PickRequest asks for the interactive picker to be opened.
type PickRequest struct {
	Seed color.Value
	// Terminal is filled in by the host that hands over the screen.
	Terminal Terminal
}

// PickResult is what the interactive picker yielded.
type PickResult struct {
	Value color.Value
	OK    bool
}

// Field is the composite color field: a text input kept in sync with a swatch
// button through the field's Channel. All methods except Pick must be called
// from the event loop that owns the field.
type Field struct {
	id         string
	spec       Spec
	providers  Providers
	backstage  Backstage
	swatches   Swatches
	events     *Channel
	validation *ValidationController
	logger     ports.Logger

	text   TextField
	button SwatchButton
	root   Presenter
	subs   []Subscription
}

// New builds an unmounted field.
func New(spec Spec, deps Deps) *Field {
	if spec.Seed.IsNone() {
		spec.Seed = DefaultSeed
	}
	id := uuid.NewString()
	logger := deps.Logger
	if logger != nil {
		logger = logger.With("component", "color_field", "widget_id", id)
	}

	f := &Field{
		id:        id,
		spec:      spec,
		providers: deps.Providers,
		backstage: deps.Backstage,
		swatches:  deps.Swatches,
		logger:    logger,
	}
	f.events = NewChannel(id, logger)
	f.validation = NewValidationController(ValidationOptions{
		InvalidClass: spec.InvalidClass,
		Root:         f.lookupRoot,
		Scheduler:    deps.Scheduler,
		Events:       f.events,
		Logger:       logger,
	})
	return f
}

// ID identifies this field instance; the swatch button is registered in the
// sink under it.
func (f *Field) ID() string { return f.id }

// Mount attaches the sub-components and starts listening for change events.
// Any of the arguments may be nil.
func (f *Field) Mount(text TextField, button SwatchButton, root Presenter) {
	f.Unmount()
	f.text = text
	f.button = button
	f.root = root
	if root != nil {
		for _, class := range f.spec.FieldClasses {
			root.AddClass(class)
		}
	}
	f.subs = append(f.subs,
		f.events.Subscribe(KindPrimary, f.onPrimary),
		f.events.Subscribe(KindSecondary, f.onSecondary),
	)
	if f.logger != nil {
		f.logger.Debug(context.Background(), "color field mounted")
	}
}

// Unmount stops listening, drops the sub-components and discards any
// validation still in flight.
func (f *Field) Unmount() {
	if len(f.subs) == 0 && f.text == nil && f.button == nil && f.root == nil {
		return
	}
	for _, sub := range f.subs {
		sub.Unsubscribe()
	}
	f.subs = nil
	f.text = nil
	f.button = nil
	f.root = nil
	f.validation.Discard()
}

// Mounted reports whether Mount has been called without a later Unmount.
func (f *Field) Mounted() bool { return len(f.subs) > 0 }

// Input starts validation after the user edited the text field.
func (f *Field) Input(value color.Value) Run {
	return f.validation.Start(value)
}

// SetValue forces a value from outside, for example an initial value supplied
// by the host. The text field is updated and revalidated; focus is left alone.
func (f *Field) SetValue(value color.Value) Run {
	if text, ok := f.lookupText(); ok {
		text.SetValue(value)
	}
	return f.validation.SetValue(value)
}

// Resolve applies a validation outcome.
func (f *Field) Resolve(o Outcome) bool {
	return f.validation.Resolve(o)
}

// OnItemAction handles a choice from the swatch menu. Presets and "remove"
// are applied at once. "custom" returns a PickRequest the host must complete
// with Pick and CompletePick. Nothing happens if the sink or the mounted
// swatch button cannot be found.
func (f *Field) OnItemAction(value string) (PickRequest, bool) {
	ctx := context.Background()
	if f.providers == nil {
		return PickRequest{}, false
	}
	sink, ok := f.providers.Sink()
	if !ok {
		f.debug(ctx, "no sink available, ignoring menu action", "action", value)
		return PickRequest{}, false
	}
	if _, ok := sink.SwatchButton(f.id); !ok {
		f.debug(ctx, "swatch button not mounted, ignoring menu action", "action", value)
		return PickRequest{}, false
	}

	switch value {
	case swatch.ActionCustom:
		return PickRequest{Seed: f.spec.Seed}, true
	case swatch.ActionRemove:
		f.events.Emit(SecondaryChange(color.None))
	default:
		f.events.Emit(SecondaryChange(color.Value(value)))
	}
	return PickRequest{}, false
}

// Pick runs the interactive picker for req. It touches no field state and is
// meant to run off the event loop.
func (f *Field) Pick(ctx context.Context, req PickRequest) PickResult {
	if f.backstage == nil {
		return PickResult{}
	}
	if tb, ok := f.backstage.(TerminalBackstage); ok {
		value, ok := tb.PickColorOn(ctx, req.Seed, req.Terminal)
		return PickResult{Value: value, OK: ok}
	}
	value, ok := f.backstage.PickColor(ctx, req.Seed)
	return PickResult{Value: value, OK: ok}
}

// CompletePick applies what the picker yielded. A cancelled pick changes
// nothing; a confirmed one is written to the field and remembered as a
// custom swatch.
func (f *Field) CompletePick(res PickResult) {
	if !res.OK {
		f.debug(context.Background(), "color picker cancelled")
		return
	}
	f.events.Emit(SecondaryChange(res.Value))
	if f.swatches != nil {
		f.swatches.AddColor(res.Value)
	}
}

// Fetch delivers the swatch menu items to callback.
func (f *Field) Fetch(callback func([]swatch.Item)) {
	if f.swatches == nil {
		callback(nil)
		return
	}
	f.swatches.Fetch(f.HasCustomColors())(callback)
}

// HasCustomColors reports whether the menu offers the interactive picker.
func (f *Field) HasCustomColors() bool {
	return f.backstage != nil && f.backstage.HasCustomColors()
}

// Label renders the field label, if any.
func (f *Field) Label() (string, bool) {
	if f.spec.Label == "" || f.providers == nil {
		return "", false
	}
	return f.providers.RenderLabel(f.spec.Label), true
}

// Value is the committed, validated color.
func (f *Field) Value() color.Value { return f.validation.Committed() }

// State is the validation state of the text field.
func (f *Field) State() FieldState { return f.validation.State() }

// InvalidClass is the class put on the root while the text is rejected.
func (f *Field) InvalidClass() string { return f.validation.InvalidClass() }

// Events exposes the field's change channel.
func (f *Field) Events() *Channel { return f.events }

func (f *Field) onPrimary(ev ChangeEvent) {
	button, ok := f.lookupButton()
	if !ok {
		return
	}
	button.SetBackground(ev.Color())
}

func (f *Field) onSecondary(ev ChangeEvent) {
	text, ok := f.lookupText()
	if !ok {
		return
	}
	text.SetValue(ev.Value())
	f.validation.SetValue(ev.Value())
	text.Focus()
}

func (f *Field) lookupText() (TextField, bool) {
	return f.text, f.text != nil
}

func (f *Field) lookupButton() (SwatchButton, bool) {
	return f.button, f.button != nil
}

func (f *Field) lookupRoot() (Presenter, bool) {
	return f.root, f.root != nil
}

func (f *Field) debug(ctx context.Context, msg string, fields ...interface{}) {
	if f.logger != nil {
		f.logger.Debug(ctx, msg, fields...)
	}
}
