package colorinput

import (
	"context"
	"errors"

	"github.com/alexisbeaulieu97/colorfield/internal/domain/color"
	"github.com/alexisbeaulieu97/colorfield/internal/ports"
)

// DefaultInvalidClass marks the field container while its text is rejected.
const DefaultInvalidClass = "textbox-field-invalid"

// FieldState is the validation state of the text sub-field.
type FieldState struct {
	RawText color.Value
	Valid   bool
	Pending bool
}

// Run is one validation request. Runs are numbered in start order; only the
// most recently started run of a controller may change its state.
type Run struct {
	ID    uint64
	Value color.Value
}

// Execute validates the run's value. It touches no controller state and may
// be called from any goroutine.
func (r Run) Execute(ctx context.Context, v *color.Validator) Outcome {
	value, err := v.Validate(ctx, r.Value)
	return Outcome{Run: r, Value: value, Err: err}
}

// Outcome is the resolved result of a Run.
type Outcome struct {
	Run   Run
	Value color.Value
	Err   error
}

// Rejected reports whether the oracle refused the value.
func (o Outcome) Rejected() bool {
	return errors.Is(o.Err, color.ErrRejected)
}

// Scheduler executes runs asynchronously and feeds their outcomes back to
// ValidationController.Resolve on the owning event loop.
type Scheduler interface {
	Schedule(Run)
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(Run)

// Schedule calls f.
func (f SchedulerFunc) Schedule(r Run) { f(r) }

// Presenter is the element that carries the invalid presentation.
type Presenter interface {
	AddClass(class string)
	RemoveClass(class string)
}

// ValidationOptions configures a ValidationController.
type ValidationOptions struct {
	InvalidClass string
	// Root looks up the presenter for the invalid class. It may report false
	// when nothing is mounted yet.
	Root      func() (Presenter, bool)
	Scheduler Scheduler
	Events    *Channel
	Logger    ports.Logger
}

// ValidationController owns the FieldState of one text field and decides
// which validation outcomes are allowed to apply.
type ValidationController struct {
	state        FieldState
	committed    color.Value
	latest       uint64
	invalidClass string
	root         func() (Presenter, bool)
	scheduler    Scheduler
	events       *Channel
	logger       ports.Logger
}

// NewValidationController returns a controller for an empty, valid field. No
// validation runs until the value first changes.
func NewValidationController(opts ValidationOptions) *ValidationController {
	invalidClass := opts.InvalidClass
	if invalidClass == "" {
		invalidClass = DefaultInvalidClass
	}
	return &ValidationController{
		state:        FieldState{Valid: true},
		invalidClass: invalidClass,
		root:         opts.Root,
		scheduler:    opts.Scheduler,
		events:       opts.Events,
		logger:       opts.Logger,
	}
}

// Start begins validating value and supersedes every earlier run.
func (c *ValidationController) Start(value color.Value) Run {
	c.latest++
	run := Run{ID: c.latest, Value: value}
	c.state.RawText = value
	c.state.Pending = true

	if c.logger != nil {
		c.logger.Debug(context.Background(), "validation started", "run_id", run.ID, "value", string(value))
	}
	if c.scheduler != nil {
		c.scheduler.Schedule(run)
	}
	return run
}

// SetValue handles a value forced by an external actor. Validation is
// restarted without waiting for its result.
func (c *ValidationController) SetValue(value color.Value) Run {
	return c.Start(value)
}

// Resolve applies o if it belongs to the most recently started run and
// reports whether it did. Cancelled runs never apply.
func (c *ValidationController) Resolve(o Outcome) bool {
	ctx := context.Background()
	if o.Run.ID != c.latest {
		if c.logger != nil {
			c.logger.Debug(ctx, "discarding superseded validation", "run_id", o.Run.ID, "latest_run_id", c.latest)
		}
		return false
	}
	if o.Err != nil && !o.Rejected() {
		if c.logger != nil {
			c.logger.Debug(ctx, "validation did not complete", "run_id", o.Run.ID, "error", o.Err)
		}
		return false
	}

	c.state.Pending = false
	if o.Rejected() {
		c.state.Valid = false
		if root, ok := c.lookupRoot(); ok {
			root.AddClass(c.invalidClass)
		}
		if c.logger != nil {
			c.logger.Debug(ctx, "color rejected", "run_id", o.Run.ID, "value", string(o.Run.Value))
		}
		return true
	}

	c.state.Valid = true
	c.committed = o.Run.Value
	if root, ok := c.lookupRoot(); ok {
		root.RemoveClass(c.invalidClass)
	}
	c.events.Emit(PrimaryChange(o.Run.Value))
	return true
}

// Discard supersedes any run in flight without starting a new one.
func (c *ValidationController) Discard() {
	c.latest++
	c.state.Pending = false
}

// State returns a snapshot of the field state.
func (c *ValidationController) State() FieldState {
	return c.state
}

// Committed returns the last value that passed validation.
func (c *ValidationController) Committed() color.Value {
	return c.committed
}

// InvalidClass returns the class applied while the field is invalid.
func (c *ValidationController) InvalidClass() string {
	return c.invalidClass
}

func (c *ValidationController) lookupRoot() (Presenter, bool) {
	if c.root == nil {
		return nil, false
	}
	return c.root()
}
