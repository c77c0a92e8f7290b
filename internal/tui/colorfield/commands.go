package colorfield

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/colorfield/internal/colorinput"
	"github.com/alexisbeaulieu97/colorfield/internal/domain/color"
)

// runQueue collects the runs the field schedules while Update is running so
// they can be returned as commands.
type runQueue struct {
	runs []colorinput.Run
}

func (q *runQueue) Schedule(r colorinput.Run) {
	q.runs = append(q.runs, r)
}

func (q *runQueue) drain() []colorinput.Run {
	runs := q.runs
	q.runs = nil
	return runs
}

// validateCmd executes one validation run off the event loop.
func validateCmd(ctx context.Context, v *color.Validator, run colorinput.Run) tea.Cmd {
	return func() tea.Msg {
		return ValidatedMsg{Outcome: run.Execute(ctx, v)}
	}
}

// pickerExec hands the terminal to the interactive picker. The program
// passes its own input and output before Run, so the prompt appears where
// the field was drawn.
type pickerExec struct {
	ctx    context.Context
	field  *colorinput.Field
	req    colorinput.PickRequest
	result colorinput.PickResult
}

func (p *pickerExec) Run() error {
	p.result = p.field.Pick(p.ctx, p.req)
	return nil
}

func (p *pickerExec) SetStdin(r io.Reader)  { p.req.Terminal.In = r }
func (p *pickerExec) SetStdout(w io.Writer) { p.req.Terminal.Out = w }
func (p *pickerExec) SetStderr(w io.Writer) { p.req.Terminal.Err = w }

// pickCmd suspends the program while the picker runs.
func pickCmd(ctx context.Context, field *colorinput.Field, req colorinput.PickRequest) tea.Cmd {
	exec := &pickerExec{ctx: ctx, field: field, req: req}
	return tea.Exec(exec, func(err error) tea.Msg {
		if err != nil {
			return PickedMsg{}
		}
		return PickedMsg{Result: exec.result}
	})
}

func submitCmd() tea.Msg {
	return SubmitMsg{}
}
