// Package picker provides the interactive custom color dialog.
package picker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/alexisbeaulieu97/colorfield/internal/colorinput"
	"github.com/alexisbeaulieu97/colorfield/internal/domain/color"
	"github.com/alexisbeaulieu97/colorfield/internal/ports"
)

const defaultMessage = "Custom color"

type askFunc func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

// Options configures a SurveyPicker.
type Options struct {
	Message      string
	Help         string
	CustomColors bool
	Validator    *color.Validator
	Logger       ports.Logger
}

// SurveyPicker asks for a custom color on the terminal. It must run while
// nothing else is reading stdin.
type SurveyPicker struct {
	message      string
	help         string
	customColors bool
	validator    *color.Validator
	logger       ports.Logger
	ask          askFunc
}

// NewSurveyPicker returns a picker built from opts.
func NewSurveyPicker(opts Options) *SurveyPicker {
	message := opts.Message
	if message == "" {
		message = defaultMessage
	}
	help := opts.Help
	if help == "" {
		help = "hex (#rrggbb), rgb(), hsl() or a CSS color name"
	}
	validator := opts.Validator
	if validator == nil {
		validator = color.NewValidator(nil)
	}
	return &SurveyPicker{
		message:      message,
		help:         help,
		customColors: opts.CustomColors,
		validator:    validator,
		logger:       opts.Logger,
		ask:          survey.AskOne,
	}
}

// HasCustomColors reports whether the custom color entry should be offered.
func (p *SurveyPicker) HasCustomColors() bool {
	return p != nil && p.customColors
}

// PickColor prompts on the process's own terminal. See PickColorOn.
func (p *SurveyPicker) PickColor(ctx context.Context, seed color.Value) (color.Value, bool) {
	return p.PickColorOn(ctx, seed, colorinput.Terminal{})
}

// PickColorOn prompts for a color seeded with seed on term. Interrupting the
// prompt or any prompt failure counts as a cancel.
func (p *SurveyPicker) PickColorOn(ctx context.Context, seed color.Value, term colorinput.Terminal) (color.Value, bool) {
	if err := ctx.Err(); err != nil {
		return color.None, false
	}

	prompt := &survey.Input{
		Message: p.message,
		Default: seed.String(),
		Help:    p.help,
	}

	var out string
	opts := []survey.AskOpt{survey.WithValidator(p.validate(ctx))}
	if stdio, ok := surveyStdio(term); ok {
		opts = append(opts, survey.WithStdio(stdio.In, stdio.Out, stdio.Err))
	}
	err := p.ask(prompt, &out, opts...)
	if err != nil {
		if !errors.Is(err, terminal.InterruptErr) && p.logger != nil {
			p.logger.Warn(ctx, "custom color prompt failed", "error", err)
		}
		return color.None, false
	}
	if ctx.Err() != nil {
		return color.None, false
	}

	value := color.Value(strings.TrimSpace(out))
	if p.logger != nil {
		p.logger.Debug(ctx, "custom color picked", "value", value.String())
	}
	return value, true
}

func (p *SurveyPicker) validate(ctx context.Context) survey.Validator {
	return func(ans interface{}) error {
		raw, ok := ans.(string)
		if !ok {
			return fmt.Errorf("unexpected answer type %T", ans)
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return errors.New("enter a color or press ctrl+c to cancel")
		}
		if _, err := p.validator.Validate(ctx, color.Value(raw)); err != nil {
			return fmt.Errorf("%q is not a color", raw)
		}
		return nil
	}
}

// surveyStdio maps term onto survey's streams. survey needs file descriptors
// to switch the terminal to raw mode, so streams that are not files fall
// back to the process's own.
func surveyStdio(term colorinput.Terminal) (terminal.Stdio, bool) {
	if term.In == nil && term.Out == nil && term.Err == nil {
		return terminal.Stdio{}, false
	}

	stdio := terminal.Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
	if in, ok := term.In.(terminal.FileReader); ok {
		stdio.In = in
	}
	if out, ok := term.Out.(terminal.FileWriter); ok {
		stdio.Out = out
	}
	if term.Err != nil {
		stdio.Err = term.Err
	}
	return stdio, true
}

var _ colorinput.TerminalBackstage = (*SurveyPicker)(nil)
