package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/colorfield/internal/colorinput"
	"github.com/alexisbeaulieu97/colorfield/internal/domain/color"
	"github.com/alexisbeaulieu97/colorfield/internal/infrastructure/picker"
	"github.com/alexisbeaulieu97/colorfield/internal/ports"
	"github.com/alexisbeaulieu97/colorfield/internal/tui/colorfield"
)

var errCancelled = errors.New("cancelled")

type fieldOptions struct {
	value    string
	label    string
	noCustom bool
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}

func newFieldCmd(app *AppContext) *cobra.Command {
	opts := &fieldOptions{}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Open the interactive color field and print the chosen color",
		Long: `Open a color field with a text box and a swatch menu. The submitted
color is written to stdout; the interface itself is drawn on stderr so the
result can be captured by a shell.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.pick")
			if !isTerminal(cmd.InOrStdin()) {
				return errors.New("pick needs an interactive terminal; use 'colorfield validate' in scripts")
			}

			value, err := runField(ctx, app, opts, cmd.InOrStdin(), cmd.ErrOrStderr())
			if err != nil {
				if !errors.Is(err, errCancelled) {
					logger.Error(ctx, "color field failed", "error", err)
				}
				return err
			}

			logger.Debug(ctx, "color submitted", "value", value.String())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), value.String())
			return err
		},
	}

	cmd.Flags().StringVar(&opts.value, "value", "", "Initial color")
	cmd.Flags().StringVar(&opts.label, "label", "", "Label shown above the field")
	cmd.Flags().BoolVar(&opts.noCustom, "no-custom", false, "Hide the custom color entry")

	return cmd
}

func runField(ctx context.Context, app *AppContext, opts *fieldOptions, in io.Reader, out io.Writer) (color.Value, error) {
	cfg := app.Config
	logger := app.InteractiveLogger("tui.colorfield")

	label := cfg.Label
	if opts.label != "" {
		label = opts.label
	}

	model := colorfield.New(colorfield.Options{
		Spec: colorinput.Spec{
			Label: label,
			Seed:  color.Value(cfg.Seed),
		},
		Value:     color.Value(opts.value),
		Validator: app.Validator,
		Backstage: picker.NewSurveyPicker(picker.Options{
			CustomColors: cfg.CustomColorsEnabled() && !opts.noCustom,
			Validator:    app.Validator,
			Logger:       logger,
		}),
		Swatches: app.Registry,
		Logger:   logger,
		Context:  ctx,
	})

	p := tea.NewProgram(model, tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return color.None, fmt.Errorf("failed to run color field: %w", err)
	}

	result, ok := final.(colorfield.Model)
	if !ok {
		return color.None, fmt.Errorf("unexpected model %T", final)
	}
	result.Close()

	return submittedValue(ctx, result, logger)
}

func submittedValue(ctx context.Context, m colorfield.Model, logger ports.Logger) (color.Value, error) {
	if value, ok := m.Submitted(); ok {
		return value, nil
	}
	if logger != nil {
		logger.Info(ctx, "color field cancelled")
	}
	return color.None, errCancelled
}

func isTerminal(reader any) bool {
	if file, ok := reader.(*os.File); ok {
		return termIsTerminal(int(file.Fd()))
	}
	return false
}
