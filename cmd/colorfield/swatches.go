package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/colorfield/internal/domain/color"
)

func newSwatchesCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swatches",
		Short: "Inspect and extend the swatch palette",
	}

	cmd.AddCommand(newSwatchesListCmd(app))
	cmd.AddCommand(newSwatchesAddCmd(app))

	return cmd
}

func newSwatchesListCmd(app *AppContext) *cobra.Command {
	var customOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List preset and custom colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.swatches.list")
			out := cmd.OutOrStdout()

			custom := app.Registry.CustomColors()
			logger.Debug(ctx, "listing swatches", "custom", len(custom), "custom_only", customOnly)

			if !customOnly {
				fmt.Fprintln(out, "Presets:")
				for _, preset := range app.Registry.Presets() {
					writeSwatch(out, preset.Name, preset.Value)
				}
			}

			fmt.Fprintln(out, "Custom colors:")
			if len(custom) == 0 {
				fmt.Fprintln(out, "  (none)")
			}
			for _, value := range custom {
				writeSwatch(out, value.String(), value)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&customOnly, "custom", false, "Only list custom colors")
	return cmd
}

func newSwatchesAddCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <color>...",
		Short: "Remember colors as custom swatches",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.swatches.add")

			values := make([]color.Value, 0, len(args))
			for _, arg := range args {
				candidate := color.Value(arg)
				if candidate.IsNone() {
					return errors.New("cannot add an empty color")
				}
				value, err := app.Validator.Validate(ctx, candidate)
				if err != nil {
					if errors.Is(err, color.ErrRejected) {
						return fmt.Errorf("%q is not a color", arg)
					}
					return err
				}
				values = append(values, value)
			}

			for _, value := range values {
				app.Registry.AddColor(value)
				logger.Info(ctx, "custom color added", "value", value.String())
				fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", value.String())
			}
			return nil
		},
	}

	return cmd
}

func writeSwatch(w io.Writer, name string, value color.Value) {
	fmt.Fprintf(w, "  %s %-16s %s\n", swatchChip(value), name, value.String())
}

