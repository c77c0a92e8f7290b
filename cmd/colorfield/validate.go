package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/colorfield/internal/domain/color"
)

var (
	validMarkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	invalidMarkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

func newValidateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <color>...",
		Short: "Check whether values are colors",
		Long: `Validate each argument the way the color field does. The empty string
is always valid. Exits non-zero when any value is rejected.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.validate")

			rejected := 0
			for _, arg := range args {
				value, err := app.Validator.Validate(ctx, color.Value(arg))
				switch {
				case errors.Is(err, color.ErrRejected):
					rejected++
					logger.Debug(ctx, "color rejected", "value", arg)
					writeVerdict(cmd.OutOrStdout(), color.Value(arg), false)
				case err != nil:
					return err
				default:
					writeVerdict(cmd.OutOrStdout(), value, true)
				}
			}

			if rejected > 0 {
				return fmt.Errorf("%d of %d values rejected", rejected, len(args))
			}
			return nil
		},
	}

	return cmd
}

func writeVerdict(w io.Writer, value color.Value, valid bool) {
	if !valid {
		fmt.Fprintf(w, "%s %q\n", invalidMarkStyle.Render("✗"), value.String())
		return
	}
	if value.IsNone() {
		fmt.Fprintf(w, "%s (no color)\n", validMarkStyle.Render("✓"))
		return
	}
	fmt.Fprintf(w, "%s %s %s\n", validMarkStyle.Render("✓"), swatchChip(value), value.String())
}

// swatchChip renders a two-cell block in value, or nothing when the value
// has no hex form.
func swatchChip(value color.Value) string {
	hex, ok := color.ToHex(value)
	if !ok {
		return "  "
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}
