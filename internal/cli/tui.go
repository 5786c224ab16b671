package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/huewheel/internal/picker"
	"github.com/jmylchreest/huewheel/internal/tui"
)

func newTUICmd(a *app) *cobra.Command {
	var fit bool

	cmd := &cobra.Command{
		Use:   "tui [colour]",
		Short: "Pick a colour interactively in the terminal",
		Long: `Open the picker in the terminal. Drag the ring to change hue and the inner shape to
change the rest; click a swatch to jump to it.

Keys:
  m, 1, 2, 3   switch between HSV, HSL and OkLrCH
  tab          edit the hex field, then the rgb field
  esc, enter   stop editing
  q, ctrl+c    quit and print the colour`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.colourArg(args)
			if err != nil {
				return err
			}

			width, height := a.cfg.Width, a.cfg.Height
			if fd := int(os.Stdout.Fd()); fit && term.IsTerminal(fd) {
				cols, rows, err := term.GetSize(fd)
				if err != nil {
					return fmt.Errorf("failed to get terminal size: %w", err)
				}
				width, height = tui.FitSize(cols, rows, width, height)
				a.logger.Debug("fitted picker to terminal", "cols", cols, "rows", rows, "width", width, "height", height)
			}

			hex, err := tui.Run(cmd.Context(), picker.Options{
				Color:  c.Hex(),
				Mode:   a.cfg.PickerMode(),
				Width:  width,
				Height: height,
				Logger: a.logger.Named("picker"),
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex)
			return nil
		},
	}

	cmd.Flags().BoolVar(&fit, "fit", true, "shrink the picker to fit the terminal")
	return cmd
}
