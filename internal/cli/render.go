package cli

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render [colour]",
		Short: "Render the picker for a colour to a PNG file",
		Long: `Render the colour wheel, inner shape and handles for a colour as a transparent PNG.

The colour defaults to the configured one; mode and size follow --mode, --width and --height.

Examples:
  huewheel render '#3366CC' -o wheel.png
  huewheel render -m oklch --width 400 --height 300 -o oklch.png`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.colourArg(args)
			if err != nil {
				return err
			}
			p, err := a.newPicker(c, nil, nil)
			if err != nil {
				return err
			}
			if err := writePNG(output, p.Image()); err != nil {
				return err
			}
			a.logger.Debug("rendered picker", "output", output, "color", p.Color(), "mode", p.Mode())
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", p.Color(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "PNG file to write")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path) // #nosec G304 - User-specified output path
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
