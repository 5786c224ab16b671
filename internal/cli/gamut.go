package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huewheel/internal/colour"
	"github.com/jmylchreest/huewheel/internal/gamut"
)

func newGamutCmd(a *app) *cobra.Command {
	var (
		boundary bool
		steps    int
	)

	cmd := &cobra.Command{
		Use:   "gamut <hue>",
		Short: "Show the sRGB gamut slice of an OkLrCH hue",
		Long: `Print the cusp of a hue and the maximum in-gamut chroma at evenly spaced
lightness steps. With --boundary the sampled boundary polylines are printed as JSON.

Examples:
  huewheel gamut 29.23
  huewheel gamut 264 --steps 20
  huewheel gamut 142.5 --boundary`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hue, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid hue %q: %w", args[0], err)
			}
			hue = colour.WrapHue(hue)
			out := cmd.OutOrStdout()

			if boundary {
				data, err := json.MarshalIndent(gamut.SampleBoundary(hue), "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal JSON: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			if steps < 1 {
				return fmt.Errorf("steps must be at least 1, got %d", steps)
			}

			cusp := gamut.FindCusp(gamut.HueVector(hue))
			a.logger.Debug("found cusp", "hue", hue, "l", cusp.L, "c", cusp.C)
			fmt.Fprintf(out, "hue %.2f  cusp L %.4f  Lr %.4f  C %.4f\n\n", hue, cusp.L, colour.Toe(cusp.L), cusp.C)

			t := NewTable("Lr", "Max C", "Edge")
			for i := 0; i <= steps; i++ {
				lr := float64(i) / float64(steps)
				c := gamut.MaxChroma(lr, hue, cusp)
				edge := colour.OklrchToRGB(colour.LCh{L: lr, C: c, H: hue})
				t.AddRow(fmt.Sprintf("%.3f", lr), fmt.Sprintf("%.4f", c), colour.FormatColourWithPreview(edge, 4))
			}
			fmt.Fprint(out, t.Render())
			return nil
		},
	}

	cmd.Flags().BoolVar(&boundary, "boundary", false, "print the sampled boundary as JSON")
	cmd.Flags().IntVar(&steps, "steps", 10, "number of lightness steps")
	return cmd
}
