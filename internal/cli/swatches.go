package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huewheel/internal/colour"
)

func newSwatchesCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "swatches",
		Short: "List the fixed swatch grid",
		Long:  `List the fixed swatches with their index, as used by "swatch N" in replay scripts.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			t := NewTable("Index", "Swatch", "RGB")
			for i, c := range colour.Swatches() {
				t.AddRow(strconv.Itoa(i), colour.FormatColourWithPreview(c, 4), c.RGBText())
			}
			fmt.Fprint(cmd.OutOrStdout(), t.Render())
		},
	}
}
