package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huewheel/internal/colour"
	"github.com/jmylchreest/huewheel/internal/gamut"
	"github.com/jmylchreest/huewheel/internal/picker"
	"github.com/jmylchreest/huewheel/internal/widget"
)

// handlePosition is where a picker places its handles for a colour in one mode.
type handlePosition struct {
	Mode     widget.Mode  `json:"mode"`
	Hue      float64      `json:"hue"`
	HueAngle float64      `json:"hue_angle"`
	Inner    widget.Point `json:"inner"`
}

// conversion is the convert command's report.
type conversion struct {
	Hex       string           `json:"hex"`
	RGB       string           `json:"rgb"`
	Name      string           `json:"name"`
	HSV       colour.HSV       `json:"hsv"`
	HSL       colour.HSL       `json:"hsl"`
	OkLrCH    colour.LCh       `json:"oklrch"`
	Cusp      gamut.Cusp       `json:"cusp"`
	Positions []handlePosition `json:"positions"`
}

func newConvertCmd(a *app) *cobra.Command {
	var (
		format  string
		preview bool
	)

	cmd := &cobra.Command{
		Use:   "convert <colour>",
		Short: "Show a colour in every colour space the picker uses",
		Long: `Convert a colour given as #RRGGBB, "r, g, b" or a name into HSV, HSL and OkLrCH, and
show where the picker places its handles for it in each mode.

Examples:
  huewheel convert '#FF8800'
  huewheel convert "12, 200, 64" --format json
  huewheel convert ff00ff --preview
  huewheel convert orange`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.colourArg(args)
			if err != nil {
				return err
			}
			report, err := a.convert(c)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				data, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal JSON: %w", err)
				}
				fmt.Fprintln(out, string(data))
			case "text":
				if preview {
					fmt.Fprintln(out, colour.ColourPreviewWithText(c.Quantized(), report.Hex, 11))
				}
				fmt.Fprint(out, report.table().Render())
			default:
				return fmt.Errorf("invalid format: %s (valid: text, json)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json)")
	cmd.Flags().BoolVar(&preview, "preview", false, "show a colour preview in the terminal")
	return cmd
}

// convert builds the report for c. Handle positions come from a picker switched through every
// mode, so they include any clamping the picker applies.
func (a *app) convert(c colour.Color) (conversion, error) {
	c = c.Quantized()
	lch := colour.RGBToOklrch(c)

	report := conversion{
		Hex:    c.Hex(),
		RGB:    c.RGBText(),
		Name:   colour.Nearest(c).Name,
		HSV:    colour.RGBToHSV(c),
		HSL:    colour.RGBToHSL(c),
		OkLrCH: lch,
		Cusp:   gamut.FindCusp(gamut.HueVector(lch.H)),
	}

	p, err := a.newPicker(c, nil, nil)
	if err != nil {
		return conversion{}, err
	}
	for _, m := range widget.Modes() {
		p.Handle(picker.ModeSwitch{Mode: m})
		st := p.State()
		report.Positions = append(report.Positions, handlePosition{
			Mode:     m,
			Hue:      widget.HueFromAngle(st.HueAngle),
			HueAngle: st.HueAngle,
			Inner:    st.Inner,
		})
	}
	return report, nil
}

func (r conversion) table() *Table {
	t := NewTable("Space", "Value")
	t.AddRow("hex", r.Hex)
	t.AddRow("rgb", r.RGB)
	t.AddRow("nearest name", r.Name)
	t.AddRow("hsv", fmt.Sprintf("H %.2f  S %.4f  V %.4f", r.HSV.H, r.HSV.S, r.HSV.V))
	t.AddRow("hsl", fmt.Sprintf("H %.2f  S %.4f  L %.4f", r.HSL.H, r.HSL.S, r.HSL.L))
	t.AddRow("oklrch", fmt.Sprintf("Lr %.4f  C %.4f  H %.2f", r.OkLrCH.L, r.OkLrCH.C, r.OkLrCH.H))
	t.AddRow("cusp", fmt.Sprintf("L %.4f  Lr %.4f  C %.4f", r.Cusp.L, colour.Toe(r.Cusp.L), r.Cusp.C))
	for _, pos := range r.Positions {
		t.AddRow(strings.ToLower(pos.Mode.Label())+" handles",
			fmt.Sprintf("hue %.2f  inner (%.2f, %.2f)", pos.Hue, pos.Inner.X, pos.Inner.Y))
	}
	return t
}
