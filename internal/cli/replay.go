package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huewheel/internal/colour"
	"github.com/jmylchreest/huewheel/internal/picker"
	"github.com/jmylchreest/huewheel/internal/widget"
)

func newReplayCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "replay [script|-]",
		Short: "Run a script of pointer and text events through the picker",
		Long: `Feed events to a picker, one per line, and print every colour commit and mode change.
The script is read from standard input when omitted or "-".

Events:
  down X Y     pointer pressed at widget coordinates
  move X Y     pointer moved
  up           pointer released
  hex TEXT     text typed into the hex field
  rgb TEXT     text typed into the rgb field
  mode NAME    switch to hsv, hsl or oklch
  color HEX    external colour change (no commit)
  swatch N     swatch N selected

Blank lines and lines starting with # are ignored.

Examples:
  printf 'down 100 3\nmove 172 75\nup\n' | huewheel replay
  huewheel replay drag.txt -m oklch -o final.png`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0]) // #nosec G304 - User-specified script path
				if err != nil {
					return fmt.Errorf("failed to open script: %w", err)
				}
				defer f.Close()
				in = f
			}

			events, err := picker.ReadScript(in)
			if err != nil {
				return err
			}

			p, err := a.replay(cmd.OutOrStdout(), events)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "final %s %s\n", p.Color(), p.Mode())

			if output != "" {
				return writePNG(output, p.Image())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "render the final frame to this PNG file")
	return cmd
}

// replay runs events through a picker starting at the configured colour and reports callbacks
// to w as they fire.
func (a *app) replay(w io.Writer, events []picker.Event) (*picker.Picker, error) {
	p, err := a.newPicker(a.cfg.InitialColor(),
		func(hex string) { fmt.Fprintf(w, "commit %s\n", colour.ColourString(colour.MustHex(hex), hex)) },
		func(m widget.Mode) { fmt.Fprintf(w, "mode %s\n", m) },
	)
	if err != nil {
		return nil, err
	}
	for _, ev := range events {
		p.Handle(ev)
	}
	return p, nil
}
