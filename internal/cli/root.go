// Package cli provides the command-line interface for huewheel.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/huewheel/internal/colour"
	"github.com/jmylchreest/huewheel/internal/config"
	"github.com/jmylchreest/huewheel/internal/picker"
	"github.com/jmylchreest/huewheel/internal/version"
	"github.com/jmylchreest/huewheel/internal/widget"
)

// app carries the settings resolved before any subcommand runs.
type app struct {
	cfgFile string
	noColor bool
	mode    widget.Mode

	cfg    *config.Config
	logger hclog.Logger
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	a := &app{mode: widget.ModeHSV}
	d := config.Default()

	rootCmd := &cobra.Command{
		Use:   "huewheel",
		Short: "A perceptual colour wheel for the terminal",
		Long: `huewheel is a hue-ring colour picker with HSV, HSL and OkLrCH inner shapes.

The OkLrCH mode shows the exact sRGB gamut slice of the selected hue, so every
point you can pick is a displayable colour.

Settings are read from flags, HUEWHEEL_* environment variables and
$XDG_CONFIG_HOME/huewheel/config.yaml, in that order of precedence.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/huewheel/config.yaml)")
	flags.BoolP(config.KeyVerbose, "v", false, "enable verbose output")
	flags.Int(config.KeyWidth, d.Width, "widget width in pixels")
	flags.Int(config.KeyHeight, d.Height, "widget height in pixels")
	flags.VarP(&a.mode, config.KeyMode, "m", "picker mode (hsv, hsl, oklch)")
	flags.BoolVar(&a.noColor, "no-color", false, "disable ANSI colour previews")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newVersionCmd(),
		newConvertCmd(a),
		newRenderCmd(a),
		newGamutCmd(a),
		newSampleCmd(a),
		newSwatchesCmd(a),
		newReplayCmd(a),
		newTUICmd(a),
	)
	return rootCmd
}

// load resolves configuration and logging for the command about to run.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.Verbose {
		a.logger = hclog.New(&hclog.LoggerOptions{
			Name:   "huewheel",
			Output: cmd.ErrOrStderr(),
			Level:  hclog.Debug,
		})
	} else {
		a.logger = hclog.New(&hclog.LoggerOptions{
			Name:   "huewheel",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	}

	colour.DisableColourOutput = a.noColor || !isColourTerminal(cmd.OutOrStdout())
	return nil
}

func isColourTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && colour.SupportsANSIColours(f)
}

// newPicker creates a picker from the resolved settings showing c.
func (a *app) newPicker(c colour.Color, onColor func(string), onMode func(widget.Mode)) (*picker.Picker, error) {
	return picker.New(picker.Options{
		Color:         c.Hex(),
		OnColorChange: onColor,
		Mode:          a.cfg.PickerMode(),
		OnModeChange:  onMode,
		Width:         a.cfg.Width,
		Height:        a.cfg.Height,
		Logger:        a.logger.Named("picker"),
	})
}

// colourArg parses args[0] when present and falls back to the configured colour.
func (a *app) colourArg(args []string) (colour.Color, error) {
	if len(args) == 0 {
		return a.cfg.InitialColor(), nil
	}
	c, err := colour.ParseAny(args[0])
	if err != nil {
		return colour.Color{}, fmt.Errorf("invalid colour argument: %w", err)
	}
	return c, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
