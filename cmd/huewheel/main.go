// huewheel - a perceptual colour wheel
//
// huewheel picks colours on a hue ring with HSV, HSL or OkLrCH inner shapes,
// from the command line or interactively in the terminal.
package main

import (
	"os"

	"github.com/jmylchreest/huewheel/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
