package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huewheel/internal/colour"
	"github.com/jmylchreest/huewheel/internal/image"
	"github.com/jmylchreest/huewheel/internal/picker"
	httputil "github.com/jmylchreest/huewheel/internal/util/http"
	"github.com/jmylchreest/huewheel/internal/util/imagecache"
	"github.com/jmylchreest/huewheel/internal/widget"
)

func newSampleCmd(a *app) *cobra.Command {
	var (
		x, y, radius int
		output       string
		cache        bool
	)

	cmd := &cobra.Command{
		Use:   "sample <image|url>",
		Short: "Pick a colour from an image",
		Long: `Sample the pixel at --x, --y (optionally averaged over --radius) from a local image
or an HTTP(S) URL and hand it to the picker as an external colour change.

Supported image formats: JPEG, PNG, GIF, WebP, TIFF, BMP

Examples:
  huewheel sample wallpaper.png --x 120 --y 40
  huewheel sample https://example.com/photo.jpg --x 10 --y 10 --radius 2 -m oklch -o pick.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if err := image.ValidateImagePath(path); err != nil {
				return fmt.Errorf("invalid image path: %w", err)
			}

			if cache && image.IsURL(path) {
				c := &imagecache.Cache{Fetch: httputil.FetchOptions{MaxBytes: image.MaxRemoteImageSize}}
				local, err := c.Get(cmd.Context(), path)
				if err != nil {
					return err
				}
				a.logger.Debug("using cached image", "url", path, "path", local)
				path = local
			}

			a.logger.Debug("loading image", "path", path)
			img, err := image.NewSmartLoader().Load(cmd.Context(), path)
			if err != nil {
				return fmt.Errorf("failed to load image: %w", err)
			}
			b := img.Bounds()
			a.logger.Debug("image loaded", "width", b.Dx(), "height", b.Dy())

			c, err := image.SampleAverage(img, x, y, radius)
			if err != nil {
				return fmt.Errorf("failed to sample image: %w", err)
			}

			p, err := a.newPicker(a.cfg.InitialColor(), nil, nil)
			if err != nil {
				return err
			}
			p.Handle(picker.ExternalColor{Hex: c.Hex()})
			st := p.State()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, colour.FormatColourWithPreview(st.Color, 8))
			fmt.Fprintf(out, "rgb %s\n", st.RGBText)
			fmt.Fprintf(out, "%s handles: hue %.2f  inner (%.2f, %.2f)\n",
				p.Mode().Label(), widget.HueFromAngle(st.HueAngle), st.Inner.X, st.Inner.Y)

			if output != "" {
				return writePNG(output, p.Image())
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&x, "x", 0, "pixel column, from the left edge")
	cmd.Flags().IntVar(&y, "y", 0, "pixel row, from the top edge")
	cmd.Flags().IntVar(&radius, "radius", 0, "average over the square of this radius around the pixel")
	cmd.Flags().StringVarP(&output, "output", "o", "", "also render the picker to this PNG file")
	cmd.Flags().BoolVar(&cache, "cache", false, "keep downloaded images in the user cache directory")
	return cmd
}
