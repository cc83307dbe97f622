package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/texgen/internal/colour"
	"github.com/jmylchreest/texgen/internal/image"
	"github.com/jmylchreest/texgen/internal/pixbuf"
	"github.com/jmylchreest/texgen/internal/preview"
	"github.com/jmylchreest/texgen/internal/texture"
)

func newPreviewCmd() *cobra.Command {
	var (
		flags    renderFlags
		columns  int
		fromFile bool
		noColour bool
	)

	cmd := &cobra.Command{
		Use:   "preview <texture|file>",
		Short: "Show a texture in the terminal",
		Long: `Render a texture in memory and draw a down-sampled true-colour preview in
the terminal. Translucent pixels are shown over a grey backdrop.

With --file the argument is an image on disk instead of a texture name.

Examples:
  texgen preview cs_hs --dimension 256
  texgen preview --file tex/var/circle_t.png --columns 40`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColour {
				colour.DisableColourOutput = true
			}

			var (
				buf *pixbuf.Buffer
				err error
			)
			if fromFile {
				buf, err = image.LoadBuffer(image.NewFileLoader(), args[0])
			} else {
				buf, err = renderNamed(cmd, &flags, args[0])
			}
			if err != nil {
				return err
			}

			return preview.Render(cmd.OutOrStdout(), buf, preview.Options{Columns: columns})
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().IntVarP(&columns, "columns", "c", 0, "preview width in terminal cells (default: terminal width)")
	cmd.Flags().BoolVar(&fromFile, "file", false, "treat the argument as an image file")
	cmd.Flags().BoolVar(&noColour, "no-colour", false, "use ASCII shading instead of colour")

	return cmd
}

// renderNamed renders one catalogue texture using the config plus flags.
func renderNamed(cmd *cobra.Command, flags *renderFlags, name string) (*pixbuf.Buffer, error) {
	cfg := *appConfig
	flags.apply(cmd.Flags(), &cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	entries, err := texture.Builtin().Select([]string{name})
	if err != nil {
		return nil, err
	}
	params, err := textureParams(&cfg)
	if err != nil {
		return nil, err
	}
	return entries[0].Generate(cmd.Context(), params)
}
