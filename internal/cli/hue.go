package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/texgen/internal/huewheel"
	"github.com/jmylchreest/texgen/internal/image"
)

func newHueCmd() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "hue [file]",
		Short: "Render only the hue wheel",
		Long: `Render the hue wheel: angle around the centre selects the hue, distance from
the centre selects brightness, and pixels outside the inscribed circle are
fully transparent.

The destination defaults to <output>/var/cs_hs.<format>. When a file is
given and --format is not, the format follows the file extension.

Examples:
  texgen hue
  texgen hue --dimension 512 wheel.png
  texgen hue --hue-mode saturation --workers 8 wheel.tiff`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *appConfig
			flags.apply(cmd.Flags(), &cfg)

			dest := ""
			if len(args) == 1 {
				dest = args[0]
				if !cmd.Flags().Changed("format") {
					if ext := strings.TrimPrefix(filepath.Ext(dest), "."); ext != "" {
						cfg.Output.Format = ext
					}
				}
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			format, _ := image.ParseFormat(cfg.Output.Format)
			if dest == "" {
				dest = filepath.Join(cfg.Output.Dir, "var", "cs_hs"+format.Ext())
			}

			r := huewheel.Renderer{
				Radial:  huewheel.RadialChannel(cfg.Hue.Mode),
				Workers: cfg.Workers,
				Logger:  appLogger.Named("hue"),
			}
			buf, err := r.Render(cmd.Context(), cfg.Hue.Dimension)
			if err != nil {
				return err
			}

			n, err := image.Save(buf, dest, format)
			if err != nil {
				return err
			}

			appLogger.Info("wrote hue wheel", "path", dest, "dimension", cfg.Hue.Dimension, "bytes", humanize.Bytes(uint64(n)))
			return nil
		},
	}

	flags.register(cmd.Flags())
	return cmd
}
