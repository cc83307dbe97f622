package cli

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/texgen/internal/config"
	"github.com/jmylchreest/texgen/internal/generator"
	"github.com/jmylchreest/texgen/internal/huewheel"
	"github.com/jmylchreest/texgen/internal/image"
	"github.com/jmylchreest/texgen/internal/texture"
)

// renderFlags are the flags shared by commands that render textures.
type renderFlags struct {
	output     string
	format     string
	workers    int
	dimension  int
	hueMode    string
	circleMask string
}

func (f *renderFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.output, "output", "o", "", "output directory (default from config: tex)")
	fs.StringVarP(&f.format, "format", "f", "", "image format (png, bmp, tiff)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "concurrent workers")
	fs.IntVarP(&f.dimension, "dimension", "d", 0, "hue wheel dimension in pixels (>= 2)")
	fs.StringVar(&f.hueMode, "hue-mode", "", "hue wheel radial channel (value, saturation)")
	fs.StringVar(&f.circleMask, "circle-mask", "", "mask image for circle_t (default: generated disc)")
}

// apply copies explicitly set flags over cfg. Flags beat the config file.
func (f *renderFlags) apply(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("output") {
		cfg.Output.Dir = f.output
	}
	if fs.Changed("format") {
		cfg.Output.Format = f.format
	}
	if fs.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fs.Changed("dimension") {
		cfg.Hue.Dimension = f.dimension
	}
	if fs.Changed("hue-mode") {
		cfg.Hue.Mode = f.hueMode
	}
	if fs.Changed("circle-mask") {
		cfg.CircleMask = f.circleMask
	}
}

// textureParams builds generator parameters from a validated config,
// loading the circle mask if one is configured.
func textureParams(cfg *config.Config) (texture.Params, error) {
	p := texture.DefaultParams()
	p.HueDimension = cfg.Hue.Dimension
	p.HueRadial = huewheel.RadialChannel(cfg.Hue.Mode)
	p.Workers = cfg.Workers
	p.Logger = appLogger.Named("render")

	if cfg.CircleMask != "" {
		mask, err := image.LoadBuffer(image.NewFileLoader(), cfg.CircleMask)
		if err != nil {
			return p, fmt.Errorf("failed to load circle mask: %w", err)
		}
		appLogger.Debug("loaded circle mask", "path", cfg.CircleMask, "size", fmt.Sprintf("%dx%d", mask.Width, mask.Height))
		p.CircleMask = mask
	}
	return p, nil
}

func newGenerateCmd() *cobra.Command {
	var (
		flags  renderFlags
		bundle string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "generate [texture...]",
		Short: "Render textures to the output directory",
		Long: `Render the named textures (or every texture when none are named) and write
them under the output directory using their catalogue paths, e.g.
tex/var/cs_hs.png. Use 'texgen list' to see the available names.

Examples:
  # Render everything with the config defaults
  texgen generate

  # Render the hue wheel and cursor into ./build as TIFF
  texgen generate -o build -f tiff cs_hs text_cursor

  # Render everything and also pack it into an archive
  texgen generate --bundle textures.tar.xz`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *appConfig
			flags.apply(cmd.Flags(), &cfg)
			if cmd.Flags().Changed("bundle") {
				cfg.Output.Bundle = bundle
			}
			if len(args) > 0 {
				cfg.Textures = args
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			params, err := textureParams(&cfg)
			if err != nil {
				return err
			}
			format, _ := image.ParseFormat(cfg.Output.Format)

			gen, err := generator.New(texture.Builtin(), generator.Options{
				OutputDir: cfg.Output.Dir,
				Format:    format,
				Bundle:    cfg.Output.Bundle,
				Workers:   cfg.Workers,
				DryRun:    dryRun,
				Params:    params,
				Logger:    appLogger,
			})
			if err != nil {
				return err
			}

			start := time.Now()
			results, err := gen.Run(cmd.Context(), cfg.Textures)
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			var total int64
			for _, r := range results {
				total += r.Bytes
			}
			appLogger.Info("generation complete",
				"textures", len(results),
				"output", cfg.Output.Dir,
				"bytes", humanize.Bytes(uint64(total)),
				"took", time.Since(start).Round(time.Millisecond),
				"dry_run", dryRun)
			return nil
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().StringVar(&bundle, "bundle", "", "also write an archive (.tar.xz, .tar.gz, .tar)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "render and encode without writing files")

	return cmd
}
