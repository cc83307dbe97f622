// Package cli provides the command-line interface for texgen.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/texgen/internal/colour"
	"github.com/jmylchreest/texgen/internal/config"
	"github.com/jmylchreest/texgen/internal/logging"
	"github.com/jmylchreest/texgen/internal/version"
)

var (
	// Global flags
	globalConfigPath string
	globalVerbose    bool
	globalQuiet      bool

	// Loaded in PersistentPreRunE and shared by every subcommand
	appConfig *config.Config
	appLogger hclog.Logger = hclog.NewNullLogger()
)

// NewRootCmd builds the texgen command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "texgen",
		Short: "Procedural texture generator",
		Long: `texgen renders the procedural textures used by the client: colour-slider
gradients, transparency checkers, the background grid tile, the text cursor
and the hue wheel.

Settings are read from a YAML config file (--config, $TEXGEN_CONFIG,
./texgen.yaml or the user config directory) and can be overridden by flags.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: loadApp,
	}

	rootCmd.PersistentFlags().StringVar(&globalConfigPath, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, "quiet", "q", false, "suppress non-error output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newHueCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// loadApp loads the configuration and builds the logger.
func loadApp(cmd *cobra.Command, _ []string) error {
	cfg, usedPath, err := config.Load(globalConfigPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level:   cfg.Logging.Level,
		JSON:    cfg.Logging.JSON,
		Verbose: globalVerbose,
		Quiet:   globalQuiet,
		Output:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("invalid logging configuration: %w", err)
	}

	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		colour.DisableColourOutput = true
	}

	if usedPath != "" {
		logger.Debug("loaded config", "path", usedPath)
	}

	appConfig = cfg
	appLogger = logger
	return nil
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
