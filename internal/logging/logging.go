// Package logging builds the hclog loggers used across texgen.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Options configures New.
type Options struct {
	// Level is an hclog level name ("trace", "debug", "info", "warn",
	// "error", "off"). Empty defers to Verbose and Quiet.
	Level string

	// Verbose lowers the level to debug.
	Verbose bool

	// Quiet raises the level to error. It wins over Verbose.
	Quiet bool

	// Output defaults to os.Stderr.
	Output io.Writer

	// JSON switches to JSON-formatted lines.
	JSON bool
}

// ResolveLevel picks the effective level for opts.
func ResolveLevel(opts Options) (hclog.Level, error) {
	switch {
	case opts.Quiet:
		return hclog.Error, nil
	case opts.Verbose:
		return hclog.Debug, nil
	case opts.Level != "":
		level := hclog.LevelFromString(opts.Level)
		if level == hclog.NoLevel {
			return hclog.NoLevel, fmt.Errorf("invalid log level: %s (valid: %s)", opts.Level, LevelNames())
		}
		return level, nil
	default:
		return hclog.Info, nil
	}
}

// New returns the root "texgen" logger.
func New(opts Options) (hclog.Logger, error) {
	level, err := ResolveLevel(opts)
	if err != nil {
		return nil, err
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:            "texgen",
		Level:           level,
		Output:          out,
		JSONFormat:      opts.JSON,
		Color:           colorOption(out),
		DisableTime:     !opts.JSON,
		IncludeLocation: level == hclog.Trace,
	}), nil
}

// colorOption enables colour only for terminals that have not opted out.
func colorOption(out io.Writer) hclog.ColorOption {
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return hclog.ColorOff
	}
	if f, ok := out.(*os.File); ok && (f == os.Stderr || f == os.Stdout) {
		return hclog.AutoColor
	}
	return hclog.ColorOff
}

// LevelNames lists the accepted level names.
func LevelNames() string {
	return strings.Join([]string{"trace", "debug", "info", "warn", "error", "off"}, ", ")
}
