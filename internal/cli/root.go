// Package cli provides the command-line interface for Lucent.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/lucentlab/lucent/internal/config"
	"github.com/lucentlab/lucent/internal/version"
	"github.com/lucentlab/lucent/pkg/gamut"
)

// app carries the state every command shares once the root flags are
// parsed: the resolved configuration, the logger, and the gamut target.
type app struct {
	cfg    *config.Config
	log    hclog.Logger
	target gamut.Target

	verbose    bool
	quiet      bool
	configPath string
	gamutName  string
}

// NewRootCmd assembles the command tree. Every call builds a fresh tree,
// so tests can run commands in isolation.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "lucent",
		Short: "A perceptual colour engine",
		Long: `Lucent converts colours between representations, checks and maps display
gamuts, measures WCAG and APCA contrast, and traces the readable region of
a hue plane. Every operation works in oklch, so adjustments stay
perceptually even.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to the config file")
	rootCmd.PersistentFlags().StringVarP(&a.gamutName, "gamut", "g", "", "target gamut (srgb, display-p3)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newConvertCmd(a),
		newContrastCmd(a),
		newGamutCmd(a),
		newBoundaryCmd(a),
		newRegionCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// setup loads the configuration and prepares the logger. It runs after
// flag parsing and before any command body.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, errs := config.Load(a.configPath)
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	a.cfg = cfg

	name := a.gamutName
	if name == "" {
		name = cfg.DefaultGamut
	}
	target, err := gamut.ParseTarget(name)
	if err != nil {
		return err
	}
	a.target = target

	a.log = newLogger(cmd.ErrOrStderr(), a.verbose, a.quiet)
	return nil
}

// newLogger builds the CLI logger: Debug when verbose, errors only when
// quiet, warnings otherwise.
func newLogger(out io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Warn
	switch {
	case verbose:
		level = hclog.Debug
	case quiet:
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "lucent",
		Output: out,
		Level:  level,
	})
}
