package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucentlab/lucent/pkg/colour"
	"github.com/lucentlab/lucent/pkg/region"
)

func newRegionCmd(a *app) *cobra.Command {
	var (
		hue    float64
		level  string
		lSteps int
		cSteps int
		interp string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "region <reference>",
		Short: "Trace the readable region of a hue plane",
		Long: `Region samples the lightness/chroma plane at one hue and traces the
curves separating colours that reach a contrast threshold against the
reference colour from those that do not. The threshold is a WCAG level
name or a plain ratio. Step counts default to the configuration.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reference, err := colour.Parse(args[0])
			if err != nil {
				return err
			}
			threshold, err := region.ParseThreshold(level)
			if err != nil {
				return err
			}
			edge, err := region.ParseInterp(interp)
			if err != nil {
				return err
			}

			ls, cs := lSteps, cSteps
			if ls == 0 {
				ls = a.cfg.LightnessSteps
			}
			if cs == 0 {
				cs = a.cfg.ChromaSteps
			}

			a.log.Debug("tracing region",
				"reference", args[0], "hue", hue, "threshold", float64(threshold),
				"lightnessSteps", ls, "chromaSteps", cs)

			paths, err := region.Trace(reference, hue, threshold, region.Options{
				LightnessSteps:    ls,
				ChromaSteps:       cs,
				EdgeInterpolation: edge,
				Gamut:             a.target,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, paths)
			}

			fmt.Fprintf(out, "%d path(s) at hue %.1f, threshold %.2f:1\n", len(paths), hue, float64(threshold))
			for i, path := range paths {
				lo, hi := pathLightnessRange(path)
				fmt.Fprintf(out, "  path %d: %d points, L %.3f to %.3f\n", i, len(path), lo, hi)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&hue, "hue", 0, "hue angle in degrees")
	cmd.Flags().StringVar(&level, "level", "aa", "contrast threshold (level name or ratio)")
	cmd.Flags().IntVar(&lSteps, "lightness-steps", 0, "lightness samples (default from config)")
	cmd.Flags().IntVar(&cSteps, "chroma-steps", 0, "chroma samples (default from config)")
	cmd.Flags().StringVar(&interp, "interp", "linear", "edge interpolation (linear, midpoint)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON")
	_ = cmd.MarkFlagRequired("hue")

	return cmd
}

func pathLightnessRange(path region.Path) (lo, hi float64) {
	if len(path) == 0 {
		return 0, 0
	}
	lo, hi = path[0].L, path[0].L
	for _, p := range path[1:] {
		if p.L < lo {
			lo = p.L
		}
		if p.L > hi {
			hi = p.L
		}
	}
	return lo, hi
}
