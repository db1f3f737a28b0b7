package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucentlab/lucent/pkg/gamut"
)

func newBoundaryCmd(a *app) *cobra.Command {
	var (
		hue    float64
		steps  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "boundary",
		Short: "Sample the gamut boundary at a fixed hue",
		Long: `Boundary samples the maximum representable chroma across lightness for
one hue, tracing the edge of the target gamut in the lightness/chroma
plane. Output is a table of lightness/chroma pairs, or the raw points
with --json.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := gamut.BoundaryPath(hue, steps, gamut.Options{Gamut: a.target})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, points)
			}

			tbl := newTable("lightness", "chroma")
			for _, p := range points {
				tbl.addRow(fmt.Sprintf("%.4f", p.L), fmt.Sprintf("%.4f", p.C))
			}
			fmt.Fprint(out, tbl.render())
			return nil
		},
	}

	cmd.Flags().Float64Var(&hue, "hue", 0, "hue angle in degrees")
	cmd.Flags().IntVar(&steps, "steps", 24, "number of lightness steps")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON")
	_ = cmd.MarkFlagRequired("hue")

	return cmd
}
