package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucentlab/lucent/pkg/colour"
	"github.com/lucentlab/lucent/pkg/contrast"
)

// contrastResult is the --json shape of a contrast measurement.
type contrastResult struct {
	Foreground string   `json:"foreground"`
	Background string   `json:"background"`
	Ratio      float64  `json:"ratio"`
	AA         bool     `json:"aa"`
	AALarge    bool     `json:"aaLarge"`
	AAA        bool     `json:"aaa"`
	AAALarge   bool     `json:"aaaLarge"`
	APCA       *float64 `json:"apca,omitempty"`
}

func newContrastCmd(a *app) *cobra.Command {
	var (
		withAPCA bool
		asJSON   bool
		require  string
	)

	cmd := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Measure the contrast between two colours",
		Long: `Contrast computes the WCAG 2.x contrast ratio between two colours and
reports the AA/AAA verdicts for normal and large text. --apca adds the
polarity-aware APCA Lc score. --require makes the command fail when the
pair does not reach the given level, for use in scripts and CI.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fg, err := colour.Parse(args[0])
			if err != nil {
				return fmt.Errorf("foreground: %w", err)
			}
			bg, err := colour.Parse(args[1])
			if err != nil {
				return fmt.Errorf("background: %w", err)
			}

			ratio := contrast.Ratio(fg, bg)
			res := contrastResult{
				Foreground: args[0],
				Background: args[1],
				Ratio:      ratio,
				AA:         contrast.MeetsAA(fg, bg, false),
				AALarge:    contrast.MeetsAA(fg, bg, true),
				AAA:        contrast.MeetsAAA(fg, bg, false),
				AAALarge:   contrast.MeetsAAA(fg, bg, true),
			}
			if withAPCA {
				lc := contrast.APCA(fg, bg)
				res.APCA = &lc
			}

			out := cmd.OutOrStdout()
			if asJSON {
				if err := writeJSON(out, res); err != nil {
					return err
				}
			} else {
				fmt.Fprintf(out, "ratio      %.2f:1\n", ratio)
				fmt.Fprintf(out, "AA         %-4s  AA large   %s\n", verdict(res.AA), verdict(res.AALarge))
				fmt.Fprintf(out, "AAA        %-4s  AAA large  %s\n", verdict(res.AAA), verdict(res.AAALarge))
				if withAPCA {
					fmt.Fprintf(out, "APCA       %.1f Lc\n", *res.APCA)
				}
			}

			if require != "" {
				level, err := contrast.ParseLevel(require)
				if err != nil {
					return err
				}
				if ratio < level {
					return fmt.Errorf("contrast %.2f:1 does not reach %s (%.1f:1)", ratio, require, level)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withAPCA, "apca", false, "include the APCA Lc score")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON")
	cmd.Flags().StringVar(&require, "require", "", "fail unless the pair reaches this level (aa, aaa, aa-large, aaa-large, or a ratio)")

	return cmd
}

func verdict(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}
