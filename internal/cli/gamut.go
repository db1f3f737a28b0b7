package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucentlab/lucent/pkg/colour"
	"github.com/lucentlab/lucent/pkg/gamut"
)

// gamutResult is the --json shape of a gamut check.
type gamutResult struct {
	Input   string       `json:"input"`
	Gamut   gamut.Target `json:"gamut"`
	InGamut bool         `json:"inGamut"`
	Mapped  colour.Color `json:"mapped"`
	Hex     string       `json:"hex"`
	CSS     string       `json:"css"`
}

func newGamutCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "gamut <colour>",
		Short: "Check gamut membership and map into the target gamut",
		Long: `Gamut reports whether a colour is representable in the target gamut and
prints the gamut-mapped result: the nearest in-gamut colour with the same
lightness and hue, found by reducing chroma. The target comes from the
--gamut flag or the configuration.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := colour.Parse(args[0])
			if err != nil {
				return err
			}

			mapped := gamut.Map(c, a.target)
			format, err := colour.ParseFormat(a.cfg.DefaultFormat)
			if err != nil {
				return err
			}
			css, err := colour.ToCSS(mapped, format)
			if err != nil {
				return err
			}
			oklch, err := colour.ToCSS(mapped, colour.FormatOKLCH)
			if err != nil {
				return err
			}

			res := gamutResult{
				Input:   args[0],
				Gamut:   a.target,
				InGamut: gamut.In(c, a.target),
				Mapped:  mapped,
				Hex:     mapped.Hex(),
				CSS:     css,
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, res)
			}

			fmt.Fprintf(out, "gamut     %s\n", res.Gamut)
			fmt.Fprintf(out, "in-gamut  %s\n", yesNo(res.InGamut))
			fmt.Fprintf(out, "mapped    %s  %s\n", res.Hex, oklch)
			if isTerminal(out) {
				fmt.Fprintln(out, swatch(mapped))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON")

	return cmd
}

func yesNo(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}
