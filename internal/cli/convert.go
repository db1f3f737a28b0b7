package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucentlab/lucent/pkg/colour"
)

// convertResult is the --json shape of a conversion.
type convertResult struct {
	Input   string            `json:"input"`
	Colour  colour.Color      `json:"oklch"`
	Formats map[string]string `json:"formats"`
}

func newConvertCmd(a *app) *cobra.Command {
	var (
		formats []string
		asJSON  bool
		preview bool
	)

	cmd := &cobra.Command{
		Use:   "convert <colour>",
		Short: "Parse a colour and print it in other syntaxes",
		Long: `Convert parses any supported CSS colour syntax (hex, rgb, hsl, oklch,
oklab, color(display-p3), named colours) and prints the requested
serializations. Without --to it prints every format.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := colour.Parse(args[0])
			if err != nil {
				return err
			}

			want, err := resolveFormats(formats)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				res := convertResult{
					Input:   args[0],
					Colour:  c,
					Formats: make(map[string]string, len(want)),
				}
				for _, f := range want {
					s, err := colour.ToCSS(c, f)
					if err != nil {
						return err
					}
					res.Formats[string(f)] = s
				}
				return writeJSON(out, res)
			}

			if preview && isTerminal(out) {
				fmt.Fprintln(out, swatch(c))
			}
			for _, f := range want {
				s, err := colour.ToCSS(c, f)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-7s %s\n", string(f), s)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&formats, "to", "t", nil, "output formats (default: all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON")
	cmd.Flags().BoolVar(&preview, "preview", true, "show a swatch when on a terminal")

	return cmd
}

// resolveFormats maps format names to colour formats, defaulting to every
// supported format when none are named.
func resolveFormats(names []string) ([]colour.Format, error) {
	if len(names) == 0 {
		return colour.ValidFormats(), nil
	}
	formats := make([]colour.Format, 0, len(names))
	for _, name := range names {
		f, err := colour.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	return formats, nil
}
