package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/lucentlab/lucent/pkg/colour"
)

// ANSI escape sequences for truecolor terminal swatches.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	swatchWidth  = 6
)

// swatch renders a solid block of the given colour using a 24-bit
// background escape.
func swatch(c colour.Color) string {
	rgba := c.RGBA8()
	bg := fmt.Sprintf("%s%d;%d;%dm", ansiBgPrefix, rgba.R, rgba.G, rgba.B)
	return bg + strings.Repeat(" ", swatchWidth) + ansiReset
}

// isTerminal reports whether w is an interactive terminal, so swatches
// stay out of pipes and test buffers.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// writeJSON emits v with two-space indentation and a trailing newline.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
