// Lucent - a perceptual colour engine
//
// Lucent converts colours between CSS representations, checks and maps
// display gamuts, measures WCAG and APCA contrast, and traces readable
// regions of the oklch hue plane.
package main

import (
	"os"

	"github.com/lucentlab/lucent/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
