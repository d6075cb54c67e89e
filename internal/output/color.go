// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss/v2"
	"golang.org/x/term"
)

// Color modes accepted by --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ColorModes lists the accepted --color values.
var ColorModes = []string{ColorAuto, ColorAlways, ColorNever}

// ColorEnabled decides whether text output to w is colored. In auto mode
// color is used only when w is a terminal and NO_COLOR is unset.
func ColorEnabled(mode string, w io.Writer) (bool, error) {
	switch mode {
	case ColorAlways:
		return true, nil
	case ColorNever:
		return false, nil
	case ColorAuto, "":
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false, nil
		}
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	}
	return false, fmt.Errorf("invalid color mode %q: must be one of %v", mode, ColorModes)
}

// getColors returns the header, even and odd row colors. Each is picked for
// the terminal background so output stays readable on light and dark themes.
func getColors() (header, even, odd color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	pick := func(light string, dark string) color.Color {
		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = pick("#b08800", "#f6be00")
	even = pick("#333333", "#ffffff")
	odd = pick("#0088a0", "#00c8f0")

	return
}
