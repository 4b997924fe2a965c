package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the DevFolio ASCII art banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.EnvColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"  ____             _____     _ _       ", "#34d399"},
		{" |  _ \\  _____   _|  ___|__ | (_) ___  ", "#2dd4bf"},
		{" | | | |/ _ \\ \\ / / |_ / _ \\| | |/ _ \\ ", "#22d3ee"},
		{" | |_| |  __/\\ V /|  _| (_) | | | (_) |", "#38bdf8"},
		{" |____/ \\___| \\_/ |_|  \\___/|_|_|\\___/ ", "#60a5fa"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
