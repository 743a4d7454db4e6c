package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{"  _ __   ___ | |_ ___  __ _ _   _(_)____", "#34d399"},
	{" | '_ \\ / _ \\| __/ _ \\/ _` | | | | |_  /", "#2dd4bf"},
	{" | | | | (_) | ||  __/ (_| | |_| | |/ / ", "#22d3ee"},
	{" |_| |_|\\___/ \\__\\___|\\__, |\\__,_|_/___|", "#38bdf8"},
	{"                         |_|            ", "#60a5fa"},
}

// PrintBanner writes the ASCII art banner to w using the colour profile of w.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w)
}
