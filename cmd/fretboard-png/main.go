package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rossnomann/fretboard/cmd"
	"github.com/rossnomann/fretboard/raster"
	"github.com/rossnomann/fretboard/version"
)

func main() {
	opts := cmd.RegisterFlags(flag.CommandLine)
	width := flag.Int("width", 1600, "image width in `pixels`")
	height := flag.Int("height", 400, "image height in `pixels`; taller than wide draws a vertical neck")
	outPath := flag.String("o", "", "write the PNG to `file` instead of standard output")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags]\n\nRenders the selected tuning as a PNG image.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if opts.Version {
		fmt.Println(version.Line("fretboard-png"))
		os.Exit(0)
	}
	opts.Setup(os.Stderr)

	tunings, warnings := opts.Tunings()
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %v\n", w)
	}
	th, err := opts.LoadTheme("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	tuning, err := tunings.Selected()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var out io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not create output file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	bw := bufio.NewWriter(out)
	if err := raster.Render(bw, tuning, th, *width, *height); err != nil {
		fmt.Fprintf(os.Stderr, "error rendering %q: %v\n", tuning.Name(), err)
		os.Exit(1)
	}
	if err := bw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error writing image: %v\n", err)
		os.Exit(1)
	}
}
