package main

import (
	"flag"
	"fmt"
	"os"

	"gioui.org/app"
	"github.com/rossnomann/fretboard/cmd"
	"github.com/rossnomann/fretboard/gioui"
	"github.com/rossnomann/fretboard/internal/logging"
	"github.com/rossnomann/fretboard/version"
)

func main() {
	opts := cmd.RegisterFlags(flag.CommandLine)
	flag.Parse()
	if opts.Version {
		fmt.Println(version.Line("fretboard"))
		os.Exit(0)
	}
	opts.Setup(os.Stderr)

	tunings, warnings := opts.Tunings()
	preferences, warn := gioui.MakePreferences()
	if warn != nil {
		warnings = append(warnings, warn)
	}
	if opts.Theme != "" {
		preferences.Theme = opts.Theme
	}
	ui := gioui.NewApp(tunings, preferences, warnings...)

	go func() {
		if err := ui.Main(); err != nil {
			logging.Logger().Error("window closed", "err", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}
