package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rossnomann/fretboard/cmd"
	"github.com/rossnomann/fretboard/tui"
	"github.com/rossnomann/fretboard/version"
)

func main() {
	opts := cmd.RegisterFlags(flag.CommandLine)
	logPath := flag.String("log", "", "append log messages to `file`; the terminal is busy drawing")
	flag.Parse()
	if opts.Version {
		fmt.Println(version.Line("fretboard-tui"))
		os.Exit(0)
	}
	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	opts.Setup(logOut)

	tunings, warnings := opts.Tunings()
	th, err := opts.LoadTheme("")
	if err != nil {
		warnings = append(warnings, err)
	}
	m := tui.NewModel(tunings, th)
	var msgs []string
	for _, w := range warnings {
		msgs = append(msgs, w.Error())
	}
	m.Warning = strings.Join(msgs, "; ")

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
