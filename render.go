package main

import (
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
)

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// newLogger logs to w in color on a terminal and as logfmt otherwise.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	opts := log.Options{
		Prefix: "go-mkdocs",
		Level:  log.InfoLevel,
	}
	if verbose {
		opts.Level = log.DebugLevel
	}
	if !isTerminal(w) {
		opts.Formatter = log.LogfmtFormatter
	}
	return log.NewWithOptions(w, opts)
}

// preview renders the skeleton for a terminal.
func preview(text string) (string, error) {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return "", err
	}
	return renderer.Render(text)
}
