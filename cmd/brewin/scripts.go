package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gosuda/brewin/diag"
	"github.com/gosuda/brewin/parser"
)

var (
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	snippetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// loadSource reads a program file, or standard input for "-".
func loadSource(path string) ([]string, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	lines := parser.SplitLines(string(b))
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty program")
	}
	return lines, nil
}

// renderError styles the error headline and the source excerpt below it.
func renderError(err error, lines []string) string {
	headline, excerpt, found := strings.Cut(diag.Snippet(err, lines), "\n")
	if !found {
		return errStyle.Render(headline)
	}
	return errStyle.Render(headline) + "\n" + snippetStyle.Render(strings.TrimLeft(excerpt, "\n"))
}

