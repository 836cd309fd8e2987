package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/gosuda/brewin/config"
)

type inputList []string

func (l *inputList) String() string {
	return strings.Join(*l, ",")
}

func (l *inputList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func main() {
	configPath := flag.String("config", "", "run configuration file (default "+config.DefaultPath+" when present)")
	entry := flag.String("entry", "", "entry function (default main)")
	trace := flag.Bool("trace", false, "log every executed instruction")
	level := flag.String("log-level", "", "log level: trace|debug|info|warn|error|disabled")
	ui := flag.String("ui", "", "frontend: plain|tui|auto")
	var inputs inputList
	flag.Var(&inputs, "input", "answer queued for input, may be repeated")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: brewin [flags] <program>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	if *entry != "" {
		cfg.Entry = *entry
	}
	if *trace {
		cfg.Trace = true
	}
	if *level != "" {
		cfg.LogLevel = *level
	}
	if *ui != "" {
		cfg.UI = *ui
	}
	cfg.Inputs = append(cfg.Inputs, inputs...)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	path := flag.Arg(0)
	lines, err := loadSource(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load %s: %v\n", path, err)
		os.Exit(1)
	}

	app := appConfig{
		path:  path,
		lines: lines,
		cfg:   cfg,
		log:   newLogger(cfg.Level()),
	}

	if resolveUI(cfg.UI) == config.UITUI {
		// Log lines would tear the alternate screen.
		app.log = zerolog.Nop()
		p := tea.NewProgram(newModel(app), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "tui: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if err := runPlain(app); err != nil {
		fmt.Fprintln(os.Stderr, renderError(err, app.lines))
		os.Exit(1)
	}
}

// loadConfig reads path, or the default file when path is empty. Only the
// default file may be absent.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	cfg, err := config.Load(config.DefaultPath)
	if errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}

func newLogger(level zerolog.Level) zerolog.Logger {
	w := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
		TimeFormat: "15:04:05.000",
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func resolveUI(mode string) string {
	if mode != config.UIAuto {
		return mode
	}
	if isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()) {
		return config.UITUI
	}
	return config.UIPlain
}
