package main

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gosuda/brewin"
	"github.com/gosuda/brewin/parser"
	bruntime "github.com/gosuda/brewin/runtime"
)

var errInputAborted = errors.New("input aborted")

func runVM(app appConfig, events chan<- tea.Msg) {
	defer close(events)
	vm, err := brewin.CompileLines(app.lines, parser.WithLogger(app.log))
	if err != nil {
		events <- vmDoneMsg{err: err}
		return
	}
	vm.SetLogger(app.log)
	vm.EnqueueInput(app.cfg.Inputs...)

	vm.SetOutputHook(func(out bruntime.Output) {
		events <- vmOutputMsg{out: out}
	})
	vm.SetInputProvider(func(prompt string) (string, error) {
		resp := make(chan string, 1)
		events <- vmPromptMsg{prompt: prompt, resp: resp}
		v, ok := <-resp
		if !ok {
			return "", errInputAborted
		}
		return v, nil
	})

	_, err = vm.Run(app.cfg.Entry)
	events <- vmDoneMsg{err: err}
}
