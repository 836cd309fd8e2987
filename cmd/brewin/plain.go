package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/gosuda/brewin"
	"github.com/gosuda/brewin/parser"
	bruntime "github.com/gosuda/brewin/runtime"
)

func runPlain(app appConfig) error {
	vm, err := brewin.CompileLines(app.lines, parser.WithLogger(app.log))
	if err != nil {
		return err
	}
	vm.SetLogger(app.log)
	vm.EnqueueInput(app.cfg.Inputs...)

	vm.SetOutputHook(func(out bruntime.Output) {
		fmt.Println(out.Text)
	})

	if app.path != "-" && isatty.IsTerminal(os.Stdin.Fd()) {
		ln := liner.NewLiner()
		defer ln.Close()
		ln.SetCtrlCAborts(true)
		vm.SetInputProvider(func(string) (string, error) {
			line, err := ln.Prompt("")
			if errors.Is(err, io.EOF) {
				return "", nil
			}
			if err != nil {
				return "", err
			}
			ln.AppendHistory(line)
			return line, nil
		})
	} else {
		reader := bufio.NewReader(os.Stdin)
		vm.SetInputProvider(func(string) (string, error) {
			line, err := reader.ReadString('\n')
			if err != nil && err != io.EOF {
				return "", err
			}
			return strings.TrimRight(line, "\r\n"), nil
		})
	}

	_, err = vm.Run(app.cfg.Entry)
	return err
}
