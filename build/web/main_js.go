//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"syscall/js"

	"github.com/gosuda/brewin"
	bruntime "github.com/gosuda/brewin/runtime"
)

type runResult struct {
	Outputs []bruntime.Output `json:"outputs"`
	Error   string            `json:"error,omitempty"`
}

const abortSentinel = "__BREWIN_ABORT__"

// inputPrompt asks the page's brewinInputNext(prompt) hook for a line. An
// absent hook or an undefined answer reads as an empty line.
func inputPrompt(prompt string) (string, error) {
	fn := js.Global().Get("brewinInputNext")
	if fn.Type() != js.TypeFunction {
		return "", nil
	}
	v := fn.Invoke(prompt)
	if v.IsUndefined() || v.IsNull() {
		return "", nil
	}
	out := v.String()
	if strings.TrimSpace(out) == abortSentinel {
		return "", fmt.Errorf("input queue is empty (add input and run again)")
	}
	return out, nil
}

func runProgram(this js.Value, args []js.Value) any {
	result := runResult{Outputs: nil}
	if len(args) < 1 {
		result.Error = "brewinRun requires program source"
		b, _ := json.Marshal(result)
		return string(b)
	}

	entry := ""
	if len(args) > 1 {
		entry = strings.TrimSpace(args[1].String())
	}

	var queued []string
	if len(args) > 2 {
		if strings.TrimSpace(args[2].String()) != "" {
			_ = json.Unmarshal([]byte(args[2].String()), &queued)
		}
	}

	vm, err := brewin.Compile(args[0].String())
	if err != nil {
		result.Error = fmt.Sprintf("compile: %v", err)
		b, _ := json.Marshal(result)
		return string(b)
	}
	vm.EnqueueInput(queued...)
	vm.SetInputProvider(inputPrompt)

	out, err := vm.Run(entry)
	result.Outputs = out
	if err != nil {
		result.Error = fmt.Sprintf("runtime: %v", err)
	}

	b, _ := json.Marshal(result)
	return string(b)
}

func main() {
	js.Global().Set("brewinRun", js.FuncOf(runProgram))
	select {}
}
