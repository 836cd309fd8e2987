// Package mobile exposes a string-only entry point for gomobile bindings.
package mobile

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gosuda/brewin"
	"github.com/gosuda/brewin/diag"
	bruntime "github.com/gosuda/brewin/runtime"
)

type runResult struct {
	Outputs []bruntime.Output `json:"outputs"`
	Error   string            `json:"error,omitempty"`
	Kind    string            `json:"kind,omitempty"`
	Line    int               `json:"line,omitempty"`
}

func (r runResult) encode() string {
	b, _ := json.Marshal(r)
	return string(b)
}

func (r *runResult) fail(stage string, err error) {
	r.Error = fmt.Sprintf("%s: %v", stage, err)
	if de, ok := diag.As(err); ok {
		r.Kind = de.Kind.String()
		if de.Line >= 0 {
			r.Line = de.Line + 1
		}
	}
}

// Run executes program source and returns a JSON result. Outputs produced
// before a fatal error are kept. Line is 1-based.
// inputsJSON format: ["12", "hello", ...]
func Run(source, entry, inputsJSON string) string {
	result := runResult{Outputs: []bruntime.Output{}}
	if strings.TrimSpace(source) == "" {
		result.Error = "no source provided"
		return result.encode()
	}

	var queued []string
	if strings.TrimSpace(inputsJSON) != "" {
		if err := json.Unmarshal([]byte(inputsJSON), &queued); err != nil {
			result.Error = fmt.Sprintf("invalid inputs json: %v", err)
			return result.encode()
		}
	}

	vm, err := brewin.Compile(source)
	if err != nil {
		result.fail("compile", err)
		return result.encode()
	}
	vm.EnqueueInput(queued...)

	out, err := vm.Run(strings.TrimSpace(entry))
	result.Outputs = append(result.Outputs, out...)
	if err != nil {
		result.fail("runtime", err)
	}
	return result.encode()
}
