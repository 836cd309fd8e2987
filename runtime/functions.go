package bruntime

import (
	"github.com/gosuda/brewin/ast"
	"github.com/gosuda/brewin/diag"
)

// DefaultEntry is the function Run starts at when no entry is given.
const DefaultEntry = "main"

// Result slot names written by return, input and strtoint.
const (
	ResultInt    = "resulti"
	ResultBool   = "resultb"
	ResultString = "results"
)

func resultSlot(k Kind) string {
	switch k.Base() {
	case IntKind:
		return ResultInt
	case BoolKind:
		return ResultBool
	default:
		return ResultString
	}
}

func (vm *VM) function(name string, line int) (*ast.Function, error) {
	fn := vm.program.Functions[name]
	if fn == nil {
		return nil, diag.Namef(line, "unknown function %s", name)
	}
	return fn, nil
}

// Functions lists defined function names in definition order.
func (vm *VM) Functions() []string {
	return append([]string(nil), vm.program.Order...)
}
