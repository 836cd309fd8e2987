package bruntime

import (
	"github.com/gosuda/brewin/diag"
	"github.com/gosuda/brewin/parser"
)

// blockEnd returns the closer matched to the opener at from, consulting the
// compiled block index before scanning.
func (vm *VM) blockEnd(from int, closers ...string) (int, error) {
	if to, ok := vm.program.Blocks[from]; ok {
		return to, nil
	}
	if to, ok := parser.FindBlockEnd(vm.program.Lines, from, closers...); ok {
		return to, nil
	}
	return 0, diag.Syntaxf(from, "missing %s", closers[len(closers)-1])
}

func (vm *VM) blockStart(from int, opener string) (int, error) {
	if to, ok := vm.program.Blocks[from]; ok {
		return to, nil
	}
	if to, ok := parser.FindBlockStart(vm.program.Lines, from, opener); ok {
		return to, nil
	}
	return 0, diag.Syntaxf(from, "missing %s", opener)
}
