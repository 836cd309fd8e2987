package bruntime

import (
	"fmt"
	"strings"
)

// joinOperands concatenates the printed forms of single-token operands.
func (vm *VM) joinOperands(args []string) (string, error) {
	var b strings.Builder
	for _, tok := range args {
		v, err := vm.operand(tok)
		if err != nil {
			return "", err
		}
		b.WriteString(v.String())
	}
	return b.String(), nil
}

func (vm *VM) builtinPrint(args []string) error {
	if len(args) == 0 {
		return vm.syntaxf("print requires at least one argument")
	}
	text, err := vm.joinOperands(args)
	if err != nil {
		return err
	}
	vm.emitOutput(Output{Text: text})
	vm.ip++
	return nil
}

func (vm *VM) builtinInput(args []string) error {
	prompt := ""
	if len(args) > 0 {
		var err error
		if prompt, err = vm.joinOperands(args); err != nil {
			return err
		}
		vm.emitOutput(Output{Text: prompt})
	}
	line, err := vm.readInput(prompt)
	if err != nil {
		return fmt.Errorf("input at line %d: %w", vm.ip+1, err)
	}
	vm.env.SetResult(vm.env.Depth()-1, ResultString, Str(line))
	vm.ip++
	return nil
}

func (vm *VM) builtinStrToInt(args []string) error {
	if len(args) != 1 {
		return vm.syntaxf("strtoint takes exactly one argument, got %d", len(args))
	}
	v, err := vm.operand(args[0])
	if err != nil {
		return err
	}
	if v.kind.Base() != StringKind {
		return vm.typef("strtoint expects a string, got %s", v.kind)
	}
	n, ok := parseIntText(v.s)
	if !ok {
		return vm.typef("cannot convert %q to int", v.s)
	}
	vm.env.SetResult(vm.env.Depth()-1, ResultInt, Int(n))
	vm.ip++
	return nil
}
