package bruntime

import "github.com/gosuda/brewin/diag"

type Error = diag.Error

var (
	ErrSyntax = diag.ErrSyntax
	ErrName   = diag.ErrName
	ErrType   = diag.ErrType
)

func (vm *VM) syntaxf(format string, args ...any) error {
	return diag.Syntaxf(vm.ip, format, args...)
}

func (vm *VM) namef(format string, args ...any) error {
	return diag.Namef(vm.ip, format, args...)
}

func (vm *VM) typef(format string, args ...any) error {
	return diag.Typef(vm.ip, format, args...)
}
