package bruntime

import (
	"github.com/gosuda/brewin/ast"
)

func (vm *VM) execCall(s ast.CallStmt) error {
	switch s.Name {
	case "":
		return vm.syntaxf("funccall requires a function name")
	case ast.BuiltinPrint:
		return vm.builtinPrint(s.Args)
	case ast.BuiltinInput:
		return vm.builtinInput(s.Args)
	case ast.BuiltinStrToInt:
		return vm.builtinStrToInt(s.Args)
	}
	fn, err := vm.function(s.Name, vm.ip)
	if err != nil {
		return err
	}
	if len(s.Args) != len(fn.Formals) {
		return vm.typef("function %s takes %d arguments, got %d", fn.Name, len(fn.Formals), len(s.Args))
	}
	params, err := vm.bindArguments(fn, s.Args)
	if err != nil {
		return err
	}
	vm.log.Debug().Str("fn", fn.Name).Int("line", vm.ip).Int("depth", vm.env.Depth()+1).Msg("call")
	vm.returns = append(vm.returns, vm.ip+1)
	vm.env.PushFrame(fn, params)
	vm.ip = fn.Entry
	return nil
}

// bindArguments builds the parameter scope of a call. A reference formal
// bound to a variable remembers the caller's binding for write-back.
func (vm *VM) bindArguments(fn *ast.Function, args []string) (Scope, error) {
	caller := vm.env.Depth() - 1
	params := make(Scope, len(fn.Formals))
	for i, formal := range fn.Formals {
		tok := args[i]
		actual, err := vm.operand(tok)
		if err != nil {
			return nil, err
		}
		if !compatibleKinds(actual.kind, formal.Kind) {
			return nil, vm.typef("argument %s of %s: cannot pass %s as %s", formal.Name, fn.Name, actual.kind, formal.Kind)
		}
		bound := actual.WithKind(formal.Kind).WithRef(nil)
		if formal.Kind.IsRef() && isVariableToken(tok) {
			bound = bound.WithRef(&Reference{Frame: caller, Name: tok, Initial: actual})
		}
		params[formal.Name] = bound
	}
	return params, nil
}

func (vm *VM) execReturn(s ast.ReturnStmt) error {
	fr := vm.env.Current()
	ret := fr.Fn.Return
	if ret == ast.Void {
		if len(s.Expr) > 0 {
			return vm.typef("void function %s cannot return a value", fr.Fn.Name)
		}
		return vm.leave()
	}
	v := Zero(ret)
	if len(s.Expr) > 0 {
		var err error
		if v, err = vm.evalExpr(s.Expr); err != nil {
			return err
		}
	}
	if !compatibleKinds(v.kind, ret) {
		return vm.typef("function %s returns %s, got %s", fr.Fn.Name, ret, v.kind)
	}
	if caller := vm.env.Depth() - 2; caller >= 0 {
		vm.env.SetResult(caller, resultSlot(ret), v.WithKind(ret.Base()).WithRef(nil))
	}
	return vm.leave()
}

// leave ends the current activation: halt when it is the entry activation,
// otherwise write references back and resume the caller.
func (vm *VM) leave() error {
	if len(vm.returns) == 0 {
		vm.halted = true
		return nil
	}
	written, err := vm.env.PropagateReferences()
	if err != nil {
		return vm.namef("%v", err)
	}
	for _, w := range written {
		vm.log.Debug().
			Str("var", w.Ref.Name).
			Int("frame", w.Ref.Frame).
			Str("initial", w.Ref.Initial.String()).
			Str("value", w.Value.String()).
			Msg("writeback")
	}
	fn := vm.env.Current().Fn
	vm.env.PopFrame()
	vm.ip = vm.returns[len(vm.returns)-1]
	vm.returns = vm.returns[:len(vm.returns)-1]
	vm.log.Debug().Str("fn", fn.Name).Int("resume", vm.ip).Msg("return")
	return nil
}
