package bruntime

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gosuda/brewin/ast"
	"github.com/gosuda/brewin/diag"
)

type Output struct {
	Text string `json:"text"`
}

// VM executes a compiled program one line at a time. A VM is not safe for
// concurrent use.
type VM struct {
	program  *ast.Program
	env      *Environment
	ip       int
	returns  []int
	halted   bool
	outputs  []Output
	input    inputState
	log      zerolog.Logger
	onOutput func(Output)
	onError  func(*Error)
}

func New(program *ast.Program) (*VM, error) {
	if program == nil {
		return nil, errors.New("nil program")
	}
	if program.Functions == nil {
		program.Functions = map[string]*ast.Function{}
	}
	return &VM{
		program: program,
		env:     NewEnvironment(),
		log:     zerolog.Nop(),
	}, nil
}

func (vm *VM) SetLogger(l zerolog.Logger) {
	vm.log = l
}

// SetOutputHook streams each output line as it is produced.
func (vm *VM) SetOutputHook(fn func(Output)) {
	vm.onOutput = fn
}

// SetErrorHook is called once with the fatal error before Run returns it.
func (vm *VM) SetErrorHook(fn func(*Error)) {
	vm.onError = fn
}

func (vm *VM) Program() *ast.Program {
	return vm.program
}

// Environment exposes the activation stack of the current or last run.
func (vm *VM) Environment() *Environment {
	return vm.env
}

// Run executes the program from entry, or main when entry is empty. It
// returns every output line produced, including those emitted before a
// fatal error.
func (vm *VM) Run(entry string) ([]Output, error) {
	vm.outputs = vm.outputs[:0]
	vm.env = NewEnvironment()
	vm.returns = vm.returns[:0]
	vm.halted = false
	vm.ip = -1

	name := strings.TrimSpace(entry)
	if name == "" {
		name = DefaultEntry
	}
	fn, err := vm.function(name, -1)
	if err != nil {
		return vm.collect(), vm.fail(err)
	}
	vm.env.PushFrame(fn, Scope{})
	vm.ip = fn.Entry
	vm.log.Debug().Str("fn", fn.Name).Int("entry", fn.Entry).Msg("run")
	for !vm.halted {
		if err := vm.step(); err != nil {
			return vm.collect(), vm.fail(err)
		}
	}
	return vm.collect(), nil
}

func (vm *VM) collect() []Output {
	return append([]Output(nil), vm.outputs...)
}

func (vm *VM) fail(err error) error {
	de, ok := diag.As(err)
	if !ok {
		return err
	}
	if de.Source == "" && de.Line >= 0 {
		de.Source = vm.sourceLine(de.Line)
	}
	if vm.onError != nil {
		vm.onError(de)
	}
	return err
}

func (vm *VM) sourceLine(i int) string {
	if i >= 0 && i < len(vm.program.Source) {
		return vm.program.Source[i]
	}
	if i >= 0 && i < len(vm.program.Lines) {
		return strings.Join(vm.program.Lines[i].Tokens, " ")
	}
	return ""
}

func (vm *VM) emitOutput(o Output) {
	vm.outputs = append(vm.outputs, o)
	if vm.onOutput != nil {
		vm.onOutput(o)
	}
}

func (vm *VM) step() error {
	if vm.ip < 0 || vm.ip >= len(vm.program.Lines) {
		vm.ip = len(vm.program.Lines) - 1
		return vm.syntaxf("missing endfunc")
	}
	line := vm.program.Lines[vm.ip]
	if e := vm.log.Trace(); e.Enabled() {
		e.Int("ip", vm.ip).
			Str("stmt", line.Keyword()).
			Int("depth", vm.env.Depth()).
			Int("scopes", vm.env.ScopeDepth()).
			Str("src", strings.TrimSpace(vm.sourceLine(vm.ip))).
			Msg("exec")
	}
	switch s := line.Stmt.(type) {
	case ast.BlankStmt:
		vm.ip++
		return nil
	case ast.VarStmt:
		return vm.execDeclare(s)
	case ast.AssignStmt:
		return vm.execAssign(s)
	case ast.CallStmt:
		return vm.execCall(s)
	case ast.IfStmt:
		return vm.execIf(s)
	case ast.ElseStmt:
		return vm.execElse()
	case ast.EndIfStmt:
		return vm.execEndIf()
	case ast.WhileStmt:
		return vm.execWhile(s)
	case ast.EndWhileStmt:
		return vm.execEndWhile()
	case ast.ReturnStmt:
		return vm.execReturn(s)
	case ast.EndFuncStmt:
		return vm.leave()
	case ast.FuncStmt:
		return vm.syntaxf("missing endfunc before func %s", s.Name)
	case ast.UnknownStmt:
		return vm.syntaxf("unknown statement %q", s.Keyword)
	default:
		return fmt.Errorf("unsupported statement %T", s)
	}
}

func (vm *VM) execDeclare(s ast.VarStmt) error {
	if s.Type == "" || len(s.Names) == 0 {
		return vm.syntaxf("var requires a type and at least one name")
	}
	kind, ok := ast.ParseScalarKind(s.Type)
	if !ok {
		return vm.syntaxf("unknown variable type %q", s.Type)
	}
	for _, name := range s.Names {
		if err := vm.env.Declare(name, Zero(kind)); err != nil {
			if errors.Is(err, ErrRedeclared) {
				return vm.namef("variable %s redeclared in the same scope", name)
			}
			return err
		}
	}
	vm.ip++
	return nil
}

func (vm *VM) execAssign(s ast.AssignStmt) error {
	if s.Target == "" || len(s.Expr) == 0 {
		return vm.syntaxf("assign requires a target and an expression")
	}
	cur, ok := vm.env.Lookup(s.Target)
	if !ok {
		return vm.namef("unknown variable %s", s.Target)
	}
	v, err := vm.evalExpr(s.Expr)
	if err != nil {
		return err
	}
	if !Compatible(cur, v) {
		return vm.typef("cannot assign %s to %s variable %s", v.kind, cur.kind, s.Target)
	}
	if err := vm.env.Assign(s.Target, v.WithKind(cur.kind).WithRef(cur.ref)); err != nil {
		return vm.namef("%v", err)
	}
	vm.ip++
	return nil
}

func (vm *VM) execIf(s ast.IfStmt) error {
	cond, err := vm.evalCondition(s.Cond, ast.KwIf)
	if err != nil {
		return err
	}
	if cond {
		vm.env.PushScope()
		vm.ip++
		return nil
	}
	to, err := vm.blockEnd(vm.ip, ast.KwElse, ast.KwEndIf)
	if err != nil {
		return err
	}
	if _, ok := vm.program.Lines[to].Stmt.(ast.ElseStmt); ok {
		vm.env.PushScope()
	}
	vm.ip = to + 1
	return nil
}

// execElse is only reached by falling out of a taken branch. The matching
// endif closes that branch's scope.
func (vm *VM) execElse() error {
	to, err := vm.blockEnd(vm.ip, ast.KwEndIf)
	if err != nil {
		return err
	}
	vm.ip = to
	return nil
}

func (vm *VM) execEndIf() error {
	if !vm.env.PopScope() {
		return vm.syntaxf("endif without matching if")
	}
	vm.ip++
	return nil
}

func (vm *VM) execWhile(s ast.WhileStmt) error {
	cond, err := vm.evalCondition(s.Cond, ast.KwWhile)
	if err != nil {
		return err
	}
	if cond {
		vm.env.PushScope()
		vm.ip++
		return nil
	}
	to, err := vm.blockEnd(vm.ip, ast.KwEndWhile)
	if err != nil {
		return err
	}
	vm.ip = to + 1
	return nil
}

func (vm *VM) execEndWhile() error {
	if !vm.env.PopScope() {
		return vm.syntaxf("endwhile without matching while")
	}
	to, err := vm.blockStart(vm.ip, ast.KwWhile)
	if err != nil {
		return err
	}
	vm.ip = to
	return nil
}
