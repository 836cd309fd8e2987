package bruntime

import (
	"github.com/gosuda/brewin/ast"
	"github.com/gosuda/brewin/parser"
)

// evalExpr evaluates a prefix expression by scanning its tokens right to
// left against an operand stack.
func (vm *VM) evalExpr(tokens []string) (Value, error) {
	stack := make([]Value, 0, len(tokens))
	for i := len(tokens) - 1; i >= 0; i-- {
		tok := tokens[i]
		switch {
		case parser.IsBinaryOperator(tok):
			if len(stack) < 2 {
				return Value{}, vm.syntaxf("invalid expression")
			}
			v1, v2 := stack[len(stack)-1], stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			res, err := vm.applyBinary(tok, v1, v2)
			if err != nil {
				return Value{}, err
			}
			stack = append(stack, res)
		case tok == parser.NotOperator:
			if len(stack) < 1 {
				return Value{}, vm.syntaxf("invalid expression")
			}
			v := stack[len(stack)-1]
			if v.kind.Base() != BoolKind {
				return Value{}, vm.typef("operator ! expects bool, got %s", v.kind)
			}
			stack[len(stack)-1] = Bool(!v.b)
		default:
			v, err := vm.operand(tok)
			if err != nil {
				return Value{}, err
			}
			stack = append(stack, v)
		}
	}
	if len(stack) != 1 {
		return Value{}, vm.syntaxf("invalid expression")
	}
	return stack[0], nil
}

// operand resolves a single token: a literal, or a variable of the current
// activation.
func (vm *VM) operand(tok string) (Value, error) {
	switch {
	case parser.IsStringLiteral(tok):
		return Str(parser.StringLiteral(tok)), nil
	case parser.IsIntLiteral(tok):
		n, err := parser.ParseIntLiteral(tok)
		if err != nil {
			return Value{}, vm.syntaxf("%v", err)
		}
		return Int(n), nil
	case parser.IsBoolLiteral(tok):
		return Bool(tok == ast.True), nil
	}
	v, ok := vm.env.Lookup(tok)
	if !ok {
		return Value{}, vm.namef("unknown variable %s", tok)
	}
	return v, nil
}

func isVariableToken(tok string) bool {
	return !parser.IsStringLiteral(tok) && !parser.IsIntLiteral(tok) && !parser.IsBoolLiteral(tok)
}

func (vm *VM) evalCondition(tokens []string, keyword string) (bool, error) {
	if len(tokens) == 0 {
		return false, vm.syntaxf("%s requires a condition", keyword)
	}
	v, err := vm.evalExpr(tokens)
	if err != nil {
		return false, err
	}
	if v.kind.Base() != BoolKind {
		return false, vm.typef("%s condition must be bool, got %s", keyword, v.kind)
	}
	return v.b, nil
}
