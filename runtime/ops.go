package bruntime

import (
	"errors"
	"math"
	"strings"
)

var (
	errDivideByZero = errors.New("division by zero")
	errIntOverflow  = errors.New("integer overflow")
)

type binaryOp func(a, b Value) (Value, error)

// intOp wraps an arithmetic function that reports overflow instead of
// wrapping around.
func intOp(fn func(a, b int64) (int64, bool)) binaryOp {
	return func(a, b Value) (Value, error) {
		v, ok := fn(a.i, b.i)
		if !ok {
			return Value{}, errIntOverflow
		}
		return Int(v), nil
	}
}

func intCmp(fn func(a, b int64) bool) binaryOp {
	return func(a, b Value) (Value, error) {
		return Bool(fn(a.i, b.i)), nil
	}
}

func strCmp(fn func(c int) bool) binaryOp {
	return func(a, b Value) (Value, error) {
		return Bool(fn(strings.Compare(a.s, b.s))), nil
	}
}

func boolOp(fn func(a, b bool) bool) binaryOp {
	return func(a, b Value) (Value, error) {
		return Bool(fn(a.b, b.b)), nil
	}
}

// binaryOps is keyed by the base kind of the first operand.
var binaryOps = map[Kind]map[string]binaryOp{
	IntKind: {
		"+":  intOp(addInt),
		"-":  intOp(subInt),
		"*":  intOp(mulInt),
		"/":  divOp(floorDiv),
		"%":  divOp(floorMod),
		"==": intCmp(func(a, b int64) bool { return a == b }),
		"!=": intCmp(func(a, b int64) bool { return a != b }),
		"<":  intCmp(func(a, b int64) bool { return a < b }),
		"<=": intCmp(func(a, b int64) bool { return a <= b }),
		">":  intCmp(func(a, b int64) bool { return a > b }),
		">=": intCmp(func(a, b int64) bool { return a >= b }),
	},
	StringKind: {
		"+": func(a, b Value) (Value, error) {
			return Str(a.s + b.s), nil
		},
		"==": strCmp(func(c int) bool { return c == 0 }),
		"!=": strCmp(func(c int) bool { return c != 0 }),
		"<":  strCmp(func(c int) bool { return c < 0 }),
		"<=": strCmp(func(c int) bool { return c <= 0 }),
		">":  strCmp(func(c int) bool { return c > 0 }),
		">=": strCmp(func(c int) bool { return c >= 0 }),
	},
	BoolKind: {
		"&":  boolOp(func(a, b bool) bool { return a && b }),
		"|":  boolOp(func(a, b bool) bool { return a || b }),
		"==": boolOp(func(a, b bool) bool { return a == b }),
		"!=": boolOp(func(a, b bool) bool { return a != b }),
	},
}

func divOp(fn func(a, b int64) (int64, bool)) binaryOp {
	return func(a, b Value) (Value, error) {
		if b.i == 0 {
			return Value{}, errDivideByZero
		}
		return intOp(fn)(a, b)
	}
}

func addInt(a, b int64) (int64, bool) {
	s := a + b
	return s, (s > a) == (b > 0)
}

func subInt(a, b int64) (int64, bool) {
	d := a - b
	return d, (d < a) == (b > 0)
}

func mulInt(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	p := a * b
	return p, p/b == a
}

// floorDiv rounds the quotient toward negative infinity. b is non-zero.
func floorDiv(a, b int64) (int64, bool) {
	if a == math.MinInt64 && b == -1 {
		return 0, false
	}
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q, true
}

// floorMod returns a remainder with the divisor's sign. b is non-zero.
func floorMod(a, b int64) (int64, bool) {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m, true
}

func (vm *VM) applyBinary(op string, a, b Value) (Value, error) {
	if !Compatible(a, b) {
		return Value{}, vm.typef("operator %s: incompatible operands %s and %s", op, a.kind, b.kind)
	}
	fn, ok := binaryOps[a.kind.Base()][op]
	if !ok {
		return Value{}, vm.typef("operator %s is not defined for %s", op, a.kind.Base())
	}
	v, err := fn(a, b)
	if err != nil {
		return Value{}, vm.typef("operator %s: %v", op, err)
	}
	return v, nil
}
