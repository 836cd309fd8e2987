package bruntime

import (
	"strconv"

	"github.com/gosuda/brewin/ast"
)

type Kind = ast.Kind

const (
	IntKind       = ast.Int
	BoolKind      = ast.Bool
	StringKind    = ast.String
	RefIntKind    = ast.RefInt
	RefBoolKind   = ast.RefBool
	RefStringKind = ast.RefString
)

// Reference names the caller binding a reference parameter aliases. Frame
// is the owner activation's index in the environment, Initial the value of
// the binding when the argument was bound.
type Reference struct {
	Frame   int
	Name    string
	Initial Value
}

type Value struct {
	kind Kind
	i    int64
	b    bool
	s    string
	ref  *Reference
}

func Int(v int64) Value {
	return Value{kind: IntKind, i: v}
}

func Bool(v bool) Value {
	return Value{kind: BoolKind, b: v}
}

func Str(v string) Value {
	return Value{kind: StringKind, s: v}
}

// Zero returns the default value of k: 0, False or "".
func Zero(k Kind) Value {
	return Value{kind: k}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) Int64() int64 {
	return v.i
}

func (v Value) Bool() bool {
	return v.b
}

func (v Value) Ref() *Reference {
	return v.ref
}

// String returns the printed form of v.
func (v Value) String() string {
	switch v.kind.Base() {
	case IntKind:
		return strconv.FormatInt(v.i, 10)
	case BoolKind:
		if v.b {
			return ast.True
		}
		return ast.False
	default:
		return v.s
	}
}

// WithKind relabels v's payload. Callers check Compatible first.
func (v Value) WithKind(k Kind) Value {
	v.kind = k
	return v
}

func (v Value) WithRef(r *Reference) Value {
	v.ref = r
	return v
}

// Equal compares kind base and payload, ignoring references.
func (v Value) Equal(o Value) bool {
	if v.kind.Base() != o.kind.Base() {
		return false
	}
	switch v.kind.Base() {
	case IntKind:
		return v.i == o.i
	case BoolKind:
		return v.b == o.b
	default:
		return v.s == o.s
	}
}

// Compatible reports whether a and b have the same type once the reference
// flavour is erased.
func Compatible(a, b Value) bool {
	return compatibleKinds(a.kind, b.kind)
}

func compatibleKinds(a, b Kind) bool {
	return a == b || a.Base() == b.Base()
}
