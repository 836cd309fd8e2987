package bruntime

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gosuda/brewin/ast"
)

var (
	ErrRedeclared = errors.New("variable already declared in this scope")
	ErrUnbound    = errors.New("variable not declared")
)

// Scope maps variable names to values for one lexical block.
type Scope map[string]Value

// Frame is one function activation. Scopes[0] is the parameter scope and
// also receives the result slots.
type Frame struct {
	Fn     *ast.Function
	Scopes []Scope
}

func (f *Frame) innermost() Scope {
	return f.Scopes[len(f.Scopes)-1]
}

// lookup searches innermost to outermost and returns the owning scope.
func (f *Frame) lookup(name string) (Scope, Value, bool) {
	for i := len(f.Scopes) - 1; i >= 0; i-- {
		if v, ok := f.Scopes[i][name]; ok {
			return f.Scopes[i], v, true
		}
	}
	return nil, Value{}, false
}

// Environment is the stack of activations of a running program.
type Environment struct {
	frames []*Frame
}

func NewEnvironment() *Environment {
	return &Environment{}
}

func (e *Environment) PushFrame(fn *ast.Function, params Scope) {
	if params == nil {
		params = Scope{}
	}
	e.frames = append(e.frames, &Frame{Fn: fn, Scopes: []Scope{params}})
}

func (e *Environment) PopFrame() {
	if len(e.frames) > 0 {
		e.frames = e.frames[:len(e.frames)-1]
	}
}

// Depth is the number of live activations.
func (e *Environment) Depth() int {
	return len(e.frames)
}

func (e *Environment) Current() *Frame {
	if len(e.frames) == 0 {
		return nil
	}
	return e.frames[len(e.frames)-1]
}

func (e *Environment) PushScope() {
	fr := e.Current()
	fr.Scopes = append(fr.Scopes, Scope{})
}

// PopScope closes the innermost block scope. The parameter scope is never
// popped; false is returned instead.
func (e *Environment) PopScope() bool {
	fr := e.Current()
	if fr == nil || len(fr.Scopes) <= 1 {
		return false
	}
	fr.Scopes = fr.Scopes[:len(fr.Scopes)-1]
	return true
}

// ScopeDepth is the number of open scopes in the current activation,
// parameter scope included.
func (e *Environment) ScopeDepth() int {
	fr := e.Current()
	if fr == nil {
		return 0
	}
	return len(fr.Scopes)
}

func (e *Environment) Declare(name string, v Value) error {
	sc := e.Current().innermost()
	if _, ok := sc[name]; ok {
		return fmt.Errorf("%s: %w", name, ErrRedeclared)
	}
	sc[name] = v
	return nil
}

func (e *Environment) Lookup(name string) (Value, bool) {
	fr := e.Current()
	if fr == nil {
		return Value{}, false
	}
	_, v, ok := fr.lookup(name)
	return v, ok
}

func (e *Environment) Assign(name string, v Value) error {
	return e.AssignAt(len(e.frames)-1, name, v)
}

// AssignAt performs nearest-scope assignment inside activation frame.
func (e *Environment) AssignAt(frame int, name string, v Value) error {
	if frame < 0 || frame >= len(e.frames) {
		return fmt.Errorf("activation %d out of range", frame)
	}
	sc, _, ok := e.frames[frame].lookup(name)
	if !ok {
		return fmt.Errorf("%s: %w", name, ErrUnbound)
	}
	sc[name] = v
	return nil
}

// SetResult stores v under name in the parameter scope of activation frame.
func (e *Environment) SetResult(frame int, name string, v Value) {
	if frame < 0 || frame >= len(e.frames) {
		return
	}
	e.frames[frame].Scopes[0][name] = v
}

// Writeback records one reference propagated to a caller.
type Writeback struct {
	Ref   Reference
	Value Value
}

// PropagateReferences copies every reference-carrying binding of the
// current activation back into the binding it aliases. The target keeps its
// own kind and reference, so a chain of reference parameters moves one
// level per return.
func (e *Environment) PropagateReferences() ([]Writeback, error) {
	fr := e.Current()
	if fr == nil {
		return nil, nil
	}
	var out []Writeback
	for _, sc := range fr.Scopes {
		names := make([]string, 0, len(sc))
		for name, v := range sc {
			if v.ref != nil {
				names = append(names, name)
			}
		}
		sort.Strings(names)
		for _, name := range names {
			v := sc[name]
			ref := *v.ref
			if ref.Frame < 0 || ref.Frame >= len(e.frames)-1 {
				return out, fmt.Errorf("reference %s: owner activation %d is gone", name, ref.Frame)
			}
			_, target, ok := e.frames[ref.Frame].lookup(ref.Name)
			if !ok {
				return out, fmt.Errorf("reference %s -> %s: %w", name, ref.Name, ErrUnbound)
			}
			next := v.WithKind(target.kind).WithRef(target.ref)
			if err := e.AssignAt(ref.Frame, ref.Name, next); err != nil {
				return out, err
			}
			out = append(out, Writeback{Ref: ref, Value: next})
		}
	}
	return out, nil
}
