// Package diag defines the fatal error kinds raised while compiling and
// running a program, and renders them against the program source.
package diag

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a fatal error.
type Kind int

const (
	SyntaxError Kind = iota + 1
	NameError
	TypeError
)

// Sentinel errors for errors.Is checks against an *Error.
var (
	// ErrSyntax matches malformed statements, unmatched block keywords and
	// malformed expressions.
	ErrSyntax = errors.New("syntax error")

	// ErrName matches unknown variables and functions and redeclarations.
	ErrName = errors.New("name error")

	// ErrType matches operand, condition, parameter, assignment and return
	// type mismatches.
	ErrType = errors.New("type error")
)

func (k Kind) String() string {
	switch k {
	case SyntaxError:
		return "syntax error"
	case NameError:
		return "name error"
	case TypeError:
		return "type error"
	default:
		return "error"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case SyntaxError:
		return ErrSyntax
	case NameError:
		return ErrName
	case TypeError:
		return ErrType
	default:
		return nil
	}
}

// Error is a fatal error tied to an instruction index.
type Error struct {
	Kind Kind

	// Line is the 0-based instruction index. Negative when the error is not
	// tied to a line, e.g. a missing entry function.
	Line int

	// Source is the raw text of the offending line, if known.
	Source string

	Message string

	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	if e.Line >= 0 {
		return fmt.Sprintf("%s at line %d: %s", e.Kind, e.Line+1, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func Newf(kind Kind, line int, format string, args ...any) *Error {
	return &Error{Kind: kind, Line: line, Message: fmt.Sprintf(format, args...)}
}

func Syntaxf(line int, format string, args ...any) *Error {
	return Newf(SyntaxError, line, format, args...)
}

func Namef(line int, format string, args ...any) *Error {
	return Newf(NameError, line, format, args...)
}

func Typef(line int, format string, args ...any) *Error {
	return Newf(TypeError, line, format, args...)
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// Snippet renders err followed by the numbered offending line and its
// neighbours. Errors that are not *Error, or carry no line, are rendered
// by their message alone.
func Snippet(err error, source []string) string {
	de, ok := As(err)
	if !ok || de.Line < 0 || de.Line >= len(source) {
		return err.Error()
	}
	var b strings.Builder
	b.WriteString(err.Error())
	b.WriteString("\n\n")
	from := max(de.Line-1, 0)
	to := min(de.Line+1, len(source)-1)
	width := len(fmt.Sprint(to + 1))
	for i := from; i <= to; i++ {
		marker := " "
		if i == de.Line {
			marker = ">"
		}
		fmt.Fprintf(&b, "%s %*d | %s\n", marker, width, i+1, source[i])
	}
	return b.String()
}
