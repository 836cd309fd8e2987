package parser

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gosuda/brewin/ast"
	"github.com/gosuda/brewin/diag"
)

type options struct {
	log zerolog.Logger
}

type Option func(*options)

// WithLogger routes compile-time diagnostics, such as redefined functions,
// to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// ParseProgram splits, tokenizes and decodes program text.
func ParseProgram(src string, opts ...Option) (*ast.Program, error) {
	return ParseLines(SplitLines(src), opts...)
}

// ParseLines decodes a program given one string per source line.
func ParseLines(src []string, opts ...Option) (*ast.Program, error) {
	indents := make([]int, len(src))
	for i, l := range src {
		indents[i] = Indent(l)
	}
	prog, err := FromTokens(TokenizeProgram(src), indents, opts...)
	if err != nil {
		if de, ok := diag.As(err); ok && de.Line >= 0 && de.Line < len(src) {
			de.Source = src[de.Line]
		}
		return nil, err
	}
	prog.Source = src
	return prog, nil
}

// FromTokens builds a program from pre-split token lines and the matching
// per-line indentation widths.
func FromTokens(tokens [][]string, indents []int, opts ...Option) (*ast.Program, error) {
	if len(tokens) != len(indents) {
		return nil, fmt.Errorf("token lines (%d) and indents (%d) differ in length", len(tokens), len(indents))
	}
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	lines := make([]ast.Line, len(tokens))
	for i, toks := range tokens {
		lines[i] = ast.Line{
			Index:  i,
			Indent: indents[i],
			Tokens: toks,
			Stmt:   decodeStatement(toks),
		}
	}
	functions, order, err := BuildFunctions(lines, o.log)
	if err != nil {
		return nil, err
	}
	return &ast.Program{
		Lines:     lines,
		Functions: functions,
		Order:     order,
		Blocks:    BuildBlocks(lines),
	}, nil
}
