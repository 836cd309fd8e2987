// Package brewin compiles and runs programs written in the Brewin
// line-oriented scripting language.
package brewin

import (
	"github.com/gosuda/brewin/ast"
	"github.com/gosuda/brewin/parser"
	bruntime "github.com/gosuda/brewin/runtime"
)

// Compile parses program text and builds a VM instance.
func Compile(src string, opts ...parser.Option) (*bruntime.VM, error) {
	program, err := parser.ParseProgram(src, opts...)
	if err != nil {
		return nil, err
	}
	return bruntime.New(program)
}

// CompileLines is Compile for a program already split into lines.
func CompileLines(lines []string, opts ...parser.Option) (*bruntime.VM, error) {
	program, err := parser.ParseLines(lines, opts...)
	if err != nil {
		return nil, err
	}
	return bruntime.New(program)
}

// Parse only returns AST program for tooling use.
func Parse(src string, opts ...parser.Option) (*ast.Program, error) {
	return parser.ParseProgram(src, opts...)
}
