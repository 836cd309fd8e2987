package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/gosuda/brewin/ast"
	"github.com/gosuda/brewin/parser"
)

func main() {
	only := flag.String("fn", "", "dump only this function")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: debug_ast [-fn name] <program>")
		os.Exit(2)
	}
	b, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		panic(err)
	}
	prog, err := parser.ParseProgram(string(b))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, name := range prog.Order {
		fn := prog.Functions[name]
		if *only != "" && name != *only {
			continue
		}
		formals := make([]string, len(fn.Formals))
		for i, f := range fn.Formals {
			formals[i] = f.Name + ":" + f.Kind.String()
		}
		fmt.Printf("fn=%s line=%d entry=%d formals=[%s] return=%s\n",
			fn.Name, fn.Line+1, fn.Entry, strings.Join(formals, " "), fn.Return)
		if *only != "" {
			dumpBody(prog, fn)
		}
	}
	if *only != "" {
		return
	}

	for i, line := range prog.Lines {
		fmt.Printf("pc %d depth=%d %s\n", i, line.Indent, describe(line.Stmt))
	}

	from := make([]int, 0, len(prog.Blocks))
	for k := range prog.Blocks {
		from = append(from, k)
	}
	sort.Ints(from)
	for _, k := range from {
		fmt.Printf("block %d %s -> %d %s\n", k, prog.Lines[k].Keyword(), prog.Blocks[k], prog.Lines[prog.Blocks[k]].Keyword())
	}
}

func dumpBody(prog *ast.Program, fn *ast.Function) {
	for i := fn.Entry; i < len(prog.Lines); i++ {
		st := prog.Lines[i].Stmt
		fmt.Printf("pc %d %s\n", i, describe(st))
		if _, ok := st.(ast.EndFuncStmt); ok && prog.Lines[i].Indent == prog.Lines[fn.Line].Indent {
			break
		}
	}
}

func describe(st ast.Statement) string {
	switch s := st.(type) {
	case ast.BlankStmt:
		return "Blank"
	case ast.VarStmt:
		return fmt.Sprintf("Var type=%s names=%v", s.Type, s.Names)
	case ast.AssignStmt:
		return fmt.Sprintf("Assign target=%s expr=%v", s.Target, s.Expr)
	case ast.CallStmt:
		return fmt.Sprintf("Call %s args=%v", s.Name, s.Args)
	case ast.IfStmt:
		return fmt.Sprintf("If cond=%v", s.Cond)
	case ast.WhileStmt:
		return fmt.Sprintf("While cond=%v", s.Cond)
	case ast.ReturnStmt:
		return fmt.Sprintf("Return expr=%v", s.Expr)
	case ast.FuncStmt:
		return "Func " + s.Name
	case ast.UnknownStmt:
		return "Unknown " + s.Keyword
	default:
		return fmt.Sprintf("%T", st)
	}
}
