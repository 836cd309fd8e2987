package parser

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gosuda/brewin/ast"
	"github.com/gosuda/brewin/diag"
)

const blockProgram = `func main void
  var int i
  while < i 3
    if == i 1
      funccall print "one"
    else
      funccall print "other"
    endif
    assign i + i 1
  endwhile
  if True
    funccall f i
  endif
endfunc

func f n:refint b:bool s:string int
  while False
  endwhile
  return n
endfunc
`

func TestParseProgramDecodesStatements(t *testing.T) {
	prog, err := ParseProgram(blockProgram)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(prog.Lines) != len(prog.Source) {
		t.Fatalf("lines %d and source %d differ", len(prog.Lines), len(prog.Source))
	}
	if s, ok := prog.Lines[1].Stmt.(ast.VarStmt); !ok || s.Type != "int" || len(s.Names) != 1 {
		t.Fatalf("unexpected var statement: %#v", prog.Lines[1].Stmt)
	}
	if s, ok := prog.Lines[4].Stmt.(ast.CallStmt); !ok || s.Name != "print" || s.Args[0] != `"one"` {
		t.Fatalf("unexpected call statement: %#v", prog.Lines[4].Stmt)
	}
	if _, ok := prog.Lines[14].Stmt.(ast.BlankStmt); !ok {
		t.Fatalf("blank line not kept: %#v", prog.Lines[14].Stmt)
	}
	if prog.Lines[4].Indent != 6 {
		t.Fatalf("unexpected indent %d", prog.Lines[4].Indent)
	}

	f := prog.Functions["f"]
	if f == nil {
		t.Fatalf("function f missing")
	}
	if f.Entry != 16 || f.Return != ast.Int || len(f.Formals) != 3 {
		t.Fatalf("unexpected signature: %+v", f)
	}
	if f.Formals[0] != (ast.Formal{Name: "n", Kind: ast.RefInt}) {
		t.Fatalf("unexpected formal: %+v", f.Formals[0])
	}
	if strings.Join(prog.Order, ",") != "main,f" {
		t.Fatalf("unexpected order: %v", prog.Order)
	}
}

func TestBuildBlocksMatchesScans(t *testing.T) {
	prog, err := ParseProgram(blockProgram)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := map[int]int{}
	for i, line := range prog.Lines {
		switch line.Stmt.(type) {
		case ast.IfStmt:
			if to, ok := FindBlockEnd(prog.Lines, i, ast.KwElse, ast.KwEndIf); ok {
				want[i] = to
			}
		case ast.ElseStmt:
			if to, ok := FindBlockEnd(prog.Lines, i, ast.KwEndIf); ok {
				want[i] = to
			}
		case ast.WhileStmt:
			if to, ok := FindBlockEnd(prog.Lines, i, ast.KwEndWhile); ok {
				want[i] = to
			}
		case ast.EndWhileStmt:
			if to, ok := FindBlockStart(prog.Lines, i, ast.KwWhile); ok {
				want[i] = to
			}
		}
	}
	if len(want) != 7 {
		t.Fatalf("expected 7 matched blocks, got %d: %v", len(want), want)
	}
	for from, to := range want {
		if got, ok := prog.Blocks[from]; !ok || got != to {
			t.Fatalf("block %d: index %d (%v), scan %d", from, got, ok, to)
		}
	}
	if len(prog.Blocks) != len(want) {
		t.Fatalf("index has extra entries: %v", prog.Blocks)
	}
	if prog.Blocks[3] != 5 || prog.Blocks[5] != 7 || prog.Blocks[2] != 9 || prog.Blocks[9] != 2 {
		t.Fatalf("unexpected block index: %v", prog.Blocks)
	}
}

func TestBlocksMatchByDepthOnly(t *testing.T) {
	src := `func main void
  if True
funccall print "shallow"
  endif
  if False
endfunc
`
	prog, err := ParseProgram(src)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if prog.Blocks[1] != 3 {
		t.Fatalf("shallower line should not end the block: %v", prog.Blocks)
	}
	if _, ok := prog.Blocks[4]; ok {
		t.Fatalf("unmatched if must not be indexed")
	}
}

func TestSignatureErrors(t *testing.T) {
	cases := []string{
		"func main",
		"func f a void",
		"func f a:float void",
		"func f a:void void",
		"func f a:int refint",
		"func f a:int number",
		"func f :int void",
	}
	for _, src := range cases {
		_, err := ParseProgram("\n" + src + "\nendfunc\n")
		if !errors.Is(err, diag.ErrSyntax) {
			t.Fatalf("%q: expected syntax error, got %v", src, err)
		}
		de, _ := diag.As(err)
		if de.Line != 1 || de.Source != src {
			t.Fatalf("%q: unexpected location %d %q", src, de.Line, de.Source)
		}
	}
}

func TestDuplicateFunctionLogged(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	prog, err := ParseProgram("func f void\nendfunc\nfunc f int\nendfunc\n", WithLogger(log))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if prog.Functions["f"].Line != 2 || len(prog.Order) != 1 {
		t.Fatalf("later definition should win: %+v %v", prog.Functions["f"], prog.Order)
	}
	if !strings.Contains(buf.String(), "function redefined") {
		t.Fatalf("redefinition not logged: %s", buf.String())
	}
}

func TestFromTokensLengthMismatch(t *testing.T) {
	if _, err := FromTokens([][]string{{"endfunc"}}, nil); err == nil {
		t.Fatalf("expected length mismatch error")
	}
}
