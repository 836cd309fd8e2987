package brewin_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/gosuda/brewin"
	"github.com/gosuda/brewin/diag"
	bruntime "github.com/gosuda/brewin/runtime"
)

func run(t *testing.T, src string, inputs ...string) []string {
	t.Helper()
	vm, err := brewin.Compile(src)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	vm.EnqueueInput(inputs...)
	out, err := vm.Run("")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	lines := make([]string, len(out))
	for i, o := range out {
		lines[i] = o.Text
	}
	return lines
}

func TestCompileAndRunBasicFlow(t *testing.T) {
	src := `
func main void
  var int x
  assign x 5
  funccall bump x
  if == x 6
    funccall print "ok"
  else
    funccall print "ng"
  endif
  funccall print "x=" x
endfunc

func bump y:refint void
  assign y + y 1
endfunc
`
	out := run(t, src)
	if strings.Join(out, "\n") != "ok\nx=6" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestDoubleWithResult(t *testing.T) {
	src := `
# reads a number and prints twice its value
func main void
  var int n
  funccall input "Enter a number: "
  funccall strtoint results
  assign n resulti
  funccall double n
  funccall print n " doubled is " resulti
endfunc

func double v:int int
  return * v 2
endfunc
`
	out := run(t, src, "21")
	if len(out) != 2 || out[0] != "Enter a number: " || out[1] != "21 doubled is 42" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestFibonacciLoop(t *testing.T) {
	src := `
func main void
  var int a b i
  assign b 1
  while < i 10
    var int next
    assign next + a b
    assign a b
    assign b next
    assign i + i 1
  endwhile
  funccall print a
endfunc
`
	if out := run(t, src); len(out) != 1 || out[0] != "55" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestNestedBlocksAndCalls(t *testing.T) {
	src := `
func main void
  var int i
  while < i 4
    funccall classify i
    funccall print i " " results
    assign i + i 1
  endwhile
endfunc

func classify n:int string
  if == % n 2 0
    if == n 0
      return "zero"
    endif
    return "even"
  else
    return "odd"
  endif
endfunc
`
	out := run(t, src)
	want := "0 zero|1 odd|2 even|3 odd"
	if got := strings.Join(out, "|"); got != want {
		t.Fatalf("unexpected output: %q, want %q", got, want)
	}
}

func TestStringReferenceParameter(t *testing.T) {
	src := `
func main void
  var string s
  var bool done
  assign s "abc"
  funccall decorate s done
  funccall print s " " done
endfunc

func decorate t:refstring flag:refbool void
  assign t + "[" + t "]"
  assign flag True
endfunc
`
	if out := run(t, src); len(out) != 1 || out[0] != "[abc] True" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestErrorsCarryLineAndKind(t *testing.T) {
	src := `func main void
  var int v
  assign v "hello"
endfunc
`
	vm, err := brewin.Compile(src)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	_, err = vm.Run("")
	if !errors.Is(err, bruntime.ErrType) {
		t.Fatalf("expected type error, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "type error at line 3:") {
		t.Fatalf("unexpected message: %v", err)
	}
	snippet := diag.Snippet(err, strings.Split(src, "\n"))
	if !strings.Contains(snippet, `> 3 |   assign v "hello"`) {
		t.Fatalf("unexpected snippet:\n%s", snippet)
	}
}

func TestCompileRejectsBadSignature(t *testing.T) {
	_, err := brewin.Compile("func main oops\nendfunc\n")
	if !errors.Is(err, diag.ErrSyntax) {
		t.Fatalf("expected syntax error, got %v", err)
	}
}

func TestCompileLinesAndParse(t *testing.T) {
	lines := []string{"func main void", `  funccall print "hi"`, "endfunc"}
	vm, err := brewin.CompileLines(lines)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	out, err := vm.Run("main")
	if err != nil || len(out) != 1 || out[0].Text != "hi" {
		t.Fatalf("unexpected run result: %+v %v", out, err)
	}
	prog, err := brewin.Parse(strings.Join(lines, "\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if prog.Functions["main"] == nil || len(prog.Lines) != 3 {
		t.Fatalf("unexpected program: %+v", prog)
	}
}
