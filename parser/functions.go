package parser

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/gosuda/brewin/ast"
	"github.com/gosuda/brewin/diag"
)

// BuildFunctions records every function signature in the program. A later
// definition with the same name replaces an earlier one.
func BuildFunctions(lines []ast.Line, log zerolog.Logger) (map[string]*ast.Function, []string, error) {
	functions := map[string]*ast.Function{}
	order := []string{}
	for _, line := range lines {
		if line.Keyword() != ast.KwFunc {
			continue
		}
		fn, err := parseSignature(line)
		if err != nil {
			return nil, nil, err
		}
		if prev, exists := functions[fn.Name]; exists {
			log.Debug().
				Str("function", fn.Name).
				Int("previous_line", prev.Line+1).
				Int("line", fn.Line+1).
				Msg("function redefined, later definition wins")
		} else {
			order = append(order, fn.Name)
		}
		functions[fn.Name] = fn
	}
	return functions, order, nil
}

// parseSignature reads "func <name> <formal:type>... <return type>".
func parseSignature(line ast.Line) (*ast.Function, error) {
	toks := line.Tokens
	if len(toks) < 3 {
		return nil, diag.Syntaxf(line.Index, "invalid function signature")
	}
	fn := &ast.Function{
		Name:    toks[1],
		Line:    line.Index,
		Entry:   line.Index + 1,
		Formals: make([]ast.Formal, 0, len(toks)-3),
	}
	for _, raw := range toks[2 : len(toks)-1] {
		name, typ, ok := strings.Cut(raw, ":")
		if !ok || name == "" {
			return nil, diag.Syntaxf(line.Index, "invalid parameter %q", raw)
		}
		kind, ok := ast.ParseKind(typ)
		if !ok || kind == ast.Void {
			return nil, diag.Syntaxf(line.Index, "invalid parameter type %q", typ)
		}
		fn.Formals = append(fn.Formals, ast.Formal{Name: name, Kind: kind})
	}
	ret, ok := ast.ParseKind(toks[len(toks)-1])
	if !ok || ret.IsRef() {
		return nil, diag.Syntaxf(line.Index, "invalid return type %q", toks[len(toks)-1])
	}
	fn.Return = ret
	return fn, nil
}
