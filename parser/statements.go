package parser

import "github.com/gosuda/brewin/ast"

// decodeStatement maps a token sequence to its statement variant. Arity is
// not validated here: a malformed statement is only an error when it runs.
func decodeStatement(tokens []string) ast.Statement {
	if len(tokens) == 0 {
		return ast.BlankStmt{}
	}
	args := tokens[1:]
	switch tokens[0] {
	case ast.KwFunc:
		s := ast.FuncStmt{}
		if len(args) > 0 {
			s.Name = args[0]
		}
		return s
	case ast.KwEndFunc:
		return ast.EndFuncStmt{}
	case ast.KwVar:
		s := ast.VarStmt{}
		if len(args) > 0 {
			s.Type = args[0]
			s.Names = args[1:]
		}
		return s
	case ast.KwAssign:
		s := ast.AssignStmt{}
		if len(args) > 0 {
			s.Target = args[0]
			s.Expr = args[1:]
		}
		return s
	case ast.KwFuncCall:
		s := ast.CallStmt{}
		if len(args) > 0 {
			s.Name = args[0]
			s.Args = args[1:]
		}
		return s
	case ast.KwIf:
		return ast.IfStmt{Cond: args}
	case ast.KwElse:
		return ast.ElseStmt{}
	case ast.KwEndIf:
		return ast.EndIfStmt{}
	case ast.KwWhile:
		return ast.WhileStmt{Cond: args}
	case ast.KwEndWhile:
		return ast.EndWhileStmt{}
	case ast.KwReturn:
		return ast.ReturnStmt{Expr: args}
	default:
		return ast.UnknownStmt{Keyword: tokens[0]}
	}
}
