package ast

// Program is a decoded source program. Lines holds one entry per source
// line, blank lines included, so an instruction index is a line index.
type Program struct {
	Source    []string
	Lines     []Line
	Functions map[string]*Function
	Order     []string
	Blocks    map[int]int
}

type Line struct {
	Index  int
	Indent int
	Tokens []string
	Stmt   Statement
}

// Keyword returns the leading token, or "" for a blank line.
func (l Line) Keyword() string {
	if len(l.Tokens) == 0 {
		return ""
	}
	return l.Tokens[0]
}

type Function struct {
	Name    string
	Line    int
	Entry   int
	Formals []Formal
	Return  Kind
}

type Formal struct {
	Name string
	Kind Kind
}

type Statement interface {
	isStatement()
}

type BlankStmt struct{}

func (BlankStmt) isStatement() {}

type FuncStmt struct {
	Name string
}

func (FuncStmt) isStatement() {}

type EndFuncStmt struct{}

func (EndFuncStmt) isStatement() {}

type VarStmt struct {
	Type  string
	Names []string
}

func (VarStmt) isStatement() {}

type AssignStmt struct {
	Target string
	Expr   []string
}

func (AssignStmt) isStatement() {}

type CallStmt struct {
	Name string
	Args []string
}

func (CallStmt) isStatement() {}

type IfStmt struct {
	Cond []string
}

func (IfStmt) isStatement() {}

type ElseStmt struct{}

func (ElseStmt) isStatement() {}

type EndIfStmt struct{}

func (EndIfStmt) isStatement() {}

type WhileStmt struct {
	Cond []string
}

func (WhileStmt) isStatement() {}

type EndWhileStmt struct{}

func (EndWhileStmt) isStatement() {}

type ReturnStmt struct {
	Expr []string
}

func (ReturnStmt) isStatement() {}

type UnknownStmt struct {
	Keyword string
}

func (UnknownStmt) isStatement() {}
