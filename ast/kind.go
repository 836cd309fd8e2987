package ast

// Kind is the declared or dynamic type of a value.
type Kind int

const (
	Void Kind = iota
	Int
	Bool
	String
	RefInt
	RefBool
	RefString
)

// Keywords of the language.
const (
	KwFunc     = "func"
	KwEndFunc  = "endfunc"
	KwVar      = "var"
	KwAssign   = "assign"
	KwFuncCall = "funccall"
	KwIf       = "if"
	KwElse     = "else"
	KwEndIf    = "endif"
	KwWhile    = "while"
	KwEndWhile = "endwhile"
	KwReturn   = "return"

	BuiltinPrint    = "print"
	BuiltinInput    = "input"
	BuiltinStrToInt = "strtoint"

	True  = "True"
	False = "False"
)

var kindNames = map[Kind]string{
	Void:      "void",
	Int:       "int",
	Bool:      "bool",
	String:    "string",
	RefInt:    "refint",
	RefBool:   "refbool",
	RefString: "refstring",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Base erases the reference flavour: refint is int, refbool is bool,
// refstring is string. Other kinds are returned unchanged.
func (k Kind) Base() Kind {
	switch k {
	case RefInt:
		return Int
	case RefBool:
		return Bool
	case RefString:
		return String
	default:
		return k
	}
}

func (k Kind) IsRef() bool {
	return k == RefInt || k == RefBool || k == RefString
}

// ParseKind maps a type keyword to its Kind.
func ParseKind(name string) (Kind, bool) {
	for k, s := range kindNames {
		if s == name {
			return k, true
		}
	}
	return Void, false
}

// ParseScalarKind accepts only the declarable variable types.
func ParseScalarKind(name string) (Kind, bool) {
	k, ok := ParseKind(name)
	if !ok || k == Void || k.IsRef() {
		return Void, false
	}
	return k, true
}
