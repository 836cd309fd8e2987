package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gosuda/brewin/ast"
)

// NotOperator is the only unary operator.
const NotOperator = "!"

var binaryOperators = map[string]struct{}{
	"+": {}, "-": {}, "*": {}, "/": {}, "%": {},
	"==": {}, "!=": {}, "<": {}, "<=": {}, ">": {}, ">=": {},
	"&": {}, "|": {},
}

func IsBinaryOperator(tok string) bool {
	_, ok := binaryOperators[tok]
	return ok
}

func IsStringLiteral(tok string) bool {
	return strings.HasPrefix(tok, `"`)
}

// StringLiteral returns the text of a string literal token without its
// surrounding quotes.
func StringLiteral(tok string) string {
	return strings.Trim(tok, `"`)
}

func IsBoolLiteral(tok string) bool {
	return tok == ast.True || tok == ast.False
}

// IsIntLiteral reports whether tok must be read as an integer: all digits,
// or a leading '-'. Operators are classified before operands, so a lone "-"
// never reaches here.
func IsIntLiteral(tok string) bool {
	if tok == "" {
		return false
	}
	if tok[0] == '-' {
		return true
	}
	for _, c := range tok {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func ParseIntLiteral(tok string) (int64, error) {
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer literal %q", tok)
	}
	return v, nil
}
