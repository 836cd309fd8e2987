package parser

import "strings"

func normalize(raw string) string {
	if after, ok := strings.CutPrefix(raw, "\uFEFF"); ok {
		return after
	}
	return raw
}

// SplitLines splits program text into source lines. Blank lines are kept so
// that a line index is also an instruction index.
func SplitLines(raw string) []string {
	norm := normalize(raw)
	norm = strings.ReplaceAll(norm, "\r\n", "\n")
	norm = strings.ReplaceAll(norm, "\r", "\n")
	norm = strings.TrimSuffix(norm, "\n")
	if norm == "" {
		return nil
	}
	return strings.Split(norm, "\n")
}

// Indent returns the number of leading spaces of a line. Tabs are not
// indentation.
func Indent(raw string) int {
	return len(raw) - len(strings.TrimLeft(raw, " "))
}

// stripComment drops everything from the first '#' outside a string literal.
func stripComment(raw string) string {
	inString := false
	for i, r := range raw {
		switch {
		case r == '"':
			inString = !inString
		case r == '#' && !inString:
			return raw[:i]
		}
	}
	return raw
}
