package parser

import (
	"strings"
	"unicode"
)

// Tokenize splits one source line into whitespace separated tokens. A double
// quoted string is one token, quotes included, even when it contains spaces.
// Comments are removed first. A blank or comment-only line yields no tokens.
func Tokenize(raw string) []string {
	raw = stripComment(raw)
	var (
		tokens   []string
		cur      strings.Builder
		inString bool
	)
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for _, r := range raw {
		if r == '"' {
			inString = !inString
			cur.WriteRune(r)
			continue
		}
		if !inString && unicode.IsSpace(r) {
			flush()
			continue
		}
		cur.WriteRune(r)
	}
	flush()
	return tokens
}

// TokenizeProgram tokenizes every line of a program.
func TokenizeProgram(lines []string) [][]string {
	out := make([][]string, len(lines))
	for i, l := range lines {
		out[i] = Tokenize(l)
	}
	return out
}
