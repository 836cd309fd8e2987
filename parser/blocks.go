package parser

import (
	"slices"

	"github.com/gosuda/brewin/ast"
)

// FindBlockEnd scans forward from the opener at index from and returns the
// first non-blank line whose keyword is one of closers and whose indentation
// equals the opener's. Shallower lines in between are not an error; matching
// is by indentation alone.
func FindBlockEnd(lines []ast.Line, from int, closers ...string) (int, bool) {
	depth := lines[from].Indent
	for i := from + 1; i < len(lines); i++ {
		kw := lines[i].Keyword()
		if kw == "" {
			continue
		}
		if lines[i].Indent == depth && slices.Contains(closers, kw) {
			return i, true
		}
	}
	return -1, false
}

// FindBlockStart is the backward counterpart of FindBlockEnd.
func FindBlockStart(lines []ast.Line, from int, opener string) (int, bool) {
	depth := lines[from].Indent
	for i := from - 1; i >= 0; i-- {
		if lines[i].Keyword() == opener && lines[i].Indent == depth {
			return i, true
		}
	}
	return -1, false
}

type pendingBlock struct {
	idx     int
	closers []string
}

// BuildBlocks precomputes, in one pass, the result FindBlockEnd and
// FindBlockStart would give for every if, else, while and endwhile.
// Openers without a match are left out of the index.
func BuildBlocks(lines []ast.Line) map[int]int {
	blocks := map[int]int{}
	pending := map[int][]pendingBlock{}
	lastWhile := map[int]int{}
	for i, line := range lines {
		kw := line.Keyword()
		if kw == "" {
			continue
		}
		depth := line.Indent
		if open := pending[depth]; len(open) > 0 {
			kept := open[:0]
			for _, p := range open {
				if slices.Contains(p.closers, kw) {
					blocks[p.idx] = i
					continue
				}
				kept = append(kept, p)
			}
			pending[depth] = kept
		}
		switch line.Stmt.(type) {
		case ast.IfStmt:
			pending[depth] = append(pending[depth], pendingBlock{idx: i, closers: []string{ast.KwElse, ast.KwEndIf}})
		case ast.ElseStmt:
			pending[depth] = append(pending[depth], pendingBlock{idx: i, closers: []string{ast.KwEndIf}})
		case ast.WhileStmt:
			pending[depth] = append(pending[depth], pendingBlock{idx: i, closers: []string{ast.KwEndWhile}})
			lastWhile[depth] = i
		case ast.EndWhileStmt:
			if w, ok := lastWhile[depth]; ok {
				blocks[i] = w
			}
		}
	}
	return blocks
}
