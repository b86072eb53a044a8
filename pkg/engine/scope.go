package engine

import (
	"regexp"
	"strings"
)

var scopeOpenPattern = regexp.MustCompile(`^\s*(message|enum|service)\s+([A-Za-z_][A-Za-z0-9_]*)\s*\{`)

// ComputeScopeTree replays the document from its start up to and including
// uptoLine, tracking brace depth to build the lexical scope tree. A negative
// uptoLine indexes the whole file.
//
// This is a line-oriented approximation, not a parser. Line comments are
// stripped before braces are counted, and block comments suppress scope
// changes for their duration, but string literals are not tracked: a brace
// inside a quoted option value will skew the depth. Schema files do not put
// braces in strings at the positions this tracker cares about, so the
// tradeoff holds up in practice; it is a documented limitation regardless.
func ComputeScopeTree(text string, uptoLine int) *ScopeTree {
	t := &ScopeTree{
		nodes: []scopeNode{{kind: ScopeProto, parent: NoScope}},
	}
	current := t.Root()
	depth := 0
	inBlock := false

	for i, line := range splitLines(text) {
		if uptoLine >= 0 && i > uptoLine {
			break
		}
		wasInBlock := inBlock
		code, nowInBlock := stripComments(line, inBlock)
		inBlock = nowInBlock

		if !wasInBlock && nowInBlock {
			current = t.push(current, scopeNode{kind: ScopeComment, line: i, openDepth: depth})
		} else if wasInBlock && !nowInBlock {
			if t.nodes[current].kind == ScopeComment {
				current = t.nodes[current].parent
			}
		}

		if strings.TrimSpace(code) == "" {
			continue
		}

		if m := scopeOpenPattern.FindStringSubmatch(code); m != nil {
			kind := ScopeMessage
			switch m[1] {
			case "enum":
				kind = ScopeEnum
			case "service":
				kind = ScopeService
			}
			current = t.push(current, scopeNode{kind: kind, name: m[2], line: i, openDepth: depth})
		}

		depth += strings.Count(code, "{") - strings.Count(code, "}")

		// close every scope whose opening depth has been reached again
		for current > 0 && t.nodes[current].kind != ScopeComment && depth <= t.nodes[current].openDepth {
			current = t.nodes[current].parent
		}
	}

	t.innermost = current
	return t
}

func (t *ScopeTree) push(parent ScopeID, n scopeNode) ScopeID {
	n.parent = parent
	id := ScopeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	t.nodes[parent].children = append(t.nodes[parent].children, id)
	return id
}

// stripComments removes line comments and block-comment spans from a single
// line. inBlock reports whether the line starts inside an open block comment;
// the returned bool reports whether a block comment remains open at the end
// of the line.
func stripComments(line string, inBlock bool) (string, bool) {
	var b strings.Builder
	i := 0
	for i < len(line) {
		if inBlock {
			end := strings.Index(line[i:], "*/")
			if end < 0 {
				return b.String(), true
			}
			i += end + 2
			inBlock = false
			continue
		}
		if strings.HasPrefix(line[i:], "//") {
			return b.String(), false
		}
		if strings.HasPrefix(line[i:], "/*") {
			i += 2
			inBlock = true
			continue
		}
		b.WriteByte(line[i])
		i++
	}
	return b.String(), inBlock
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
